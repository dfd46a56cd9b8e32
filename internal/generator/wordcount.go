package generator

import "strings"

// structuralPunctuation are the markdown characters stripped before
// counting. Free-text prose survives; headings, tables, lists, emphasis,
// and links dissolve into their words.
const structuralPunctuation = "#`|-*<>_()[]"

// CountWords strips markdown structural punctuation and counts the
// remaining whitespace-delimited tokens. A stable, monotonic proxy for
// document size, not a linguistic word count. Deterministic and pure;
// removing characters from the input can never increase the result.
func CountWords(markdown string) int {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(structuralPunctuation, r) {
			return ' '
		}
		return r
	}, markdown)

	return len(strings.Fields(cleaned))
}
