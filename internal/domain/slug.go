package domain

import "strings"

// Slugify converts a human-readable name to a lowercase, hyphen-separated
// identifier safe for filenames and links. Every run of characters outside
// [a-z0-9] collapses to a single hyphen; leading and trailing hyphens are
// trimmed. Idempotent: Slugify(Slugify(x)) == Slugify(x). Empty or
// all-symbol input yields "" and callers must supply their own fallback.
func Slugify(input string) string {
	var b strings.Builder
	lastWasHyphen := false

	for _, r := range strings.ToLower(input) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastWasHyphen = false
		default:
			if !lastWasHyphen && b.Len() > 0 {
				b.WriteRune('-')
				lastWasHyphen = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
