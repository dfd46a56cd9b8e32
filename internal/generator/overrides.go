package generator

import "strings"

// ResolveOverride returns the user-edited override for path when one
// exists, verbatim, and the freshly rendered content otherwise. Applied
// per path by the assembler only; renderers never read the override map,
// and the fresh render always executes even when it loses.
func ResolveOverride(path, fresh string, overrides map[string]string) string {
	if override, ok := overrides[path]; ok {
		return override
	}
	return fresh
}

// normalizeTrailingNewline makes fresh renders end with exactly one
// newline. Overrides are exempt; they pass through ResolveOverride
// untouched.
func normalizeTrailingNewline(s string) string {
	return strings.TrimRight(s, "\n") + "\n"
}
