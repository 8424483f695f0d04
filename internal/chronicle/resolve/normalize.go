package resolve

import "strings"

// Normalize canonicalizes a name for matching: leading and trailing
// whitespace is dropped, internal whitespace runs collapse to a single
// space, and the result is lowercased. Punctuation and non-ASCII runes pass
// through unchanged. Normalize is idempotent.
func Normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
