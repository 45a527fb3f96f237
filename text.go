package newsclip

import "strings"

// CleanText collapses every run of whitespace (including newlines and
// non-breaking spaces) into a single space and trims the result.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
