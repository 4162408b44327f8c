// Package normalize provides canonical forms for user-supplied identity fields.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Phone trims surrounding whitespace and collapses interior runs of spaces.
func Phone(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Slug lowercases and trims a public profile identifier.
func Slug(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
