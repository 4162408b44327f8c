// internal/app/system/htmlsanitize/htmlsanitize.go
package htmlsanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	once   sync.Once
	ugc    *bluemonday.Policy
	strict *bluemonday.Policy
)

func policies() (*bluemonday.Policy, *bluemonday.Policy) {
	once.Do(func() {
		ugc = bluemonday.UGCPolicy()
		strict = bluemonday.StrictPolicy()
	})
	return ugc, strict
}

// Sanitize cleans user-supplied rich text (award/highlight descriptions),
// keeping common formatting and safe links while stripping scripts, event
// handlers, and unsafe protocols.
func Sanitize(input string) string {
	if input == "" {
		return ""
	}
	p, _ := policies()
	return strings.TrimSpace(p.Sanitize(input))
}

// StripTags removes all markup, leaving plain text. Used for fields that are
// stored and rendered as text only (admin notes, contact fields).
func StripTags(input string) string {
	if input == "" {
		return ""
	}
	_, p := policies()
	return strings.TrimSpace(p.Sanitize(input))
}
