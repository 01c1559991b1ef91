// Package bluemonday sanitizes article HTML with microcosm-cc/bluemonday.
package bluemonday

import (
	"strings"

	"github.com/fwojciec/newsprint"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure Sanitizer implements newsprint.Sanitizer at compile time.
var _ newsprint.Sanitizer = (*Sanitizer)(nil)

// Sanitizer restricts article HTML to user generated content markup.
// Scripts, event handlers and inline styles are dropped; links get
// rel="nofollow".
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a new Sanitizer.
func NewSanitizer() *Sanitizer {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	return &Sanitizer{policy: p}
}

// Sanitize returns html restricted to the policy, trimmed of surrounding
// whitespace.
func (s *Sanitizer) Sanitize(html string) string {
	return strings.TrimSpace(s.policy.Sanitize(html))
}
