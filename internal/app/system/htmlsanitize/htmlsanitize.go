// Package htmlsanitize cleans rich-text fields written in the dashboard's
// editor before they are stored by the content backend and rendered on the
// public site.
package htmlsanitize

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy

	strict = bluemonday.StrictPolicy()
)

func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowAttrs("class").OnElements("table", "tr", "td", "th", "p", "span", "div")
		p.AllowElements("u", "s", "sub", "sup", "mark")
		policy = p
	})
	return policy
}

// Sanitize strips scripts, event handlers, and unsafe URLs from s. Plain text
// passes through unchanged.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return getPolicy().Sanitize(s)
}

// Fields sanitizes each string in place. Nil pointers are skipped.
func Fields(fields ...*string) {
	for _, f := range fields {
		if f != nil {
			*f = strings.TrimSpace(Sanitize(*f))
		}
	}
}

// IsPlainText reports whether s contains no markup at all.
func IsPlainText(s string) bool {
	return !strings.ContainsAny(s, "<>")
}

// Text returns the visible text of s: every tag is removed and entities are
// decoded.
func Text(s string) string {
	if s == "" {
		return ""
	}
	return html.UnescapeString(strict.Sanitize(s))
}
