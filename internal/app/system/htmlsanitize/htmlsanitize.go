// Package htmlsanitize prepares respondent-entered text for display.
//
// Barrier descriptions and other free-text answers come straight from a
// public form, so anything rendered into a page goes through bluemonday
// first.
package htmlsanitize

import (
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// policy permits minimal inline formatting and nothing interactive.
var policy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "br", "strong", "em", "ul", "ol", "li", "blockquote")
	return p
}()

// Sanitize strips everything outside the allowed inline-formatting set.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}

// PlainTextToHTML escapes plain text and converts newlines to <br>,
// wrapping the result in a paragraph.
func PlainTextToHTML(s string) string {
	if s == "" {
		return ""
	}
	escaped := html.EscapeString(s)
	return "<p>" + strings.ReplaceAll(escaped, "\n", "<br>") + "</p>"
}

// PrepareForDisplay renders untrusted answer text as safe HTML: plain
// text is escaped and paragraph-wrapped, anything containing markup is
// sanitized.
func PrepareForDisplay(s string) template.HTML {
	if s == "" {
		return ""
	}
	if !strings.Contains(s, "<") || !strings.Contains(s, ">") {
		return template.HTML(PlainTextToHTML(s))
	}
	return template.HTML(Sanitize(s))
}
