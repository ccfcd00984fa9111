package lingo

import "strings"

// htmlEscaper maps the characters with markup meaning to their entities.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// EscapeHTML replaces <, >, & and " with their HTML entities.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
