package forms

import (
	"html"
	"strings"
)

// Besides the HTML specials, slashes and backticks are encoded so a stored
// value cannot close a tag or a template literal.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&#34;",
	"'", "&#39;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// escape HTML-escapes a value before it is stored.
func escape(s string) string {
	return escaper.Replace(s)
}

// unescape restores the plain text of a stored value for form pre-fill.
func unescape(s string) string {
	return html.UnescapeString(s)
}

func escapeAll(vs []string) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = escape(v)
	}
	return out
}
