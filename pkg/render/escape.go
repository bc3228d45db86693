package render

import "strings"

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#9;",
	)
)

// EscapeHTML escapes text for inclusion in HTML content.
func EscapeHTML(s string) string {
	return textEscaper.Replace(s)
}

// EscapeAttr escapes text for inclusion in a quoted attribute value.
// Whitespace control characters are escaped too so values survive
// re-parsing unchanged.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
