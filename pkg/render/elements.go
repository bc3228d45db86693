package render

import "github.com/vango-dev/litkit/pkg/vdom"

// inlineElements don't get newlines in pretty-printed output.
var inlineElements = map[string]bool{
	"a":        true,
	"b":        true,
	"button":   true,
	"code":     true,
	"em":       true,
	"i":        true,
	"label":    true,
	"path":     true,
	"small":    true,
	"span":     true,
	"strong":   true,
	"textarea": true,
	"title":    true,
}

func isInlineElement(tag string) bool {
	return inlineElements[tag]
}

// booleanAttrs are rendered as a bare name when true and omitted when false.
var booleanAttrs = map[string]bool{
	"autofocus": true,
	"checked":   true,
	"disabled":  true,
	"hidden":    true,
	"inert":     true,
	"open":      true,
	"readonly":  true,
	"required":  true,
	"selected":  true,
}

// IsBooleanAttr reports whether the attribute is rendered by presence.
func IsBooleanAttr(name string) bool {
	return booleanAttrs[name]
}

func isVoidElement(tag string) bool {
	return vdom.IsVoidElement(tag)
}
