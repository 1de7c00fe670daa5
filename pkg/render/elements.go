package render

// voidElements have no closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// booleanAttrs render as a bare name when "true" and are dropped otherwise.
// aria-* values are never boolean attributes: they need literal "true"/"false".
var booleanAttrs = map[string]bool{
	"checked":    true,
	"disabled":   true,
	"hidden":     true,
	"multiple":   true,
	"novalidate": true,
	"open":       true,
	"readonly":   true,
	"required":   true,
	"selected":   true,
}

// inlineElements stay on one line when pretty printing.
var inlineElements = map[string]bool{
	"a":      true,
	"b":      true,
	"button": true,
	"code":   true,
	"em":     true,
	"i":      true,
	"label":  true,
	"option": true,
	"small":  true,
	"span":   true,
	"strong": true,
	"title":  true,
}

func isVoidElement(tag string) bool   { return voidElements[tag] }
func isBooleanAttr(key string) bool   { return booleanAttrs[key] }
func isInlineElement(tag string) bool { return inlineElements[tag] }
