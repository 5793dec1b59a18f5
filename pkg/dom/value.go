package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// DisplayValue returns the value a user currently sees in a form control:
// the value attribute of an input, the text content of a textarea, or the
// label of a select's selected option (falling back to the first option when
// none is marked selected, matching browser behavior). The second return is
// false for elements that do not carry a display value.
func DisplayValue(n *html.Node) (string, bool) {
	switch TagName(n) {
	case "input":
		if typ, _ := Attr(n, "type"); strings.EqualFold(typ, "hidden") {
			return "", false
		}
		value, _ := Attr(n, "value")
		return value, true
	case "textarea":
		text, _ := TextContent(n)
		return text, true
	case "select":
		return selectedOptionText(n)
	default:
		return "", false
	}
}

func selectedOptionText(sel *html.Node) (string, bool) {
	var first, selected *html.Node
	Walk(sel, func(n *html.Node) bool {
		if TagName(n) != "option" {
			return true
		}
		if first == nil {
			first = n
		}
		if HasAttr(n, "selected") && selected == nil {
			selected = n
		}
		return true
	})
	option := selected
	if option == nil {
		option = first
	}
	if option == nil {
		return "", false
	}
	text, _ := TextContent(option)
	return text, true
}
