package aria

import (
	"strings"

	"github.com/goliatone/go-domquery/pkg/dom"
	"golang.org/x/net/html"
)

// implicitRoles maps tag names with a single unconditional implicit role.
// Tags whose role depends on attributes (a, img, input, select) are handled
// in implicitRole.
var implicitRoles = map[string]string{
	"article":  "article",
	"aside":    "complementary",
	"button":   "button",
	"datalist": "listbox",
	"dialog":   "dialog",
	"fieldset": "group",
	"footer":   "contentinfo",
	"form":     "form",
	"h1":       "heading",
	"h2":       "heading",
	"h3":       "heading",
	"h4":       "heading",
	"h5":       "heading",
	"h6":       "heading",
	"header":   "banner",
	"hr":       "separator",
	"li":       "listitem",
	"main":     "main",
	"meter":    "meter",
	"nav":      "navigation",
	"ol":       "list",
	"option":   "option",
	"output":   "status",
	"progress": "progressbar",
	"section":  "region",
	"table":    "table",
	"tbody":    "rowgroup",
	"td":       "cell",
	"textarea": "textbox",
	"tfoot":    "rowgroup",
	"th":       "columnheader",
	"thead":    "rowgroup",
	"tr":       "row",
	"ul":       "list",
}

// inputRoles maps input type attributes to their implicit role.
var inputRoles = map[string]string{
	"button":   "button",
	"checkbox": "checkbox",
	"email":    "textbox",
	"image":    "button",
	"number":   "spinbutton",
	"radio":    "radio",
	"range":    "slider",
	"reset":    "button",
	"search":   "searchbox",
	"submit":   "button",
	"tel":      "textbox",
	"text":     "textbox",
	"url":      "textbox",
}

// Roles returns the accessible roles exposed by n: the tokens of an explicit
// role attribute when present, otherwise the element's implicit role. An
// empty slice means the element exposes no role.
func Roles(n *html.Node) []string {
	if !dom.IsElement(n) {
		return nil
	}
	if explicit, ok := dom.Attr(n, "role"); ok {
		if tokens := strings.Fields(explicit); len(tokens) > 0 {
			return tokens
		}
	}
	if role := implicitRole(n); role != "" {
		return []string{role}
	}
	return nil
}

func implicitRole(n *html.Node) string {
	tag := dom.TagName(n)
	switch tag {
	case "a", "area":
		if dom.HasAttr(n, "href") {
			return "link"
		}
		return ""
	case "img":
		if alt, ok := dom.Attr(n, "alt"); ok && alt == "" {
			return "presentation"
		}
		return "img"
	case "input":
		typ, _ := dom.Attr(n, "type")
		typ = strings.ToLower(typ)
		if typ == "hidden" {
			return ""
		}
		if role, ok := inputRoles[typ]; ok {
			return role
		}
		return "textbox"
	case "select":
		if dom.HasAttr(n, "multiple") {
			return "listbox"
		}
		if size, ok := dom.Attr(n, "size"); ok && size != "" && size != "0" && size != "1" {
			return "listbox"
		}
		return "combobox"
	default:
		return implicitRoles[tag]
	}
}
