package aria

import (
	"strings"

	"github.com/goliatone/go-domquery/pkg/dom"
	"golang.org/x/net/html"
)

// labelableTags lists the elements that participate in native <label>
// association.
var labelableTags = map[string]bool{
	"button":   true,
	"input":    true,
	"meter":    true,
	"output":   true,
	"progress": true,
	"select":   true,
	"textarea": true,
}

// Labelable reports whether n participates in native label association.
// Hidden inputs are not labelable and are excluded.
func Labelable(n *html.Node) bool {
	tag := dom.TagName(n)
	if !labelableTags[tag] {
		return false
	}
	if tag == "input" {
		if typ, ok := dom.Attr(n, "type"); ok && strings.EqualFold(typ, "hidden") {
			return false
		}
	}
	return true
}

// LabelContent returns the text a label contributes to its control's name.
// Text rendered by nested text-entry or option-list controls is excluded,
// since a label's text content otherwise includes its descendants' live
// values.
func LabelContent(label *html.Node) string {
	return dom.TextExcluding(label, func(n *html.Node) bool {
		switch dom.TagName(n) {
		case "textarea", "select":
			return true
		default:
			return false
		}
	})
}

// LabelText resolves the labelling text for a single node: native label
// association for labelable controls, falling back to aria-labelledby id
// lookup otherwise. The second return is false when no labelling text is
// resolvable.
func LabelText(n *html.Node) (string, bool) {
	if !dom.IsElement(n) {
		return "", false
	}
	if Labelable(n) {
		if text, ok := nativeLabelText(n); ok {
			return text, true
		}
	}
	return labelledByText(n)
}

// AccessibleName computes a simplified accessible name for n. Sources are
// consulted in precedence order: aria-labelledby, aria-label, native label
// association, alt, subtree text, title. The result is
// whitespace-normalized.
func AccessibleName(n *html.Node) string {
	if !dom.IsElement(n) {
		return ""
	}
	if text, ok := labelledByText(n); ok {
		return collapse(text)
	}
	if label, ok := dom.Attr(n, "aria-label"); ok && strings.TrimSpace(label) != "" {
		return collapse(label)
	}
	if Labelable(n) {
		if text, ok := nativeLabelText(n); ok {
			return collapse(text)
		}
	}
	if alt, ok := dom.Attr(n, "alt"); ok && strings.TrimSpace(alt) != "" {
		return collapse(alt)
	}
	if text, ok := dom.TextContent(n); ok && strings.TrimSpace(text) != "" {
		return collapse(text)
	}
	if title, ok := dom.Attr(n, "title"); ok {
		return collapse(title)
	}
	return ""
}

func nativeLabelText(n *html.Node) (string, bool) {
	var parts []string

	if id := dom.ID(n); id != "" {
		root := dom.Root(n)
		dom.Walk(root, func(candidate *html.Node) bool {
			if dom.TagName(candidate) != "label" {
				return true
			}
			if forID, ok := dom.Attr(candidate, "for"); ok && forID == id {
				parts = append(parts, LabelContent(candidate))
			}
			return true
		})
	}

	for parent := n.Parent; parent != nil; parent = parent.Parent {
		if dom.TagName(parent) == "label" && !dom.HasAttr(parent, "for") {
			parts = append(parts, LabelContent(parent))
			break
		}
	}

	joined := strings.TrimSpace(strings.Join(parts, " "))
	if joined == "" {
		return "", false
	}
	return joined, true
}

func labelledByText(n *html.Node) (string, bool) {
	refs, ok := dom.Attr(n, "aria-labelledby")
	if !ok {
		return "", false
	}
	root := dom.Root(n)
	var parts []string
	for _, id := range strings.Fields(refs) {
		if target := dom.ByID(root, id); target != nil {
			if text, textOK := dom.TextContent(target); textOK {
				parts = append(parts, text)
			}
		}
	}
	joined := strings.TrimSpace(strings.Join(parts, " "))
	if joined == "" {
		return "", false
	}
	return joined, true
}

func collapse(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
