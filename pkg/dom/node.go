package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// IsElement reports whether n is an element node.
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// TagName returns the lower-cased tag name of an element node, or "" for any
// other node kind.
func TagName(n *html.Node) string {
	if !IsElement(n) {
		return ""
	}
	return strings.ToLower(n.Data)
}

// Attr returns the value of the named attribute and whether it is present.
// Attribute names are compared case-insensitively, matching HTML semantics.
func Attr(n *html.Node, name string) (string, bool) {
	if !IsElement(n) {
		return "", false
	}
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, name) {
			return attr.Val, true
		}
	}
	return "", false
}

// HasAttr reports whether the named attribute is present on n.
func HasAttr(n *html.Node, name string) bool {
	_, ok := Attr(n, name)
	return ok
}

// ID returns the element's id attribute, or "" when absent.
func ID(n *html.Node) string {
	id, _ := Attr(n, "id")
	return id
}

// Walk visits every element below root in document pre-order, excluding root
// itself. The visit function returns false to stop the traversal early.
func Walk(root *html.Node, visit func(*html.Node) bool) {
	if root == nil {
		return
	}
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == html.ElementNode {
				if !visit(child) {
					return false
				}
			}
			if !walk(child) {
				return false
			}
		}
		return true
	}
	walk(root)
}

// ByID returns the first element under container whose id attribute equals id.
// The comparison is a literal attribute match, so ids containing characters
// that would need escaping in selector syntax resolve correctly.
func ByID(container *html.Node, id string) *html.Node {
	if id == "" {
		return nil
	}
	var found *html.Node
	Walk(container, func(n *html.Node) bool {
		if ID(n) == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// Root climbs to the topmost node reachable from n. Used when an association
// (for/id, aria-labelledby) must be resolved against the whole document rather
// than the query container.
func Root(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

// TextContent returns the concatenated text of n's entire subtree. The second
// return value is false for node kinds that cannot carry text (comments,
// doctypes, nil), which callers must treat as a non-match rather than an
// empty string.
func TextContent(n *html.Node) (string, bool) {
	if n == nil {
		return "", false
	}
	switch n.Type {
	case html.TextNode:
		return n.Data, true
	case html.ElementNode, html.DocumentNode:
		return TextExcluding(n, nil), true
	default:
		return "", false
	}
}

// TextExcluding concatenates the subtree text of n, skipping the subtrees of
// any element for which skip returns true. A nil skip excludes nothing.
func TextExcluding(n *html.Node, skip func(*html.Node) bool) string {
	var out strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			switch child.Type {
			case html.TextNode:
				out.WriteString(child.Data)
			case html.ElementNode:
				if skip != nil && skip(child) {
					continue
				}
				walk(child)
			}
		}
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	walk(n)
	return out.String()
}

// NodeText returns the text contributed by n's direct text-node children only,
// ignoring descendants. This is the "own text" used by the text query family
// and the suggestion engine, so wrapper elements do not match on the text of
// their children.
func NodeText(n *html.Node) string {
	if n == nil {
		return ""
	}
	var out strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.TextNode {
			out.WriteString(child.Data)
		}
	}
	return out.String()
}

// TokenListContains reports whether the whitespace-separated token list held
// in value contains token as a whole entry.
func TokenListContains(value, token string) bool {
	if token == "" {
		return false
	}
	for _, candidate := range strings.Fields(value) {
		if candidate == token {
			return true
		}
	}
	return false
}
