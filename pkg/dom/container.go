package dom

import (
	"errors"
	"fmt"

	"golang.org/x/net/html"
)

// ErrInvalidContainer reports a query container that cannot root a traversal.
var ErrInvalidContainer = errors.New("dom: container must be an element or document node")

// CheckContainer validates that n can act as a query container. Only element
// and document nodes can root a traversal; anything else (nil, text,
// comments, doctypes) is rejected so misuse fails before any matching runs.
func CheckContainer(n *html.Node) error {
	if n == nil {
		return fmt.Errorf("%w, got nil", ErrInvalidContainer)
	}
	switch n.Type {
	case html.ElementNode, html.DocumentNode:
		return nil
	default:
		return fmt.Errorf("%w, got %s", ErrInvalidContainer, nodeKind(n))
	}
}

func nodeKind(n *html.Node) string {
	switch n.Type {
	case html.TextNode:
		return "a text node"
	case html.CommentNode:
		return "a comment node"
	case html.DoctypeNode:
		return "a doctype node"
	case html.DocumentNode:
		return "a document node"
	case html.ElementNode:
		return "an element node"
	default:
		return "an unknown node kind"
	}
}
