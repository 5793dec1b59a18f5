package dom

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Selector is a compiled CSS selector usable against element nodes. The zero
// value matches nothing; Wildcard matches every element.
type Selector struct {
	raw   string
	group cascadia.SelectorGroup
}

// Wildcard matches any element node.
var Wildcard = Selector{raw: "*"}

// CompileSelector parses a CSS selector group. An empty string compiles to
// the wildcard selector.
func CompileSelector(raw string) (Selector, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "*" {
		return Wildcard, nil
	}
	group, err := cascadia.ParseGroup(trimmed)
	if err != nil {
		return Selector{}, fmt.Errorf("dom: parse selector %q: %w", raw, err)
	}
	return Selector{raw: trimmed, group: group}, nil
}

// MustCompileSelector is CompileSelector for statically known selectors.
func MustCompileSelector(raw string) Selector {
	sel, err := CompileSelector(raw)
	if err != nil {
		panic(err)
	}
	return sel
}

// String returns the source text of the selector.
func (s Selector) String() string {
	return s.raw
}

// IsWildcard reports whether the selector matches every element.
func (s Selector) IsWildcard() bool {
	return s.raw == "*"
}

// IsZero reports whether the selector is the unset zero value.
func (s Selector) IsZero() bool {
	return s.raw == "" && s.group == nil
}

// Matches reports whether the element n satisfies the selector. Non-element
// nodes and the zero selector never match.
func (s Selector) Matches(n *html.Node) bool {
	if !IsElement(n) {
		return false
	}
	if s.raw == "*" {
		return true
	}
	if s.group == nil {
		return false
	}
	return s.group.Match(n)
}

// QueryAll returns every element under container, in document pre-order, that
// satisfies the selector.
func (s Selector) QueryAll(container *html.Node) []*html.Node {
	var out []*html.Node
	Walk(container, func(n *html.Node) bool {
		if s.Matches(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}
