// Package testsupport provides fixture helpers shared by the query family
// tests: fragment parsing into a query container and node rendering for
// readable diffs.
package testsupport

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/goliatone/go-domquery/pkg/dom"
	"golang.org/x/net/html"
)

// Container parses an HTML fragment and returns the body element as the
// query container. Testing helpers fail fatally so contract tests stay
// concise.
func Container(t *testing.T, fragment string) *html.Node {
	t.Helper()

	container, err := ContainerFromFragment(fragment)
	if err != nil {
		t.Fatalf("parse fragment: %v", err)
	}
	return container
}

// ContainerFromFragment parses markup and returns the body element, allowing
// callers to wire fixtures outside *testing.T.
func ContainerFromFragment(fragment string) (*html.Node, error) {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("testsupport: parse fragment: %w", err)
	}
	var body *html.Node
	dom.Walk(doc, func(n *html.Node) bool {
		if dom.TagName(n) == "body" {
			body = n
			return false
		}
		return true
	})
	if body == nil {
		return nil, errors.New("testsupport: fragment produced no body element")
	}
	return body, nil
}

// First returns the first element under container matching a CSS selector,
// failing the test when nothing matches. Used to state expected query
// results independently of the code under test.
func First(t *testing.T, container *html.Node, selector string) *html.Node {
	t.Helper()

	sel, err := dom.CompileSelector(selector)
	if err != nil {
		t.Fatalf("compile selector %q: %v", selector, err)
	}
	matches := sel.QueryAll(container)
	if len(matches) == 0 {
		t.Fatalf("no element matches %q in fixture", selector)
	}
	return matches[0]
}

// Render serializes nodes for readable test diffs.
func Render(t *testing.T, nodes ...*html.Node) []string {
	t.Helper()

	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		var buf strings.Builder
		if err := html.Render(&buf, n); err != nil {
			t.Fatalf("render node: %v", err)
		}
		out = append(out, buf.String())
	}
	return out
}
