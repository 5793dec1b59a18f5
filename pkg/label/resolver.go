// Package label resolves form controls from the text that labels them. A
// matching label is mapped to its control(s) through four independent
// association mechanisms (implicit control ownership, explicit for/id
// reference, aria-labelledby token lists, and nested controls) composed as
// an ordered union deduplicated by node identity.
package label

import (
	"github.com/goliatone/go-domquery/pkg/aria"
	"github.com/goliatone/go-domquery/pkg/dom"
	"github.com/goliatone/go-domquery/pkg/match"
	"github.com/goliatone/go-domquery/pkg/query"
	"golang.org/x/net/html"
)

var formControlTags = map[string]bool{
	"button":   true,
	"input":    true,
	"meter":    true,
	"output":   true,
	"progress": true,
	"select":   true,
	"textarea": true,
}

// strategy resolves the controls associated with one matched label element.
type strategy func(container, label *html.Node, o query.Options) []*html.Node

// Resolution order matters for determinism; duplicates reached through more
// than one mechanism collapse in the union.
var strategies = []strategy{
	implicitControl,
	forReference,
	labelledByReference,
	nestedControl,
}

// Result carries the resolved controls plus how many label elements matched
// the pattern, which the ByLabelText error path uses to distinguish "label
// found but nothing labelled" from "no label at all".
type Result struct {
	Controls      []*html.Node
	LabelsMatched int
}

// Resolve finds every element under container labelled by text matching
// pattern: controls associated with a matching <label> through any of the
// four mechanisms, elements carrying a matching aria-label, and elements
// referenced via aria-labelledby from a matching text-bearing element. The
// union is deduplicated by identity and filtered by the caller's selector.
func Resolve(container *html.Node, pattern match.Pattern, o query.Options) (Result, error) {
	if err := dom.CheckContainer(container); err != nil {
		return Result{}, &query.ConfigError{Message: "label: invalid container", Err: err}
	}

	seen := make(map[*html.Node]bool)
	var resolved []*html.Node
	add := func(nodes ...*html.Node) {
		for _, n := range nodes {
			if n == nil || seen[n] {
				continue
			}
			seen[n] = true
			resolved = append(resolved, n)
		}
	}

	labels := matchingLabels(container, pattern, o)
	for _, labelNode := range labels {
		for _, resolve := range strategies {
			add(resolve(container, labelNode, o)...)
		}
	}

	add(ariaLabelMatches(container, pattern, o)...)
	add(labelledByTextMatches(container, pattern, o)...)

	var controls []*html.Node
	for _, n := range resolved {
		if o.Selector.Matches(n) {
			controls = append(controls, n)
		}
	}
	return Result{Controls: controls, LabelsMatched: len(labels)}, nil
}

// matchingLabels collects every <label> under container whose contributed
// text matches pattern. Text rendered by nested textarea/select controls is
// excluded before matching, since a label's text content includes its
// descendants' live values.
func matchingLabels(container *html.Node, pattern match.Pattern, o query.Options) []*html.Node {
	var labels []*html.Node
	dom.Walk(container, func(n *html.Node) bool {
		if dom.TagName(n) != "label" {
			return true
		}
		if o.Matches(aria.LabelContent(n), true, n, pattern) {
			labels = append(labels, n)
		}
		return true
	})
	return labels
}

// implicitControl mirrors native form association: the element referenced by
// the label's for attribute when it is labelable, otherwise the label's first
// labelable descendant.
func implicitControl(container, label *html.Node, _ query.Options) []*html.Node {
	if forID, ok := dom.Attr(label, "for"); ok {
		target := dom.ByID(container, forID)
		if target != nil && aria.Labelable(target) {
			return []*html.Node{target}
		}
		return nil
	}
	var control *html.Node
	dom.Walk(label, func(n *html.Node) bool {
		if aria.Labelable(n) {
			control = n
			return false
		}
		return true
	})
	if control == nil {
		return nil
	}
	return []*html.Node{control}
}

// forReference resolves the label's explicit for/id reference. The id lookup
// compares attribute values literally, so ids containing characters unsafe
// for selector syntax still resolve.
func forReference(container, label *html.Node, _ query.Options) []*html.Node {
	forID, ok := dom.Attr(label, "for")
	if !ok {
		return nil
	}
	target := dom.ByID(container, forID)
	if target == nil {
		return nil
	}
	return []*html.Node{target}
}

// labelledByReference collects every element whose aria-labelledby token list
// names the label's id. The association is many-to-many: one label id may be
// referenced by any number of controls.
func labelledByReference(container, label *html.Node, _ query.Options) []*html.Node {
	id := dom.ID(label)
	if id == "" {
		return nil
	}
	return referencedBy(container, id)
}

// nestedControl finds the first form control inside the label's own subtree
// that satisfies the caller's selector.
func nestedControl(_, label *html.Node, o query.Options) []*html.Node {
	var control *html.Node
	dom.Walk(label, func(n *html.Node) bool {
		if formControlTags[dom.TagName(n)] && o.Selector.Matches(n) {
			control = n
			return false
		}
		return true
	})
	if control == nil {
		return nil
	}
	return []*html.Node{control}
}

// ariaLabelMatches treats elements carrying a matching aria-label attribute
// as already labelled, bypassing label-node resolution entirely.
func ariaLabelMatches(container *html.Node, pattern match.Pattern, o query.Options) []*html.Node {
	var out []*html.Node
	dom.Walk(container, func(n *html.Node) bool {
		if value, ok := dom.Attr(n, "aria-label"); ok {
			if o.Matches(value, true, n, pattern) {
				out = append(out, n)
			}
		}
		return true
	})
	return out
}

// labelledByTextMatches finds elements whose own text matches and that carry
// an id, then expands each to the elements referencing that id through
// aria-labelledby.
func labelledByTextMatches(container *html.Node, pattern match.Pattern, o query.Options) []*html.Node {
	var out []*html.Node
	dom.Walk(container, func(n *html.Node) bool {
		id := dom.ID(n)
		if id == "" {
			return true
		}
		if !o.Matches(dom.NodeText(n), true, n, pattern) {
			return true
		}
		out = append(out, referencedBy(container, id)...)
		return true
	})
	return out
}

func referencedBy(container *html.Node, id string) []*html.Node {
	var out []*html.Node
	dom.Walk(container, func(n *html.Node) bool {
		if refs, ok := dom.Attr(n, "aria-labelledby"); ok && dom.TokenListContains(refs, id) {
			out = append(out, n)
		}
		return true
	})
	return out
}
