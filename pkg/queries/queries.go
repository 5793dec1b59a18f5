// Package queries assembles the per-attribute query families (label text,
// visible text, placeholder, title, alt text, display value, role, and test
// id) on top of the shared matching primitives, each derived through
// query.Build so all families expose the same variants and error semantics.
package queries

import (
	"fmt"

	"github.com/goliatone/go-domquery/pkg/dom"
	"github.com/goliatone/go-domquery/pkg/match"
	"github.com/goliatone/go-domquery/pkg/query"
	"golang.org/x/net/html"
)

// Families bundles every query family built over one shared configuration.
type Families struct {
	Role            query.Queries
	LabelText       query.Queries
	PlaceholderText query.Queries
	Text            query.Queries
	DisplayValue    query.Queries
	AltText         query.Queries
	Title           query.Queries
	TestID          query.Queries
}

// New builds all families over cfg. A nil cfg uses defaults.
func New(cfg *query.Config) Families {
	if cfg == nil {
		cfg = query.NewConfig()
	}
	return Families{
		Role:            Role(cfg),
		LabelText:       LabelText(cfg),
		PlaceholderText: PlaceholderText(cfg),
		Text:            Text(cfg),
		DisplayValue:    DisplayValue(cfg),
		AltText:         AltText(cfg),
		Title:           Title(cfg),
		TestID:          TestID(cfg),
	}
}

// missingMessage and multipleMessage build the two message templates every
// family hands to query.Build.
func missingMessage(description string) query.MessageFunc {
	return func(_ *html.Node, pattern match.Pattern) string {
		return fmt.Sprintf("Unable to find an element %s: %s", description, pattern)
	}
}

func multipleMessage(description string) query.MessageFunc {
	return func(_ *html.Node, pattern match.Pattern) string {
		return fmt.Sprintf("Found multiple elements %s: %s", description, pattern)
	}
}

// collectMatches is the traversal shared by the attribute-driven families:
// every element under container, in document pre-order, that satisfies the
// resolved selector and whose candidate text (as extracted per family)
// matches the pattern.
func collectMatches(
	container *html.Node,
	pattern match.Pattern,
	o query.Options,
	extract func(*html.Node) (string, bool),
) []*html.Node {
	var out []*html.Node
	dom.Walk(container, func(n *html.Node) bool {
		if !o.Selector.Matches(n) {
			return true
		}
		if !o.Ignore.IsZero() && o.Ignore.Matches(n) {
			return true
		}
		text, ok := extract(n)
		if o.Matches(text, ok, n, pattern) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// attributeAll builds an AllFunc matching on a single attribute's value.
func attributeAll(attribute string, defaults ...query.Option) query.AllFunc {
	return func(container *html.Node, pattern match.Pattern, opts ...query.Option) ([]*html.Node, error) {
		o, err := query.Resolve(defaults, opts...)
		if err != nil {
			return nil, err
		}
		if err := dom.CheckContainer(container); err != nil {
			return nil, &query.ConfigError{Message: "queries: invalid container", Err: err}
		}
		return collectMatches(container, pattern, o, func(n *html.Node) (string, bool) {
			return dom.Attr(n, attribute)
		}), nil
	}
}
