package queries

import (
	"github.com/goliatone/go-domquery/pkg/dom"
	"github.com/goliatone/go-domquery/pkg/match"
	"github.com/goliatone/go-domquery/pkg/query"
	"github.com/goliatone/go-domquery/pkg/suggest"
	"golang.org/x/net/html"
)

// AllByTitle finds elements whose title attribute matches, and svg elements
// whose <title> child's text matches. For the svg case the svg element is
// returned, since that is the element a test acts on.
func AllByTitle(container *html.Node, pattern match.Pattern, opts ...query.Option) ([]*html.Node, error) {
	o, err := query.Resolve(nil, opts...)
	if err != nil {
		return nil, err
	}
	if err := dom.CheckContainer(container); err != nil {
		return nil, &query.ConfigError{Message: "queries: invalid container", Err: err}
	}
	return collectMatches(container, pattern, o, titleText), nil
}

func titleText(n *html.Node) (string, bool) {
	if title, ok := dom.Attr(n, "title"); ok {
		return title, true
	}
	if dom.TagName(n) != "svg" {
		return "", false
	}
	var text string
	found := false
	dom.Walk(n, func(child *html.Node) bool {
		if dom.TagName(child) == "title" {
			text, _ = dom.TextContent(child)
			found = true
			return false
		}
		return true
	})
	return text, found
}

// Title builds the title query family.
func Title(cfg *query.Config) query.Queries {
	return query.Build(
		suggest.FamilyTitle,
		AllByTitle,
		missingMessage("with the title"),
		multipleMessage("with the title"),
		cfg,
	)
}
