package queries

import (
	"github.com/goliatone/go-domquery/pkg/dom"
	"github.com/goliatone/go-domquery/pkg/match"
	"github.com/goliatone/go-domquery/pkg/query"
	"github.com/goliatone/go-domquery/pkg/suggest"
	"golang.org/x/net/html"
)

// AllByText finds elements whose own text (the text contributed by direct
// text-node children, not descendants) matches the pattern. Script and
// style elements are ignored by default; override with query.WithIgnore.
func AllByText(container *html.Node, pattern match.Pattern, opts ...query.Option) ([]*html.Node, error) {
	defaults := []query.Option{query.WithIgnore("script, style")}
	o, err := query.Resolve(defaults, opts...)
	if err != nil {
		return nil, err
	}
	if err := dom.CheckContainer(container); err != nil {
		return nil, &query.ConfigError{Message: "queries: invalid container", Err: err}
	}
	return collectMatches(container, pattern, o, func(n *html.Node) (string, bool) {
		return dom.NodeText(n), true
	}), nil
}

// Text builds the visible-text query family.
func Text(cfg *query.Config) query.Queries {
	return query.Build(
		suggest.FamilyText,
		AllByText,
		func(_ *html.Node, pattern match.Pattern) string {
			return "Unable to find an element with the text: " + pattern.String() +
				". This could be because the text is broken up by multiple elements. " +
				"In this case, you can provide a matcher function to make your matcher more flexible."
		},
		multipleMessage("with the text"),
		cfg,
	)
}
