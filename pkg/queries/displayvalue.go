package queries

import (
	"github.com/goliatone/go-domquery/pkg/dom"
	"github.com/goliatone/go-domquery/pkg/match"
	"github.com/goliatone/go-domquery/pkg/query"
	"github.com/goliatone/go-domquery/pkg/suggest"
	"golang.org/x/net/html"
)

// AllByDisplayValue finds form controls whose current value (input value,
// textarea content, or the selected option's text) matches the pattern.
func AllByDisplayValue(container *html.Node, pattern match.Pattern, opts ...query.Option) ([]*html.Node, error) {
	o, err := query.Resolve(nil, opts...)
	if err != nil {
		return nil, err
	}
	if err := dom.CheckContainer(container); err != nil {
		return nil, &query.ConfigError{Message: "queries: invalid container", Err: err}
	}
	return collectMatches(container, pattern, o, dom.DisplayValue), nil
}

// DisplayValue builds the display-value query family.
func DisplayValue(cfg *query.Config) query.Queries {
	return query.Build(
		suggest.FamilyDisplayValue,
		AllByDisplayValue,
		missingMessage("with the display value"),
		multipleMessage("with the display value"),
		cfg,
	)
}
