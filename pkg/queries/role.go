package queries

import (
	"github.com/goliatone/go-domquery/pkg/dom"
	"github.com/goliatone/go-domquery/pkg/match"
	"github.com/goliatone/go-domquery/pkg/query"
	"github.com/goliatone/go-domquery/pkg/suggest"
	"golang.org/x/net/html"
)

// Role builds the role query family. An element matches when any of its
// accessible roles (explicit role attribute tokens, or the implicit role
// from the configured role lookup) matches the pattern. query.WithName
// additionally filters by computed accessible name.
func Role(cfg *query.Config) query.Queries {
	if cfg == nil {
		cfg = query.NewConfig()
	}
	all := func(container *html.Node, pattern match.Pattern, opts ...query.Option) ([]*html.Node, error) {
		o, err := query.Resolve(nil, opts...)
		if err != nil {
			return nil, err
		}
		if err := dom.CheckContainer(container); err != nil {
			return nil, &query.ConfigError{Message: "queries: invalid container", Err: err}
		}

		var out []*html.Node
		dom.Walk(container, func(n *html.Node) bool {
			if !o.Selector.Matches(n) {
				return true
			}
			if !roleMatches(n, pattern, o, cfg) {
				return true
			}
			if o.Name != nil {
				name := cfg.AccessibleName(n)
				if !match.Matches(name, true, n, o.Name, o.Normalizer) {
					return true
				}
			}
			out = append(out, n)
			return true
		})
		return out, nil
	}

	return query.Build(
		suggest.FamilyRole,
		all,
		missingMessage("with the role"),
		multipleMessage("with the role"),
		cfg,
	)
}

func roleMatches(n *html.Node, pattern match.Pattern, o query.Options, cfg *query.Config) bool {
	for _, role := range cfg.GetRoles(n) {
		if o.Matches(role, true, n, pattern) {
			return true
		}
	}
	return false
}
