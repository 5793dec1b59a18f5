package queries

import (
	"fmt"

	"github.com/goliatone/go-domquery/pkg/match"
	"github.com/goliatone/go-domquery/pkg/query"
	"github.com/goliatone/go-domquery/pkg/suggest"
	"golang.org/x/net/html"
)

// AllByPlaceholderText finds elements whose placeholder attribute matches.
func AllByPlaceholderText(container *html.Node, pattern match.Pattern, opts ...query.Option) ([]*html.Node, error) {
	return attributeAll("placeholder")(container, pattern, opts...)
}

// PlaceholderText builds the placeholder query family.
func PlaceholderText(cfg *query.Config) query.Queries {
	return query.Build(
		suggest.FamilyPlaceholderText,
		AllByPlaceholderText,
		missingMessage("with the placeholder text of"),
		multipleMessage("with the placeholder text of"),
		cfg,
	)
}

// AllByAltText finds elements whose alt attribute matches.
func AllByAltText(container *html.Node, pattern match.Pattern, opts ...query.Option) ([]*html.Node, error) {
	return attributeAll("alt")(container, pattern, opts...)
}

// AltText builds the alt-text query family.
func AltText(cfg *query.Config) query.Queries {
	return query.Build(
		suggest.FamilyAltText,
		AllByAltText,
		missingMessage("with the alt text"),
		multipleMessage("with the alt text"),
		cfg,
	)
}

// TestID builds the test-id query family over cfg.TestIDAttribute.
func TestID(cfg *query.Config) query.Queries {
	if cfg == nil {
		cfg = query.NewConfig()
	}
	attribute := cfg.TestIDAttribute
	all := func(container *html.Node, pattern match.Pattern, opts ...query.Option) ([]*html.Node, error) {
		return attributeAll(attribute)(container, pattern, opts...)
	}
	describe := func(verb string) query.MessageFunc {
		return func(_ *html.Node, pattern match.Pattern) string {
			return fmt.Sprintf("%s by: [%s=%s]", verb, attribute, pattern)
		}
	}
	return query.Build(
		suggest.FamilyTestID,
		all,
		describe("Unable to find an element"),
		describe("Found multiple elements"),
		cfg,
	)
}
