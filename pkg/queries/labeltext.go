package queries

import (
	"fmt"

	"github.com/goliatone/go-domquery/pkg/label"
	"github.com/goliatone/go-domquery/pkg/match"
	"github.com/goliatone/go-domquery/pkg/query"
	"github.com/goliatone/go-domquery/pkg/suggest"
	"golang.org/x/net/html"
)

// AllByLabelText finds every form control labelled by text matching the
// pattern, through any of the four label association mechanisms.
func AllByLabelText(container *html.Node, pattern match.Pattern, opts ...query.Option) ([]*html.Node, error) {
	o, err := query.Resolve(nil, opts...)
	if err != nil {
		return nil, err
	}
	result, err := label.Resolve(container, pattern, o)
	if err != nil {
		return nil, err
	}
	return result.Controls, nil
}

// LabelText builds the label-text query family. Its missing message
// distinguishes a label that matched but labels nothing, which points at
// broken for/aria-labelledby wiring, from no matching label at all.
func LabelText(cfg *query.Config) query.Queries {
	return query.Build(
		suggest.FamilyLabelText,
		AllByLabelText,
		missingLabelMessage,
		multipleMessage("with the label text of"),
		cfg,
	)
}

func missingLabelMessage(container *html.Node, pattern match.Pattern) string {
	if labelMatchedButUnassociated(container, pattern) {
		return fmt.Sprintf(
			"Found a label with the text of: %s, however no form control was found associated to that label. "+
				"Make sure you're using the \"for\" attribute or \"aria-labelledby\" attribute correctly.",
			pattern,
		)
	}
	return fmt.Sprintf("Unable to find a label with the text of: %s", pattern)
}

// labelMatchedButUnassociated re-runs label matching leniently (fuzzy, no
// selector constraint) to decide which missing message applies.
func labelMatchedButUnassociated(container *html.Node, pattern match.Pattern) bool {
	o, err := query.Resolve([]query.Option{query.Fuzzy()})
	if err != nil {
		return false
	}
	result, err := label.Resolve(container, pattern, o)
	if err != nil {
		return false
	}
	return result.LabelsMatched > 0 && len(result.Controls) == 0
}
