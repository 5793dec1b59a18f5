package query

import (
	"context"

	"github.com/goliatone/go-domquery/pkg/match"
	"github.com/goliatone/go-domquery/pkg/suggest"
	"golang.org/x/net/html"
)

// AllFunc is the single primitive a query family provides: every node under
// container matching pattern, in document pre-order. An empty result is not
// an error; AllFunc errors are reserved for configuration problems.
type AllFunc func(container *html.Node, pattern match.Pattern, opts ...Option) ([]*html.Node, error)

// MessageFunc builds a family-specific error message for a container and
// pattern, e.g. "Unable to find an element with the text: "Email"".
type MessageFunc func(container *html.Node, pattern match.Pattern) string

// Queries is the family of variants derived from one AllFunc. The family's
// display name is carried explicitly so warnings and suggestions can label
// the query correctly without any reflection.
type Queries struct {
	// Name is the family's display name, e.g. "LabelText".
	Name string

	cfg      *Config
	all      AllFunc
	missing  MessageFunc
	multiple MessageFunc
}

// Build derives the conventional query variants from a single find-all
// primitive plus the two message templates. cfg may be nil, in which case
// defaults apply.
func Build(name string, all AllFunc, missing, multiple MessageFunc, cfg *Config) Queries {
	if cfg == nil {
		cfg = NewConfig()
	} else {
		cfg.applyDefaults()
	}
	return Queries{
		Name:     name,
		cfg:      cfg,
		all:      all,
		missing:  missing,
		multiple: multiple,
	}
}

// Config exposes the configuration the family was built with.
func (q Queries) Config() *Config {
	return q.cfg
}

// QueryAll returns every match. Zero matches is an ordinary empty result.
func (q Queries) QueryAll(container *html.Node, pattern match.Pattern, opts ...Option) ([]*html.Node, error) {
	return q.all(container, pattern, opts...)
}

// Query returns the single match, or nil when there is none. More than one
// match is a MultipleMatchedError.
func (q Queries) Query(container *html.Node, pattern match.Pattern, opts ...Option) (*html.Node, error) {
	nodes, err := q.all(container, pattern, opts...)
	if err != nil {
		return nil, err
	}
	if len(nodes) > 1 {
		return nil, q.multipleError(container, pattern, len(nodes))
	}
	if len(nodes) == 0 {
		return nil, nil
	}
	return nodes[0], nil
}

// GetAll returns every match and fails with a NotFoundError when there are
// none.
func (q Queries) GetAll(container *html.Node, pattern match.Pattern, opts ...Option) ([]*html.Node, error) {
	nodes, err := q.getAll(container, pattern, opts...)
	if err != nil {
		return nil, err
	}
	if err := q.checkSuggestion(nodes[0], suggest.VariantGetAll); err != nil {
		return nodes, err
	}
	return nodes, nil
}

// Get returns exactly one match, failing with a NotFoundError on zero and a
// MultipleMatchedError on more than one.
func (q Queries) Get(container *html.Node, pattern match.Pattern, opts ...Option) (*html.Node, error) {
	node, err := q.getOne(container, pattern, opts...)
	if err != nil {
		return nil, err
	}
	if err := q.checkSuggestion(node, suggest.VariantGet); err != nil {
		return node, err
	}
	return node, nil
}

func (q Queries) getAll(container *html.Node, pattern match.Pattern, opts ...Option) ([]*html.Node, error) {
	nodes, err := q.all(container, pattern, opts...)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, q.missingError(container, pattern)
	}
	return nodes, nil
}

func (q Queries) getOne(container *html.Node, pattern match.Pattern, opts ...Option) (*html.Node, error) {
	nodes, err := q.all(container, pattern, opts...)
	if err != nil {
		return nil, err
	}
	if len(nodes) > 1 {
		return nil, q.multipleError(container, pattern, len(nodes))
	}
	if len(nodes) == 0 {
		return nil, q.missingError(container, pattern)
	}
	return nodes[0], nil
}

// FindAll polls the synchronous GetAll check until it succeeds or the
// configured timeout elapses. Each poll is a complete, independent
// synchronous evaluation; on expiry the returned TimeoutError wraps the
// error the final poll produced.
func (q Queries) FindAll(ctx context.Context, container *html.Node, pattern match.Pattern, opts ...Option) ([]*html.Node, error) {
	var nodes []*html.Node
	err := WaitFor(ctx, q.cfg, func() error {
		var checkErr error
		nodes, checkErr = q.getAll(container, pattern, opts...)
		return checkErr
	})
	if err != nil {
		return nil, err
	}
	if err := q.checkSuggestion(nodes[0], suggest.VariantFindAll); err != nil {
		return nodes, err
	}
	return nodes, nil
}

// Find polls the synchronous Get check until it succeeds or the configured
// timeout elapses. See FindAll for the polling contract.
func (q Queries) Find(ctx context.Context, container *html.Node, pattern match.Pattern, opts ...Option) (*html.Node, error) {
	var node *html.Node
	err := WaitFor(ctx, q.cfg, func() error {
		var checkErr error
		node, checkErr = q.getOne(container, pattern, opts...)
		return checkErr
	})
	if err != nil {
		return nil, err
	}
	if err := q.checkSuggestion(node, suggest.VariantFind); err != nil {
		return node, err
	}
	return node, nil
}

func (q Queries) missingError(container *html.Node, pattern match.Pattern) error {
	return &NotFoundError{
		Message:  q.missing(container, pattern),
		Snapshot: q.cfg.Snapshot(container),
	}
}

func (q Queries) multipleError(container *html.Node, pattern match.Pattern, count int) error {
	return &MultipleMatchedError{
		Message:  q.multiple(container, pattern),
		Count:    count,
		Snapshot: q.cfg.Snapshot(container),
	}
}

// checkSuggestion implements the opt-in suggestion warning: when a preferred
// family exists for the matched element, the discouraged call fails with a
// SuggestionError while still returning its result. Suggestion computation
// failures degrade silently; they never block the underlying result.
func (q Queries) checkSuggestion(node *html.Node, variant suggest.Variant) error {
	if !q.cfg.ThrowSuggestions || q.cfg.Suggest == nil || node == nil {
		return nil
	}
	suggestion, ok := q.cfg.Suggest(node, variant)
	if !ok || suggestion.QueryName == q.Name {
		return nil
	}
	used := suggest.Suggestion{QueryName: q.Name, Variant: variant}.Method()
	return &SuggestionError{Used: used, Expression: suggestion.Expression()}
}
