// Package domquery locates elements in a parsed HTML document by the
// attributes a user can observe (label text, visible text, placeholder,
// title, alt text, display value, accessible role, test id) instead of
// structural selectors, and reports actionable diagnostics, including an
// alternative-query suggestion, when a query's result does not match
// expectations. The document is never rendered or mutated; every query is
// read-only over the tree the caller supplies.
package domquery

import (
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/goliatone/go-domquery/pkg/match"
	"github.com/goliatone/go-domquery/pkg/queries"
	"github.com/goliatone/go-domquery/pkg/query"
	"github.com/goliatone/go-domquery/pkg/suggest"
	"golang.org/x/net/html"
)

// Pattern describes what a query is looking for; see pkg/match.
type Pattern = match.Pattern

// Config carries the settings threaded into every query; see pkg/query.
type Config = query.Config

// Suggestion is a preferred alternative query; see pkg/suggest.
type Suggestion = suggest.Suggestion

// Text builds a literal string pattern.
func Text(s string) Pattern {
	return match.Text(s)
}

// Regexp builds a regular-expression pattern.
func Regexp(re *regexp.Regexp) Pattern {
	return match.Regexp(re)
}

// MatchFunc builds a predicate pattern over (normalized text, node).
func MatchFunc(fn func(text string, node *html.Node) bool) Pattern {
	return match.Func(fn)
}

// Option customises the configuration a Screen is built with.
type Option func(*query.Config)

// WithTimeout bounds how long the Find variants keep polling.
func WithTimeout(timeout time.Duration) Option {
	return func(c *query.Config) {
		c.Timeout = timeout
	}
}

// WithInterval sets the polling interval of the Find variants.
func WithInterval(interval time.Duration) Option {
	return func(c *query.Config) {
		c.Interval = interval
	}
}

// WithTestIDAttribute overrides the attribute the TestID family reads.
func WithTestIDAttribute(attribute string) Option {
	return func(c *query.Config) {
		c.TestIDAttribute = attribute
	}
}

// WithThrowSuggestions makes successful queries through a discouraged family
// fail with a SuggestionError naming the preferred query.
func WithThrowSuggestions(enabled bool) Option {
	return func(c *query.Config) {
		c.ThrowSuggestions = enabled
	}
}

// Screen bundles every query family over one configuration. The zero-config
// Screen from New() is ready to use.
type Screen struct {
	queries.Families

	cfg *query.Config
}

// New constructs a Screen applying any provided options over the defaults.
func New(options ...Option) *Screen {
	cfg := query.NewConfig()
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig constructs a Screen over an explicit configuration, for
// callers that load or share one.
func NewWithConfig(cfg *query.Config) *Screen {
	if cfg == nil {
		cfg = query.NewConfig()
	}
	return &Screen{
		Families: queries.New(cfg),
		cfg:      cfg,
	}
}

// Config returns the configuration the Screen was built with.
func (s *Screen) Config() *query.Config {
	return s.cfg
}

// Parse reads an HTML document into the tree the query families operate on.
func Parse(r io.Reader) (*html.Node, error) {
	return html.Parse(r)
}

// ParseString is Parse over an in-memory document or fragment.
func ParseString(markup string) (*html.Node, error) {
	return html.Parse(strings.NewReader(markup))
}
