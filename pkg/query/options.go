package query

import (
	"github.com/goliatone/go-domquery/pkg/dom"
	"github.com/goliatone/go-domquery/pkg/match"
	"golang.org/x/net/html"
)

// Options is the resolved per-call configuration a query family evaluates
// against. Families obtain it through Resolve; invalid combinations fail
// there, synchronously, with a ConfigError.
type Options struct {
	// Exact selects exact-mode matching. Enabled by default; Fuzzy disables
	// it, switching string patterns to case-insensitive substring matching.
	Exact bool
	// Selector constrains which elements a query may return. Defaults to the
	// wildcard.
	Selector dom.Selector
	// Ignore excludes matching elements from consideration. Families choose
	// their own default; the text family ignores script/style.
	Ignore dom.Selector
	// Normalizer is applied to candidate text and string patterns.
	Normalizer match.Normalizer
	// Name filters role queries by computed accessible name. Unused by the
	// other families.
	Name match.Pattern
}

// Matches dispatches to exact or fuzzy matching per the resolved options.
func (o Options) Matches(text string, ok bool, node *html.Node, pattern match.Pattern) bool {
	if o.Exact {
		return match.Matches(text, ok, node, pattern, o.Normalizer)
	}
	return match.FuzzyMatches(text, ok, node, pattern, o.Normalizer)
}

type rawOptions struct {
	exact            bool
	selector         string
	selectorSet      bool
	ignore           string
	ignoreSet        bool
	name             match.Pattern
	normalizerOption []match.NormalizerOption
}

// Option customises one query call.
type Option func(*rawOptions)

// Fuzzy switches string patterns to case-insensitive substring matching.
// Regexp and predicate patterns are unaffected.
func Fuzzy() Option {
	return func(o *rawOptions) {
		o.exact = false
	}
}

// Exact sets exact-mode matching explicitly. This is the default.
func Exact(enabled bool) Option {
	return func(o *rawOptions) {
		o.exact = enabled
	}
}

// WithSelector constrains results to elements matching a CSS selector.
func WithSelector(selector string) Option {
	return func(o *rawOptions) {
		o.selector = selector
		o.selectorSet = true
	}
}

// WithIgnore excludes elements matching a CSS selector from consideration.
// Pass "" to disable a family's default ignore list.
func WithIgnore(selector string) Option {
	return func(o *rawOptions) {
		o.ignore = selector
		o.ignoreSet = true
	}
}

// WithName filters role queries by computed accessible name.
func WithName(pattern match.Pattern) Option {
	return func(o *rawOptions) {
		o.name = pattern
	}
}

// WithTrim toggles normalizer trimming for this call.
func WithTrim(enabled bool) Option {
	return func(o *rawOptions) {
		o.normalizerOption = append(o.normalizerOption, match.WithTrim(enabled))
	}
}

// WithCollapseWhitespace toggles whitespace collapsing for this call.
func WithCollapseWhitespace(enabled bool) Option {
	return func(o *rawOptions) {
		o.normalizerOption = append(o.normalizerOption, match.WithCollapseWhitespace(enabled))
	}
}

// WithNormalizer replaces the normalization pipeline for this call. Cannot
// be combined with WithTrim or WithCollapseWhitespace.
func WithNormalizer(fn match.Normalizer) Option {
	return func(o *rawOptions) {
		o.normalizerOption = append(o.normalizerOption, match.WithCustom(fn))
	}
}

// Resolve applies the per-call options over a family's defaults. Selector
// parse failures and conflicting normalizer options surface here as
// ConfigError, before any matching runs.
func Resolve(defaults []Option, opts ...Option) (Options, error) {
	raw := rawOptions{exact: true}
	for _, opt := range defaults {
		if opt != nil {
			opt(&raw)
		}
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&raw)
		}
	}

	normalizer, err := match.NewNormalizer(raw.normalizerOption...)
	if err != nil {
		return Options{}, &ConfigError{Message: "query: resolve options", Err: err}
	}

	selector := dom.Wildcard
	if raw.selectorSet {
		selector, err = dom.CompileSelector(raw.selector)
		if err != nil {
			return Options{}, &ConfigError{Message: "query: resolve options", Err: err}
		}
	}

	ignore := dom.Selector{}
	if raw.ignoreSet && raw.ignore != "" {
		ignore, err = dom.CompileSelector(raw.ignore)
		if err != nil {
			return Options{}, &ConfigError{Message: "query: resolve options", Err: err}
		}
	}

	return Options{
		Exact:      raw.exact,
		Selector:   selector,
		Ignore:     ignore,
		Normalizer: normalizer,
		Name:       raw.name,
	}, nil
}
