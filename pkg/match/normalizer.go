package match

import (
	"errors"
	"regexp"
	"strings"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// Normalizer transforms candidate text before matching. Normalizers must be
// pure functions; the same normalizer instance is applied to both candidate
// text and string patterns within one query call.
type Normalizer func(string) string

// ErrNormalizerConflict reports that a custom normalizer was combined with
// the trim/collapse-whitespace overrides it replaces.
var ErrNormalizerConflict = errors.New("match: custom normalizer cannot be combined with trim or collapse-whitespace overrides")

type normalizerConfig struct {
	trim        bool
	collapse    bool
	trimSet     bool
	collapseSet bool
	custom      Normalizer
}

// NormalizerOption customises NewNormalizer.
type NormalizerOption func(*normalizerConfig)

// WithTrim toggles leading/trailing whitespace trimming. Enabled by default.
func WithTrim(enabled bool) NormalizerOption {
	return func(c *normalizerConfig) {
		c.trim = enabled
		c.trimSet = true
	}
}

// WithCollapseWhitespace toggles collapsing whitespace runs to a single
// space. Enabled by default.
func WithCollapseWhitespace(enabled bool) NormalizerOption {
	return func(c *normalizerConfig) {
		c.collapse = enabled
		c.collapseSet = true
	}
}

// WithCustom replaces the built-in normalization pipeline entirely. It cannot
// be combined with WithTrim or WithCollapseWhitespace; NewNormalizer rejects
// the combination at build time rather than at match time.
func WithCustom(fn Normalizer) NormalizerOption {
	return func(c *normalizerConfig) {
		c.custom = fn
	}
}

// NewNormalizer builds the normalization function applied before matching.
// The default collapses whitespace runs and trims the ends.
func NewNormalizer(opts ...NormalizerOption) (Normalizer, error) {
	cfg := normalizerConfig{trim: true, collapse: true}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.custom != nil {
		if cfg.trimSet || cfg.collapseSet {
			return nil, ErrNormalizerConflict
		}
		return cfg.custom, nil
	}

	trim, collapse := cfg.trim, cfg.collapse
	return func(text string) string {
		if collapse {
			text = whitespaceRuns.ReplaceAllString(text, " ")
		}
		if trim {
			text = strings.TrimSpace(text)
		}
		return text
	}, nil
}

// DefaultNormalizer returns the default collapse-and-trim normalizer.
func DefaultNormalizer() Normalizer {
	normalizer, err := NewNormalizer()
	if err != nil {
		panic(err)
	}
	return normalizer
}
