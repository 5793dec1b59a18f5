package query

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-domquery/pkg/match"
)

func TestResolveDefaults(t *testing.T) {
	o, err := Resolve(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !o.Exact {
		t.Fatalf("exact matching is the default")
	}
	if !o.Selector.IsWildcard() {
		t.Fatalf("selector defaults to wildcard, got %q", o.Selector)
	}
	if !o.Ignore.IsZero() {
		t.Fatalf("no default ignore unless the family sets one")
	}
	if got := o.Normalizer("  a  b "); got != "a b" {
		t.Fatalf("default normalizer mismatch: %q", got)
	}
}

func TestResolveFamilyDefaultsAreOverridable(t *testing.T) {
	defaults := []Option{WithIgnore("script, style")}

	o, err := Resolve(defaults)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Ignore.IsZero() {
		t.Fatalf("family default ignore should apply")
	}

	o, err = Resolve(defaults, WithIgnore(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !o.Ignore.IsZero() {
		t.Fatalf("caller should be able to clear the family ignore")
	}
}

func TestResolveFuzzy(t *testing.T) {
	o, err := Resolve(nil, Fuzzy())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Exact {
		t.Fatalf("Fuzzy() must disable exact matching")
	}
}

func TestResolveBadSelectorFailsSynchronously(t *testing.T) {
	_, err := Resolve(nil, WithSelector("input["))
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestResolveNormalizerConflictFailsSynchronously(t *testing.T) {
	custom := func(s string) string { return strings.ToLower(s) }

	_, err := Resolve(nil, WithNormalizer(custom), WithTrim(false))
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if !errors.Is(err, match.ErrNormalizerConflict) {
		t.Fatalf("expected wrapped normalizer conflict, got %v", err)
	}
}
