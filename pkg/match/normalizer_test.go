package match

import (
	"errors"
	"strings"
	"testing"
)

func TestNewNormalizerDefaults(t *testing.T) {
	normalize, err := NewNormalizer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := normalize("  hello \n\t world  "); got != "hello world" {
		t.Fatalf("normalize mismatch: got %q", got)
	}
}

func TestNewNormalizerDisableCollapse(t *testing.T) {
	normalize, err := NewNormalizer(WithCollapseWhitespace(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := normalize("  a  b  "); got != "a  b" {
		t.Fatalf("expected trim only, got %q", got)
	}
}

func TestNewNormalizerDisableTrim(t *testing.T) {
	normalize, err := NewNormalizer(WithTrim(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := normalize(" a  b "); got != " a b " {
		t.Fatalf("expected collapse only, got %q", got)
	}
}

func TestNewNormalizerIdempotent(t *testing.T) {
	cases := []struct {
		name string
		opts []NormalizerOption
	}{
		{name: "defaults"},
		{name: "no collapse", opts: []NormalizerOption{WithCollapseWhitespace(false)}},
		{name: "no trim", opts: []NormalizerOption{WithTrim(false)}},
		{name: "neither", opts: []NormalizerOption{WithCollapseWhitespace(false), WithTrim(false)}},
	}
	inputs := []string{"", "  ", "a", "  a \t b\nc  ", "already normal"}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			normalize, err := NewNormalizer(tc.opts...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, input := range inputs {
				once := normalize(input)
				if twice := normalize(once); twice != once {
					t.Fatalf("not idempotent for %q: %q != %q", input, twice, once)
				}
			}
		})
	}
}

func TestNewNormalizerCustomConflict(t *testing.T) {
	custom := func(s string) string { return strings.ToUpper(s) }

	if _, err := NewNormalizer(WithCustom(custom), WithTrim(false)); !errors.Is(err, ErrNormalizerConflict) {
		t.Fatalf("expected ErrNormalizerConflict, got %v", err)
	}
	if _, err := NewNormalizer(WithCustom(custom), WithCollapseWhitespace(true)); !errors.Is(err, ErrNormalizerConflict) {
		t.Fatalf("expected ErrNormalizerConflict, got %v", err)
	}

	normalize, err := NewNormalizer(WithCustom(custom))
	if err != nil {
		t.Fatalf("custom alone should build: %v", err)
	}
	if got := normalize("abc"); got != "ABC" {
		t.Fatalf("custom normalizer not applied: got %q", got)
	}
}
