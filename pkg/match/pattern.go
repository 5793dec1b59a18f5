package match

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Pattern describes what a query is looking for: a literal string, a regular
// expression, or a predicate over (normalized text, node). Patterns are
// immutable and supplied by the caller per query call.
type Pattern interface {
	// String renders the pattern for diagnostics and error messages.
	String() string

	match(normalized string, node *html.Node, normalize Normalizer, fuzzy bool) bool
}

// Text builds a literal string pattern. In exact mode the normalized
// candidate must equal the normalized pattern; in fuzzy mode the normalized
// pattern must be a case-insensitive substring of the normalized candidate.
func Text(s string) Pattern {
	return textPattern(s)
}

// Regexp builds a regular-expression pattern, tested against the full
// normalized candidate text. Fuzzy mode does not change regexp semantics.
func Regexp(re *regexp.Regexp) Pattern {
	return regexpPattern{re: re}
}

// Func builds a predicate pattern invoked with the normalized candidate text
// and the node under consideration. Fuzzy mode does not change predicate
// semantics.
func Func(fn func(text string, node *html.Node) bool) Pattern {
	return funcPattern(fn)
}

type textPattern string

func (p textPattern) String() string {
	return fmt.Sprintf("%q", string(p))
}

func (p textPattern) match(normalized string, _ *html.Node, normalize Normalizer, fuzzy bool) bool {
	want := string(p)
	if normalize != nil {
		want = normalize(want)
	}
	if fuzzy {
		return strings.Contains(strings.ToLower(normalized), strings.ToLower(want))
	}
	return normalized == want
}

type regexpPattern struct {
	re *regexp.Regexp
}

func (p regexpPattern) String() string {
	return "/" + p.re.String() + "/"
}

func (p regexpPattern) match(normalized string, _ *html.Node, _ Normalizer, _ bool) bool {
	return p.re.MatchString(normalized)
}

type funcPattern func(text string, node *html.Node) bool

func (p funcPattern) String() string {
	return "matcher function"
}

func (p funcPattern) match(normalized string, node *html.Node, _ Normalizer, _ bool) bool {
	return p(normalized, node)
}
