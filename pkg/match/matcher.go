package match

import "golang.org/x/net/html"

// Matches evaluates pattern against text in exact mode. ok reports whether
// the node carries text at all; absent text is a non-match, never a fault.
// The normalizer is applied to the candidate before evaluation and, for
// string patterns, to the pattern as well.
func Matches(text string, ok bool, node *html.Node, pattern Pattern, normalizer Normalizer) bool {
	return evaluate(text, ok, node, pattern, normalizer, false)
}

// FuzzyMatches evaluates pattern against text in fuzzy mode. Fuzziness only
// changes string-pattern semantics (case-insensitive substring containment);
// regexp and predicate patterns behave exactly as in Matches.
func FuzzyMatches(text string, ok bool, node *html.Node, pattern Pattern, normalizer Normalizer) bool {
	return evaluate(text, ok, node, pattern, normalizer, true)
}

func evaluate(text string, ok bool, node *html.Node, pattern Pattern, normalizer Normalizer, fuzzy bool) bool {
	if !ok || pattern == nil {
		return false
	}
	if normalizer == nil {
		normalizer = DefaultNormalizer()
	}
	return pattern.match(normalizer(text), node, normalizer, fuzzy)
}
