// Package match implements the text matching shared by every query family:
// patterns (literal, regexp, predicate), the normalizer builder, and the
// exact/fuzzy match evaluation. Matching always runs against normalized text,
// and string patterns are normalized with the same normalizer as candidates.
package match
