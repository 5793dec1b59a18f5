// Package suggest proposes the query a test author should prefer for a given
// element. Candidates are evaluated in a fixed priority order over the
// element's accessible role, label text, placeholder, own text, display
// value, alt text, and title; the first applicable wins.
package suggest

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-domquery/pkg/aria"
	"github.com/goliatone/go-domquery/pkg/dom"
	"github.com/goliatone/go-domquery/pkg/match"
	"golang.org/x/net/html"
)

// Variant identifies the multiplicity/temporality flavor of the query call a
// suggestion is phrased for.
type Variant string

// The six query variants derived by the query factory.
const (
	VariantQuery    Variant = "Query"
	VariantQueryAll Variant = "QueryAll"
	VariantGet      Variant = "Get"
	VariantGetAll   Variant = "GetAll"
	VariantFind     Variant = "Find"
	VariantFindAll  Variant = "FindAll"
)

// Query family display names, shared with pkg/queries so suggestion output
// names real methods.
const (
	FamilyRole            = "Role"
	FamilyLabelText       = "LabelText"
	FamilyPlaceholderText = "PlaceholderText"
	FamilyText            = "Text"
	FamilyDisplayValue    = "DisplayValue"
	FamilyAltText         = "AltText"
	FamilyTitle           = "Title"
	FamilyTestID          = "TestId"
)

// Suggestion is the preferred alternative query for an element. It is
// produced for immediate rendering into a warning or error and never
// persisted.
type Suggestion struct {
	// QueryName is the attribute family the caller should use.
	QueryName string
	// Variant phrases the rendered expression for the calling flavor.
	Variant Variant
	// Content is the text or value to search for.
	Content string
	// AccessibleName is only set for role suggestions and renders as the
	// accessible-name filter clause.
	AccessibleName string
}

// Method returns the derived query method name the suggestion points at,
// e.g. "GetByRole" or "FindAllByText".
func (s Suggestion) Method() string {
	variant := string(s.Variant)
	if variant == "" {
		variant = string(VariantGet)
	}
	if base, ok := strings.CutSuffix(variant, "All"); ok {
		return base + "AllBy" + s.QueryName
	}
	return variant + "By" + s.QueryName
}

// Expression renders the suggestion as a query expression. Role suggestions
// append the accessible-name filter clause.
func (s Suggestion) Expression() string {
	if s.QueryName == FamilyRole && s.AccessibleName != "" {
		return fmt.Sprintf("%s(%q, WithName(%q))", s.Method(), s.Content, s.AccessibleName)
	}
	return fmt.Sprintf("%s(%q)", s.Method(), s.Content)
}

// Options injects the external collaborators the engine consults. Zero
// fields fall back to the pkg/aria defaults and the default normalizer.
type Options struct {
	GetRoles       func(*html.Node) []string
	AccessibleName func(*html.Node) string
	Normalizer     match.Normalizer
}

func (o Options) withDefaults() Options {
	if o.GetRoles == nil {
		o.GetRoles = aria.Roles
	}
	if o.AccessibleName == nil {
		o.AccessibleName = aria.AccessibleName
	}
	if o.Normalizer == nil {
		o.Normalizer = match.DefaultNormalizer()
	}
	return o
}

// For computes the best alternative query for node, phrased for variant. The
// second return is false when no family applies; callers degrade silently to
// "no suggestion" in that case.
func For(node *html.Node, variant Variant, opts Options) (Suggestion, bool) {
	if !dom.IsElement(node) {
		return Suggestion{}, false
	}
	o := opts.withDefaults()

	build := func(family, content string) (Suggestion, bool) {
		return Suggestion{QueryName: family, Variant: variant, Content: content}, true
	}

	if roles := o.GetRoles(node); len(roles) > 0 {
		return Suggestion{
			QueryName:      FamilyRole,
			Variant:        variant,
			Content:        roles[0],
			AccessibleName: o.AccessibleName(node),
		}, true
	}

	if text, ok := aria.LabelText(node); ok {
		if normalized := o.Normalizer(text); normalized != "" {
			return build(FamilyLabelText, normalized)
		}
	}

	if placeholder, ok := dom.Attr(node, "placeholder"); ok && placeholder != "" {
		return build(FamilyPlaceholderText, placeholder)
	}

	if text := o.Normalizer(dom.NodeText(node)); text != "" {
		return build(FamilyText, text)
	}

	if value, ok := dom.DisplayValue(node); ok {
		if normalized := o.Normalizer(value); normalized != "" {
			return build(FamilyDisplayValue, normalized)
		}
	}

	if alt, ok := dom.Attr(node, "alt"); ok {
		return build(FamilyAltText, alt)
	}

	if title, ok := dom.Attr(node, "title"); ok {
		return build(FamilyTitle, title)
	}

	return Suggestion{}, false
}
