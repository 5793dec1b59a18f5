package queries

import (
	"testing"

	"github.com/goliatone/go-domquery/pkg/dom"
	"github.com/goliatone/go-domquery/pkg/match"
	"github.com/goliatone/go-domquery/pkg/query"
	"github.com/goliatone/go-domquery/pkg/testsupport"
)

func TestTitleAttribute(t *testing.T) {
	body := testsupport.Container(t, `<span title="Delete row">x</span>`)
	title := Title(query.NewConfig())

	node, err := title.Get(body, match.Text("Delete row"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dom.TagName(node) != "span" {
		t.Fatalf("expected the span, got %s", dom.TagName(node))
	}
}

func TestTitleSVGScenario(t *testing.T) {
	body := testsupport.Container(t, `<svg><title>Close</title></svg>`)
	title := Title(query.NewConfig())

	node, err := title.Get(body, match.Text("Close"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dom.TagName(node) != "svg" {
		t.Fatalf("svg title queries return the svg element, got %s", dom.TagName(node))
	}
}

func TestTitleNoMatch(t *testing.T) {
	body := testsupport.Container(t, `<svg><title>Close</title></svg>`)
	title := Title(query.NewConfig())

	if _, err := title.Get(body, match.Text("Open")); !query.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
