package queries

import (
	"testing"

	"github.com/goliatone/go-domquery/pkg/dom"
	"github.com/goliatone/go-domquery/pkg/match"
	"github.com/goliatone/go-domquery/pkg/query"
	"github.com/goliatone/go-domquery/pkg/testsupport"
	"golang.org/x/net/html"
)

func TestRoleImplicit(t *testing.T) {
	body := testsupport.Container(t, `<button>Submit</button><a href="/x">Home</a>`)
	role := Role(query.NewConfig())

	node, err := role.Get(body, match.Text("button"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dom.TagName(node) != "button" {
		t.Fatalf("expected the button, got %s", dom.TagName(node))
	}

	if _, err := role.Get(body, match.Text("link")); err != nil {
		t.Fatalf("implicit link role should match: %v", err)
	}
}

func TestRoleExplicitAttribute(t *testing.T) {
	body := testsupport.Container(t, `<div role="dialog">...</div>`)
	role := Role(query.NewConfig())

	if _, err := role.Get(body, match.Text("dialog")); err != nil {
		t.Fatalf("explicit role should match: %v", err)
	}
}

func TestRoleNameFilter(t *testing.T) {
	body := testsupport.Container(t, `<button>Save</button><button>Cancel</button>`)
	role := Role(query.NewConfig())

	if _, err := role.Get(body, match.Text("button")); !query.IsMultipleMatched(err) {
		t.Fatalf("two buttons without a name filter must be ambiguous, got %v", err)
	}

	node, err := role.Get(body, match.Text("button"), query.WithName(match.Text("Save")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := testsupport.Render(t, node)[0]; got != "<button>Save</button>" {
		t.Fatalf("name filter mismatch: %s", got)
	}
}

func TestRoleCustomLookup(t *testing.T) {
	cfg := query.NewConfig()
	cfg.GetRoles = func(n *html.Node) []string {
		if dom.TagName(n) == "div" {
			return []string{"widget"}
		}
		return nil
	}
	body := testsupport.Container(t, `<div>custom</div><button>Submit</button>`)
	role := Role(cfg)

	if _, err := role.Get(body, match.Text("widget")); err != nil {
		t.Fatalf("injected role lookup should drive matching: %v", err)
	}
	if _, err := role.Get(body, match.Text("button")); !query.IsNotFound(err) {
		t.Fatalf("injected lookup replaces the implicit table, got %v", err)
	}
}
