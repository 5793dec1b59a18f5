package queries

import (
	"regexp"
	"testing"

	"github.com/goliatone/go-domquery/pkg/match"
	"github.com/goliatone/go-domquery/pkg/query"
	"github.com/goliatone/go-domquery/pkg/testsupport"
)

func TestTextOwnTextOnly(t *testing.T) {
	body := testsupport.Container(t, `<div>wrapper<span id="inner">Submit</span></div>`)
	text := Text(query.NewConfig())

	node, err := text.Get(body, match.Text("Submit"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node != testsupport.First(t, body, "#inner") {
		t.Fatalf("match should land on the element owning the text, got %v", testsupport.Render(t, node))
	}
}

func TestTextIgnoresScriptAndStyleByDefault(t *testing.T) {
	body := testsupport.Container(t, `<script id="s">Submit</script><button>Submit</button>`)
	text := Text(query.NewConfig())

	nodes, err := text.GetAll(body, match.Text("Submit"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("script content must be ignored by default, got %d matches", len(nodes))
	}
}

func TestTextIgnoreOverride(t *testing.T) {
	body := testsupport.Container(t, `<script>Submit</script><button>Submit</button>`)
	text := Text(query.NewConfig())

	nodes, err := text.QueryAll(body, match.Text("Submit"), query.WithIgnore(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("clearing the ignore list should surface script text, got %d", len(nodes))
	}
}

func TestTextFuzzyAndRegexp(t *testing.T) {
	body := testsupport.Container(t, `<button>Submit order</button>`)
	text := Text(query.NewConfig())

	if _, err := text.Get(body, match.Text("submit")); !query.IsNotFound(err) {
		t.Fatalf("exact mode must not substring-match, got %v", err)
	}
	if _, err := text.Get(body, match.Text("submit"), query.Fuzzy()); err != nil {
		t.Fatalf("fuzzy mode should match: %v", err)
	}
	if _, err := text.Get(body, match.Regexp(regexp.MustCompile(`^Submit`))); err != nil {
		t.Fatalf("regexp should match: %v", err)
	}
}

func TestTextSelectorConstraint(t *testing.T) {
	body := testsupport.Container(t, `<span>Save</span><button>Save</button>`)
	text := Text(query.NewConfig())

	node, err := text.Get(body, match.Text("Save"), query.WithSelector("button"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := testsupport.Render(t, node)[0]; got != "<button>Save</button>" {
		t.Fatalf("selector constraint mismatch: %s", got)
	}
}

func TestTextDocumentOrder(t *testing.T) {
	body := testsupport.Container(t, `<p id="p1">Same</p><div><p id="p2">Same</p></div><p id="p3">Same</p>`)
	text := Text(query.NewConfig())

	nodes, err := text.GetAll(body, match.Text("Same"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var ids []string
	for _, n := range nodes {
		for _, a := range n.Attr {
			if a.Key == "id" {
				ids = append(ids, a.Val)
			}
		}
	}
	want := []string{"p1", "p2", "p3"}
	for i := range want {
		if i >= len(ids) || ids[i] != want[i] {
			t.Fatalf("results must keep document pre-order, got %v", ids)
		}
	}
}
