package queries

import (
	"testing"

	"github.com/goliatone/go-domquery/pkg/dom"
	"github.com/goliatone/go-domquery/pkg/match"
	"github.com/goliatone/go-domquery/pkg/query"
	"github.com/goliatone/go-domquery/pkg/testsupport"
)

func TestDisplayValueFamilies(t *testing.T) {
	body := testsupport.Container(t, `
		<input value="typed text">
		<textarea>long answer</textarea>
		<select><option>One</option><option selected>Two</option></select>`)
	displayValue := DisplayValue(query.NewConfig())

	cases := []struct {
		name    string
		pattern string
		wantTag string
	}{
		{name: "input", pattern: "typed text", wantTag: "input"},
		{name: "textarea", pattern: "long answer", wantTag: "textarea"},
		{name: "select", pattern: "Two", wantTag: "select"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			node, err := displayValue.Get(body, match.Text(tc.pattern))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if dom.TagName(node) != tc.wantTag {
				t.Fatalf("expected %s, got %s", tc.wantTag, dom.TagName(node))
			}
		})
	}
}

func TestDisplayValueUnselectedOption(t *testing.T) {
	body := testsupport.Container(t, `<select><option>One</option><option selected>Two</option></select>`)
	displayValue := DisplayValue(query.NewConfig())

	if _, err := displayValue.Get(body, match.Text("One")); !query.IsNotFound(err) {
		t.Fatalf("only the selected option is the display value, got %v", err)
	}
}
