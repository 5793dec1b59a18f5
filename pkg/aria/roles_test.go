package aria

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/goliatone/go-domquery/pkg/testsupport"
)

func TestRolesExplicitAttributeWins(t *testing.T) {
	body := testsupport.Container(t, `<div id="d" role="tab switch"></div>`)

	got := Roles(testsupport.First(t, body, "#d"))
	if diff := cmp.Diff([]string{"tab", "switch"}, got); diff != "" {
		t.Fatalf("explicit role tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestRolesImplicit(t *testing.T) {
	cases := []struct {
		name     string
		fragment string
		selector string
		want     string
	}{
		{name: "button", fragment: `<button>Go</button>`, selector: "button", want: "button"},
		{name: "heading", fragment: `<h2>Title</h2>`, selector: "h2", want: "heading"},
		{name: "link", fragment: `<a href="/x">x</a>`, selector: "a", want: "link"},
		{name: "textbox", fragment: `<input type="text">`, selector: "input", want: "textbox"},
		{name: "checkbox", fragment: `<input type="checkbox">`, selector: "input", want: "checkbox"},
		{name: "submit", fragment: `<input type="submit">`, selector: "input", want: "button"},
		{name: "combobox", fragment: `<select><option>a</option></select>`, selector: "select", want: "combobox"},
		{name: "listbox", fragment: `<select multiple></select>`, selector: "select", want: "listbox"},
		{name: "textarea", fragment: `<textarea></textarea>`, selector: "textarea", want: "textbox"},
		{name: "img", fragment: `<img src="x.png" alt="A cat">`, selector: "img", want: "img"},
		{name: "presentation", fragment: `<img src="x.png" alt="">`, selector: "img", want: "presentation"},
		{name: "list", fragment: `<ul><li>x</li></ul>`, selector: "ul", want: "list"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := testsupport.Container(t, tc.fragment)
			roles := Roles(testsupport.First(t, body, tc.selector))
			if len(roles) != 1 || roles[0] != tc.want {
				t.Fatalf("roles mismatch: got %v, want [%s]", roles, tc.want)
			}
		})
	}
}

func TestRolesNone(t *testing.T) {
	body := testsupport.Container(t, `<a id="bare">no href</a><input id="hidden" type="hidden"><span id="s"></span>`)

	for _, id := range []string{"#bare", "#hidden", "#s"} {
		if roles := Roles(testsupport.First(t, body, id)); len(roles) != 0 {
			t.Fatalf("%s should expose no role, got %v", id, roles)
		}
	}
}
