package dom

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// DefaultSnapshotLimit caps the rendered size of diagnostic snapshots so a
// large document does not drown the error message it is attached to.
const DefaultSnapshotLimit = 7000

var (
	snapshotPolicyOnce sync.Once
	snapshotPolicy     *bluemonday.Policy
)

// Snapshot renders the markup of n for inclusion in error diagnostics.
// Script and style subtrees are stripped so the snapshot shows the content a
// user would observe, and output longer than limit runes is truncated. A
// limit <= 0 applies DefaultSnapshotLimit.
func Snapshot(n *html.Node, limit int) string {
	if n == nil {
		return ""
	}
	if limit <= 0 {
		limit = DefaultSnapshotLimit
	}

	var buf strings.Builder
	if err := html.Render(&buf, n); err != nil {
		return ""
	}

	rendered := strings.TrimSpace(diagnosticSanitizer().Sanitize(buf.String()))
	runes := []rune(rendered)
	if len(runes) <= limit {
		return rendered
	}
	return string(runes[:limit]) + "..."
}

func diagnosticSanitizer() *bluemonday.Policy {
	snapshotPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements(
			"html", "head", "title", "body", "div", "span", "p", "a", "em",
			"strong", "small", "pre", "code", "blockquote", "br", "hr",
			"h1", "h2", "h3", "h4", "h5", "h6",
			"header", "footer", "main", "nav", "aside", "section", "article",
			"ul", "ol", "li", "dl", "dt", "dd",
			"table", "thead", "tbody", "tfoot", "tr", "th", "td", "caption",
			"form", "fieldset", "legend", "label", "input", "button",
			"select", "option", "optgroup", "textarea", "datalist", "output",
			"meter", "progress", "img", "figure", "figcaption", "picture",
			"svg", "g", "path", "title", "details", "summary", "dialog",
			"time", "mark", "abbr", "address",
		)
		policy.AllowAttrs(
			"id", "class", "for", "name", "type", "value", "placeholder",
			"title", "alt", "href", "src", "role", "hidden", "disabled",
			"checked", "selected", "multiple", "aria-label",
			"aria-labelledby", "aria-describedby", "aria-hidden",
			"data-testid",
		).Globally()
		policy.SkipElementsContent("script", "style")
		snapshotPolicy = policy
	})
	return snapshotPolicy
}
