package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	domquery "github.com/goliatone/go-domquery"
	"github.com/goliatone/go-domquery/pkg/match"
	"github.com/goliatone/go-domquery/pkg/query"
	"github.com/goliatone/go-domquery/pkg/suggest"
	"golang.org/x/net/html"
)

func main() {
	file := flag.String("file", "", "HTML document path (stdin if empty)")
	family := flag.String("query", "text", "query family: role, label, placeholder, text, value, alt, title, testid")
	pattern := flag.String("pattern", "", "text to search for")
	isRegex := flag.Bool("regex", false, "treat pattern as a regular expression")
	fuzzy := flag.Bool("fuzzy", false, "substring matching for string patterns")
	selector := flag.String("selector", "", "CSS selector constraint on results")
	all := flag.Bool("all", false, "report every match instead of requiring exactly one")
	configPath := flag.String("config", "", "YAML config file (timeout, interval, testIdAttribute)")
	interactive := flag.Bool("interactive", false, "prompt for family and pattern interactively")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	screen := domquery.NewWithConfig(cfg)

	container, err := loadDocument(*file)
	if err != nil {
		log.Fatalf("Failed to load document: %v", err)
	}

	if *interactive {
		if err := runInteractive(screen, container); err != nil {
			log.Fatalf("Interactive session failed: %v", err)
		}
		return
	}

	if *pattern == "" {
		log.Fatal("a -pattern is required (or use -interactive)")
	}
	if err := runQuery(screen, container, *family, *pattern, *isRegex, *fuzzy, *selector, *all); err != nil {
		log.Fatalf("%v", err)
	}
}

func loadConfig(path string) (*query.Config, error) {
	if path == "" {
		return query.NewConfig(), nil
	}
	return query.LoadConfig(path)
}

func loadDocument(path string) (*html.Node, error) {
	if path == "" {
		return domquery.Parse(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return domquery.Parse(f)
}

func runQuery(screen *domquery.Screen, container *html.Node, family, rawPattern string, isRegex, fuzzy bool, selector string, all bool) error {
	queries, err := familyByName(screen, family)
	if err != nil {
		return err
	}

	pattern, err := buildPattern(rawPattern, isRegex)
	if err != nil {
		return err
	}

	var opts []query.Option
	if fuzzy {
		opts = append(opts, query.Fuzzy())
	}
	if selector != "" {
		opts = append(opts, query.WithSelector(selector))
	}

	var nodes []*html.Node
	if all {
		nodes, err = queries.GetAll(container, pattern, opts...)
	} else {
		var node *html.Node
		node, err = queries.Get(container, pattern, opts...)
		if node != nil {
			nodes = []*html.Node{node}
		}
	}
	if err != nil {
		return err
	}

	printMatches(screen, nodes)
	return nil
}

func printMatches(screen *domquery.Screen, nodes []*html.Node) {
	fmt.Printf("%d match(es)\n", len(nodes))
	for i, n := range nodes {
		var buf strings.Builder
		if err := html.Render(&buf, n); err != nil {
			continue
		}
		fmt.Printf("%d: %s\n", i+1, buf.String())
		if suggestion, ok := screen.Config().Suggest(n, suggest.VariantGet); ok {
			fmt.Printf("   preferred query: %s\n", suggestion.Expression())
		}
	}
}

func familyByName(screen *domquery.Screen, name string) (query.Queries, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "role":
		return screen.Role, nil
	case "label", "labeltext":
		return screen.LabelText, nil
	case "placeholder":
		return screen.PlaceholderText, nil
	case "text":
		return screen.Text, nil
	case "value", "displayvalue":
		return screen.DisplayValue, nil
	case "alt", "alttext":
		return screen.AltText, nil
	case "title":
		return screen.Title, nil
	case "testid":
		return screen.TestID, nil
	default:
		return query.Queries{}, fmt.Errorf("unknown query family %q", name)
	}
}

func buildPattern(raw string, isRegex bool) (match.Pattern, error) {
	if !isRegex {
		return match.Text(raw), nil
	}
	re, err := regexp.Compile(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern regexp: %w", err)
	}
	return match.Regexp(re), nil
}

var interactiveFamilies = []string{
	"text", "label", "role", "placeholder", "title", "alt", "value", "testid",
}

// runInteractive loops prompting for a family and pattern until the user
// quits, printing matches (or the query error) after each round.
func runInteractive(screen *domquery.Screen, container *html.Node) error {
	for {
		var family string
		if err := survey.AskOne(&survey.Select{
			Message: "Query family:",
			Options: append(append([]string{}, interactiveFamilies...), "quit"),
		}, &family); err != nil {
			return err
		}
		if family == "quit" {
			return nil
		}

		var rawPattern string
		if err := survey.AskOne(&survey.Input{
			Message: "Pattern:",
			Help:    "literal text to match after normalization",
		}, &rawPattern); err != nil {
			return err
		}

		fuzzy := false
		if err := survey.AskOne(&survey.Confirm{
			Message: "Substring (fuzzy) matching?",
		}, &fuzzy); err != nil {
			return err
		}

		if err := runQuery(screen, container, family, rawPattern, false, fuzzy, "", true); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
	}
}
