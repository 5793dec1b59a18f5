package query

import (
	"fmt"
	"os"
	"time"

	"github.com/goliatone/go-domquery/pkg/aria"
	"github.com/goliatone/go-domquery/pkg/dom"
	"github.com/goliatone/go-domquery/pkg/suggest"
	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"
)

// Defaults applied by Config.withDefaults.
const (
	DefaultTimeout         = time.Second
	DefaultInterval        = 50 * time.Millisecond
	DefaultTestIDAttribute = "data-testid"
)

// Config carries the process-wide settings threaded explicitly into every
// query entry point. There is no ambient global state; callers that want
// different behavior construct a different Config.
type Config struct {
	// Timeout bounds how long the asynchronous Find variants keep polling.
	Timeout time.Duration
	// Interval is the fixed polling interval of the Find variants.
	Interval time.Duration
	// TestIDAttribute names the attribute the TestId family reads.
	TestIDAttribute string
	// SnapshotLimit caps the diagnostic snapshot length in runes.
	SnapshotLimit int
	// ThrowSuggestions makes successful Get/Find calls through a discouraged
	// family return a SuggestionError naming the preferred query.
	ThrowSuggestions bool

	// Snapshot renders the container for error diagnostics. The default
	// strips script/style subtrees and truncates to SnapshotLimit.
	Snapshot func(container *html.Node) string
	// GetRoles resolves the accessible roles of an element. Defaults to the
	// pkg/aria implicit-role table.
	GetRoles func(*html.Node) []string
	// AccessibleName computes an element's accessible name. Defaults to the
	// simplified pkg/aria computation.
	AccessibleName func(*html.Node) string
	// Suggest computes the preferred alternative query for a matched element.
	// Defaults to the pkg/suggest engine wired to GetRoles/AccessibleName.
	Suggest func(node *html.Node, variant suggest.Variant) (suggest.Suggestion, bool)
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	if c.TestIDAttribute == "" {
		c.TestIDAttribute = DefaultTestIDAttribute
	}
	if c.SnapshotLimit <= 0 {
		c.SnapshotLimit = dom.DefaultSnapshotLimit
	}
	if c.Snapshot == nil {
		limit := c.SnapshotLimit
		c.Snapshot = func(container *html.Node) string {
			return dom.Snapshot(container, limit)
		}
	}
	if c.GetRoles == nil {
		c.GetRoles = aria.Roles
	}
	if c.AccessibleName == nil {
		c.AccessibleName = aria.AccessibleName
	}
	if c.Suggest == nil {
		getRoles, accName := c.GetRoles, c.AccessibleName
		c.Suggest = func(node *html.Node, variant suggest.Variant) (suggest.Suggestion, bool) {
			return suggest.For(node, variant, suggest.Options{
				GetRoles:       getRoles,
				AccessibleName: accName,
			})
		}
	}
}

// fileConfig is the YAML shape accepted by LoadConfig. Durations use Go
// duration syntax ("1s", "50ms").
type fileConfig struct {
	Timeout          string `yaml:"timeout"`
	Interval         string `yaml:"interval"`
	TestIDAttribute  string `yaml:"testIdAttribute"`
	SnapshotLimit    int    `yaml:"snapshotLimit"`
	ThrowSuggestions bool   `yaml:"throwSuggestions"`
}

// LoadConfig reads configuration overrides from a YAML file and returns a
// Config with defaults applied to anything the file omits.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("query: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig builds a Config from YAML bytes. See LoadConfig.
func ParseConfig(data []byte) (*Config, error) {
	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("query: parse config: %w", err)
	}

	cfg := &Config{
		TestIDAttribute:  file.TestIDAttribute,
		SnapshotLimit:    file.SnapshotLimit,
		ThrowSuggestions: file.ThrowSuggestions,
	}
	if file.Timeout != "" {
		timeout, err := time.ParseDuration(file.Timeout)
		if err != nil {
			return nil, fmt.Errorf("query: parse config timeout: %w", err)
		}
		cfg.Timeout = timeout
	}
	if file.Interval != "" {
		interval, err := time.ParseDuration(file.Interval)
		if err != nil {
			return nil, fmt.Errorf("query: parse config interval: %w", err)
		}
		cfg.Interval = interval
	}
	cfg.applyDefaults()
	return cfg, nil
}
