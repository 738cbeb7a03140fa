package domain

import (
	"fmt"
	"time"
)

// ToolConfig is the .addonlint.yaml configuration.
type ToolConfig struct {
	// FetchTimeout bounds URL fetches, as a Go duration string.
	FetchTimeout string `yaml:"fetch_timeout"`
	// ShareBaseURL is the page share links point at.
	ShareBaseURL string `yaml:"share_base_url"`
	// Debounce is the idle delay before watch/TUI revalidation.
	Debounce string `yaml:"debounce"`
	// Strict makes unknown-field warnings fail validation.
	Strict bool `yaml:"strict"`
	// History toggles the ~/.addonlint history file.
	History bool `yaml:"history"`
}

// DefaultConfig returns the configuration used when no .addonlint.yaml
// exists.
func DefaultConfig() ToolConfig {
	return ToolConfig{
		FetchTimeout: "10s",
		ShareBaseURL: "https://stremio.github.io/addon-manifest-validator/",
		Debounce:     "600ms",
		History:      true,
	}
}

// Validate catches malformed values before they reach the services.
func (c ToolConfig) Validate() error {
	if _, err := time.ParseDuration(c.FetchTimeout); err != nil {
		return fmt.Errorf("fetch_timeout %q: %w", c.FetchTimeout, err)
	}
	if _, err := time.ParseDuration(c.Debounce); err != nil {
		return fmt.Errorf("debounce %q: %w", c.Debounce, err)
	}
	return nil
}

// FetchTimeoutDuration returns the parsed fetch timeout, falling back to
// the default when unset.
func (c ToolConfig) FetchTimeoutDuration() time.Duration {
	return parseDurationOr(c.FetchTimeout, 10*time.Second)
}

// DebounceDuration returns the parsed debounce window, falling back to
// the default when unset.
func (c ToolConfig) DebounceDuration() time.Duration {
	return parseDurationOr(c.Debounce, 600*time.Millisecond)
}

func parseDurationOr(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
