// Package config loads the optional TOML theme file.
//
// Example file:
//
//	[theme]
//	fill = "#1e1e2e"
//	indent = 2
//
// Keys that are not set keep their defaults. Unknown keys are an error so a
// misspelled setting does not pass silently.
package config

import (
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/yfiles2mermaid/pkg/errors"
	"github.com/matzehuels/yfiles2mermaid/pkg/render/mermaid"
)

// MaxIndent bounds the indent setting.
const MaxIndent = 16

type ThemeConfig struct {
	Fill   *string `toml:"fill"`
	Indent *int    `toml:"indent"`
}

type Config struct {
	Theme ThemeConfig `toml:"theme"`
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to parse config file '%s'", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in '%s': %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Theme.Fill != nil && strings.TrimSpace(*c.Theme.Fill) == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "theme.fill must not be empty")
	}
	if c.Theme.Indent != nil && (*c.Theme.Indent < 0 || *c.Theme.Indent > MaxIndent) {
		return errors.New(errors.ErrCodeInvalidConfig, "theme.indent must be between 0 and %d", MaxIndent)
	}
	return nil
}

// MermaidTheme overlays the configured values on [mermaid.DefaultTheme].
// A nil Config yields the default theme.
func (c *Config) MermaidTheme() mermaid.Theme {
	theme := mermaid.DefaultTheme()
	if c == nil {
		return theme
	}
	if c.Theme.Fill != nil {
		theme.Fill = strings.TrimSpace(*c.Theme.Fill)
	}
	if c.Theme.Indent != nil {
		theme.Indent = *c.Theme.Indent
	}
	return theme
}
