package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tailored-agentic-units/registry/registry"
)

// Output formats for print and find.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds session initialization parameters and the registry section
// it delegates to.
type Config struct {
	Format   string          `json:"format,omitempty" yaml:"format,omitempty"` // "text" or "json".
	Quiet    bool            `json:"quiet,omitempty" yaml:"quiet,omitempty"`   // Suppress input prompts.
	Registry registry.Config `json:"registry" yaml:"registry"`
}

// DefaultConfig returns text output with prompts and the default registry
// configuration.
func DefaultConfig() Config {
	return Config{
		Format:   FormatText,
		Registry: registry.DefaultConfig(),
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Format != "" {
		c.Format = source.Format
	}
	if source.Quiet {
		c.Quiet = true
	}
	c.Registry.Merge(&source.Registry)
}

// Validate reports configuration values the session cannot honor.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, c.Format)
	}
}

// LoadConfig reads a JSON or YAML (.yaml, .yml) config file, merges it with
// defaults, and returns the result.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &loaded)
	default:
		err = json.Unmarshal(data, &loaded)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
