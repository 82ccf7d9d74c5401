// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"profseq-core/alphabet"
	"profseq-core/score"
)

const fileMode = 0600

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatJSONL = "jsonl"
)

// Config holds the settings a config file may provide. Command-line flags
// override file values.
type Config struct {
	Alphabet string `yaml:"alphabet"`
	Unity    int    `yaml:"unity"`
	Threads  int    `yaml:"threads"` // 0 = all CPUs
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
	Sort     bool   `yaml:"sort"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Alphabet: "dna",
		Unity:    score.DefaultUnity,
		Format:   FormatText,
		LogLevel: "info",
	}
}

// Load reads path on top of Default. An empty path returns Default.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return c, nil
}

// Save writes c to path as YAML.
func Save(path string, c *Config) error {
	if path == "" {
		return errors.New("config path required")
	}
	if c == nil {
		return errors.New("config required")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, b, fileMode); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

// Validate normalizes string fields and checks ranges.
func (c *Config) Validate() error {
	c.Alphabet = strings.ToLower(strings.TrimSpace(c.Alphabet))
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Format == "yml" {
		c.Format = FormatYAML
	}
	if _, err := alphabet.Lookup(c.Alphabet); err != nil {
		return err
	}
	if c.Unity <= 0 {
		return fmt.Errorf("unity must be > 0, got %d", c.Unity)
	}
	if c.Threads < 0 {
		return fmt.Errorf("threads must be >= 0, got %d", c.Threads)
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatJSONL, FormatYAML:
	default:
		return fmt.Errorf("invalid format %q (want text, json, jsonl or yaml)", c.Format)
	}
	return nil
}
