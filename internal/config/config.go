// Package config loads the data-prep run configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alecKarfonta/zelda-sub001/internal/hexinc"
	"github.com/alecKarfonta/zelda-sub001/internal/snippet"
)

// Config holds settings shared by the salvage and transcode runs. Flags take
// precedence over file values; file values take precedence over defaults.
type Config struct {
	// Workers is the batch worker pool size.
	Workers int `yaml:"workers"`

	Salvage   SalvageConfig   `yaml:"salvage"`
	Transcode TranscodeConfig `yaml:"transcode"`
	Snippet   SnippetConfig   `yaml:"snippet"`
}

// SalvageConfig configures the record salvage run.
type SalvageConfig struct {
	// Input is the newline-delimited record file.
	Input string `yaml:"input"`
	// Output is the normalized JSONL destination ("-" for stdout).
	Output string `yaml:"output"`
}

// TranscodeConfig configures the hex include rewrite run.
type TranscodeConfig struct {
	// Naming selects identifier derivation: "suffix" or "coordinate".
	Naming string `yaml:"naming"`
	// CoordPrefix overrides the coordinate identifier prefix.
	CoordPrefix string `yaml:"coord_prefix"`
	// BytesPerLine controls declaration line wrapping.
	BytesPerLine int `yaml:"bytes_per_line"`
}

// SnippetConfig configures the inspect preview cache.
type SnippetConfig struct {
	Lines int `yaml:"lines"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Workers: 4,
		Salvage: SalvageConfig{
			Output: "-",
		},
		Transcode: TranscodeConfig{
			Naming:       hexinc.NamingSuffixStrip.String(),
			CoordPrefix:  hexinc.DefaultCoordPrefix,
			BytesPerLine: hexinc.DefaultBytesPerLine,
		},
		Snippet: SnippetConfig{
			Lines: snippet.DefaultLines,
		},
	}
}

// Load reads a YAML config from path on top of the defaults. A missing file
// is not an error: the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.Transcode.BytesPerLine <= 0 {
		return fmt.Errorf("bytes_per_line must be positive, got %d", c.Transcode.BytesPerLine)
	}
	if _, err := hexinc.ParseNamingMode(c.Transcode.Naming); err != nil {
		return err
	}
	return nil
}

// NamingMode returns the parsed transcode naming mode.
func (c *Config) NamingMode() hexinc.NamingMode {
	mode, err := hexinc.ParseNamingMode(c.Transcode.Naming)
	if err != nil {
		return hexinc.NamingSuffixStrip
	}
	return mode
}
