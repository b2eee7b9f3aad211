package tfidf

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// Config holds everything a run needs. StopwordsPath and ManifestPath are
// required; the rest have defaults (see DefaultConfig).
type Config struct {
	StopwordsPath string `yaml:"stopwords_path"`
	ManifestPath  string `yaml:"manifest_path"`

	DocumentDir string `yaml:"document_dir"` // manifest names resolve here
	OutputDir   string `yaml:"output_dir"`   // defaults to DocumentDir
	TopK        int    `yaml:"top_k"`

	BuiltinStopwords   bool   `yaml:"builtin_stopwords"`
	PreserveBareSuffix bool   `yaml:"preserve_bare_suffix"`
	HTML               string `yaml:"html"`
	FailFast           bool   `yaml:"fail_fast"`

	SQLitePath string `yaml:"sqlite_path"` // optional results export
	LogLevel   string `yaml:"log_level"`
}

// DefaultConfig returns a Config with defaults filled in.
func DefaultConfig() Config {
	return Config{
		DocumentDir: ".",
		TopK:        DefaultTopK,
		HTML:        HTMLOff,
		LogLevel:    "info",
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.UnmarshalStrict(b, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

// Validate checks required fields and enumerations.
func (c Config) Validate() error {
	if c.StopwordsPath == "" {
		return fmt.Errorf("%w: stopwords_path is required", ErrInvalidConfig)
	}
	if c.ManifestPath == "" {
		return fmt.Errorf("%w: manifest_path is required", ErrInvalidConfig)
	}
	if c.TopK < 0 {
		return fmt.Errorf("%w: top_k must not be negative, got %d", ErrInvalidConfig, c.TopK)
	}
	switch c.HTML {
	case "", HTMLAuto, HTMLOn, HTMLOff:
	default:
		return fmt.Errorf("%w: html must be auto, on or off, got %q", ErrInvalidConfig, c.HTML)
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

func (c Config) outputDir() string {
	if c.OutputDir != "" {
		return c.OutputDir
	}
	if c.DocumentDir != "" {
		return c.DocumentDir
	}
	return "."
}
