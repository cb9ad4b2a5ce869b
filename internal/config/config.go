// Package config provides configuration for the colorsheet CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Preview modes.
const (
	PreviewAuto   = "auto"
	PreviewAlways = "always"
	PreviewNever  = "never"
)

// Environment variables read by WithEnv.
const (
	EnvConfigFile   = "COLORSHEET_CONFIG"
	EnvFormat       = "COLORSHEET_FORMAT"
	EnvPreview      = "COLORSHEET_PREVIEW"
	EnvPreviewWidth = "COLORSHEET_PREVIEW_WIDTH"
	EnvNoColor      = "NO_COLOR"
)

// Config holds CLI output settings.
type Config struct {
	// Format is the output format (text, json).
	Format string `toml:"format"`

	// Preview controls ANSI colour swatches (auto, always, never).
	// auto shows swatches only when stdout is a terminal.
	Preview string `toml:"preview"`

	// PreviewWidth is the swatch width in characters.
	PreviewWidth int `toml:"preview_width"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format:       FormatText,
		Preview:      PreviewAuto,
		PreviewWidth: 8,
	}
}

// Validate checks that every field holds a supported value.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid format: %s (valid: text, json)", c.Format)
	}
	switch c.Preview {
	case PreviewAuto, PreviewAlways, PreviewNever:
	default:
		return fmt.Errorf("invalid preview mode: %s (valid: auto, always, never)", c.Preview)
	}
	if c.PreviewWidth <= 0 {
		return fmt.Errorf("invalid preview width: %d (must be positive)", c.PreviewWidth)
	}
	return nil
}

// Builder assembles a Config from defaults, an optional TOML file and the environment.
// Later sources override earlier ones: defaults, file, environment.
type Builder struct {
	base   Config
	path   string
	useEnv bool
	getenv func(string) string
}

// NewBuilder creates a builder starting from Default.
func NewBuilder() *Builder {
	return &Builder{
		base:   Default(),
		getenv: os.Getenv,
	}
}

// WithConfig replaces the starting configuration.
func (b *Builder) WithConfig(config Config) *Builder {
	b.base = config
	return b
}

// WithFile sets a TOML file to load. An empty path falls back to
// COLORSHEET_CONFIG when the environment is enabled.
func (b *Builder) WithFile(path string) *Builder {
	b.path = path
	return b
}

// WithEnv enables environment overrides.
// Reads COLORSHEET_CONFIG, COLORSHEET_FORMAT, COLORSHEET_PREVIEW,
// COLORSHEET_PREVIEW_WIDTH and NO_COLOR.
func (b *Builder) WithEnv() *Builder {
	b.useEnv = true
	return b
}

// WithLookup replaces os.Getenv (useful for testing).
func (b *Builder) WithLookup(getenv func(string) string) *Builder {
	b.getenv = getenv
	return b
}

// Build loads every configured source and validates the result.
func (b *Builder) Build() (Config, error) {
	config := b.base

	path := b.path
	if path == "" && b.useEnv {
		path = b.getenv(EnvConfigFile)
	}
	if path != "" {
		if err := loadFile(path, &config); err != nil {
			return Config{}, err
		}
	}

	if b.useEnv {
		if err := b.applyEnv(&config); err != nil {
			return Config{}, err
		}
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// loadFile decodes a TOML file over config. Unknown keys are rejected.
func loadFile(path string, config *Config) error {
	md, err := toml.DecodeFile(path, config)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys in config file %s: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

func (b *Builder) applyEnv(config *Config) error {
	if v := strings.TrimSpace(b.getenv(EnvFormat)); v != "" {
		config.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(b.getenv(EnvPreview)); v != "" {
		config.Preview = strings.ToLower(v)
	}
	if v := strings.TrimSpace(b.getenv(EnvPreviewWidth)); v != "" {
		width, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvPreviewWidth, err)
		}
		config.PreviewWidth = width
	}
	// https://no-color.org: any non-empty value disables colour.
	if b.getenv(EnvNoColor) != "" {
		config.Preview = PreviewNever
	}
	return nil
}
