package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/goccy/go-yaml"

	"github.com/benjaminabbitt/versionator/internal/core"
)

// ConfigFile is the default configuration file name.
const ConfigFile = ".versionator.yaml"

// SourceConfig describes one manifest file that carries the project version.
type SourceConfig struct {
	Path  string `yaml:"path"`
	Kind  string `yaml:"kind"`
	Field string `yaml:"field,omitempty"`
}

// GitConfig holds git-specific suffix configuration.
type GitConfig struct {
	HashLength int `yaml:"hashLength"`
}

// SuffixConfig controls the optional VCS metadata suffix on displayed
// versions (e.g. "1.2.3+abc1234").
type SuffixConfig struct {
	Enabled bool      `yaml:"enabled"`
	Git     GitConfig `yaml:"git"`
}

// EmitConfig holds defaults for generated version artifacts.
type EmitConfig struct {
	Format string `yaml:"format,omitempty"`
	Output string `yaml:"output,omitempty"`
}

// Config is the main configuration structure for versionator.
type Config struct {
	Path    string         `yaml:"path"`
	Prefix  string         `yaml:"prefix"`
	Suffix  SuffixConfig   `yaml:"suffix"`
	Sources []SourceConfig `yaml:"sources,omitempty"`
	Emit    EmitConfig     `yaml:"emit,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Path:   "VERSION",
		Prefix: "v",
		Suffix: SuffixConfig{
			Enabled: false,
			Git: GitConfig{
				HashLength: 7,
			},
		},
	}
}

// Load reads the configuration from path. A missing file yields the
// defaults; a malformed file is an error.
func Load(ctx context.Context, fsys core.FileSystem, path string) (*Config, error) {
	cfg := Default()

	data, err := fsys.ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	if cfg.Path == "" {
		cfg.Path = "VERSION"
	}
	if cfg.Suffix.Git.HashLength <= 0 {
		cfg.Suffix.Git.HashLength = 7
	}

	return cfg, nil
}

// Save writes the configuration to path with a comment header.
func Save(ctx context.Context, fsys core.FileSystem, path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	content := append([]byte("# Versionator configuration\n"), data...)
	if err := fsys.WriteFile(ctx, path, content, core.PermOwnerRW); err != nil {
		return fmt.Errorf("failed to write config file %q: %w", path, err)
	}
	return nil
}
