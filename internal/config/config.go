// Package config loads the forgeport configuration from
// ~/.config/forgeport/config.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/bask185/forgeport/internal/format"
)

// Credential helper choices for pushing to github.com.
const (
	HelperGH  = "gh"  // token via `gh auth git-credential`
	HelperGCM = "gcm" // platform credential manager (stored PAT)
)

// MigrateConfig holds migration-related configuration.
type MigrateConfig struct {
	Org     string `toml:"org"`     // target GitHub organization
	User    string `toml:"user"`    // GitHub username to push under
	Helper  string `toml:"helper"`  // "gh" or "gcm"
	Workdir string `toml:"workdir"` // temp working folder for bare clones
}

// ReleaseConfig holds release-related configuration.
type ReleaseConfig struct {
	PublicRoot string `toml:"public_root"` // checkout of the public releases repo
	Layout     string `toml:"layout"`      // destination template inside the public root
}

// Config holds the forgeport configuration.
type Config struct {
	Registry string        `toml:"registry"`  // path to gitea_repos.json
	TokenEnv string        `toml:"token_env"` // env var holding a GitHub API token
	Migrate  MigrateConfig `toml:"migrate"`
	Release  ReleaseConfig `toml:"release"`
}

// DefaultWorkdir is the default temp folder for bare mirror clones.
const DefaultWorkdir = ".mirror_work"

// DefaultRegistry is the default registry filename, resolved against the
// current working directory.
const DefaultRegistry = "gitea_repos.json"

// Default returns the default configuration.
func Default() Config {
	return Config{
		Registry: DefaultRegistry,
		TokenEnv: "GITHUB_TOKEN",
		Migrate: MigrateConfig{
			Helper:  HelperGH,
			Workdir: DefaultWorkdir,
		},
		Release: ReleaseConfig{
			Layout: format.DefaultReleaseLayout,
		},
	}
}

// Path returns the path to the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "forgeport", "config.toml"), nil
}

// Load reads config from ~/.config/forgeport/config.toml.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from the given path, applying defaults for unset
// fields.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	expanded, err := ExpandPath(cfg.Release.PublicRoot)
	if err != nil {
		return cfg, err
	}
	cfg.Release.PublicRoot = expanded

	expanded, err = ExpandPath(cfg.Registry)
	if err != nil {
		return cfg, err
	}
	cfg.Registry = expanded

	return cfg, nil
}

// Validate checks config field values.
func (c *Config) Validate() error {
	switch c.Migrate.Helper {
	case "", HelperGH, HelperGCM:
	default:
		return fmt.Errorf("migrate.helper must be %q or %q, got %q", HelperGH, HelperGCM, c.Migrate.Helper)
	}
	if err := validatePath(c.Release.PublicRoot, "release.public_root"); err != nil {
		return err
	}
	if c.Release.Layout != "" {
		if err := format.ValidateLayout(c.Release.Layout); err != nil {
			return fmt.Errorf("release.layout: %w", err)
		}
	}
	return nil
}

// validatePath checks that the path is absolute or starts with ~.
// Empty is allowed (means not configured).
func validatePath(path, fieldName string) error {
	if path == "" {
		return nil
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}
