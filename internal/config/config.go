// Package config loads relnotes settings with koanf. Priority, highest first:
// command-line overrides, RELNOTES_* environment variables, project config
// (.relnotes/config.yml, or .relnotes/config.json), user config
// (~/.config/relnotes/config.yml), defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read as config keys.
const EnvPrefix = "RELNOTES_"

// Configuration holds the relnotes settings.
type Configuration struct {
	// Provider selects the changelog source: git, remote or file.
	Provider string `koanf:"provider" validate:"required,oneof=git remote file"`
	// ChangelogURL is the CHANGELOG.yaml fetched by the remote provider.
	ChangelogURL string `koanf:"changelog_url" validate:"omitempty,url"`
	// ChangelogPath is the CHANGELOG.yaml read by the file provider.
	ChangelogPath string `koanf:"changelog_path"`
	// RepoPath is the repository read by the git provider.
	RepoPath string `koanf:"repo_path"`
	// TagPrefix is stripped from tag names before they are parsed as versions.
	TagPrefix string `koanf:"tag_prefix"`
	// Timeout bounds the changelog fetch. Zero disables it.
	Timeout time.Duration `koanf:"timeout" validate:"min=0"`
	LogLevel string       `koanf:"log_level" validate:"oneof=debug info warn error"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ConfigPath replaces the project config file. It must exist.
	ConfigPath string
	// SkipUserConfig ignores the user-level config file.
	SkipUserConfig bool
	// Overrides are applied last, keyed by config key (e.g. "provider").
	Overrides map[string]interface{}
}

// Load loads configuration from all sources.
func Load(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	if !opts.SkipUserConfig {
		if err := loadUserConfig(k); err != nil {
			return nil, err
		}
	}

	if err := loadProjectConfig(k, opts.ConfigPath); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	for key, value := range opts.Overrides {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("applying override %s: %w", key, err)
		}
	}

	return finalizeConfig(k, sourceName(opts.ConfigPath))
}

func loadUserConfig(k *koanf.Koanf) error {
	path, err := UserConfigPath()
	if err != nil || !fileExists(path) {
		return nil
	}
	if err := loadFile(k, path); err != nil {
		return fmt.Errorf("loading user config: %w", err)
	}
	return nil
}

func loadProjectConfig(k *koanf.Koanf, explicitPath string) error {
	if explicitPath != "" {
		if !fileExists(explicitPath) {
			return &ValidationError{FilePath: explicitPath, Message: "config file not found"}
		}
		if err := loadFile(k, explicitPath); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	}

	for _, path := range []string{ProjectConfigPath(), ProjectJSONConfigPath()} {
		if !fileExists(path) {
			continue
		}
		if err := loadFile(k, path); err != nil {
			return fmt.Errorf("loading project config: %w", err)
		}
		return nil
	}
	return nil
}

// loadFile loads a YAML or JSON file, chosen by extension.
func loadFile(k *koanf.Koanf, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		return nil
	}

	if err := ValidateYAMLSyntax(path); err != nil {
		return err
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func finalizeConfig(k *koanf.Koanf, source string) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.RepoPath = expandHomePath(cfg.RepoPath)
	cfg.ChangelogPath = expandHomePath(cfg.ChangelogPath)

	if err := ValidateConfigValues(&cfg, source); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func sourceName(explicitPath string) string {
	if explicitPath != "" {
		return explicitPath
	}
	return "config"
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys.
// Example: RELNOTES_CHANGELOG_URL -> changelog_url
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// expandHomePath expands ~ to the user's home directory.
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
