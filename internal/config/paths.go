package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the user-level config file, following the XDG Base
// Directory Specification (~/.config/relnotes/config.yml on Linux).
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "relnotes", "config.yml"), nil
}

// ProjectConfigPath returns the project-level YAML config relative to the
// working directory.
func ProjectConfigPath() string {
	return filepath.Join(".relnotes", "config.yml")
}

// ProjectJSONConfigPath returns the project-level JSON config, used when no
// YAML config exists.
func ProjectJSONConfigPath() string {
	return filepath.Join(".relnotes", "config.json")
}
