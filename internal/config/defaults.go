package config

import "time"

// DefaultChangelogURL is the CHANGELOG.yaml used by the remote provider when
// none is configured.
const DefaultChangelogURL = "https://raw.githubusercontent.com/dprint/dprint-plugin-jupyter/main/CHANGELOG.yaml"

// DefaultTimeout bounds the changelog fetch.
const DefaultTimeout = 30 * time.Second

// GetDefaults returns the default value of every configuration key.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"provider":       "git",
		"changelog_url":  DefaultChangelogURL,
		"changelog_path": "CHANGELOG.yaml",
		"repo_path":      "",
		"tag_prefix":     "",
		"timeout":        DefaultTimeout.String(),
		"log_level":      "warn",
	}
}
