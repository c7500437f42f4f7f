package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// isolate runs the test in an empty project directory with an empty user
// config home.
func isolate(t *testing.T) (projectDir, userDir string) {
	t.Helper()
	projectDir = t.TempDir()
	userDir = t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(projectDir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("XDG_CONFIG_HOME", userDir)
	return projectDir, userDir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "git", cfg.Provider)
	assert.Equal(t, DefaultChangelogURL, cfg.ChangelogURL)
	assert.Equal(t, "CHANGELOG.yaml", cfg.ChangelogPath)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.TagPrefix)
}

func TestLoad_Priority(t *testing.T) {
	tests := map[string]struct {
		user      string
		project   string
		env       map[string]string
		overrides map[string]interface{}
		want      func(t *testing.T, cfg *Configuration)
	}{
		"user config applies": {
			user: "provider: remote\ntimeout: 5s\n",
			want: func(t *testing.T, cfg *Configuration) {
				assert.Equal(t, "remote", cfg.Provider)
				assert.Equal(t, 5*time.Second, cfg.Timeout)
			},
		},
		"project overrides user": {
			user:    "provider: remote\ntag_prefix: release-\n",
			project: "provider: file\n",
			want: func(t *testing.T, cfg *Configuration) {
				assert.Equal(t, "file", cfg.Provider)
				assert.Equal(t, "release-", cfg.TagPrefix)
			},
		},
		"env overrides project": {
			project: "provider: file\nlog_level: info\n",
			env: map[string]string{
				"RELNOTES_PROVIDER":      "remote",
				"RELNOTES_CHANGELOG_URL": "https://example.com/CHANGELOG.yaml",
				"RELNOTES_TIMEOUT":       "0",
			},
			want: func(t *testing.T, cfg *Configuration) {
				assert.Equal(t, "remote", cfg.Provider)
				assert.Equal(t, "https://example.com/CHANGELOG.yaml", cfg.ChangelogURL)
				assert.Equal(t, time.Duration(0), cfg.Timeout)
				assert.Equal(t, "info", cfg.LogLevel)
			},
		},
		"overrides win over env": {
			env:       map[string]string{"RELNOTES_PROVIDER": "remote"},
			overrides: map[string]interface{}{"provider": "file", "timeout": 2 * time.Minute},
			want: func(t *testing.T, cfg *Configuration) {
				assert.Equal(t, "file", cfg.Provider)
				assert.Equal(t, 2*time.Minute, cfg.Timeout)
			},
		},
		"provider is normalized": {
			project: "provider: \" Git \"\n",
			want: func(t *testing.T, cfg *Configuration) {
				assert.Equal(t, "git", cfg.Provider)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			projectDir, userDir := isolate(t)
			if tt.user != "" {
				writeFile(t, filepath.Join(userDir, "relnotes", "config.yml"), tt.user)
			}
			if tt.project != "" {
				writeFile(t, filepath.Join(projectDir, ProjectConfigPath()), tt.project)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load(LoadOptions{Overrides: tt.overrides})
			require.NoError(t, err)
			tt.want(t, cfg)
		})
	}
}

func TestLoad_ProjectJSON(t *testing.T) {
	projectDir, _ := isolate(t)
	writeFile(t, filepath.Join(projectDir, ProjectJSONConfigPath()), `{"provider": "file", "changelog_path": "docs/CHANGELOG.yaml"}`)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Provider)
	assert.Equal(t, "docs/CHANGELOG.yaml", cfg.ChangelogPath)
}

func TestLoad_YAMLPreferredOverJSON(t *testing.T) {
	projectDir, _ := isolate(t)
	writeFile(t, filepath.Join(projectDir, ProjectConfigPath()), "provider: remote\n")
	writeFile(t, filepath.Join(projectDir, ProjectJSONConfigPath()), `{"provider": "file"}`)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "remote", cfg.Provider)
}

func TestLoad_ExplicitConfigPath(t *testing.T) {
	projectDir, _ := isolate(t)
	writeFile(t, filepath.Join(projectDir, ProjectConfigPath()), "provider: remote\n")
	explicit := filepath.Join(projectDir, "ci.yml")
	writeFile(t, explicit, "provider: file\n")

	cfg, err := Load(LoadOptions{ConfigPath: explicit})
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Provider)

	_, err = Load(LoadOptions{ConfigPath: filepath.Join(projectDir, "missing.yml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_SkipUserConfig(t *testing.T) {
	_, userDir := isolate(t)
	writeFile(t, filepath.Join(userDir, "relnotes", "config.yml"), "provider: remote\n")

	cfg, err := Load(LoadOptions{SkipUserConfig: true})
	require.NoError(t, err)
	assert.Equal(t, "git", cfg.Provider)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]struct {
		project   string
		wantField string
		wantMsg   string
	}{
		"unknown provider": {
			project:   "provider: svn\n",
			wantField: "provider",
			wantMsg:   "must be one of: git, remote, file",
		},
		"bad url": {
			project:   "changelog_url: not a url\n",
			wantField: "changelog_url",
			wantMsg:   "must be a valid URL",
		},
		"bad log level": {
			project:   "log_level: loud\n",
			wantField: "log_level",
		},
		"negative timeout": {
			project:   "timeout: -5s\n",
			wantField: "timeout",
		},
		"malformed yaml": {
			project: "provider: [git\n",
			wantMsg: ".relnotes/config.yml",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			projectDir, _ := isolate(t)
			writeFile(t, filepath.Join(projectDir, ProjectConfigPath()), tt.project)

			_, err := Load(LoadOptions{})
			require.Error(t, err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "want ValidationError, got %v", err)
			if tt.wantField != "" {
				assert.Equal(t, tt.wantField, ve.Field)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateYAMLSyntax(t *testing.T) {
	dir := t.TempDir()

	tests := map[string]struct {
		content  *string
		wantErr  bool
		wantLine bool
	}{
		"missing file": {content: nil},
		"empty file":   {content: ptr("   \n")},
		"valid":        {content: ptr("provider: git\n")},
		"invalid":      {content: ptr("a: b\n  c: d\n"), wantErr: true, wantLine: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".yml")
			if tt.content != nil {
				writeFile(t, path, *tt.content)
			}

			err := ValidateYAMLSyntax(path)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			if tt.wantLine {
				assert.Greater(t, ve.Line, 0)
			}
		})
	}
}

func TestEnvTransform(t *testing.T) {
	assert.Equal(t, "changelog_url", envTransform("RELNOTES_CHANGELOG_URL"))
	assert.Equal(t, "provider", envTransform("RELNOTES_PROVIDER"))
}

func TestExpandHomePath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "repo"), expandHomePath("~/repo"))
	assert.Equal(t, "/abs/repo", expandHomePath("/abs/repo"))
	assert.Equal(t, "", expandHomePath(""))
}

func ptr(s string) *string { return &s }
