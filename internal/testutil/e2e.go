package testutil

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	// relnotesBinaryPath caches the built relnotes binary path.
	relnotesBinaryPath string
	relnotesBuildOnce  sync.Once
	relnotesBuildErr   error
)

// E2EEnv runs the relnotes binary in an isolated working directory with an
// empty HOME and no RELNOTES_* variables from the caller.
type E2EEnv struct {
	t       *testing.T
	workDir string
	homeDir string
	env     map[string]string
}

// CommandResult captures the result of running relnotes.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// NewE2EEnv builds relnotes (once per test binary) and prepares a fresh
// environment.
func NewE2EEnv(t *testing.T) *E2EEnv {
	t.Helper()

	relnotesBuildOnce.Do(func() {
		relnotesBinaryPath, relnotesBuildErr = buildRelnotes()
	})
	if relnotesBuildErr != nil {
		t.Fatalf("building relnotes: %v", relnotesBuildErr)
	}

	root := t.TempDir()
	e := &E2EEnv{
		t:       t,
		workDir: filepath.Join(root, "work"),
		homeDir: filepath.Join(root, "home"),
		env:     map[string]string{},
	}
	require.NoError(t, os.MkdirAll(e.workDir, 0o755))
	require.NoError(t, os.MkdirAll(e.homeDir, 0o755))
	return e
}

func buildRelnotes() (string, error) {
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("determining current file location")
	}
	repoRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")

	tmpDir, err := os.MkdirTemp("", "relnotes-build-*")
	if err != nil {
		return "", fmt.Errorf("creating temp dir for build: %w", err)
	}

	binaryPath := filepath.Join(tmpDir, "relnotes")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/relnotes")
	cmd.Dir = repoRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("%w\nOutput: %s", err, output)
	}
	return binaryPath, nil
}

// WorkDir is the directory relnotes runs in.
func (e *E2EEnv) WorkDir() string {
	return e.workDir
}

// WriteFile writes content to a path relative to WorkDir.
func (e *E2EEnv) WriteFile(rel, content string) string {
	e.t.Helper()
	path := filepath.Join(e.workDir, rel)
	require.NoError(e.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// InitGitRepo turns WorkDir into a git repository.
func (e *E2EEnv) InitGitRepo() *GitRepo {
	e.t.Helper()
	return InitGitRepo(e.t, e.workDir)
}

// Setenv sets a variable for subsequent runs.
func (e *E2EEnv) Setenv(key, value string) {
	e.env[key] = value
}

// Run executes relnotes with args.
func (e *E2EEnv) Run(args ...string) CommandResult {
	e.t.Helper()

	start := time.Now()
	cmd := exec.Command(relnotesBinaryPath, args...)
	cmd.Dir = e.workDir
	cmd.Env = e.buildIsolatedEnv()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := CommandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
	}
	return result
}

func (e *E2EEnv) buildIsolatedEnv() []string {
	env := []string{
		"HOME=" + e.homeDir,
		"XDG_CONFIG_HOME=" + filepath.Join(e.homeDir, ".config"),
		"NO_COLOR=1",
	}
	for _, key := range []string{"PATH", "TMPDIR", "LANG", "LC_ALL"} {
		if val, ok := os.LookupEnv(key); ok {
			env = append(env, key+"="+val)
		}
	}
	for key, val := range e.env {
		env = append(env, key+"="+val)
	}
	return env
}
