// Package cli implements the relnotes command line.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dprint/relnotes/internal/build"
	"github.com/dprint/relnotes/internal/changelog"
	clierrors "github.com/dprint/relnotes/internal/errors"
	"github.com/spf13/cobra"
)

// options holds the flag values of one invocation.
type options struct {
	provider      string
	changelogURL  string
	changelogPath string
	repoPath      string
	tagPrefix     string
	timeout       time.Duration
	configPath    string
	debug         bool
	quiet         bool
}

// flagKeys maps flag names to the config keys they override.
var flagKeys = map[string]string{
	"provider":       "provider",
	"changelog-url":  "changelog_url",
	"changelog-path": "changelog_path",
	"repo":           "repo_path",
	"tag-prefix":     "tag_prefix",
	"timeout":        "timeout",
}

// NewRootCmd builds the relnotes command.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "relnotes <version>",
		Short: "Generate release notes for a plugin release",
		Long: `Generate the Markdown release notes published with a plugin release.

The changelog for the given version is placed above fixed installation
instructions and the document is written to stdout. Progress and errors go
to stderr, so the output can be redirected straight into a release body.

Changelog providers:
  git     commits between the previous release tag and the version (default)
  remote  a CHANGELOG.yaml fetched over HTTP
  file    a local CHANGELOG.yaml`,
		Example: `  relnotes 0.9.1 > notes.md
  relnotes --provider file --changelog-path CHANGELOG.yaml 0.9.1
  RELNOTES_PROVIDER=remote relnotes 0.9.1`,
		Version:       build.Info(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.provider, "provider", "", "changelog provider: "+strings.Join(changelog.ProviderNames(), ", "))
	f.StringVar(&opts.changelogURL, "changelog-url", "", "CHANGELOG.yaml URL for the remote provider")
	f.StringVar(&opts.changelogPath, "changelog-path", "", "CHANGELOG.yaml path for the file provider")
	f.StringVar(&opts.repoPath, "repo", "", "repository path for the git provider (default: working directory)")
	f.StringVar(&opts.tagPrefix, "tag-prefix", "", "prefix stripped from release tags before version parsing")
	f.DurationVar(&opts.timeout, "timeout", 0, "changelog fetch timeout, 0 disables it (default 30s)")
	f.StringVarP(&opts.configPath, "config", "c", "", "config file replacing .relnotes/config.yml")
	f.BoolVar(&opts.debug, "debug", false, "log provider details to stderr")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress progress output on stderr")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return NewExitError(ExitInvalidArguments, clierrors.InvalidFlag(err))
	})

	return cmd
}

// Execute runs relnotes with the process arguments.
func Execute() error {
	return execute(NewRootCmd(), os.Stderr)
}

// execute runs cmd and reports a failure on stderr.
func execute(cmd *cobra.Command, stderr io.Writer) error {
	err := cmd.Execute()
	if err == nil {
		return nil
	}
	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		clierrors.FprintError(stderr, cliErr)
	} else {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return err
}
