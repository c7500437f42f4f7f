package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dprint/relnotes/internal/changelog"
	"github.com/dprint/relnotes/internal/config"
	clierrors "github.com/dprint/relnotes/internal/errors"
	"github.com/dprint/relnotes/internal/git"
	"github.com/dprint/relnotes/internal/output"
	"github.com/dprint/relnotes/internal/releasenotes"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func runGenerate(cmd *cobra.Command, args []string, opts *options) error {
	switch {
	case len(args) == 0:
		return NewExitError(ExitInvalidArguments, clierrors.MissingVersion())
	case len(args) > 1:
		return NewExitError(ExitInvalidArguments, clierrors.TooManyArguments(args))
	}
	version := args[0]

	cfg, err := config.Load(config.LoadOptions{
		ConfigPath: opts.configPath,
		Overrides:  flagOverrides(cmd),
	})
	if err != nil {
		return NewExitError(ExitConfigInvalid, clierrors.InvalidConfig(err))
	}

	stderr := cmd.ErrOrStderr()
	logger := newLogger(stderr, cfg.LogLevel, opts.debug)
	if logger.IsLevelEnabled(logrus.DebugLevel) {
		git.SetDebugLogger(logger.Debugf)
		defer git.SetDebugLogger(nil)
	}

	provider, err := changelog.NewProvider(changelog.ProviderOptions{
		Name:      cfg.Provider,
		URL:       cfg.ChangelogURL,
		Path:      cfg.ChangelogPath,
		RepoPath:  cfg.RepoPath,
		TagPrefix: cfg.TagPrefix,
		Log:       logger.WithField("provider", cfg.Provider),
	})
	if err != nil {
		return NewExitError(ExitConfigInvalid, clierrors.InvalidConfig(err))
	}

	caps := output.DetectStderr()
	color.NoColor = !caps.SupportsColor
	symbols := output.SelectSymbols(caps)

	if !opts.quiet {
		output.PrintSource(stderr, cfg.Provider, sourceLocation(cfg))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	logger.WithFields(logrus.Fields{
		"version":  version,
		"provider": cfg.Provider,
		"timeout":  cfg.Timeout,
	}).Debug("Generating release notes")

	sp := output.NewSpinner(stderr, symbols, "Fetching changelog for "+version, caps.IsTTY && !opts.quiet)
	sp.Start()
	doc, err := releasenotes.New(provider, releasenotes.WithLogger(logger)).Generate(ctx, version)
	sp.Stop()

	if err != nil {
		if !opts.quiet {
			output.PrintFailure(stderr, symbols, "Release notes for "+version+" not generated")
		}
		return generateError(ctx, err, cfg)
	}

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), doc); err != nil {
		return fmt.Errorf("writing release notes: %w", err)
	}
	if !opts.quiet {
		output.PrintSuccess(stderr, symbols, "Release notes for "+version+" generated")
	}
	return nil
}

// generateError maps a Generate failure to its exit code.
func generateError(ctx context.Context, err error, cfg *config.Configuration) error {
	switch {
	case releasenotes.IsUsageError(err):
		return NewExitError(ExitInvalidArguments, clierrors.MissingVersion())
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return NewExitError(ExitTimeout, clierrors.FetchTimedOut(err, cfg.Timeout))
	default:
		return NewExitError(ExitProviderFailed, clierrors.ChangelogUnavailable(err, cfg.Provider))
	}
}

// flagOverrides returns the config overrides for flags set on the command line.
func flagOverrides(cmd *cobra.Command) map[string]interface{} {
	overrides := map[string]interface{}{}
	for flag, key := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		if flag == "timeout" {
			d, _ := cmd.Flags().GetDuration(flag)
			overrides[key] = d
			continue
		}
		overrides[key] = f.Value.String()
	}
	return overrides
}

func sourceLocation(cfg *config.Configuration) string {
	switch cfg.Provider {
	case changelog.ProviderRemote:
		return cfg.ChangelogURL
	case changelog.ProviderFile:
		return cfg.ChangelogPath
	default:
		if cfg.RepoPath == "" {
			return "."
		}
		return cfg.RepoPath
	}
}
