package errors

import (
	"fmt"
	"strings"
)

const usageLine = "relnotes <version>"

// MissingVersion is returned when no version argument was given.
func MissingVersion() *CLIError {
	return NewArgumentErrorWithUsage(
		"version is required",
		usageLine,
		"Pass the release version as the only argument",
		"Example: relnotes 0.9.1",
	)
}

// TooManyArguments is returned when more than one positional argument was given.
func TooManyArguments(args []string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("expected one version argument, got %d: %s", len(args), strings.Join(args, " ")),
		usageLine,
		"Quote the version if it contains spaces",
	)
}

// InvalidConfig wraps a configuration load or validation failure.
func InvalidConfig(err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		"loading configuration",
		"Check .relnotes/config.yml and ~/.config/relnotes/config.yml",
		"Check RELNOTES_* environment variables",
	)
}

// ChangelogUnavailable wraps a changelog provider failure.
func ChangelogUnavailable(err error, provider string) *CLIError {
	return WrapWithMessage(err, Provider,
		"could not build changelog",
		fmt.Sprintf("Verify the %s provider settings (--provider, --changelog-url, --changelog-path, --repo)", provider),
		"Run again with --debug for details",
	)
}

// FetchTimedOut is returned when the provider did not answer in time.
func FetchTimedOut(err error, timeout fmt.Stringer) *CLIError {
	return WrapWithMessage(err, Provider,
		fmt.Sprintf("changelog fetch timed out after %s", timeout),
		"Increase the timeout with --timeout or RELNOTES_TIMEOUT (0 disables it)",
	)
}

// InvalidFlag wraps a flag parsing failure.
func InvalidFlag(err error) *CLIError {
	cliErr := NewArgumentErrorWithUsage(err.Error(), usageLine, "Run relnotes --help to list flags")
	cliErr.Err = err
	return cliErr
}
