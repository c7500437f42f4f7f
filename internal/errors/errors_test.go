package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCategory_String(t *testing.T) {
	tests := map[string]struct {
		category ErrorCategory
		want     string
	}{
		"argument":      {category: Argument, want: "Argument Error"},
		"configuration": {category: Configuration, want: "Configuration Error"},
		"provider":      {category: Provider, want: "Provider Error"},
		"runtime":       {category: Runtime, want: "Runtime Error"},
		"unknown":       {category: ErrorCategory(42), want: "Error"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.category.String())
		})
	}
}

func TestWrapWithMessage(t *testing.T) {
	assert.Nil(t, WrapWithMessage(nil, Runtime, "ignored"))

	cause := stderrors.New("boom")
	err := WrapWithMessage(cause, Provider, "fetching", "retry later")
	require.NotNil(t, err)
	assert.Equal(t, "fetching: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, []string{"retry later"}, err.Remediation)
}

func TestAsCLIError(t *testing.T) {
	cliErr := MissingVersion()
	wrapped := fmt.Errorf("running: %w", cliErr)

	assert.Same(t, cliErr, AsCLIError(wrapped))
	assert.Nil(t, AsCLIError(stderrors.New("plain")))
}

func TestFormatErrorPlain(t *testing.T) {
	got := FormatErrorPlain(MissingVersion())

	want := "Error [Argument Error]: version is required\n" +
		"\n" +
		"Usage: relnotes <version>\n" +
		"\n" +
		"To fix this:\n" +
		"  • Pass the release version as the only argument\n" +
		"  • Example: relnotes 0.9.1\n"
	assert.Equal(t, want, got)
	assert.Empty(t, FormatErrorPlain(nil))
}

func TestFprintError_NoColor(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })

	var buf bytes.Buffer
	FprintError(&buf, FetchTimedOut(stderrors.New("context deadline exceeded"), 30*time.Second))

	assert.Contains(t, buf.String(), "Error [Provider Error]: changelog fetch timed out after 30s: context deadline exceeded")
	assert.Contains(t, buf.String(), "--timeout")
}

func TestMessages(t *testing.T) {
	tests := map[string]struct {
		err          *CLIError
		wantCategory ErrorCategory
		wantMessage  string
	}{
		"too many arguments": {
			err:          TooManyArguments([]string{"1.0.0", "extra"}),
			wantCategory: Argument,
			wantMessage:  "expected one version argument, got 2: 1.0.0 extra",
		},
		"invalid config": {
			err:          InvalidConfig(stderrors.New("bad provider")),
			wantCategory: Configuration,
			wantMessage:  "loading configuration: bad provider",
		},
		"changelog unavailable": {
			err:          ChangelogUnavailable(stderrors.New("404"), "remote"),
			wantCategory: Provider,
			wantMessage:  "could not build changelog: 404",
		},
		"invalid flag": {
			err:          InvalidFlag(stderrors.New("unknown flag: --nope")),
			wantCategory: Argument,
			wantMessage:  "unknown flag: --nope",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.wantCategory, tt.err.Category)
			assert.Equal(t, tt.wantMessage, tt.err.Message)
			assert.NotEmpty(t, tt.err.Remediation)
		})
	}
}
