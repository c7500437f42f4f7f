// Package output renders progress feedback on stderr: a spinner while the
// changelog is fetched and a one-line status when it finishes.
package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// PrintSuccess prints a green checkmark followed by message.
func PrintSuccess(out io.Writer, symbols Symbols, message string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green(symbols.Checkmark), message)
}

// PrintFailure prints a red failure mark followed by message.
func PrintFailure(out io.Writer, symbols Symbols, message string) {
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", red(symbols.Failure), message)
}

// PrintSource prints which provider the changelog comes from, dimmed.
func PrintSource(out io.Writer, provider, location string) {
	magenta := color.New(color.FgMagenta).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	if location == "" {
		fmt.Fprintf(out, "%s %s\n", magenta("→ Changelog:"), dim(provider))
		return
	}
	fmt.Fprintf(out, "%s %s\n", magenta("→ Changelog:"), dim(provider+" ("+location+")"))
}
