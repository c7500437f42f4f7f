package output

import (
	"os"

	"golang.org/x/term"
)

// TerminalCapabilities describes what a stream attached to a terminal supports.
type TerminalCapabilities struct {
	IsTTY           bool
	SupportsColor   bool
	SupportsUnicode bool
}

// DetectStderr inspects stderr, where relnotes writes all diagnostics.
// Stdout carries the document and is usually redirected, so it is not a
// useful signal for decorations. Honors NO_COLOR and RELNOTES_ASCII=1.
func DetectStderr() TerminalCapabilities {
	return detect(int(os.Stderr.Fd()))
}

func detect(fd int) TerminalCapabilities {
	isTTY := term.IsTerminal(fd)
	noColor := os.Getenv("NO_COLOR") != ""
	forceASCII := os.Getenv("RELNOTES_ASCII") == "1"

	return TerminalCapabilities{
		IsTTY:           isTTY,
		SupportsColor:   isTTY && !noColor,
		SupportsUnicode: isTTY && !forceASCII,
	}
}

// Symbols are the glyphs used for status output.
type Symbols struct {
	Checkmark  string
	Failure    string
	SpinnerSet int
}

// SelectSymbols returns Unicode symbols when supported, ASCII otherwise.
func SelectSymbols(caps TerminalCapabilities) Symbols {
	if caps.SupportsUnicode {
		return Symbols{Checkmark: "✓", Failure: "✗", SpinnerSet: 14} // ⠋ ⠙ ⠹ ...
	}
	return Symbols{Checkmark: "[OK]", Failure: "[FAIL]", SpinnerSet: 9} // | / - \
}
