package output

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner shows activity while a blocking call runs. The zero value and a
// disabled Spinner are no-ops.
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner returns a spinner writing to out. It is disabled unless enabled
// is true, so callers can pass the terminal check directly.
func NewSpinner(out io.Writer, symbols Symbols, message string, enabled bool) *Spinner {
	if !enabled {
		return &Spinner{}
	}
	s := spinner.New(spinner.CharSets[symbols.SpinnerSet], 100*time.Millisecond,
		spinner.WithWriter(out),
		spinner.WithHiddenCursor(true),
	)
	s.Suffix = " " + message
	return &Spinner{s: s}
}

// Start begins animating.
func (sp *Spinner) Start() {
	if sp.s != nil {
		sp.s.Start()
	}
}

// Stop halts the animation and clears its line.
func (sp *Spinner) Stop() {
	if sp.s != nil {
		sp.s.Stop()
	}
}

// Active reports whether the spinner is animating.
func (sp *Spinner) Active() bool {
	return sp.s != nil && sp.s.Active()
}
