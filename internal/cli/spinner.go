//go:generate mockgen -source=spinner.go -destination=mocks/mock_spinner.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"

	"github.com/pencalc/pencalc/internal/sweep"
)

// ProgressRefreshRate is the spinner animation interval. Coarse enough to
// stay cheap next to the sampling work it decorates.
const ProgressRefreshRate = 200 * time.Millisecond

// Spinner abstracts a terminal spinner, decoupling sweep progress display
// from the concrete spinner implementation for testing.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner wraps spinner.Spinner to satisfy the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }
func (rs *realSpinner) Stop()  { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

// newSpinner is swappable in tests.
var newSpinner = func(out io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, spinner.WithWriter(out))
	return &realSpinner{s}
}

// SweepProgress drives a spinner from sweep progress callbacks. Stop must
// be called once the sweep returns.
func SweepProgress(out io.Writer) (progress sweep.Progress, stop func()) {
	sp := newSpinner(out)
	sp.UpdateSuffix(" sampling...")
	sp.Start()

	progress = func(fraction float64) {
		sp.UpdateSuffix(fmt.Sprintf(" sampling... %3.0f%%", fraction*100))
	}
	return progress, sp.Stop
}
