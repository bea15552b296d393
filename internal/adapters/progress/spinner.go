package progress

import (
	"context"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/deptgov-org/deptgov-cli/internal/usecase"
)

// SpinnerSink shows submission progress on a terminal spinner. Mutating
// ledger calls block until confirmation, so the spinner is the only feedback
// the operator gets between submission and inclusion.
type SpinnerSink struct {
	spinner *spinner.Spinner
}

// NewSpinnerSink creates a spinner-based progress sink.
func NewSpinnerSink() *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.HideCursor = false
	return &SpinnerSink{spinner: s}
}

// OnProgress updates the spinner with the current stage.
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Spinner {
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		r.spinner.Suffix = " " + event.Message
		return
	}
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message without garbling an active spinner.
func (r *SpinnerSink) Info(message string) {
	r.paused(func() {
		color.New(color.FgCyan).Println(message)
	})
}

// Error prints an error message without garbling an active spinner.
func (r *SpinnerSink) Error(message string) {
	r.paused(func() {
		color.New(color.FgRed).Println(message)
	})
}

func (r *SpinnerSink) paused(fn func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	fn()
	if wasActive {
		r.spinner.Start()
	}
}

var _ usecase.ProgressSink = (*SpinnerSink)(nil)
