package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// WaitSpinner shows an indeterminate bar while the orchestrator blocks on
// the daemon readiness wait
type WaitSpinner struct {
	bar  *progressbar.ProgressBar
	done chan struct{}
}

// NewWaitSpinner creates and starts the readiness spinner
func NewWaitSpinner() *WaitSpinner {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(color.CyanString("Waiting for daemons")),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
	)

	s := &WaitSpinner{bar: bar, done: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				s.bar.Add(1)
			}
		}
	}()
	return s
}

// Finish stops the spinner
func (s *WaitSpinner) Finish() {
	close(s.done)
	s.bar.Finish()
}
