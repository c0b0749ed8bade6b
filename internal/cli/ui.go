// Package cli implements the terminal front end of polyroots: coefficient
// parsing, result rendering, batch progress display, the interactive prompt
// and REPL, and shell completion scripts.
package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/polyroots/internal/ui"
)

const (
	// ProgressRefreshRate is the refresh period of the spinner and bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth is the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Color helpers delegate to the active ui theme.

// ColorReset returns the reset escape code.
func ColorReset() string { return ui.ColorReset() }

// ColorRed returns the error color.
func ColorRed() string { return ui.ColorRed() }

// ColorGreen returns the success color.
func ColorGreen() string { return ui.ColorGreen() }

// ColorYellow returns the warning color.
func ColorYellow() string { return ui.ColorYellow() }

// ColorBlue returns the primary color.
func ColorBlue() string { return ui.ColorBlue() }

// ColorGrey returns the secondary color.
func ColorGrey() string { return ui.ColorGrey() }

// ColorBold returns the bold escape code.
func ColorBold() string { return ui.ColorBold() }

// FormatExecutionDuration formats a duration with µs resolution below a
// millisecond, ms below a second, and time.Duration's own form otherwise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// ProgressUpdate reports the progress of one unit of work, such as one
// polynomial of a batch. Value runs from 0 to 1.
type ProgressUpdate struct {
	Index int
	Value float64
}

// Spinner abstracts the terminal spinner so DisplayProgress can be tested.
type Spinner interface {
	Start()
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(suffix string)
}

type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// ProgressState holds the per-item progress of a batch.
type ProgressState struct {
	progresses []float64
}

// NewProgressState tracks total items, all starting at 0.
func NewProgressState(total int) *ProgressState {
	return &ProgressState{progresses: make([]float64, total)}
}

// Update records the progress of one item. Out-of-range indices are ignored.
func (ps *ProgressState) Update(index int, value float64) {
	if index >= 0 && index < len(ps.progresses) {
		ps.progresses[index] = value
	}
}

// CalculateAverage returns the mean progress over all items.
func (ps *ProgressState) CalculateAverage() float64 {
	if len(ps.progresses) == 0 {
		return 0.0
	}
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	return total / float64(len(ps.progresses))
}

// Completed counts the items whose progress reached 1.
func (ps *ProgressState) Completed() int {
	n := 0
	for _, p := range ps.progresses {
		if p >= 1 {
			n++
		}
	}
	return n
}

// progressBar renders progress (clamped to [0, 1]) as a bar of length runes.
func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length * 3)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// DisplayProgress renders a spinner with a progress bar until progressChan
// is closed, then prints a final line with the completed count. It runs in
// its own goroutine and calls wg.Done on return.
//
// Parameters:
//   - wg: Signaled when the display routine is complete.
//   - progressChan: Progress updates; closing it ends the display.
//   - total: The number of items contributing to the progress.
//   - out: The writer the progress is rendered to.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, total int, out io.Writer) {
	defer wg.Done()
	if total <= 0 {
		for range progressChan {
		}
		return
	}

	state := NewProgressWithETA(total)
	s := newSpinner(spinner.WithWriter(out))
	s.Start()
	spinnerStopped := false
	defer func() {
		if !spinnerStopped {
			s.Stop()
		}
	}()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.Stop()
				spinnerStopped = true
				fmt.Fprintf(out, "Solved: %d/%d [%s]\n",
					state.Completed(), total, progressBar(state.CalculateAverage(), ProgressBarWidth))
				return
			}
			state.UpdateWithETA(update.Index, update.Value)
		case <-ticker.C:
			s.UpdateSuffix(fmt.Sprintf(" Solving %d/%d %s",
				state.Completed(), total, FormatProgressBarWithETA(state.CalculateAverage(), state.GetETA(), ProgressBarWidth)))
		}
	}
}
