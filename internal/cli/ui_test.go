package cli

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/polyroots/internal/testutil"
)

// MockSpinner records the calls DisplayProgress makes.
type MockSpinner struct {
	mu      sync.Mutex
	started bool
	stopped bool
	suffix  string
}

func (m *MockSpinner) Start() {
	m.mu.Lock()
	m.started = true
	m.mu.Unlock()
}

func (m *MockSpinner) Stop() {
	m.mu.Lock()
	m.stopped = true
	m.mu.Unlock()
}

func (m *MockSpinner) UpdateSuffix(suffix string) {
	m.mu.Lock()
	m.suffix = suffix
	m.mu.Unlock()
}

// useMockSpinner swaps the spinner factory for the duration of the test.
// Tests calling it must not run in parallel.
func useMockSpinner(t *testing.T) *MockSpinner {
	t.Helper()
	original := newSpinner
	t.Cleanup(func() { newSpinner = original })
	mock := &MockSpinner{}
	newSpinner = func(...spinner.Option) Spinner { return mock }
	return mock
}

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{500 * time.Nanosecond, "0µs"},
		{10 * time.Microsecond, "10µs"},
		{10 * time.Millisecond, "10ms"},
		{2 * time.Second, "2s"},
	}

	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.d); got != tt.expected {
			t.Errorf("FormatExecutionDuration(%v) = %s; want %s", tt.d, got, tt.expected)
		}
	}
}

func TestProgressBar(t *testing.T) {
	t.Parallel()
	tests := []struct {
		progress float64
		length   int
		want     string
	}{
		{0.0, 10, "░░░░░░░░░░"},
		{0.5, 10, "█████░░░░░"},
		{1.0, 10, "██████████"},
		{1.2, 10, "██████████"},
		{-0.1, 10, "░░░░░░░░░░"},
	}

	for _, tt := range tests {
		if got := progressBar(tt.progress, tt.length); got != tt.want {
			t.Errorf("progressBar(%f, %d) = %s; want %s", tt.progress, tt.length, got, tt.want)
		}
	}
}

func TestProgressState(t *testing.T) {
	t.Parallel()
	ps := NewProgressState(4)
	ps.Update(0, 1)
	ps.Update(1, 1)
	ps.Update(2, 0.5)
	ps.Update(7, 1)
	ps.Update(-1, 1)

	if got := ps.CalculateAverage(); got != 0.625 {
		t.Errorf("CalculateAverage() = %v; want 0.625", got)
	}
	if got := ps.Completed(); got != 2 {
		t.Errorf("Completed() = %d; want 2", got)
	}
	if got := NewProgressState(0).CalculateAverage(); got != 0 {
		t.Errorf("empty CalculateAverage() = %v; want 0", got)
	}
}

func TestDisplayProgress(t *testing.T) {
	mock := useMockSpinner(t)

	var wg sync.WaitGroup
	wg.Add(1)
	progressChan := make(chan ProgressUpdate)
	var out bytes.Buffer

	go DisplayProgress(&wg, progressChan, 3, &out)
	for i := 0; i < 3; i++ {
		progressChan <- ProgressUpdate{Index: i, Value: 1}
	}
	close(progressChan)
	wg.Wait()

	if !mock.started || !mock.stopped {
		t.Errorf("spinner started=%v stopped=%v; want both", mock.started, mock.stopped)
	}
	got := testutil.StripAnsiCodes(out.String())
	if !strings.Contains(got, "Solved: 3/3 [") {
		t.Errorf("final line missing, got %q", got)
	}
	if strings.Contains(got, "░") {
		t.Errorf("bar should be full, got %q", got)
	}
}

func TestDisplayProgressTickerUpdatesSuffix(t *testing.T) {
	mock := useMockSpinner(t)

	var wg sync.WaitGroup
	wg.Add(1)
	progressChan := make(chan ProgressUpdate)

	go DisplayProgress(&wg, progressChan, 2, &bytes.Buffer{})
	progressChan <- ProgressUpdate{Index: 0, Value: 1}
	time.Sleep(ProgressRefreshRate + 100*time.Millisecond)
	close(progressChan)
	wg.Wait()

	mock.mu.Lock()
	defer mock.mu.Unlock()
	if !strings.Contains(mock.suffix, "Solving 1/2") {
		t.Errorf("suffix = %q; want it to report 1/2", mock.suffix)
	}
}

func TestDisplayProgressZeroTotalDrains(t *testing.T) {
	mock := useMockSpinner(t)

	var wg sync.WaitGroup
	wg.Add(1)
	progressChan := make(chan ProgressUpdate, 2)
	progressChan <- ProgressUpdate{Index: 0, Value: 1}
	close(progressChan)

	var out bytes.Buffer
	DisplayProgress(&wg, progressChan, 0, &out)
	wg.Wait()

	if mock.started {
		t.Error("spinner should not start for an empty batch")
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}
