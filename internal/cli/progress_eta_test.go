package cli

import (
	"strings"
	"testing"
	"time"
)

func TestFormatETA(t *testing.T) {
	t.Parallel()
	tests := []struct {
		eta  time.Duration
		want string
	}{
		{0, "calculating..."},
		{-time.Second, "calculating..."},
		{500 * time.Millisecond, "< 1s"},
		{42 * time.Second, "42s"},
		{2 * time.Minute, "2m"},
		{2*time.Minute + 30*time.Second, "2m30s"},
		{time.Hour, "1h"},
		{time.Hour + 15*time.Minute, "1h15m"},
	}
	for _, tt := range tests {
		if got := FormatETA(tt.eta); got != tt.want {
			t.Errorf("FormatETA(%v) = %q; want %q", tt.eta, got, tt.want)
		}
	}
}

func TestProgressWithETA(t *testing.T) {
	t.Parallel()
	p := NewProgressWithETA(2)

	progress, eta := p.UpdateWithETA(0, 0.5)
	if progress != 0.25 {
		t.Errorf("progress = %v; want 0.25", progress)
	}
	if eta != 0 {
		t.Errorf("eta = %v; want 0 before enough data", eta)
	}

	time.Sleep(150 * time.Millisecond)
	progress, eta = p.UpdateWithETA(1, 0.5)
	if progress != 0.5 {
		t.Errorf("progress = %v; want 0.5", progress)
	}
	if eta <= 0 || eta > maxETA {
		t.Errorf("eta = %v; want a positive estimate", eta)
	}

	p.Update(0, 1)
	p.Update(1, 1)
	if got := p.GetETA(); got != 0 {
		t.Errorf("GetETA() after completion = %v; want 0", got)
	}
}

func TestFormatProgressBarWithETA(t *testing.T) {
	t.Parallel()
	got := FormatProgressBarWithETA(0.45, 150*time.Second, 20)
	if !strings.HasPrefix(got, " 45.00% [") {
		t.Errorf("unexpected prefix: %q", got)
	}
	if !strings.HasSuffix(got, "] ETA: 2m30s") {
		t.Errorf("unexpected suffix: %q", got)
	}
	if n := strings.Count(got, "█"); n != 9 {
		t.Errorf("filled cells = %d; want 9", n)
	}
}
