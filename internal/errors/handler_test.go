package apperrors

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/agbru/polyroots/internal/complexnum"
	"github.com/agbru/polyroots/internal/roots"
)

type MockColorProvider struct{}

func (m MockColorProvider) Yellow() string { return "[YELLOW]" }
func (m MockColorProvider) Red() string    { return "[RED]" }
func (m MockColorProvider) Reset() string  { return "[RESET]" }

func TestHandleSolveError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		err          error
		duration     time.Duration
		colors       ColorProvider
		expectedCode int
		expectedMsg  string
	}{
		{
			name:         "No Error",
			err:          nil,
			expectedCode: ExitSuccess,
			expectedMsg:  "",
		},
		{
			name:         "Timeout Error",
			err:          context.DeadlineExceeded,
			duration:     1 * time.Second,
			colors:       MockColorProvider{},
			expectedCode: ExitErrorTimeout,
			expectedMsg:  "Status: Failure (Timeout). The execution limit was reached after [YELLOW]1s[RESET].",
		},
		{
			name:         "Canceled Error",
			err:          fmt.Errorf("batch: %w", context.Canceled),
			duration:     500 * time.Millisecond,
			colors:       MockColorProvider{},
			expectedCode: ExitErrorCanceled,
			expectedMsg:  "[YELLOW]Status: Canceled after [YELLOW]500ms[RESET].[RESET]",
		},
		{
			name:         "Unsupported Degree",
			err:          &roots.UnsupportedDegreeError{Count: 5},
			colors:       MockColorProvider{},
			expectedCode: ExitErrorUnsupported,
			expectedMsg:  "[RED]Unsupported equation:[RESET] unsupported equation type: degree 4 equation",
		},
		{
			name:         "Wrapped Unsupported Degree",
			err:          SolveError{Cause: &roots.UnsupportedDegreeError{Count: 1}},
			expectedCode: ExitErrorUnsupported,
			expectedMsg:  "Unsupported equation: unsupported equation type: constant equation",
		},
		{
			name:         "Config Error",
			err:          NewConfigError("bad flag"),
			expectedCode: ExitErrorConfig,
			expectedMsg:  "Configuration error: bad flag",
		},
		{
			name:         "Input Error",
			err:          NewInputError("abc", nil),
			expectedCode: ExitErrorInput,
			expectedMsg:  `Invalid input: invalid input "abc"`,
		},
		{
			name:         "Division By Zero",
			err:          complexnum.ErrDivisionByZero,
			expectedCode: ExitErrorGeneric,
			expectedMsg:  "Division by zero while solving",
		},
		{
			name:         "Generic Error",
			err:          fmt.Errorf("random error"),
			expectedCode: ExitErrorGeneric,
			expectedMsg:  "Status: Failure. An unexpected error occurred: random error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			code := HandleSolveError(tt.err, tt.duration, &buf, tt.colors)
			if code != tt.expectedCode {
				t.Errorf("expected exit code %d, got %d", tt.expectedCode, code)
			}
			if !strings.Contains(buf.String(), tt.expectedMsg) {
				t.Errorf("expected output to contain %q, got %q", tt.expectedMsg, buf.String())
			}
		})
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	if ExitCodeFor(NewValidationError("c", "bad", nil)) != ExitErrorInput {
		t.Error("validation errors map to the input exit code")
	}
	if ExitCodeFor(WrapError(roots.ErrUnsupportedDegree, "line 2")) != ExitErrorUnsupported {
		t.Error("wrapped sentinel maps to the unsupported exit code")
	}
}
