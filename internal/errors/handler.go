package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/agbru/polyroots/internal/complexnum"
	"github.com/agbru/polyroots/internal/roots"
)

// ColorProvider supplies terminal color codes. It lets the cli package
// inject its theme without an import cycle.
type ColorProvider interface {
	Yellow() string
	Red() string
	Reset() string
}

// DefaultColorProvider provides no color codes (for non-terminal output).
type DefaultColorProvider struct{}

func (d DefaultColorProvider) Yellow() string { return "" }
func (d DefaultColorProvider) Red() string    { return "" }
func (d DefaultColorProvider) Reset() string  { return "" }

// ExitCodeFor classifies err into an exit code without printing anything.
func ExitCodeFor(err error) int {
	var (
		configErr ConfigError
		inputErr  InputError
		validErr  ValidationError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.Is(err, roots.ErrUnsupportedDegree):
		return ExitErrorUnsupported
	case errors.As(err, &configErr):
		return ExitErrorConfig
	case errors.As(err, &inputErr), errors.As(err, &validErr):
		return ExitErrorInput
	default:
		return ExitErrorGeneric
	}
}

// HandleSolveError prints a status line describing why a solve failed and
// returns the matching exit code.
//
// Parameters:
//   - err: The error that occurred.
//   - duration: How long the work ran before failing (0 to omit).
//   - out: The io.Writer to which the message is written.
//   - colors: Provider for terminal color codes (nil for no colors).
//
// Returns:
//   - int: The exit code for the error class.
func HandleSolveError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = DefaultColorProvider{}
	}

	msgSuffix := ""
	if duration > 0 {
		msgSuffix = fmt.Sprintf(" after %s%s%s", colors.Yellow(), duration, colors.Reset())
	}

	code := ExitCodeFor(err)
	switch code {
	case ExitErrorTimeout:
		fmt.Fprintf(out, "Status: Failure (Timeout). The execution limit was reached%s.\n", msgSuffix)
	case ExitErrorCanceled:
		fmt.Fprintf(out, "%sStatus: Canceled%s.%s\n", colors.Yellow(), msgSuffix, colors.Reset())
	case ExitErrorUnsupported:
		var ude *roots.UnsupportedDegreeError
		if errors.As(err, &ude) {
			fmt.Fprintf(out, "%sUnsupported equation:%s %s\n", colors.Red(), colors.Reset(), ude.Error())
		} else {
			fmt.Fprintf(out, "%sUnsupported equation:%s %v\n", colors.Red(), colors.Reset(), err)
		}
	case ExitErrorConfig:
		fmt.Fprintf(out, "%sConfiguration error:%s %v\n", colors.Red(), colors.Reset(), err)
	case ExitErrorInput:
		fmt.Fprintf(out, "%sInvalid input:%s %v\n", colors.Red(), colors.Reset(), err)
	default:
		if errors.Is(err, complexnum.ErrDivisionByZero) {
			fmt.Fprintf(out, "%sStatus: Failure.%s Division by zero while solving: %v\n", colors.Red(), colors.Reset(), err)
			break
		}
		fmt.Fprintf(out, "Status: Failure. An unexpected error occurred: %v\n", err)
	}
	return code
}
