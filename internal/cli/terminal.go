package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal. Prompts and
// banners are only printed for interactive input.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// PromptCoefficients reads lines from in until one parses as a coefficient
// list. Each rejected line is reported on out and the prompt is repeated.
// showPrompt controls the prompt text so piped input stays quiet.
//
// Returns:
//   - []float64: The first valid coefficient list.
//   - error: io.EOF if the input ended first, or a read error.
func PromptCoefficients(in *bufio.Reader, out io.Writer, showPrompt bool) ([]float64, error) {
	for {
		if showPrompt {
			fmt.Fprintf(out, "Enter coefficients, constant term first (e.g. %s-6 11 -6 1%s): ", ColorYellow(), ColorReset())
		}
		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if strings.TrimSpace(line) != "" {
			coefficients, parseErr := ParseCoefficients(line)
			if parseErr == nil {
				return coefficients, nil
			}
			fmt.Fprintf(out, "%s%v%s\n", ColorRed(), parseErr, ColorReset())
		}
		if err != nil {
			return nil, io.EOF
		}
	}
}
