package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/polyroots/internal/complexnum"
	"github.com/agbru/polyroots/internal/service"
	"github.com/agbru/polyroots/internal/ui"
	"github.com/agbru/polyroots/pkg/models"
)

// OutputConfig holds the rendering options for a solution.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Precision is the number of decimals for each root part.
	Precision int
	// Quiet prints one root per line and nothing else.
	Quiet bool
	// JSON prints the solution as an indented JSON document.
	JSON bool
}

// formatPart renders one real number. Values that round to zero never
// carry a minus sign.
func formatPart(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.HasPrefix(s, "-") && roundsToZero(s) {
		return s[1:]
	}
	return s
}

func roundsToZero(text string) bool {
	return strings.Trim(text, "-0.") == ""
}

// rendersReal reports whether r prints without an imaginary part at the
// given precision.
func rendersReal(r complexnum.Complex, precision int) bool {
	return roundsToZero(formatPart(r.Im(), precision))
}

// FormatRoot renders a root as "X", "Yi", "X + Yi" or "X - Yi" with
// precision decimals per part. A part that rounds to zero at that precision
// is left out, so a root with a negligible imaginary part prints as real.
func FormatRoot(r complexnum.Complex, precision int) string {
	re, im := r.Re()+0, r.Im()+0
	reText := formatPart(re, precision)
	switch {
	case rendersReal(r, precision):
		return reText
	case roundsToZero(reText):
		return formatPart(im, precision) + "i"
	case im < 0:
		return fmt.Sprintf("%s - %si", reText, formatPart(-im, precision))
	default:
		return fmt.Sprintf("%s + %si", reText, formatPart(im, precision))
	}
}

// ToModel converts a solution to its JSON document.
func ToModel(sol *service.Solution, precision int) models.Solution {
	roots := make([]models.Root, len(sol.Roots))
	for i, r := range sol.Roots {
		roots[i] = models.Root{
			Re:   models.Number(r.Re() + 0),
			Im:   models.Number(r.Im() + 0),
			Real: r.IsReal(),
			Text: FormatRoot(r, precision),
		}
	}
	return models.Solution{
		Polynomial:   sol.Polynomial,
		Coefficients: sol.Coefficients,
		Strategy:     sol.Strategy.Name(),
		Degree:       sol.Strategy.Degree(),
		Roots:        roots,
		DurationUS:   float64(sol.Duration.Nanoseconds()) / 1e3,
	}
}

// DisplaySolution prints the polynomial, its strategy and its roots, one
// labeled line per root.
func DisplaySolution(out io.Writer, sol *service.Solution, precision int) {
	fmt.Fprintf(out, "Polynomial: %s%s%s\n", ColorBold(), sol.Polynomial, ColorReset())
	fmt.Fprintf(out, "Strategy:   %s%s%s (degree %d)\n", ColorBlue(), sol.Strategy.Name(), ColorReset(), sol.Strategy.Degree())
	label := "Roots"
	if len(sol.Roots) == 1 {
		label = "Root"
	}
	fmt.Fprintf(out, "%s:\n", label)
	for i, r := range sol.Roots {
		fmt.Fprintf(out, "  x%d = %s%s%s\n", i+1, ui.ColorRoot(rendersReal(r, precision)), FormatRoot(r, precision), ColorReset())
	}
	durationStr := FormatExecutionDuration(sol.Duration)
	if sol.Duration == 0 {
		durationStr = "< 1µs"
	}
	fmt.Fprintf(out, "Solved in %s%s%s\n", ColorYellow(), durationStr, ColorReset())
}

// DisplayQuietSolution prints one root per line for scripts.
func DisplayQuietSolution(out io.Writer, sol *service.Solution, precision int) {
	for _, r := range sol.Roots {
		fmt.Fprintln(out, FormatRoot(r, precision))
	}
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// WriteSolutionToFile saves the solution as a commented text report.
//
// Returns:
//   - error: An error if the directory or file cannot be written.
func WriteSolutionToFile(sol *service.Solution, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if config.JSON {
		return WriteJSON(file, ToModel(sol, config.Precision))
	}

	fmt.Fprintf(file, "# Polynomial Roots\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Strategy: %s\n", sol.Strategy.Name())
	fmt.Fprintf(file, "# Duration: %s\n", sol.Duration)
	fmt.Fprintf(file, "\n%s = 0\n", sol.Polynomial)
	for i, r := range sol.Roots {
		fmt.Fprintf(file, "x%d = %s\n", i+1, FormatRoot(r, config.Precision))
	}
	return nil
}

// DisplaySolutionWithConfig renders a solution in the configured mode and
// saves it to the output file if one is set.
func DisplaySolutionWithConfig(out io.Writer, sol *service.Solution, config OutputConfig) error {
	switch {
	case config.JSON:
		if err := WriteJSON(out, ToModel(sol, config.Precision)); err != nil {
			return err
		}
	case config.Quiet:
		DisplayQuietSolution(out, sol, config.Precision)
	default:
		DisplaySolution(out, sol, config.Precision)
	}

	if config.OutputFile != "" {
		if err := WriteSolutionToFile(sol, config); err != nil {
			return err
		}
		if !config.Quiet && !config.JSON {
			fmt.Fprintf(out, "%s✓ Result saved to: %s%s%s\n", ColorGreen(), ColorGrey(), config.OutputFile, ColorReset())
		}
	}
	return nil
}
