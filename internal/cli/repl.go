package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/agbru/polyroots/internal/errors"
	"github.com/agbru/polyroots/internal/service"
)

// REPLConfig holds the settings of an interactive session.
type REPLConfig struct {
	// Precision is the number of decimals for each root part.
	Precision int
	// Timeout bounds each solve.
	Timeout time.Duration
	// JSON prints solutions as JSON documents.
	JSON bool
	// ShowBanner prints the banner, the help and the prompt. It is off for
	// piped input.
	ShowBanner bool
}

// REPL is an interactive solving session.
type REPL struct {
	config REPLConfig
	solver service.Solver
	in     io.Reader
	out    io.Writer
}

// NewREPL creates a session reading stdin and writing stdout.
func NewREPL(solver service.Solver, config REPLConfig) *REPL {
	return &REPL{
		config: config,
		solver: solver,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) { r.in = in }

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) { r.out = out }

// Start reads commands until "exit" or end of input.
func (r *REPL) Start() {
	if r.config.ShowBanner {
		r.printBanner()
		r.printHelp()
		fmt.Fprintln(r.out)
	}

	reader := bufio.NewReader(r.in)
	for {
		if r.config.ShowBanner {
			fmt.Fprint(r.out, ColorGreen()+"roots> "+ColorReset())
		}

		input, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ColorRed(), err, ColorReset())
			return
		}
		if line := strings.TrimSpace(input); line != "" {
			if !r.processCommand(line) {
				return
			}
		}
		if err != nil {
			if r.config.ShowBanner {
				fmt.Fprintln(r.out, "\nGoodbye!")
			}
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ColorBlue(), ColorReset())
	fmt.Fprintf(r.out, "%s║%s       %sPolynomial Root Finder - Interactive Mode%s          %s║%s\n",
		ColorBlue(), ColorReset(), ColorBold(), ColorReset(), ColorBlue(), ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ColorBlue(), ColorReset())
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ColorBold(), ColorReset())
	fmt.Fprintf(r.out, "  %s<c0> <c1> ...%s     - Solve, constant term first (e.g. -6 11 -6 1)\n", ColorYellow(), ColorReset())
	fmt.Fprintf(r.out, "  %ssolve <c0> ...%s    - Same as above\n", ColorYellow(), ColorReset())
	fmt.Fprintf(r.out, "  %sprecision <n>%s     - Set decimals per root part (0-17)\n", ColorYellow(), ColorReset())
	fmt.Fprintf(r.out, "  %sjson%s              - Toggle JSON output\n", ColorYellow(), ColorReset())
	fmt.Fprintf(r.out, "  %sstrategies%s        - List supported equation types\n", ColorYellow(), ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s            - Display current settings\n", ColorYellow(), ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s              - Display this help\n", ColorYellow(), ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s       - Leave interactive mode\n", ColorYellow(), ColorReset(), ColorYellow(), ColorReset())
}

// processCommand runs one command line. It returns false to end the session.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "solve", "s":
		r.cmdSolve(strings.Join(args, " "))
	case "precision", "p":
		r.cmdPrecision(args)
	case "json":
		r.config.JSON = !r.config.JSON
		fmt.Fprintf(r.out, "JSON output: %s%t%s\n", ColorGreen(), r.config.JSON, ColorReset())
	case "strategies", "list", "ls":
		r.cmdStrategies()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ColorGreen(), ColorReset())
		return false
	default:
		if _, err := ParseCoefficients(input); err == nil {
			r.cmdSolve(input)
			return true
		}
		fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ColorRed(), cmd, ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ColorYellow(), ColorReset())
	}
	return true
}

func (r *REPL) cmdSolve(text string) {
	coefficients, err := ParseCoefficients(text)
	if err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ColorRed(), err, ColorReset())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	sol, err := r.solver.Solve(ctx, coefficients)
	if err != nil {
		apperrors.HandleSolveError(err, 0, r.out, CLIColorProvider{})
		return
	}
	if err := DisplaySolutionWithConfig(r.out, sol, OutputConfig{Precision: r.config.Precision, JSON: r.config.JSON}); err != nil {
		fmt.Fprintf(r.out, "%sOutput error: %v%s\n", ColorRed(), err, ColorReset())
	}
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdPrecision(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: precision <n>%s\n", ColorRed(), ColorReset())
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 || n > 17 {
		fmt.Fprintf(r.out, "%sInvalid precision: %s (expected 0-17)%s\n", ColorRed(), args[0], ColorReset())
		return
	}
	r.config.Precision = n
	fmt.Fprintf(r.out, "Precision set to %s%d%s decimals\n", ColorGreen(), n, ColorReset())
}

func (r *REPL) cmdStrategies() {
	fmt.Fprintf(r.out, "\n%sSupported equations:%s\n", ColorBold(), ColorReset())
	for _, s := range service.Strategies() {
		fmt.Fprintf(r.out, "  %s%-10s%s degree %d, %d coefficients\n", ColorYellow(), s.Name, ColorReset(), s.Degree, s.Coefficients)
	}
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent settings:%s\n", ColorBold(), ColorReset())
	fmt.Fprintf(r.out, "  Precision: %s%d%s\n", ColorGrey(), r.config.Precision, ColorReset())
	fmt.Fprintf(r.out, "  Timeout:   %s%s%s\n", ColorGrey(), r.config.Timeout, ColorReset())
	fmt.Fprintf(r.out, "  JSON:      %s%t%s\n", ColorGrey(), r.config.JSON, ColorReset())
	fmt.Fprintln(r.out)
}
