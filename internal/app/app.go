package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/agbru/polyroots/internal/cli"
	"github.com/agbru/polyroots/internal/config"
	apperrors "github.com/agbru/polyroots/internal/errors"
	"github.com/agbru/polyroots/internal/logging"
	"github.com/agbru/polyroots/internal/orchestration"
	"github.com/agbru/polyroots/internal/server"
	"github.com/agbru/polyroots/internal/service"
	"github.com/agbru/polyroots/internal/ui"
)

// Application is one polyroots invocation: its configuration and the
// collaborators every mode shares.
type Application struct {
	// Config holds the parsed application configuration.
	Config config.AppConfig
	// Solver answers every solve request, whatever the front end.
	Solver service.Solver
	// Logger receives diagnostics at the configured level.
	Logger logging.Logger
	// ErrWriter is the writer for error output (typically os.Stderr).
	ErrWriter io.Writer
	// In is read by the coefficient prompt and the REPL (typically os.Stdin).
	In io.Reader
}

// New parses the command line and builds the application.
//
// Parameters:
//   - args: The command-line arguments, program name first (os.Args).
//   - errWriter: The writer for usage and error output.
//
// Returns:
//   - *Application: A ready application.
//   - error: A flag.ErrHelp, a parse error, or an apperrors.ConfigError.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "polyroots"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, apperrors.NewConfigError("invalid log level %q", cfg.LogLevel)
	}
	logger := logging.NewLogger(errWriter, "polyroots", level)

	return &Application{
		Config:    cfg,
		Solver:    service.NewRootService(cfg.MaxCoefficients, logger),
		Logger:    logger,
		ErrWriter: errWriter,
		In:        os.Stdin,
	}, nil
}

// Run executes the configured mode: completion script, HTTP server, REPL,
// batch file, or a single solve (from -c or the stdin prompt).
//
// Parameters:
//   - ctx: The parent context; a timeout and signal handling are added.
//   - out: The writer for standard output.
//
// Returns:
//   - int: The process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	ui.InitTheme(a.Config.NoColor)

	switch {
	case a.Config.ServerMode:
		return a.runServer(out)
	case a.Config.Interactive:
		return a.runREPL(out)
	case a.Config.BatchFile != "":
		return a.runBatch(ctx, out)
	default:
		return a.runSolve(ctx, out)
	}
}

func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, cli.LogLevels); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

func (a *Application) runServer(out io.Writer) int {
	srv := server.NewServer(a.Config, server.WithLogger(a.Logger), server.WithService(a.Solver))
	fmt.Fprintf(out, "polyroots API listening on :%s (Ctrl+C to stop)\n", a.Config.Port)
	if err := srv.Start(); err != nil {
		fmt.Fprintf(a.ErrWriter, "Server error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

func (a *Application) runREPL(out io.Writer) int {
	repl := cli.NewREPL(a.Solver, cli.REPLConfig{
		Precision:  a.Config.Precision,
		Timeout:    a.Config.Timeout,
		JSON:       a.Config.JSONOutput,
		ShowBanner: a.interactiveInput(),
	})
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// interactiveInput reports whether In is a terminal.
func (a *Application) interactiveInput() bool {
	f, ok := a.In.(*os.File)
	return ok && cli.IsTerminal(f)
}

func (a *Application) outputConfig() cli.OutputConfig {
	return cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Precision:  a.Config.Precision,
		Quiet:      a.Config.Quiet,
		JSON:       a.Config.JSONOutput,
	}
}

// runSolve solves one polynomial given with -c or typed at the prompt.
func (a *Application) runSolve(ctx context.Context, out io.Writer) int {
	ctx, lifecycle := SetupLifecycle(ctx, a.Config.Timeout)
	defer lifecycle.Cleanup()

	coefficients, err := a.readCoefficients(out)
	if err != nil {
		return apperrors.HandleSolveError(err, 0, a.ErrWriter, cli.CLIColorProvider{})
	}

	start := time.Now()
	sol, err := a.Solver.Solve(ctx, coefficients)
	if err != nil {
		return apperrors.HandleSolveError(err, time.Since(start), a.ErrWriter, cli.CLIColorProvider{})
	}

	if err := cli.DisplaySolutionWithConfig(out, sol, a.outputConfig()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// readCoefficients parses -c, or prompts on In until a valid line is read.
func (a *Application) readCoefficients(out io.Writer) ([]float64, error) {
	if a.Config.Coefficients != "" {
		return cli.ParseCoefficients(a.Config.Coefficients)
	}
	coefficients, err := cli.PromptCoefficients(bufio.NewReader(a.In), out, a.interactiveInput() && !a.Config.Quiet)
	if errors.Is(err, io.EOF) {
		return nil, apperrors.NewInputError("", cli.ErrNoCoefficients)
	}
	return coefficients, err
}

// runBatch solves every line of the batch file concurrently.
func (a *Application) runBatch(ctx context.Context, out io.Writer) int {
	ctx, lifecycle := SetupLifecycle(ctx, a.Config.Timeout)
	defer lifecycle.Cleanup()

	jobs, err := orchestration.LoadBatch(a.Config.BatchFile)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Batch error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	progressOut := out
	if a.Config.Quiet || a.Config.JSONOutput {
		progressOut = io.Discard
	}

	results, err := orchestration.ExecuteBatch(ctx, a.Solver, jobs, a.Config.Workers, progressOut)
	if err != nil {
		a.Logger.Warn("batch finished with failures", logging.Err(err), logging.String("file", a.Config.BatchFile))
	}

	if a.Config.OutputFile != "" {
		if err := writeReportFile(a.Config.OutputFile, orchestration.BuildReport(results, a.Config.Precision)); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
	}

	switch {
	case a.Config.JSONOutput:
		if err := cli.WriteJSON(out, orchestration.BuildReport(results, a.Config.Precision)); err != nil {
			return apperrors.ExitErrorGeneric
		}
		return apperrors.ExitCodeFor(orchestration.FirstFailure(results))
	case a.Config.Quiet:
		for _, res := range results {
			if res.Err != nil {
				fmt.Fprintf(a.ErrWriter, "line %d: %v\n", res.Line, res.Err)
				continue
			}
			texts := make([]string, len(res.Solution.Roots))
			for i, r := range res.Solution.Roots {
				texts[i] = cli.FormatRoot(r, a.Config.Precision)
			}
			fmt.Fprintln(out, strings.Join(texts, "\t"))
		}
		return apperrors.ExitCodeFor(orchestration.FirstFailure(results))
	default:
		return orchestration.AnalyzeBatchResults(results, a.Config.Precision, out)
	}
}

func writeReportFile(path string, report any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()
	return cli.WriteJSON(f, report)
}

// IsHelpError reports whether err means -h or -help was given.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
