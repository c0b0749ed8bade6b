// Package config defines the polyroots configuration, parses it from
// command-line flags with environment overrides, and validates it.
package config

import (
	"flag"
	"fmt"
	"io"
	"runtime"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/polyroots/internal/errors"
	"github.com/agbru/polyroots/internal/logging"
)

// EnvPrefix is the prefix for all environment variables read by polyroots.
const EnvPrefix = "POLYROOTS_"

// Default configuration values.
const (
	// DefaultTimeout bounds a whole CLI run, batch included.
	DefaultTimeout = 30 * time.Second
	// DefaultPort is the default server port.
	DefaultPort = "8080"
	// DefaultPrecision is the number of decimals printed for each root part.
	DefaultPrecision = 6
	// MaxPrecision is the largest useful number of decimals for a float64.
	MaxPrecision = 17
	// DefaultMaxCoefficients caps the coefficients accepted from one input.
	// Trailing zeros count, so it is larger than the four a cubic needs.
	DefaultMaxCoefficients = 16
	// DefaultLogLevel is the zerolog level name used when none is given.
	DefaultLogLevel = "warn"
)

// SupportedShells lists the shells -completion accepts.
var SupportedShells = []string{"bash", "zsh", "fish", "powershell"}

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Coefficients is the raw coefficient text given with -c, constant term
	// first. Empty means prompt on stdin.
	Coefficients string
	// BatchFile names a file with one polynomial per line.
	BatchFile string
	// Workers bounds concurrent solves in batch mode.
	Workers int
	// Timeout sets the maximum duration of a CLI run.
	Timeout time.Duration
	// JSONOutput prints results as JSON.
	JSONOutput bool
	// Quiet prints one root per line and nothing else.
	Quiet bool
	// Precision is the number of decimals for each root part.
	Precision int
	// OutputFile, if set, also writes the result to this path.
	OutputFile string
	// ServerMode starts the HTTP API instead of the CLI.
	ServerMode bool
	// Port is the listen port in server mode.
	Port string
	// MaxCoefficients caps the coefficients of a single input.
	MaxCoefficients int
	// Interactive starts the REPL.
	Interactive bool
	// NoColor disables colors (NO_COLOR is honored too).
	NoColor bool
	// Completion, if set, prints a completion script for that shell.
	Completion string
	// LogLevel is the zerolog level name for diagnostic logs.
	LogLevel string
}

// Validate checks the semantic consistency of the configuration.
//
// Returns:
//   - error: A ConfigError describing the first problem found, or nil.
func (c AppConfig) Validate() error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.Workers < 1 {
		return apperrors.NewConfigError("worker count must be at least 1, got %d", c.Workers)
	}
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return apperrors.NewConfigError("precision must be between 0 and %d, got %d", MaxPrecision, c.Precision)
	}
	if c.MaxCoefficients < 2 {
		return apperrors.NewConfigError("max-coefficients must be at least 2, got %d", c.MaxCoefficients)
	}
	if c.Coefficients != "" && c.BatchFile != "" {
		return apperrors.NewConfigError("-c and -batch cannot be used together")
	}
	if c.ServerMode && c.Port == "" {
		return apperrors.NewConfigError("server mode requires a port")
	}
	if c.Completion != "" && !slices.Contains(SupportedShells, c.Completion) {
		return apperrors.NewConfigError("unsupported shell %q for completion, expected one of %v", c.Completion, SupportedShells)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("invalid log level %q", c.LogLevel)
	}
	return nil
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// POLYROOTS_* environment overrides for flags not given explicitly, and
// validates the result.
//
// Parameters:
//   - programName: The name used in the usage message.
//   - args: The arguments without the program name.
//   - errorWriter: Destination for parse errors and usage text.
//
// Returns:
//   - AppConfig: The populated configuration.
//   - error: flag.ErrHelp, a flag parse error, or a ConfigError.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.StringVar(&config.Coefficients, "c", "", "Coefficients, constant term first, separated by spaces or commas.")
	fs.StringVar(&config.Coefficients, "coeffs", "", "Alias for -c.")
	fs.StringVar(&config.BatchFile, "batch", "", "Solve every polynomial in `file`, one per line.")
	fs.IntVar(&config.Workers, "workers", runtime.NumCPU(), "Concurrent solves in batch mode.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time.")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output results in JSON format.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - one root per line for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.IntVar(&config.Precision, "precision", DefaultPrecision, "Decimals printed for each root part.")
	fs.StringVar(&config.OutputFile, "output", "", "Also write the result to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file (shorthand).")
	fs.BoolVar(&config.ServerMode, "server", false, "Start in HTTP server mode.")
	fs.StringVar(&config.Port, "port", DefaultPort, "Port to listen on in server mode.")
	fs.IntVar(&config.MaxCoefficients, "max-coefficients", DefaultMaxCoefficients, "Largest coefficient list accepted from one input.")
	fs.BoolVar(&config.Interactive, "interactive", false, "Start in interactive REPL mode.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.StringVar(&config.Completion, "completion", "", "Generate shell completion script (bash, zsh, fish, powershell).")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Diagnostic log level (debug, info, warn, error, disabled).")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	// Positional arguments are coefficients too; "--" lets them start with '-'.
	if fs.NArg() > 0 {
		if config.Coefficients != "" {
			return AppConfig{}, apperrors.NewConfigError("coefficients given both with -c and as arguments")
		}
		config.Coefficients = strings.Join(fs.Args(), " ")
	}

	applyEnvOverrides(&config, fs)

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, err
	}
	return config, nil
}
