package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// getEnvString returns POLYROOTS_<key>, or defaultVal if unset or empty.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt returns POLYROOTS_<key> parsed as int, or defaultVal if unset or
// invalid.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvBool returns POLYROOTS_<key> parsed as bool. It accepts "true", "1",
// "yes" and "false", "0", "no" (case-insensitive); anything else yields
// defaultVal.
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}

// getEnvDuration returns POLYROOTS_<key> parsed as a time.Duration ("30s",
// "1m"), or defaultVal if unset or invalid.
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// isFlagSet reports whether any of names was given on the command line.
func isFlagSet(fs *flag.FlagSet, names ...string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		for _, name := range names {
			if f.Name == name {
				found = true
			}
		}
	})
	return found
}

// applyEnvOverrides fills every field whose flag was not given explicitly
// from its environment variable. Priority: flags > environment > defaults.
//
// Supported environment variables:
//   - POLYROOTS_COEFFICIENTS: coefficient text (string)
//   - POLYROOTS_BATCH: batch file path (string)
//   - POLYROOTS_WORKERS: batch concurrency (int)
//   - POLYROOTS_TIMEOUT: run timeout (duration: "30s", "2m")
//   - POLYROOTS_JSON, POLYROOTS_QUIET, POLYROOTS_SERVER,
//     POLYROOTS_INTERACTIVE, POLYROOTS_NO_COLOR (bool)
//   - POLYROOTS_PRECISION: decimals per root part (int)
//   - POLYROOTS_OUTPUT: output file path (string)
//   - POLYROOTS_PORT: server port (string)
//   - POLYROOTS_MAX_COEFFICIENTS: input size cap (int)
//   - POLYROOTS_LOG_LEVEL: zerolog level name (string)
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	applyNumericOverrides(config, fs)
	applyStringOverrides(config, fs)
	applyBooleanOverrides(config, fs)
	if !isFlagSet(fs, "timeout") {
		config.Timeout = getEnvDuration("TIMEOUT", config.Timeout)
	}
}

func applyNumericOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "workers") {
		config.Workers = getEnvInt("WORKERS", config.Workers)
	}
	if !isFlagSet(fs, "precision") {
		config.Precision = getEnvInt("PRECISION", config.Precision)
	}
	if !isFlagSet(fs, "max-coefficients") {
		config.MaxCoefficients = getEnvInt("MAX_COEFFICIENTS", config.MaxCoefficients)
	}
}

func applyStringOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "c", "coeffs") {
		config.Coefficients = getEnvString("COEFFICIENTS", config.Coefficients)
	}
	if !isFlagSet(fs, "batch") {
		config.BatchFile = getEnvString("BATCH", config.BatchFile)
	}
	if !isFlagSet(fs, "output", "o") {
		config.OutputFile = getEnvString("OUTPUT", config.OutputFile)
	}
	if !isFlagSet(fs, "port") {
		config.Port = getEnvString("PORT", config.Port)
	}
	if !isFlagSet(fs, "log-level") {
		config.LogLevel = getEnvString("LOG_LEVEL", config.LogLevel)
	}
}

func applyBooleanOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "json") {
		config.JSONOutput = getEnvBool("JSON", config.JSONOutput)
	}
	if !isFlagSet(fs, "quiet", "q") {
		config.Quiet = getEnvBool("QUIET", config.Quiet)
	}
	if !isFlagSet(fs, "server") {
		config.ServerMode = getEnvBool("SERVER", config.ServerMode)
	}
	if !isFlagSet(fs, "interactive") {
		config.Interactive = getEnvBool("INTERACTIVE", config.Interactive)
	}
	if !isFlagSet(fs, "no-color") {
		config.NoColor = getEnvBool("NO_COLOR", config.NoColor)
	}
}
