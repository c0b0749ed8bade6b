package config

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/agbru/polyroots/internal/errors"
)

func validConfig() AppConfig {
	return AppConfig{
		Workers:         4,
		Timeout:         time.Minute,
		Precision:       DefaultPrecision,
		Port:            DefaultPort,
		MaxCoefficients: DefaultMaxCoefficients,
		LogLevel:        DefaultLogLevel,
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name        string
		mutate      func(*AppConfig)
		expectError bool
	}{
		{"Valid", func(*AppConfig) {}, false},
		{"ZeroTimeout", func(c *AppConfig) { c.Timeout = 0 }, true},
		{"NegativeTimeout", func(c *AppConfig) { c.Timeout = -time.Second }, true},
		{"ZeroWorkers", func(c *AppConfig) { c.Workers = 0 }, true},
		{"NegativePrecision", func(c *AppConfig) { c.Precision = -1 }, true},
		{"ZeroPrecision", func(c *AppConfig) { c.Precision = 0 }, false},
		{"MaxPrecision", func(c *AppConfig) { c.Precision = MaxPrecision }, false},
		{"PrecisionTooLarge", func(c *AppConfig) { c.Precision = MaxPrecision + 1 }, true},
		{"MaxCoefficientsTooSmall", func(c *AppConfig) { c.MaxCoefficients = 1 }, true},
		{"MaxCoefficientsLinearOnly", func(c *AppConfig) { c.MaxCoefficients = 2 }, false},
		{"BatchAndCoefficients", func(c *AppConfig) { c.BatchFile = "f"; c.Coefficients = "1 2" }, true},
		{"ServerWithoutPort", func(c *AppConfig) { c.ServerMode = true; c.Port = "" }, true},
		{"CompletionBash", func(c *AppConfig) { c.Completion = "bash" }, false},
		{"CompletionUnknownShell", func(c *AppConfig) { c.Completion = "tcsh" }, true},
		{"EmptyLogLevel", func(c *AppConfig) { c.LogLevel = "" }, false},
		{"BadLogLevel", func(c *AppConfig) { c.LogLevel = "chatty" }, true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.expectError && err == nil {
				t.Error("Expected validation error but got nil")
			}
			if !tc.expectError && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
			if err != nil {
				var configErr apperrors.ConfigError
				if !errors.As(err, &configErr) {
					t.Errorf("Expected ConfigError, got %T", err)
				}
			}
		})
	}
}
