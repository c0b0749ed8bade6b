package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/polyroots/internal/config"
	apperrors "github.com/agbru/polyroots/internal/errors"
	"github.com/agbru/polyroots/internal/logging"
	"github.com/agbru/polyroots/internal/service"
	"github.com/agbru/polyroots/internal/testutil"
	"github.com/agbru/polyroots/pkg/models"
)

// newTestApp parses args like main does and captures both writers.
func newTestApp(t *testing.T, args ...string) (*Application, *bytes.Buffer) {
	t.Helper()
	var errBuf bytes.Buffer
	app, err := New(append([]string{"polyroots", "-no-color"}, args...), &errBuf)
	require.NoError(t, err, errBuf.String())
	app.In = strings.NewReader("")
	return app, &errBuf
}

func run(t *testing.T, app *Application) (int, string) {
	t.Helper()
	var out bytes.Buffer
	code := app.Run(context.Background(), &out)
	return code, testutil.StripAnsiCodes(out.String())
}

func writeBatch(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		app, _ := newTestApp(t, "-c", "1 2")
		assert.Equal(t, "1 2", app.Config.Coefficients)
		assert.Equal(t, config.DefaultPrecision, app.Config.Precision)
		assert.NotNil(t, app.Solver)
		assert.NotNil(t, app.Logger)
	})

	t.Run("help", func(t *testing.T) {
		t.Parallel()
		_, err := New([]string{"polyroots", "-h"}, &bytes.Buffer{})
		assert.True(t, IsHelpError(err))
	})

	t.Run("invalid configuration", func(t *testing.T) {
		t.Parallel()
		var errBuf bytes.Buffer
		_, err := New([]string{"polyroots", "-precision", "99"}, &errBuf)
		var cfgErr apperrors.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.False(t, IsHelpError(err))
		assert.Contains(t, errBuf.String(), "Configuration error:")
	})

	t.Run("no program name", func(t *testing.T) {
		t.Parallel()
		app, err := New(nil, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Empty(t, app.Config.Coefficients)
	})
}

func TestRunSingleSolve(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		args []string
		code int
		out  []string
		err  string
	}{
		{"human", []string{"-c", "-6 11 -6 1"}, apperrors.ExitSuccess,
			[]string{"Polynomial: x^3 - 6x^2 + 11x - 6", "Strategy:   cubic (degree 3)", "x1 = "}, ""},
		{"positional", []string{"--", "-4", "2"}, apperrors.ExitSuccess, []string{"Root:", "x1 = 2.000000"}, ""},
		{"quiet", []string{"-q", "-precision", "2", "-c", "-1,0,1"}, apperrors.ExitSuccess, []string{"1.00\n-1.00\n"}, ""},
		{"unsupported", []string{"-c", "1 0 0 0 1"}, apperrors.ExitErrorUnsupported, nil, "Unsupported equation"},
		{"constant", []string{"-c", "5"}, apperrors.ExitErrorUnsupported, nil, "constant equation"},
		{"bad input", []string{"-c", "1 two"}, apperrors.ExitErrorInput, nil, `invalid input "two"`},
		{"too many", []string{"-max-coefficients", "3", "-c", "1 2 3 4"}, apperrors.ExitErrorInput, nil, "too many coefficients"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			app, errBuf := newTestApp(t, tt.args...)
			code, out := run(t, app)
			assert.Equal(t, tt.code, code, "stderr: %s", errBuf.String())
			for _, want := range tt.out {
				assert.Contains(t, out, want)
			}
			if tt.err != "" {
				assert.Contains(t, testutil.StripAnsiCodes(errBuf.String()), tt.err)
			}
		})
	}
}

func TestRunSingleSolveJSON(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t, "-json", "-c", "2 0 1")
	code, out := run(t, app)
	require.Equal(t, apperrors.ExitSuccess, code)

	var sol models.Solution
	require.NoError(t, json.Unmarshal([]byte(out), &sol))
	assert.Equal(t, "quadratic", sol.Strategy)
	require.Len(t, sol.Roots, 2)
	assert.False(t, sol.Roots[0].Real)
}

func TestRunSingleSolveOutputFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "roots.txt")
	app, _ := newTestApp(t, "-o", path, "-c", "-4 2")
	code, out := run(t, app)
	require.Equal(t, apperrors.ExitSuccess, code)
	assert.Contains(t, out, "Result saved to: "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "x1 = 2.000000")
}

func TestRunPrompt(t *testing.T) {
	t.Parallel()

	t.Run("re-prompts until valid", func(t *testing.T) {
		t.Parallel()
		app, _ := newTestApp(t)
		app.In = strings.NewReader("abc\n-4 2\n")
		code, out := run(t, app)
		assert.Equal(t, apperrors.ExitSuccess, code)
		assert.Contains(t, out, `invalid input "abc"`)
		assert.Contains(t, out, "x1 = 2.000000")
	})

	t.Run("end of input", func(t *testing.T) {
		t.Parallel()
		app, errBuf := newTestApp(t)
		code, _ := run(t, app)
		assert.Equal(t, apperrors.ExitErrorInput, code)
		assert.Contains(t, errBuf.String(), "no coefficients given")
	})
}

func TestRunTimeout(t *testing.T) {
	t.Parallel()
	app, errBuf := newTestApp(t, "-c", "-4 2")
	app.Config.Timeout = time.Nanosecond
	code, _ := run(t, app)
	if code != apperrors.ExitSuccess {
		assert.Equal(t, apperrors.ExitErrorTimeout, code)
		assert.Contains(t, errBuf.String(), "Timeout")
	}
}

func TestRunBatch(t *testing.T) {
	t.Parallel()
	content := "# cubic and quadratic\n-6 11 -6 1\n\n2 0 1\n"

	t.Run("summary", func(t *testing.T) {
		t.Parallel()
		app, _ := newTestApp(t, "-batch", writeBatch(t, content), "-workers", "2")
		code, out := run(t, app)
		assert.Equal(t, apperrors.ExitSuccess, code)
		assert.Contains(t, out, "--- Batch Summary ---")
		assert.Contains(t, out, "Global Status: Success. 2 polynomials solved.")
	})

	t.Run("json report", func(t *testing.T) {
		t.Parallel()
		app, _ := newTestApp(t, "-json", "-batch", writeBatch(t, content+"1 x\n"))
		code, out := run(t, app)
		assert.Equal(t, apperrors.ExitErrorInput, code)

		var report models.BatchReport
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Equal(t, 2, report.Succeeded)
		assert.Equal(t, 1, report.Failed)
		assert.Equal(t, 5, report.Items[2].Line)
	})

	t.Run("quiet", func(t *testing.T) {
		t.Parallel()
		app, errBuf := newTestApp(t, "-q", "-precision", "1", "-batch", writeBatch(t, "-1 0 1\n1 0 0 0 1\n"))
		code, out := run(t, app)
		assert.Equal(t, apperrors.ExitErrorUnsupported, code)
		assert.Equal(t, "1.0\t-1.0\n", out)
		assert.Contains(t, errBuf.String(), "line 2:")
	})

	t.Run("report file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "report.json")
		app, _ := newTestApp(t, "-o", path, "-batch", writeBatch(t, content))
		code, _ := run(t, app)
		require.Equal(t, apperrors.ExitSuccess, code)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var report models.BatchReport
		require.NoError(t, json.Unmarshal(data, &report))
		assert.Equal(t, 2, report.Succeeded)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		app, errBuf := newTestApp(t, "-batch", filepath.Join(t.TempDir(), "absent.txt"))
		code, _ := run(t, app)
		assert.Equal(t, apperrors.ExitErrorConfig, code)
		assert.Contains(t, errBuf.String(), "Batch error")
	})
}

func TestRunCompletion(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t, "-completion", "bash")
	code, out := run(t, app)
	assert.Equal(t, apperrors.ExitSuccess, code)
	assert.Contains(t, out, "_polyroots_completions")
}

func TestRunCompletionInvalid(t *testing.T) {
	t.Parallel()
	var errBuf bytes.Buffer
	app := &Application{Config: config.AppConfig{Completion: "tcsh"}, ErrWriter: &errBuf}
	code := app.Run(context.Background(), &bytes.Buffer{})
	assert.Equal(t, apperrors.ExitErrorConfig, code)
	assert.Contains(t, errBuf.String(), "Error generating completion")
}

func TestRunREPL(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t, "-interactive", "-precision", "2")
	app.In = strings.NewReader("-4 2\nexit\n")
	code, out := run(t, app)
	assert.Equal(t, apperrors.ExitSuccess, code)
	assert.Contains(t, out, "x1 = 2.00")
	assert.Contains(t, out, "Goodbye!")
	assert.NotContains(t, out, "roots> ", "no prompt for piped input")
}

func TestRunServerBadPort(t *testing.T) {
	t.Parallel()
	var errBuf bytes.Buffer
	app := &Application{
		Config:    config.AppConfig{ServerMode: true, Port: "-1", Timeout: time.Second, NoColor: true},
		Solver:    service.NewRootService(0, nil),
		Logger:    logging.NewNopLogger(),
		ErrWriter: &errBuf,
	}
	code, out := run(t, app)
	assert.Equal(t, apperrors.ExitErrorGeneric, code)
	assert.Contains(t, out, "listening on :-1")
	assert.Contains(t, errBuf.String(), "Server error")
}
