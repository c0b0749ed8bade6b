// Command polyroots finds the real and complex roots of linear, quadratic
// and cubic polynomials from the command line, a batch file, an
// interactive prompt or an HTTP API.
package main

import (
	"context"
	"os"

	"github.com/agbru/polyroots/internal/app"
	apperrors "github.com/agbru/polyroots/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		os.Exit(apperrors.ExitSuccess)
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		os.Exit(apperrors.ExitErrorConfig)
	}

	os.Exit(application.Run(context.Background(), os.Stdout))
}
