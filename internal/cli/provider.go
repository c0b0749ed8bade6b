package cli

import apperrors "github.com/agbru/polyroots/internal/errors"

var _ apperrors.ColorProvider = CLIColorProvider{}

// CLIColorProvider implements apperrors.ColorProvider with the current theme.
type CLIColorProvider struct{}

// Yellow returns the warning color.
func (c CLIColorProvider) Yellow() string { return ColorYellow() }

// Red returns the error color.
func (c CLIColorProvider) Red() string { return ColorRed() }

// Reset returns the reset code.
func (c CLIColorProvider) Reset() string { return ColorReset() }
