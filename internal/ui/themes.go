// Package ui holds the color themes shared by the CLI, the usage text and the
// error handler. Every color is a raw ANSI escape sequence; the no-color theme
// maps each one to the empty string.
package ui

import (
	"os"
	"sync"
)

// Theme is a named set of ANSI escape codes.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the accent used for headings and flag names.
	Primary string
	// Secondary is used for defaults and other muted text.
	Secondary string
	// Success marks a completed solve.
	Success string
	// Warning marks cancellations and durations.
	Warning string
	// Error marks failures.
	Error string
	// Real colors roots with a zero imaginary part.
	Real string
	// Complex colors roots with a non-zero imaginary part.
	Complex string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme suits dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Real:      "\033[38;5;51m",  // Cyan
		Complex:   "\033[38;5;141m", // Purple
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// LightTheme suits light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",  // Dark blue
		Secondary: "\033[38;5;240m", // Dark grey
		Success:   "\033[38;5;28m",  // Dark green
		Warning:   "\033[38;5;130m", // Orange
		Error:     "\033[38;5;124m", // Dark red
		Real:      "\033[38;5;30m",  // Teal
		Complex:   "\033[38;5;54m",  // Dark purple
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// ThemeNames lists the names accepted by SetTheme.
func ThemeNames() []string {
	return []string{DarkTheme.Name, LightTheme.Name, NoColorTheme.Name}
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme activates a theme by name. Unknown names select the dark theme.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = themeByName(name)
}

func themeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme
	case "none":
		return NoColorTheme
	default:
		return DarkTheme
	}
}

// InitTheme picks the startup theme. Colors are disabled when noColor is
// true or when NO_COLOR is present in the environment (https://no-color.org/).
// Otherwise POLYROOTS_THEME may name the theme; the dark theme is the default.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = themeByName(os.Getenv("POLYROOTS_THEME"))
}
