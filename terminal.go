package inky

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// envOverrides are the environment knobs applied on top of terminal
// detection. The pointer fields distinguish "unset" from "false".
type envOverrides struct {
	Colors      *bool `env:"INKY_COLORS"`
	Bold        *bool `env:"INKY_BOLD"`
	Development bool  `env:"INKY_DEV"`
}

// DetectOptions derives formatter options from the terminal and environment.
// Colors are enabled when stdout is a terminal with a color-capable profile
// and NO_COLOR is unset (see https://no-color.org); bold follows colors.
// The INKY_COLORS and INKY_BOLD variables override the detected values, and
// INKY_DEV enables development mode. The package-level Default formatter is
// built from these options.
//
// Example:
//
//	formatter := New(append([]Option{WithWriter(os.Stderr)}, DetectOptions()...)...)
func DetectOptions() []Option {
	colors := detectColors()
	bold := colors
	development := false

	var o envOverrides
	if err := env.Parse(&o); err == nil {
		if o.Colors != nil {
			colors = *o.Colors
		}
		if o.Bold != nil {
			bold = *o.Bold
		}
		development = o.Development
	}

	return []Option{
		WithColors(colors),
		WithBold(bold),
		WithDevelopment(development),
	}
}

// detectColors reports whether colored output should be used.
// NO_COLOR takes precedence (any non-empty value disables colors), then
// stdout must be a terminal whose profile supports color.
func detectColors() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}
