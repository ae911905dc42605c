package inky

import "os"

// Predefined severity levels for logging.
const (
	// InfoIssuer indicates normal operational messages for tracking progress
	InfoIssuer Severity = iota

	// WarningIssuer signifies potential issues that don't disrupt core functionality
	WarningIssuer

	// ErrorIssuer denotes failures in specific operations or components
	ErrorIssuer

	// DebugIssuer represents development diagnostics, emitted only when the
	// formatter is in development mode
	DebugIssuer
)

// ANSI escape sequences used for colored output.
const (
	codeReset = "\x1b[0m"
	codeBold  = "\x1b[1m"

	colorRed     = "\x1b[31m"
	colorYellow  = "\x1b[33m"
	colorMagenta = "\x1b[35m"
	colorCyan    = "\x1b[36m"
)

// marker delimits an emphasis span within a message.
const marker = '*'

// fallbackPrefix labels native log lines when no explicit prefix is given and
// no usable PrefixSource is registered.
const fallbackPrefix = "NATIVE"

// Default is a pre-configured Formatter instance intended for general use.
// It writes to os.Stdout with its color, bold, and development settings
// derived from the terminal and environment (NO_COLOR, TTY detection, and the
// INKY_COLORS, INKY_BOLD, and INKY_DEV variables).
var Default = New(append([]Option{WithWriter(os.Stdout)}, DetectOptions()...)...)

// Label returns the fixed uppercase display label for the severity.
// Unknown values degrade to the Info label.
func (s Severity) Label() string {
	switch s {
	case WarningIssuer:
		return "WARNING"
	case ErrorIssuer:
		return "ERROR"
	case DebugIssuer:
		return "DEBUG"
	default:
		return "INFO"
	}
}

// String implements fmt.Stringer.
func (s Severity) String() string {
	return s.Label()
}

// color returns the ANSI color sequence for the severity. Colors are a pure
// function of severity; unknown values degrade to the Info color.
func (s Severity) color() string {
	switch s {
	case WarningIssuer:
		return colorYellow
	case ErrorIssuer:
		return colorRed
	case DebugIssuer:
		return colorMagenta
	default:
		return colorCyan
	}
}
