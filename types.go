package inky

import (
	"io"
	"sync"
)

// Severity defines the logging severity level as an unsigned 32-bit integer.
// Exactly four levels exist; each maps to one fixed display label and one
// fixed terminal color.
type Severity uint32

// Formatter renders log messages into printable console lines. It holds the
// process-wide formatting configuration (color and bold rendering, the
// development flag), the registered native-prefix source, and the output
// destination used by the convenience logging methods.
//
// All configuration fields are guarded by a single mutex; every formatting
// call reads one consistent snapshot of the configuration, so a message never
// mixes settings from before and after a concurrent Configure call.
type Formatter struct {
	mu          sync.RWMutex
	colors      bool         // Emit ANSI color sequences around each line.
	bold        bool         // Render emphasis spans with the ANSI bold code.
	development bool         // When false, Debug-severity calls are no-ops.
	prefix      PrefixSource // Fallback source for native-log prefixes.
	writer      io.Writer    // Destination for the convenience methods (e.g., os.Stdout).
}

// Option defines a functional option for configuring a Formatter instance during creation.
// Each Option is a function that accepts a pointer to a Formatter and modifies its configuration.
type Option func(*Formatter)

// Output is the result of one formatting call: the rendered message line and,
// for Error-severity calls with an attached trace, a second line carrying the
// trace colorized identically to the message. It is ephemeral; writing it to
// a sink is the caller's concern.
type Output struct {
	Message string
	Trace   string
}

// Lines returns the output as a slice of printable lines, one or two entries.
func (o Output) Lines() []string {
	if o.Trace == "" {
		return []string{o.Message}
	}
	return []string{o.Message, o.Trace}
}

// PrefixSource supplies the label prepended to native platform log lines when
// the caller passes no explicit prefix. A source that returns an error, an
// empty label, or panics is substituted with the literal fallback "NATIVE";
// the failure never reaches the caller.
type PrefixSource interface {
	Prefix() (string, error)
}

// PrefixFunc adapts an ordinary function to the PrefixSource interface.
type PrefixFunc func() (string, error)

// Prefix calls fn.
func (fn PrefixFunc) Prefix() (string, error) {
	return fn()
}

// locker is an interface that defines basic locking operations.
// If an io.Writer implements this interface, it can be locked during writes to ensure thread safety.
type locker interface {
	Lock()
	Unlock()
}
