// Package inky provides a minimalist console log formatter with severity
// colors, inline bold emphasis markup, and development-gated debug output.
//
// Key features:
//   - Four severity levels (Info, Warning, Error, Debug) with fixed labels and colors
//   - Inline emphasis spans (*like this*) rendered bold without losing line color
//   - Debug messages suppressed outside development mode at negligible cost
//   - Plain-text degradation when colors are disabled (no escape bytes at all)
//   - Native-log prefixing through an injectable PrefixSource
//   - Package-level default formatter and configurable instances
package inky

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// New creates a new Formatter instance configured with the provided options.
// Without options the formatter renders colors and bold emphasis, is not in
// development mode, and writes to os.Stdout.
//
// Parameters:
//   - opts: a variadic slice of Option functions to customize the formatter
//     (e.g., WithColors, WithWriter).
//
// Panics:
//   - if the configured writer is nil.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		colors: true,
		bold:   true,
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.writer == nil {
		panic("inky: nil writer")
	}
	return f
}

// WithColors returns an Option that enables or disables ANSI color output.
//
// Example:
//
//	formatter := New(WithColors(false))
func WithColors(enabled bool) Option {
	return func(f *Formatter) {
		f.colors = enabled
	}
}

// WithBold returns an Option that enables or disables bold rendering of
// emphasis spans. With bold disabled and colors disabled the span markers are
// stripped; with bold enabled and colors disabled the span content is kept as
// a plain-text **content** convention.
func WithBold(enabled bool) Option {
	return func(f *Formatter) {
		f.bold = enabled
	}
}

// WithDevelopment returns an Option that puts the formatter in development
// mode, enabling Debug-severity output.
func WithDevelopment(enabled bool) Option {
	return func(f *Formatter) {
		f.development = enabled
	}
}

// WithWriter returns an Option that sets the destination for the convenience
// logging methods (Info, Warn, Error, Debug, Native and their variants).
func WithWriter(w io.Writer) Option {
	return func(f *Formatter) {
		f.writer = w
	}
}

// WithPrefixSource returns an Option that registers the source consulted for
// native-log prefixes when the caller supplies none.
func WithPrefixSource(src PrefixSource) Option {
	return func(f *Formatter) {
		f.prefix = src
	}
}

// Configure overwrites the color and bold settings in one step. Both fields
// are written under a single lock acquisition, so concurrent formatting calls
// observe either the old pair or the new pair, never a mix. The change takes
// effect for all subsequent calls; already-produced output is unaffected.
func (f *Formatter) Configure(colors, bold bool) {
	f.mu.Lock()
	f.colors = colors
	f.bold = bold
	f.mu.Unlock()
}

// SetDevelopment toggles development mode at runtime. Debug-severity calls
// produce output only while development mode is active.
func (f *Formatter) SetDevelopment(enabled bool) {
	f.mu.Lock()
	f.development = enabled
	f.mu.Unlock()
}

// Development reports whether the formatter is in development mode.
func (f *Formatter) Development() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.development
}

// SetPrefixSource registers the fallback source for native-log prefixes.
// At most one source is active; the last registration wins. A nil source
// clears the registration, restoring the literal fallback.
func (f *Formatter) SetPrefixSource(src PrefixSource) {
	f.mu.Lock()
	f.prefix = src
	f.mu.Unlock()
}

// UpdateWriter safely updates the Formatter's output destination to a new writer.
// If both the current writer and the new writer implement the locker interface but are not the same,
// the update is rejected (returns false) to avoid locking mismatches. Otherwise, the writer is updated.
//
// Returns:
//   - true if the writer was successfully updated.
//   - false if the update was rejected due to nil writer or incompatible locking behavior.
func (f *Formatter) UpdateWriter(w io.Writer) bool {
	if w == nil {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	currentLocker, hasLock := f.writer.(locker)
	newLocker, newHasLock := w.(locker)
	if hasLock && newHasLock && currentLocker != newLocker {
		return false
	}
	if hasLock {
		currentLocker.Lock()
		defer currentLocker.Unlock()
	}
	f.writer = w
	return true
}

// Format converts a raw message into the final printable text for the given
// severity. It is a pure function of its inputs and the formatter's current
// configuration; it performs no I/O.
//
// The message may contain non-overlapping emphasis spans delimited by '*'.
// With colors enabled each span renders bold and the severity color is
// reissued after the span's reset sequence, so text following a span keeps
// the line color. With colors disabled no escape bytes appear anywhere in the
// output. An empty span contributes nothing; an unterminated marker is kept
// as literal text.
//
// A non-empty trace attached to an Error-severity call yields a second line
// colorized identically to the message. Trace text on any other severity is
// ignored.
//
// Returns:
//   - The rendered Output and true, or a zero Output and false when severity
//     is Debug and the formatter is not in development mode. The false return
//     is a deliberate no-op, not an error, and costs no string processing.
func (f *Formatter) Format(message string, severity Severity, trace string) (Output, bool) {
	f.mu.RLock()
	colors, bold, development := f.colors, f.bold, f.development
	f.mu.RUnlock()

	if severity == DebugIssuer && !development {
		return Output{}, false
	}

	color := severity.color()
	body := renderSpans(message, colors, bold, color)

	var b strings.Builder
	b.Grow(len(body) + 24)
	if colors {
		b.WriteString(color)
	}
	b.WriteByte('[')
	b.WriteString(severity.Label())
	b.WriteString("] ")
	b.WriteString(body)
	if colors {
		b.WriteString(codeReset)
	}

	out := Output{Message: b.String()}
	if severity == ErrorIssuer && trace != "" {
		if colors {
			out.Trace = color + trace + codeReset
		} else {
			out.Trace = trace
		}
	}
	return out, true
}

// FormatNative formats a message representing a native platform event. The
// resolved prefix is wrapped in brackets and prepended to the message before
// formatting, so the line reads "[LABEL] [PREFIX] message".
//
// Prefix resolution: an explicit non-empty prefix is used verbatim; otherwise
// the registered PrefixSource is consulted; if it is unregistered, errors,
// returns an empty label, or panics, the literal "NATIVE" is used.
func (f *Formatter) FormatNative(prefix, message string, severity Severity, trace string) (Output, bool) {
	resolved := f.resolvePrefix(prefix)
	return f.Format("["+resolved+"] "+message, severity, trace)
}

func (f *Formatter) resolvePrefix(explicit string) string {
	if explicit != "" {
		return explicit
	}
	f.mu.RLock()
	src := f.prefix
	f.mu.RUnlock()
	if src == nil {
		return fallbackPrefix
	}
	return safePrefix(src)
}

// safePrefix invokes the source, containing errors and panics locally.
func safePrefix(src PrefixSource) (label string) {
	defer func() {
		if recover() != nil {
			label = fallbackPrefix
		}
	}()
	p, err := src.Prefix()
	if err != nil || p == "" {
		return fallbackPrefix
	}
	return p
}

// emit formats the message and writes the resulting line(s) to the
// formatter's writer, locking it when it supports locking.
func (f *Formatter) emit(severity Severity, message, trace string) error {
	out, ok := f.Format(message, severity, trace)
	if !ok {
		return nil
	}
	return f.write(out)
}

func (f *Formatter) write(out Output) error {
	var b strings.Builder
	b.Grow(len(out.Message) + len(out.Trace) + 2)
	b.WriteString(out.Message)
	b.WriteByte('\n')
	if out.Trace != "" {
		b.WriteString(out.Trace)
		b.WriteByte('\n')
	}

	f.mu.RLock()
	w := f.writer
	f.mu.RUnlock()
	if lock, ok := w.(locker); ok {
		lock.Lock()
		defer lock.Unlock()
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Info formats and writes an informational message.
//
// Example:
//
//	formatter.Info("Server listening on *:8080*")
func (f *Formatter) Info(message string) error {
	return f.emit(InfoIssuer, message, "")
}

// Infof formats and writes an informational message using the provided
// format string and arguments.
func (f *Formatter) Infof(format string, args ...interface{}) error {
	return f.emit(InfoIssuer, fmt.Sprintf(format, args...), "")
}

// Warn formats and writes a warning message.
func (f *Formatter) Warn(message string) error {
	return f.emit(WarningIssuer, message, "")
}

// Warnf formats and writes a formatted warning message.
func (f *Formatter) Warnf(format string, args ...interface{}) error {
	return f.emit(WarningIssuer, fmt.Sprintf(format, args...), "")
}

// Error formats and writes an error message.
func (f *Formatter) Error(message string) error {
	return f.emit(ErrorIssuer, message, "")
}

// Errorf formats and writes a formatted error message.
func (f *Formatter) Errorf(format string, args ...interface{}) error {
	return f.emit(ErrorIssuer, fmt.Sprintf(format, args...), "")
}

// ErrorTrace formats and writes an error message followed by a second line
// carrying the trace text, colorized identically to the message.
func (f *Formatter) ErrorTrace(message, trace string) error {
	return f.emit(ErrorIssuer, message, trace)
}

// Debug formats and writes a development diagnostic. Outside development
// mode the call is a complete no-op: no formatting work is done and nothing
// is written.
func (f *Formatter) Debug(message string) error {
	return f.emit(DebugIssuer, message, "")
}

// Debugf formats and writes a formatted development diagnostic. Outside
// development mode the call returns before the format string is expanded.
func (f *Formatter) Debugf(format string, args ...interface{}) error {
	if !f.Development() {
		return nil
	}
	return f.emit(DebugIssuer, fmt.Sprintf(format, args...), "")
}

// Native formats and writes an informational message prefixed with the
// resolved native platform label.
//
// Example:
//
//	formatter.Native("", "channel attached")          // -> [INFO] [NATIVE] channel attached
//	formatter.Native("ANDROID NATIVE", "view ready")  // -> [INFO] [ANDROID NATIVE] view ready
func (f *Formatter) Native(prefix, message string) error {
	out, ok := f.FormatNative(prefix, message, InfoIssuer, "")
	if !ok {
		return nil
	}
	return f.write(out)
}

// Nativef formats and writes a native-prefixed informational message using
// the provided format string and arguments.
func (f *Formatter) Nativef(prefix, format string, args ...interface{}) error {
	return f.Native(prefix, fmt.Sprintf(format, args...))
}

// Configure overwrites the package-level Default formatter's color and bold settings.
func Configure(colors, bold bool) {
	Default.Configure(colors, bold)
}

// SetDevelopment toggles development mode on the package-level Default formatter.
func SetDevelopment(enabled bool) {
	Default.SetDevelopment(enabled)
}

// SetPrefixSource registers the native-prefix source on the package-level Default formatter.
func SetPrefixSource(src PrefixSource) {
	Default.SetPrefixSource(src)
}

// Format renders a message using the package-level Default formatter.
func Format(message string, severity Severity, trace string) (Output, bool) {
	return Default.Format(message, severity, trace)
}

// FormatNative renders a native-prefixed message using the package-level Default formatter.
func FormatNative(prefix, message string, severity Severity, trace string) (Output, bool) {
	return Default.FormatNative(prefix, message, severity, trace)
}

// Info formats and writes an informational message using the package-level Default formatter.
func Info(message string) error {
	return Default.Info(message)
}

// Infof formats and writes a formatted informational message using the package-level Default formatter.
func Infof(format string, args ...interface{}) error {
	return Default.Infof(format, args...)
}

// Warn formats and writes a warning message using the package-level Default formatter.
func Warn(message string) error {
	return Default.Warn(message)
}

// Warnf formats and writes a formatted warning message using the package-level Default formatter.
func Warnf(format string, args ...interface{}) error {
	return Default.Warnf(format, args...)
}

// Error formats and writes an error message using the package-level Default formatter.
func Error(message string) error {
	return Default.Error(message)
}

// Errorf formats and writes a formatted error message using the package-level Default formatter.
func Errorf(format string, args ...interface{}) error {
	return Default.Errorf(format, args...)
}

// ErrorTrace formats and writes an error message with a trace line using the package-level Default formatter.
func ErrorTrace(message, trace string) error {
	return Default.ErrorTrace(message, trace)
}

// Debug formats and writes a development diagnostic using the package-level Default formatter.
func Debug(message string) error {
	return Default.Debug(message)
}

// Debugf formats and writes a formatted development diagnostic using the package-level Default formatter.
func Debugf(format string, args ...interface{}) error {
	return Default.Debugf(format, args...)
}

// Native formats and writes a native-prefixed message using the package-level Default formatter.
func Native(prefix, message string) error {
	return Default.Native(prefix, message)
}

// Nativef formats and writes a formatted native-prefixed message using the package-level Default formatter.
func Nativef(prefix, format string, args ...interface{}) error {
	return Default.Nativef(prefix, format, args...)
}
