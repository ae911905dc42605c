package inky

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDetectColorsNoColor verifies that NO_COLOR disables color detection
// regardless of the terminal.
func TestDetectColorsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, detectColors())
}

// TestDetectOptionsOverrides verifies that the INKY_* variables override the
// detected terminal capabilities.
func TestDetectOptionsOverrides(t *testing.T) {
	t.Setenv("INKY_COLORS", "true")
	t.Setenv("INKY_BOLD", "false")
	t.Setenv("INKY_DEV", "true")

	formatter := New(DetectOptions()...)

	// Colors forced on, bold forced off: spans render unstyled but the line
	// keeps its severity color.
	out, ok := formatter.Format("a *b* c", InfoIssuer, "")
	require.True(t, ok)
	assert.Equal(t, colorCyan+"[INFO] a b c"+codeReset, out.Message)

	// INKY_DEV enables debug output.
	_, ok = formatter.Format("diagnostic", DebugIssuer, "")
	assert.True(t, ok)
}

// TestDetectOptionsEnvDisablesColors verifies the opposite override.
func TestDetectOptionsEnvDisablesColors(t *testing.T) {
	t.Setenv("INKY_COLORS", "false")
	t.Setenv("INKY_BOLD", "false")

	formatter := New(DetectOptions()...)
	out, ok := formatter.Format("plain *text*", WarningIssuer, "")
	require.True(t, ok)
	assert.Equal(t, "[WARNING] plain text", out.Message)
	assert.False(t, formatter.Development())
}
