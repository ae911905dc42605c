package inky

import "strings"

// renderSpans rewrites the emphasis spans of a message in a single pass.
// A span opens at a marker and closes at the next marker; spans do not nest.
// An unterminated marker does not form a span and stays literal. An empty
// span (two adjacent markers) contributes nothing, not even styling codes.
//
// Span rendering depends on the configuration:
//   - colors and bold: bold code, content, reset code, then lineColor again.
//     The reset clears all styling including the ambient line color, so the
//     color must be reissued or everything after the first span loses it.
//   - colors without bold: bare content.
//   - bold without colors: plain-text **content** convention.
//   - neither: bare content.
func renderSpans(message string, colors, bold bool, lineColor string) string {
	var b strings.Builder
	b.Grow(len(message) + 16)
	for {
		open := strings.IndexByte(message, marker)
		if open < 0 {
			b.WriteString(message)
			break
		}
		n := strings.IndexByte(message[open+1:], marker)
		if n < 0 {
			// No closing marker; keep the rest literal.
			b.WriteString(message)
			break
		}
		b.WriteString(message[:open])
		content := message[open+1 : open+1+n]
		if content != "" {
			switch {
			case colors && bold:
				b.WriteString(codeBold)
				b.WriteString(content)
				b.WriteString(codeReset)
				b.WriteString(lineColor)
			case !colors && bold:
				b.WriteString("**")
				b.WriteString(content)
				b.WriteString("**")
			default:
				b.WriteString(content)
			}
		}
		message = message[open+n+2:]
	}
	return b.String()
}
