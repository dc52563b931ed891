// Package colorize highlights SPIR-V disassembly listings with chroma.
package colorize

import (
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Enabled reports whether highlighting is on. SHADERREFL_NO_COLOR turns it
// off.
func Enabled() bool {
	return os.Getenv("SHADERREFL_NO_COLOR") == ""
}

// getStyle returns the disassembly style with fallbacks
func getStyle() *chroma.Style {
	for _, name := range []string{"spirv-dark", "dracula", "monokai"} {
		if style := styles.Get(name); style != nil {
			return style
		}
	}
	return styles.Fallback
}

// getTerminalFormatter returns an appropriate terminal formatter
func getTerminalFormatter() chroma.Formatter {
	for _, name := range []string{"terminal16m", "terminal256"} {
		if formatter := formatters.Get(name); formatter != nil {
			return formatter
		}
	}
	return formatters.Fallback
}

// Listing highlights a whole disassembly. On any chroma failure the input
// is returned unchanged.
func Listing(text string) string {
	if !Enabled() {
		return text
	}
	lexer := lexers.Get("spirv-dis")
	if lexer == nil {
		return text
	}

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return text
	}
	var buf strings.Builder
	if err := getTerminalFormatter().Format(&buf, getStyle(), iterator); err != nil {
		return text
	}
	out := buf.String()
	// EnsureNL adds a newline the caller did not write
	if !strings.HasSuffix(text, "\n") {
		if i := strings.LastIndexByte(out, '\n'); i >= 0 {
			out = out[:i] + out[i+1:]
		}
	}
	return out
}

// Line highlights one listing line.
func Line(line string) string {
	return Listing(line)
}

// StripANSI removes SGR escape sequences.
func StripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}
