package spirv

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// decodeString reads a nul-terminated literal string packed four bytes to a
// word, lowest-order byte first. It returns the string and the number of
// words it occupied including padding.
func decodeString(words []uint32) (string, int, error) {
	var b []byte
	for i, w := range words {
		for shift := 0; shift < 32; shift += 8 {
			c := byte(w >> shift)
			if c == 0 {
				return string(b), i + 1, nil
			}
			b = append(b, c)
		}
	}
	return "", 0, fmt.Errorf("%w: unterminated literal string", ErrStreamCorrupt)
}

// EscapeUnprintable returns a string where printable Unicode runes are preserved.
// Control and unprintable runes are escaped as \uXXXX. Invalid UTF-8 is escaped as \xXX.
func EscapeUnprintable(s string) string {
	var sb strings.Builder
	b := []byte(s)
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		switch {
		case r == utf8.RuneError && size == 1:
			fmt.Fprintf(&sb, "\\x%02X", b[0])
		case unicode.IsPrint(r):
			sb.WriteRune(r)
		default:
			fmt.Fprintf(&sb, "\\u%04X", r)
		}
		b = b[size:]
	}
	return sb.String()
}

func quoteLiteral(s string) string {
	return `"` + EscapeUnprintable(s) + `"`
}
