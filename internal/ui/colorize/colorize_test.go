package colorize

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"
)

func tokens(t *testing.T, text string) map[string]chroma.TokenType {
	t.Helper()
	it, err := SPIRVLexer.Tokenise(nil, text)
	if err != nil {
		t.Fatalf("Tokenise: %v", err)
	}
	types := make(map[string]chroma.TokenType)
	for _, tok := range it.Tokens() {
		if strings.TrimSpace(tok.Value) == "" {
			continue
		}
		types[tok.Value] = tok.Type
	}
	return types
}

func TestSPIRVLexerScopedLine(t *testing.T) {
	got := tokens(t, "   1: FunctionCall <2> <6> helper\n")

	tests := map[string]chroma.TokenType{
		"   1: ":       chroma.NameLabel,
		"FunctionCall": chroma.Keyword,
		"<2>":          chroma.NameVariable,
		"helper":       chroma.Name,
	}
	for value, want := range tests {
		if got[value] != want {
			t.Errorf("%q: got %v, want %v", value, got[value], want)
		}
	}
}

func TestSPIRVLexerHeaderAndOperands(t *testing.T) {
	text := strings.Join([]string{
		"Version 1.0, Generator 00080001 (glslang)",
		"",
		`      ExtInstImport "GLSL.std.450"`,
		"      Decorate gl_Position BuiltIn Position",
		"      Constant <4> <9> 42",
		"",
	}, "\n")
	got := tokens(t, text)

	if typ := got["Version 1.0, Generator 00080001 (glslang)"]; typ != chroma.Comment {
		t.Errorf("header line: got %v, want Comment", typ)
	}

	tests := map[string]chroma.TokenType{
		"ExtInstImport":  chroma.Keyword,
		`"GLSL.std.450"`: chroma.LiteralString,
		"Decorate":       chroma.Keyword,
		"gl_Position":    chroma.Name,
		"42":             chroma.LiteralNumber,
	}
	for value, want := range tests {
		if got[value] != want {
			t.Errorf("%q: got %v, want %v", value, got[value], want)
		}
	}
}

func TestListingHonoursNoColor(t *testing.T) {
	t.Setenv("SHADERREFL_NO_COLOR", "1")
	in := "      Capability Shader\n"
	if got := Listing(in); got != in {
		t.Errorf("Listing = %q, want input unchanged", got)
	}
}

func TestListingKeepsText(t *testing.T) {
	t.Setenv("SHADERREFL_NO_COLOR", "")
	in := "   0: Label <5>"
	out := Line(in)
	if out == in {
		t.Fatal("expected escape sequences")
	}
	if got := StripANSI(out); got != in {
		t.Errorf("StripANSI(Line) = %q, want %q", got, in)
	}
}
