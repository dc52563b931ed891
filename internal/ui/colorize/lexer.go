package colorize

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	shstyles "shaderrefl/internal/shaderrefl/styles"
)

// SPIRVLexer tokenises disassembly listings: header lines are comments,
// the scope index gutter is a label, the first word of an instruction is
// its mnemonic, and operands split into names, <N> ids, numbers and
// strings.
var SPIRVLexer = lexers.Register(chroma.MustNewLexer(
	&chroma.Config{
		Name:     "SPIR-V disassembly",
		Aliases:  []string{"spirv-dis"},
		EnsureNL: true,
	},
	spirvRules,
))

func spirvRules() chroma.Rules {
	return chroma.Rules{
		"root": {
			{Pattern: `[ \t]*\d+:[ \t]*`, Type: chroma.NameLabel, Mutator: chroma.Push("instruction")},
			{Pattern: `[ \t]+`, Type: chroma.Text, Mutator: chroma.Push("instruction")},
			{Pattern: `\n`, Type: chroma.Text},
			{Pattern: `[^\n]+`, Type: chroma.Comment},
		},
		"instruction": {
			{Pattern: `\w+`, Type: chroma.Keyword, Mutator: chroma.Push("operands")},
			{Pattern: `\n`, Type: chroma.Text, Mutator: chroma.Pop(1)},
		},
		"operands": {
			{Pattern: `\n`, Type: chroma.Text, Mutator: chroma.Pop(2)},
			{Pattern: `"(?:\\.|[^"\\\n])*"`, Type: chroma.LiteralString},
			{Pattern: `<\d+>`, Type: chroma.NameVariable},
			{Pattern: `0x[0-9a-fA-F]+`, Type: chroma.LiteralNumberHex},
			{Pattern: `-?\d+(?:\.\d+)?\b`, Type: chroma.LiteralNumber},
			{Pattern: `[A-Za-z_][\w.\[\]]*`, Type: chroma.Name},
			{Pattern: `[(),:]`, Type: chroma.Punctuation},
			{Pattern: `[^\S\n]+`, Type: chroma.Text},
			{Pattern: `.`, Type: chroma.Text},
		},
	}
}

// SPIRVDark matches the report palette.
var SPIRVDark = styles.Register(chroma.MustNewStyle("spirv-dark", chroma.StyleEntries{
	chroma.Text:             shstyles.SPIRVText,
	chroma.Background:       "bg:" + shstyles.SPIRVBackground,
	chroma.Comment:          shstyles.SPIRVHeader,
	chroma.NameLabel:        shstyles.SPIRVGutter,
	chroma.Keyword:          shstyles.SPIRVMnemonic,
	chroma.Name:             shstyles.SPIRVIdentifier,
	chroma.NameVariable:     shstyles.SPIRVUnnamedID,
	chroma.LiteralNumber:    shstyles.SPIRVNumber,
	chroma.LiteralNumberHex: shstyles.SPIRVNumber,
	chroma.LiteralString:    shstyles.SPIRVString,
	chroma.Punctuation:      shstyles.SPIRVText,
}))
