// Package spirv decodes SPIR-V binary modules into readable text.
//
// The decoder is a pure function of its input: it keeps no state between
// calls and never reads outside the word slice it is handed. Structural
// damage in a stream (zero word counts, instructions running past the end,
// ids beyond the declared bound) aborts the whole call.
package spirv

import (
	"fmt"
)

// SPIR-V magic number and header layout.
const (
	MagicNumber = 0x07230203

	// HeaderWords is the fixed header size: magic, version, generator,
	// id bound, reserved schema word.
	HeaderWords = 5
)

// Op is an instruction tag, the low 16 bits of an instruction's first word.
type Op uint16

// Opcodes the decoder treats specially.
const (
	OpNop            Op = 0
	OpSource         Op = 3
	OpName           Op = 5
	OpMemberName     Op = 6
	OpExtInstImport  Op = 11
	OpMemoryModel    Op = 14
	OpEntryPoint     Op = 15
	OpCapability     Op = 17
	OpFunction       Op = 54
	OpFunctionEnd    Op = 56
	OpFunctionCall   Op = 57
	OpDecorate       Op = 71
	OpMemberDecorate Op = 72

	OpLabel             Op = 248
	OpBranch            Op = 249
	OpBranchConditional Op = 250
	OpSwitch            Op = 251
	OpKill              Op = 252
	OpReturn            Op = 253
	OpReturnValue       Op = 254
	OpUnreachable       Op = 255
)

// String returns the mnemonic without the "Op" prefix, or "Op<N>" for
// tags missing from the table.
func (o Op) String() string {
	if info, ok := opTable[o]; ok {
		return info.name
	}
	return fmt.Sprintf("Op%d", uint16(o))
}

// Header is the decoded fixed-size module header.
type Header struct {
	Magic     uint32
	Version   uint32
	Generator uint32
	Bound     uint32
	Schema    uint32
}

// VersionString formats the version word as major.minor.
func (h Header) VersionString() string {
	return fmt.Sprintf("%d.%d", (h.Version>>16)&0xFF, (h.Version>>8)&0xFF)
}

// ParseHeader reads the header from the front of words. The magic word is
// not checked here.
func ParseHeader(words []uint32) (Header, error) {
	if len(words) < HeaderWords {
		return Header{}, fmt.Errorf("%w: header needs %d words, have %d", ErrStreamCorrupt, HeaderWords, len(words))
	}
	return Header{
		Magic:     words[0],
		Version:   words[1],
		Generator: words[2],
		Bound:     words[3],
		Schema:    words[4],
	}, nil
}

// known generator magic words and tool ids (high 16 bits)
var generators = map[uint32]string{
	0x051a00bb: "glslang",
}

var generatorTools = map[uint32]string{
	6:  "LLVM/SPIR-V Translator",
	7:  "SPIR-V Tools Assembler",
	8:  "glslang",
	13: "shaderc",
	14: "spiregg",
	15: "rspirv",
	17: "SPIR-V Tools Linker",
}

// GeneratorName names a generator word, "Unrecognised" when unknown.
func GeneratorName(gen uint32) string {
	if name, ok := generators[gen]; ok {
		return name
	}
	if name, ok := generatorTools[gen>>16]; ok {
		return name
	}
	return "Unrecognised"
}
