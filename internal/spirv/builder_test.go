package spirv

// moduleBuilder assembles little test modules word by word.
type moduleBuilder struct {
	words []uint32
	last  int
}

func newModule(bound uint32) *moduleBuilder {
	return &moduleBuilder{words: []uint32{MagicNumber, 0x00010000, 0x00080001, bound, 0}}
}

// op starts an instruction. Words appended by str and lit belong to it
// until the next op.
func (b *moduleBuilder) op(op Op, operands ...uint32) *moduleBuilder {
	b.last = len(b.words)
	b.words = append(b.words, uint32(op))
	return b.lit(operands...)
}

func (b *moduleBuilder) lit(v ...uint32) *moduleBuilder {
	b.words = append(b.words, v...)
	b.fix()
	return b
}

func (b *moduleBuilder) str(s string) *moduleBuilder {
	raw := append([]byte(s), 0)
	for len(raw)%4 != 0 {
		raw = append(raw, 0)
	}
	for i := 0; i < len(raw); i += 4 {
		b.words = append(b.words, uint32(raw[i])|uint32(raw[i+1])<<8|uint32(raw[i+2])<<16|uint32(raw[i+3])<<24)
	}
	b.fix()
	return b
}

func (b *moduleBuilder) fix() {
	n := uint32(len(b.words) - b.last)
	b.words[b.last] = n<<16 | b.words[b.last]&0xFFFF
}

// sampleModule is a vertex shader whose main calls a helper declared later
// in the stream.
func sampleModule() []uint32 {
	return newModule(20).
		op(OpCapability, 1).
		op(OpExtInstImport, 1).str("GLSL.std.450").
		op(OpMemoryModel, 0, 1).
		op(OpEntryPoint, 0, 4).str("main").
		op(OpSource, 2, 450).
		op(OpName, 4).str("main").
		op(OpName, 9).str("helper").
		op(19, 2).    // TypeVoid
		op(33, 3, 2). // TypeFunction
		op(OpFunction, 2, 4, 0, 3).
		op(OpLabel, 5).
		op(OpFunctionCall, 2, 6, 9).
		op(OpReturn).
		op(OpFunctionEnd).
		op(OpFunction, 2, 9, 0, 3).
		op(OpLabel, 7).
		op(OpReturn).
		op(OpFunctionEnd).
		words
}
