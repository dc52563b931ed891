package spirv

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"shaderrefl/internal/disasm"
	"shaderrefl/internal/logging"
)

// Options configures a Disassembler.
type Options struct {
	// Magic is the expected first word of the stream.
	Magic uint32
	// HeaderWords is the number of words before the first instruction.
	// It must cover at least the magic, version, generator and bound words.
	HeaderWords int
	// Title, when set, is printed as the first header line.
	Title string
}

// DefaultOptions matches standard SPIR-V binaries.
func DefaultOptions() Options {
	return Options{Magic: MagicNumber, HeaderWords: HeaderWords}
}

// Disassembler turns a word stream into a listing. It holds no per-stream
// state, so one value may be shared across goroutines.
type Disassembler struct {
	opts   Options
	logger *log.Logger
}

// New returns a Disassembler. A nil logger discards diagnostics.
func New(opts Options, logger *log.Logger) *Disassembler {
	return &Disassembler{opts: opts, logger: logging.Or(logger)}
}

// Disassemble renders words as text using the given magic number and
// header size.
func Disassemble(words []uint32, magic uint32, headerWords int) (string, error) {
	return New(Options{Magic: magic, HeaderWords: headerWords}, nil).Disassemble(words)
}

// Disassemble renders words as text. On a magic mismatch the text is the
// single diagnostic line and the error wraps ErrMagicMismatch. Any other
// error yields no text.
func (d *Disassembler) Disassemble(words []uint32) (string, error) {
	l, err := d.Listing(words)
	if err != nil && !errors.Is(err, ErrMagicMismatch) {
		return "", err
	}
	return l.String(), err
}

// Listing decodes words into header and instruction lines.
func (d *Disassembler) Listing(words []uint32) (disasm.Listing, error) {
	m, err := d.resolveSymbols(words)
	if err != nil {
		if errors.Is(err, ErrMagicMismatch) {
			return disasm.Listing{Header: []string{fmt.Sprintf("Unrecognised magic number %08x", words[0])}}, err
		}
		return disasm.Listing{}, err
	}

	listing := disasm.Listing{Header: d.header(m.header), Lines: d.format(m)}
	d.logger.Debug("disassembled", "instructions", len(m.insts), "lines", len(listing.Lines), "bound", m.header.Bound)
	return listing, nil
}

// decoded is the result of the first pass.
type decoded struct {
	header Header
	insts  []instruction
	syms   *SymbolTable
}

// resolveSymbols is the first pass: it checks the header, decodes and
// validates every instruction and collects debug names. Nothing is
// formatted unless the whole stream is well formed.
func (d *Disassembler) resolveSymbols(words []uint32) (*decoded, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: empty stream", ErrStreamCorrupt)
	}
	if words[0] != d.opts.Magic {
		return nil, fmt.Errorf("%w: got %08x, want %08x", ErrMagicMismatch, words[0], d.opts.Magic)
	}
	if d.opts.HeaderWords < 4 {
		return nil, fmt.Errorf("%w: header of %d words has no id bound", ErrStreamCorrupt, d.opts.HeaderWords)
	}
	if len(words) < d.opts.HeaderWords {
		return nil, fmt.Errorf("%w: header needs %d words, have %d", ErrStreamCorrupt, d.opts.HeaderWords, len(words))
	}

	h := Header{Magic: words[0], Version: words[1], Generator: words[2], Bound: words[3]}
	if d.opts.HeaderWords > 4 {
		h.Schema = words[4]
	}
	if h.Bound > maxIDBound {
		return nil, fmt.Errorf("%w: id bound %d exceeds %d", ErrStreamCorrupt, h.Bound, maxIDBound)
	}

	insts, err := decodeStream(words, d.opts.HeaderWords, h.Bound)
	if err != nil {
		return nil, err
	}

	syms := newSymbolTable(h.Bound)
	for _, in := range insts {
		switch in.op {
		case OpName:
			syms.bind(in.operands[0].value, in.operands[1].text)
		case OpMemberName:
			syms.bindMember(in.operands[0].value, in.operands[1].value, in.operands[2].text)
		}
	}
	return &decoded{header: h, insts: insts, syms: syms}, nil
}

func (d *Disassembler) header(h Header) []string {
	var lines []string
	if d.opts.Title != "" {
		lines = append(lines, d.opts.Title+" SPIR-V:")
	}
	lines = append(lines,
		fmt.Sprintf("Version %s, Generator %08x (%s)", h.VersionString(), h.Generator, GeneratorName(h.Generator)),
		fmt.Sprintf("IDs up to <%d>", h.Bound),
	)
	if h.Schema != 0 {
		lines = append(lines, fmt.Sprintf("Reserved word 4 is non-zero: %08x", h.Schema))
	}
	return lines
}

// format is the second pass. Lines between a scope-begin and scope-end
// instruction are numbered from zero; the boundary lines themselves are not.
func (d *Disassembler) format(m *decoded) []disasm.Line {
	lines := make([]disasm.Line, 0, len(m.insts))
	inScope := false
	var seq uint32
	for _, in := range m.insts {
		operands, silent := d.body(in, m.syms)
		if silent {
			continue
		}
		line := disasm.Line{Mnemonic: in.op.String(), Operands: operands}
		switch in.op {
		case OpFunction:
			inScope = true
			seq = 0
		case OpFunctionEnd:
			inScope = false
		default:
			if inScope {
				line.Index = seq
				line.HasIndex = true
				seq++
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// body formats the operand text of in. silent reports instructions that
// produce no line.
func (d *Disassembler) body(in instruction, syms *SymbolTable) (text string, silent bool) {
	ops := in.operands
	switch in.op {
	case OpName, OpMemberName:
		return "", true
	case OpSource:
		return fmt.Sprintf("%s %d", lookup(sourceLanguages, ops[0].value), ops[1].value), false
	case OpMemoryModel:
		return fmt.Sprintf("%s Addressing, %s Memory model",
			lookup(addressingModels, ops[0].value), lookup(memoryModels, ops[1].value)), false
	case OpEntryPoint:
		return fmt.Sprintf("%s (%s)", syms.Name(ops[1].value), lookup(executionModels, ops[0].value)), false
	case OpExtInstImport:
		syms.bind(ops[0].value, ops[1].text)
		return quoteLiteral(ops[1].text), false
	case OpCapability:
		return lookup(capabilities, ops[0].value), false
	case OpMemberDecorate:
		target := syms.Name(ops[0].value)
		if name, ok := syms.Member(ops[0].value, ops[1].value); ok {
			target += "." + name
		} else {
			target = fmt.Sprintf("%s.%d", target, ops[1].value)
		}
		return target + " " + dumpOperands(ops[2:], syms), false
	}
	return dumpOperands(ops, syms), false
}

// dumpOperands renders operands in stream order: ids as resolved names,
// enumerants by name, everything else as decimal numbers.
func dumpOperands(ops []operand, syms *SymbolTable) string {
	parts := make([]string, 0, len(ops))
	for i, o := range ops {
		switch o.kind {
		case 't', 'r', 'i':
			parts = append(parts, syms.Name(o.value))
		case 's':
			parts = append(parts, quoteLiteral(o.text))
		case 'c':
			parts = append(parts, lookup(capabilities, o.value))
		case 'S':
			parts = append(parts, lookup(storageClasses, o.value))
		case 'D':
			parts = append(parts, lookup(decorations, o.value))
		case 'M':
			parts = append(parts, lookup(executionModes, o.value))
		default:
			if i > 0 && ops[i-1].kind == 'D' && ops[i-1].value == decorationBuiltIn {
				parts = append(parts, lookup(builtins, o.value))
				continue
			}
			parts = append(parts, fmt.Sprintf("%d", o.value))
		}
	}
	return strings.Join(parts, " ")
}
