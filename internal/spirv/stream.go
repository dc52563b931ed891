package spirv

import "fmt"

// operand is one decoded operand. kind is the layout character that
// produced it; text is set only for literal strings.
type operand struct {
	kind  byte
	value uint32
	text  string
}

// instruction is one decoded instruction. offset is the word index of its
// first word in the full stream.
type instruction struct {
	offset   int
	op       Op
	operands []operand
}

// operand returns the value of the i'th operand if the instruction has one.
func (in instruction) operand(i int) (uint32, bool) {
	if i >= len(in.operands) {
		return 0, false
	}
	return in.operands[i].value, true
}

// strictLayout lists the tags whose operands are formatted or bound by
// name. Their full layout is required; any other tag may stop short.
var strictLayout = map[Op]bool{
	OpSource:         true,
	OpName:           true,
	OpMemberName:     true,
	OpExtInstImport:  true,
	OpMemoryModel:    true,
	OpEntryPoint:     true,
	OpCapability:     true,
	OpMemberDecorate: true,
}

func isIDKind(kind byte) bool {
	return kind == 't' || kind == 'r' || kind == 'i'
}

func kindName(kind byte) string {
	switch kind {
	case 't':
		return "result type"
	case 'r':
		return "result id"
	case 'i':
		return "id"
	case 's':
		return "literal string"
	case 'c':
		return "capability"
	case 'S':
		return "storage class"
	case 'D':
		return "decoration"
	case 'M':
		return "execution mode"
	default:
		return "literal"
	}
}

// decodeStream splits words[start:] into instructions, validating every
// word count and every id operand present against bound.
func decodeStream(words []uint32, start int, bound uint32) ([]instruction, error) {
	var insts []instruction
	for it := start; it < len(words); {
		count := int(words[it] >> 16)
		op := Op(words[it] & 0xFFFF)
		if count == 0 {
			return nil, fmt.Errorf("%w: zero word count for %s at word %d", ErrStreamCorrupt, op, it)
		}
		if it+count > len(words) {
			return nil, fmt.Errorf("%w: %s at word %d needs %d words, %d remain", ErrStreamCorrupt, op, it, count, len(words)-it)
		}
		operands, err := decodeOperands(opTable[op].layout, words[it+1:it+count], bound, strictLayout[op])
		if err != nil {
			return nil, fmt.Errorf("%s at word %d: %w", op, it, err)
		}
		insts = append(insts, instruction{offset: it, op: op, operands: operands})
		it += count
	}
	return insts, nil
}

// decodeOperands reads words against layout. When strict is false a short
// instruction ends early and a string that does not decode is dumped as
// literals; id bounds are checked either way.
func decodeOperands(layout string, words []uint32, bound uint32, strict bool) ([]operand, error) {
	var out []operand
	pos := 0
walk:
	for i := 0; i < len(layout); i++ {
		kind := layout[i]
		repeat := i+1 < len(layout) && layout[i+1] == '*'
		if repeat {
			i++
		}
		for {
			if pos >= len(words) {
				if repeat {
					break
				}
				if !strict {
					break walk
				}
				return nil, fmt.Errorf("%w: missing %s operand", ErrStreamCorrupt, kindName(kind))
			}
			o, n, err := decodeOperand(kind, words[pos:], bound)
			if err != nil {
				if !strict && kind == 's' {
					break walk
				}
				return nil, err
			}
			out = append(out, o)
			pos += n
			if !repeat {
				break
			}
		}
	}
	for ; pos < len(words); pos++ {
		out = append(out, operand{kind: 'l', value: words[pos]})
	}
	return out, nil
}

func decodeOperand(kind byte, words []uint32, bound uint32) (operand, int, error) {
	switch {
	case kind == 's':
		s, n, err := decodeString(words)
		if err != nil {
			return operand{}, 0, err
		}
		return operand{kind: kind, text: s}, n, nil
	case isIDKind(kind):
		if words[0] >= bound {
			return operand{}, 0, fmt.Errorf("%w: %s %d, bound %d", ErrIDOutOfBounds, kindName(kind), words[0], bound)
		}
	}
	return operand{kind: kind, value: words[0]}, 1, nil
}
