// Package disasm defines the line representation shared by the
// instruction-stream disassemblers and their renderers.
package disasm

import (
	"fmt"
	"strings"
)

// Line is one formatted instruction.
type Line struct {
	Index    uint32 `json:"index"`    // sequence number within the enclosing scope
	HasIndex bool   `json:"hasIndex"` // false outside any scope
	Mnemonic string `json:"mnemonic"`
	Operands string `json:"operands,omitempty"`
}

// String renders the line with a fixed-width index gutter so that scoped
// and unscoped lines keep their mnemonics aligned.
func (l Line) String() string {
	var sb strings.Builder
	if l.HasIndex {
		fmt.Fprintf(&sb, "%4d: ", l.Index)
	} else {
		sb.WriteString("      ")
	}
	sb.WriteString(l.Mnemonic)
	if l.Operands != "" {
		sb.WriteByte(' ')
		sb.WriteString(l.Operands)
	}
	return sb.String()
}

// Listing is a disassembly: free-form header lines followed by
// instruction lines in stream order.
type Listing struct {
	Header []string `json:"header"`
	Lines  []Line   `json:"lines"`
}

// String joins header and lines, one per row, with a blank separator
// after a non-empty header.
func (l Listing) String() string {
	var sb strings.Builder
	for _, h := range l.Header {
		sb.WriteString(h)
		sb.WriteByte('\n')
	}
	if len(l.Header) > 0 && len(l.Lines) > 0 {
		sb.WriteByte('\n')
	}
	for _, ln := range l.Lines {
		sb.WriteString(ln.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
