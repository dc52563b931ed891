package spirv

import (
	"fmt"

	"github.com/zboralski/lattice"
)

// CallGraph builds the function call graph of a module. Nodes are function
// names as the disassembler would print them; each OpFunctionCall inside a
// function body adds one deduplicated edge.
func CallGraph(words []uint32, magic uint32, headerWords int) (*lattice.Graph, error) {
	d := New(Options{Magic: magic, HeaderWords: headerWords}, nil)
	m, err := d.resolveSymbols(words)
	if err != nil {
		return nil, err
	}

	g := &lattice.Graph{}
	current := ""
	for _, in := range m.insts {
		switch in.op {
		case OpFunction:
			current = functionName(in, m.syms)
			g.Nodes = append(g.Nodes, current)
		case OpFunctionEnd:
			current = ""
		case OpFunctionCall:
			callee, ok := in.operand(2)
			if current == "" || !ok {
				continue
			}
			g.Edges = append(g.Edges, lattice.Edge{
				Caller: current,
				Callee: m.syms.Name(callee),
			})
		}
	}
	g.Dedup()
	return g, nil
}

// functionName is the printed name of an OpFunction's result id, or its
// word offset when the instruction carries none.
func functionName(in instruction, syms *SymbolTable) string {
	if id, ok := in.operand(1); ok {
		return syms.Name(id)
	}
	return fmt.Sprintf("function@%d", in.offset)
}

// ControlFlow builds one lattice.FuncCFG per function. Each OpLabel opens a
// basic block; Start and End index the instructions between OpFunction and
// OpFunctionEnd. Conditional branches mark successors "T" and "F", switch
// cases carry their literal.
func ControlFlow(words []uint32, magic uint32, headerWords int) (*lattice.CFGGraph, error) {
	d := New(Options{Magic: magic, HeaderWords: headerWords}, nil)
	m, err := d.resolveSymbols(words)
	if err != nil {
		return nil, err
	}

	g := &lattice.CFGGraph{}
	for i := 0; i < len(m.insts); i++ {
		if m.insts[i].op != OpFunction {
			continue
		}
		end := i + 1
		for end < len(m.insts) && m.insts[end].op != OpFunctionEnd {
			end++
		}
		name := functionName(m.insts[i], m.syms)
		g.Funcs = append(g.Funcs, functionCFG(name, m.insts[i+1:end], m.syms))
		i = end
	}
	return g, nil
}

func functionCFG(name string, body []instruction, syms *SymbolTable) *lattice.FuncCFG {
	blockOf := make(map[uint32]int)
	for _, in := range body {
		if in.op == OpLabel {
			if id, ok := in.operand(0); ok {
				blockOf[id] = len(blockOf)
			}
		}
	}

	f := &lattice.FuncCFG{Name: name}
	var cur *lattice.BasicBlock
	succ := func(in instruction, i int, cond string) {
		label, ok := in.operand(i)
		if !ok {
			return
		}
		if id, ok := blockOf[label]; ok {
			cur.Succs = append(cur.Succs, lattice.Successor{BlockID: id, Cond: cond})
		}
	}
	for idx, in := range body {
		if in.op == OpLabel {
			cur = &lattice.BasicBlock{ID: len(f.Blocks), Start: idx, End: idx + 1}
			f.Blocks = append(f.Blocks, cur)
			continue
		}
		if cur == nil {
			continue
		}
		cur.End = idx + 1
		switch in.op {
		case OpFunctionCall:
			if callee, ok := in.operand(2); ok {
				cur.Calls = append(cur.Calls, lattice.CallSite{Offset: idx, Callee: syms.Name(callee)})
			}
		case OpBranch:
			succ(in, 0, "")
		case OpBranchConditional:
			succ(in, 1, "T")
			succ(in, 2, "F")
		case OpSwitch:
			succ(in, 1, "default")
			// remaining operands are (literal, label) pairs
			for j := 2; j+1 < len(in.operands); j += 2 {
				succ(in, j+1, fmt.Sprintf("%d", in.operands[j].value))
			}
		case OpKill, OpReturn, OpReturnValue, OpUnreachable:
			cur.Term = true
		}
	}
	return f
}
