package spirv

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zboralski/lattice"
	"github.com/zboralski/lattice/render"
)

func TestCallGraph(t *testing.T) {
	g, err := CallGraph(sampleModule(), MagicNumber, HeaderWords)
	if err != nil {
		t.Fatalf("CallGraph: %v", err)
	}
	if diff := cmp.Diff([]string{"main", "helper"}, g.Nodes); diff != "" {
		t.Errorf("nodes mismatch (-want +got):\n%s", diff)
	}
	want := []lattice.Edge{{Caller: "main", Callee: "helper"}}
	if diff := cmp.Diff(want, g.Edges); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
	if dot := render.DOT(g, "callgraph"); dot == "" {
		t.Error("expected non-empty DOT output")
	}
}

func TestCallGraphRejectsBadMagic(t *testing.T) {
	words := sampleModule()
	words[0] = 0
	if _, err := CallGraph(words, MagicNumber, HeaderWords); !errors.Is(err, ErrMagicMismatch) {
		t.Fatalf("err = %v, want ErrMagicMismatch", err)
	}
}

func TestControlFlow(t *testing.T) {
	// main: entry branches on %3 to then/else, both join at merge.
	words := newModule(16).
		op(OpName, 1).str("main").
		op(OpFunction, 2, 1, 0, 4).
		op(OpLabel, 10).
		op(OpBranchConditional, 3, 11, 12).
		op(OpLabel, 11).
		op(OpBranch, 13).
		op(OpLabel, 12).
		op(OpBranch, 13).
		op(OpLabel, 13).
		op(OpReturn).
		op(OpFunctionEnd).
		words

	g, err := ControlFlow(words, MagicNumber, HeaderWords)
	if err != nil {
		t.Fatalf("ControlFlow: %v", err)
	}
	if len(g.Funcs) != 1 {
		t.Fatalf("expected 1 function, got %d", len(g.Funcs))
	}
	f := g.Funcs[0]
	if f.Name != "main" {
		t.Errorf("name = %q", f.Name)
	}
	if len(f.Blocks) != 4 {
		t.Fatalf("expected 4 blocks, got %d", len(f.Blocks))
	}

	entry := f.Blocks[0]
	wantSuccs := []lattice.Successor{{BlockID: 1, Cond: "T"}, {BlockID: 2, Cond: "F"}}
	if diff := cmp.Diff(wantSuccs, entry.Succs); diff != "" {
		t.Errorf("entry successors (-want +got):\n%s", diff)
	}
	if entry.Start != 0 || entry.End != 2 {
		t.Errorf("entry span = [%d,%d)", entry.Start, entry.End)
	}
	if !f.Blocks[3].Term {
		t.Error("merge block should be terminal")
	}
	if dot := render.DOTCFG(g, "main"); dot == "" {
		t.Error("expected non-empty DOT output")
	}
}

func TestGraphsTolerateShortInstructions(t *testing.T) {
	words := newModule(8).
		op(OpFunction).
		op(OpLabel).
		op(OpFunctionCall, 2).
		op(OpBranch).
		op(OpFunctionEnd).
		words

	g, err := CallGraph(words, MagicNumber, HeaderWords)
	if err != nil {
		t.Fatalf("CallGraph: %v", err)
	}
	if diff := cmp.Diff([]string{"function@5"}, g.Nodes); diff != "" {
		t.Errorf("nodes mismatch (-want +got):\n%s", diff)
	}
	if len(g.Edges) != 0 {
		t.Errorf("edges = %v, want none", g.Edges)
	}

	cfg, err := ControlFlow(words, MagicNumber, HeaderWords)
	if err != nil {
		t.Fatalf("ControlFlow: %v", err)
	}
	if len(cfg.Funcs) != 1 || len(cfg.Funcs[0].Blocks) != 1 {
		t.Fatalf("funcs = %+v, want one function with one block", cfg.Funcs)
	}
	if b := cfg.Funcs[0].Blocks[0]; len(b.Succs) != 0 || len(b.Calls) != 0 {
		t.Errorf("block = %+v, want no successors or calls", b)
	}
}
