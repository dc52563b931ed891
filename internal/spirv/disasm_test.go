package spirv

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
)

func TestDisassembleSample(t *testing.T) {
	want := strings.Join([]string{
		"Version 1.0, Generator 00080001 (glslang)",
		"IDs up to <20>",
		"",
		"      Capability Shader",
		`      ExtInstImport "GLSL.std.450"`,
		"      MemoryModel Logical Addressing, GLSL450 Memory model",
		"      EntryPoint main (Vertex)",
		"      Source GLSL 450",
		"      TypeVoid <2>",
		"      TypeFunction <3> <2>",
		"      Function <2> main 0 <3>",
		"   0: Label <5>",
		"   1: FunctionCall <2> <6> helper",
		"   2: Return",
		"      FunctionEnd",
		"      Function <2> helper 0 <3>",
		"   0: Label <7>",
		"   1: Return",
		"      FunctionEnd",
		"",
	}, "\n")

	got, err := Disassemble(sampleModule(), MagicNumber, HeaderWords)
	if err != nil {
		t.Fatalf("Disassemble: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("listing mismatch (-want +got):\n%s", diff)
	}
}

func TestDisassembleIsRepeatable(t *testing.T) {
	words := sampleModule()
	first, err := Disassemble(words, MagicNumber, HeaderWords)
	if err != nil {
		t.Fatalf("Disassemble: %v", err)
	}
	second, _ := Disassemble(words, MagicNumber, HeaderWords)
	if first != second {
		t.Errorf("second call differs:\n%s\nvs\n%s", first, second)
	}
}

func TestMagicMismatch(t *testing.T) {
	words := sampleModule()
	words[0] = 0xdeadbeef

	got, err := Disassemble(words, MagicNumber, HeaderWords)
	if !errors.Is(err, ErrMagicMismatch) {
		t.Fatalf("err = %v, want ErrMagicMismatch", err)
	}
	if want := "Unrecognised magic number deadbeef\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCustomMagicAndTitle(t *testing.T) {
	words := sampleModule()
	words[0] = 0x12345678

	d := New(Options{Magic: 0x12345678, HeaderWords: HeaderWords, Title: "Vertex"}, nil)
	l, err := d.Listing(words)
	if err != nil {
		t.Fatalf("Listing: %v", err)
	}
	if l.Header[0] != "Vertex SPIR-V:" {
		t.Errorf("title line = %q", l.Header[0])
	}
}

func TestStreamErrors(t *testing.T) {
	tests := []struct {
		name  string
		words []uint32
		want  error
	}{
		{
			name:  "zero word count",
			words: append(newModule(4).op(OpCapability, 1).words, 0),
			want:  ErrStreamCorrupt,
		},
		{
			name:  "instruction overruns stream",
			words: append(newModule(4).words, 5<<16|uint32(OpCapability), 1),
			want:  ErrStreamCorrupt,
		},
		{
			name:  "name targets id beyond bound",
			words: newModule(4).op(OpName, 25).str("late").words,
			want:  ErrIDOutOfBounds,
		},
		{
			name:  "result id equal to bound",
			words: newModule(4).op(19, 4).words,
			want:  ErrIDOutOfBounds,
		},
		{
			name:  "unterminated string",
			words: newModule(4).op(OpName, 1, 0x41414141).words,
			want:  ErrStreamCorrupt,
		},
		{
			name:  "missing operand",
			words: newModule(4).op(OpCapability).words,
			want:  ErrStreamCorrupt,
		},
		{
			name:  "short store with id beyond bound",
			words: newModule(4).op(62, 25).words,
			want:  ErrIDOutOfBounds,
		},
		{
			name:  "truncated header",
			words: []uint32{MagicNumber, 0x00010000},
			want:  ErrStreamCorrupt,
		},
		{
			name:  "absurd bound",
			words: newModule(maxIDBound + 1).words,
			want:  ErrStreamCorrupt,
		},
		{
			name:  "empty stream",
			words: nil,
			want:  ErrStreamCorrupt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Disassemble(tt.words, MagicNumber, HeaderWords)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if got != "" {
				t.Errorf("expected no output on fatal error, got %q", got)
			}
		})
	}
}

func TestOperandFormatting(t *testing.T) {
	words := newModule(12).
		op(OpName, 10).str("Block").
		op(OpMemberName, 10, 0).str("pos").
		op(OpDecorate, 8, 11, 0).
		op(OpDecorate, 8, 30, 2).
		op(OpMemberDecorate, 10, 0, 11, 1).
		op(OpMemberDecorate, 10, 1, 35, 16).
		op(59, 11, 8, 3). // Variable
		op(9999, 1, 2).
		words

	d := New(DefaultOptions(), nil)
	l, err := d.Listing(words)
	if err != nil {
		t.Fatalf("Listing: %v", err)
	}
	var got []string
	for _, ln := range l.Lines {
		got = append(got, ln.String())
	}
	want := []string{
		"      Decorate <8> BuiltIn Position",
		"      Decorate <8> Location 2",
		"      MemberDecorate Block.pos BuiltIn PointSize",
		"      MemberDecorate Block.1 Offset 16",
		"      Variable <11> <8> Output",
		"      Op9999 1 2",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestShortInstructionsDumpWhatIsPresent(t *testing.T) {
	words := newModule(8).
		op(OpFunction).
		op(OpNop).
		op(OpNop).
		op(OpNop).
		op(62).    // Store
		op(62, 3). // Store
		op(OpFunctionEnd).
		words

	l, err := New(DefaultOptions(), nil).Listing(words)
	if err != nil {
		t.Fatalf("Listing: %v", err)
	}
	var got []string
	for _, ln := range l.Lines {
		got = append(got, ln.String())
	}
	want := []string{
		"      Function",
		"   0: Nop",
		"   1: Nop",
		"   2: Nop",
		"   3: Store",
		"   4: Store <3>",
		"      FunctionEnd",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestNamesResolveBeforeUse(t *testing.T) {
	words := newModule(10).
		op(OpFunction, 2, 4, 0, 3).
		op(OpLabel, 5).
		op(OpFunctionCall, 2, 6, 7).
		op(OpReturn).
		op(OpFunctionEnd).
		op(OpName, 7).str("late").
		words

	l, err := New(DefaultOptions(), nil).Listing(words)
	if err != nil {
		t.Fatalf("Listing: %v", err)
	}
	if got, want := l.Lines[2].String(), "   1: FunctionCall <2> <6> late"; got != want {
		t.Errorf("call line = %q, want %q", got, want)
	}
}

func TestReservedSchemaWord(t *testing.T) {
	words := sampleModule()
	words[4] = 7
	l, err := New(DefaultOptions(), nil).Listing(words)
	if err != nil {
		t.Fatalf("Listing: %v", err)
	}
	if last := l.Header[len(l.Header)-1]; last != "Reserved word 4 is non-zero: 00000007" {
		t.Errorf("last header line = %q", last)
	}
}

func TestDisassemblerLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	lg := log.New(&buf)
	lg.SetLevel(log.DebugLevel)

	if _, err := New(DefaultOptions(), lg).Disassemble(sampleModule()); err != nil {
		t.Fatalf("Disassemble: %v", err)
	}
	if !strings.Contains(buf.String(), "disassembled") {
		t.Errorf("expected debug summary, got %q", buf.String())
	}
}
