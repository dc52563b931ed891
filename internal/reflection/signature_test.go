package reflection

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildSignatureVertexOutputs(t *testing.T) {
	records := []SignatureRecord{
		{Name: "gl_PointSize", Type: GLFloat, Location: -1},
		{Name: "worldPos", Type: GLFloatVec3, Location: 1},
		{Name: "gl_Position", Type: GLFloatVec4, Location: -1},
		{Name: "packed", Type: GLFloatVec2, Location: 0, Component: 2},
		{Name: "gl_ClipDistance", Type: GLFloat, Location: -1},
	}

	got := BuildSignature(records, StageVertex, true, VertexOutputUses{ClipDistance: true})
	want := []SigParameter{
		{VarName: "packed", CompType: CompFloat, CompCount: 2, RegIndex: 0, RegChannelMask: 0xc, ChannelUsedMask: 0xc},
		{VarName: "worldPos", CompType: CompFloat, CompCount: 3, RegIndex: 1, RegChannelMask: 0x7, ChannelUsedMask: 0x7},
		{VarName: "gl_Position", CompType: CompFloat, CompCount: 4, RegChannelMask: 0xf, ChannelUsedMask: 0xf, SystemValue: SysPosition},
		{VarName: "gl_ClipDistance", CompType: CompFloat, CompCount: 1, RegChannelMask: 0x1, ChannelUsedMask: 0x1, SystemValue: SysClipDistance},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("signature (-want +got):\n%s", diff)
	}
}

func TestBuildSignatureMatrixRows(t *testing.T) {
	got := BuildSignature([]SignatureRecord{
		{Name: "model", Type: GLFloatMat3x4, Location: 4},
	}, StageVertex, false, VertexOutputUses{})

	var rows []string
	for _, s := range got {
		if s.CompCount != 3 {
			t.Errorf("%s: comp count %d, want 3", s.VarName, s.CompCount)
		}
		rows = append(rows, s.VarName)
	}
	if diff := cmp.Diff([]string{"model:row0", "model:row1", "model:row2", "model:row3"}, rows); diff != "" {
		t.Errorf("rows (-want +got):\n%s", diff)
	}
	if got[3].RegIndex != 7 {
		t.Errorf("last row register = %d, want 7", got[3].RegIndex)
	}
}

func TestBuildSignatureComponentTypes(t *testing.T) {
	got := BuildSignature([]SignatureRecord{
		{Name: "a", Type: GLIntVec4, Location: 0},
		{Name: "b", Type: GLBoolVec2, Location: 1},
		{Name: "c", Type: GLDouble, Location: 2},
		{Name: "d", Type: GLSampler2D, Location: 3},
	}, StageFragment, false, VertexOutputUses{})

	want := []CompType{CompSInt, CompUInt, CompFloat, CompFloat}
	for i, s := range got {
		if s.CompType != want[i] {
			t.Errorf("%s: comp type %v, want %v", s.VarName, s.CompType, want[i])
		}
	}
	if got[3].CompCount != 4 || got[3].RegChannelMask != 0xf {
		t.Errorf("unknown type should default to 4 components, got %+v", got[3])
	}
}

func TestBuildSignatureUnlocatedInputsUsePosition(t *testing.T) {
	got := BuildSignature([]SignatureRecord{
		{Name: "gl_VertexID", Type: GLInt, Location: -1},
		{Name: "extra", Type: GLFloat, Location: -1},
	}, StageVertex, false, VertexOutputUses{})

	if got[0].VarName != "extra" || got[0].RegIndex != 1 {
		t.Errorf("first = %+v, want extra at its record position", got[0])
	}
	if got[1].SystemValue != SysVertexIndex || got[1].RegIndex != 0 {
		t.Errorf("second = %+v", got[1])
	}
}

func TestSystemValueLongestBuiltinWins(t *testing.T) {
	tests := map[string]SystemValue{
		"gl_PrimitiveIDIn":  SysPrimitiveIndex,
		"gl_SampleMaskIn":   SysMSAACoverage,
		"gl_TessLevelOuter": SysOuterTessFactor,
		"gl_PointCoord":     SysNone,
		"colour":            SysNone,
	}
	for name, want := range tests {
		if got := systemValueOf(name); got != want {
			t.Errorf("systemValueOf(%q) = %v, want %v", name, got, want)
		}
	}
}
