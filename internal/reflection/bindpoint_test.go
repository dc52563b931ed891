package reflection

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMapBindpoints(t *testing.T) {
	dump := loadForward(t)
	refl, err := Reflect(dump, ReflectOptions{Stage: dump.Stage})
	if err != nil {
		t.Fatalf("Reflect: %v", err)
	}

	m := MapBindpoints(refl, dump.Bindings, StageFragment)

	wantRes := []Binding{
		{Bind: 2, Used: true},  // albedo
		{Bind: 5, Used: false}, // shadowMaps[0], vertex only
		{Bind: 6, Used: false},
		{Bind: 7, Used: false},
		{Bind: 1, Used: true}, // counter
		{Bind: 3, Used: true}, // Lights
	}
	if diff := cmp.Diff(wantRes, m.Resources); diff != "" {
		t.Errorf("resources (-want +got):\n%s", diff)
	}

	wantBlocks := []Binding{{Bind: 4, Used: true}, {Bind: -1, Used: true}}
	if diff := cmp.Diff(wantBlocks, m.ConstantBlocks); diff != "" {
		t.Errorf("constant blocks (-want +got):\n%s", diff)
	}

	if len(m.InputAttributes) != 8 {
		t.Fatalf("attributes = %d, want 8", len(m.InputAttributes))
	}
	for i, a := range m.InputAttributes {
		if a != -1 {
			t.Errorf("fragment stage attribute %d = %d, want -1", i, a)
		}
	}
}

func TestMapBindpointsVertexAttributes(t *testing.T) {
	refl := &ShaderReflection{
		Stage: StageVertex,
		InputSig: []SigParameter{
			{VarName: "position"},
			{VarName: "normal"},
			{VarName: "gl_VertexID", SystemValue: SysVertexIndex},
		},
		ConstantBlocks: []ConstantBlock{{Name: "Missing", BufferBacked: true}},
		Resources: []ShaderResource{
			{Name: "gone", IsReadWrite: true, Variable: TypeDesc{Type: VarUInt, Name: "buffer"}},
		},
	}
	q := &DumpBindings{Attributes: map[string]int32{"position": 2, "normal": 0, "gl_VertexID": -1}}

	m := MapBindpoints(refl, q, StageVertex)

	want := BindpointMapping{
		Resources:       []Binding{{Bind: -1}},
		ConstantBlocks:  []Binding{{Bind: -1}},
		InputAttributes: []int32{1, -1, 0, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("mapping (-want +got):\n%s", diff)
	}
}
