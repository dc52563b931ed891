package reflection

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
)

func uniform(name string, t GLType, location int32) FlatVariable {
	return FlatVariable{Name: name, Type: t, BlockIndex: NoGroup, Location: location, Offset: -1}
}

func blockMember(name string, t GLType, block, offset int32) FlatVariable {
	return FlatVariable{Name: name, Type: t, BlockIndex: block, Location: -1, Offset: offset}
}

func names(nodes []*ConstantNode) []string {
	var out []string
	for _, n := range nodes {
		out = append(out, n.Name)
	}
	return out
}

func TestBuildMergesArrayElements(t *testing.T) {
	tree := NewTreeBuilder(nil).Build([]FlatVariable{
		blockMember("foo[0].x", GLFloat, 0, 0),
		blockMember("foo[2].x", GLFloat, 0, 32),
	}, 1, false)

	want := []*ConstantNode{{
		Name:     "foo",
		Type:     VarFloat,
		TypeName: "struct",
		Elements: 3,
		Struct:   true,
		Members: []*ConstantNode{{
			Name: "x", Type: VarFloat, TypeName: "float", Rows: 1, Cols: 1,
		}},
	}}
	if diff := cmp.Diff(want, tree.Groups[0]); diff != "" {
		t.Errorf("group mismatch (-want +got):\n%s", diff)
	}
	if len(tree.Dropped) != 0 {
		t.Errorf("unexpected drops: %v", tree.Dropped)
	}
}

func TestBuildOnlyElementZeroCarriesMembers(t *testing.T) {
	tree := NewTreeBuilder(nil).Build([]FlatVariable{
		uniform("bar[0].a", GLFloatVec4, 0),
		uniform("bar[1].a", GLFloatVec4, 1),
		uniform("bar[1].b", GLFloatVec4, 2),
	}, 0, true)

	if len(tree.Ungrouped) != 1 {
		t.Fatalf("expected one top-level node, got %v", names(tree.Ungrouped))
	}
	bar := tree.Ungrouped[0]
	if bar.Elements != 2 {
		t.Errorf("elements = %d, want 2", bar.Elements)
	}
	if diff := cmp.Diff([]string{"a"}, names(bar.Members)); diff != "" {
		t.Errorf("members mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSortsByStorageOrder(t *testing.T) {
	tree := NewTreeBuilder(nil).Build([]FlatVariable{
		uniform("c", GLFloat, 3),
		uniform("a", GLFloat, 1),
		uniform("b", GLFloat, 2),
	}, 0, true)

	if diff := cmp.Diff([]string{"a", "b", "c"}, names(tree.Ungrouped)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSortIsStableAndRecursive(t *testing.T) {
	tree := NewTreeBuilder(nil).Build([]FlatVariable{
		blockMember("s.z", GLFloat, 0, 20),
		blockMember("s.y", GLFloat, 0, 16),
		blockMember("u1", GLFloat, 0, -1),
		blockMember("u2", GLFloat, 0, -1),
		blockMember("first", GLFloat, 0, 0),
	}, 1, false)

	if diff := cmp.Diff([]string{"first", "s", "u1", "u2"}, names(tree.Groups[0])); diff != "" {
		t.Errorf("top level (-want +got):\n%s", diff)
	}
	s := tree.Groups[0][1]
	if diff := cmp.Diff([]string{"y", "z"}, names(s.Members)); diff != "" {
		t.Errorf("members (-want +got):\n%s", diff)
	}
	if want := (StorageOrder{Major: 1, Minor: 0}); s.Order != want {
		t.Errorf("struct order = %+v, want min of members %+v", s.Order, want)
	}
}

func TestBuildDropsOrphans(t *testing.T) {
	var buf bytes.Buffer
	tree := NewTreeBuilder(log.New(&buf)).Build([]FlatVariable{
		blockMember("lost", GLFloat, 5, 0),
		blockMember("kept", GLFloat, 1, 0),
	}, 2, false)

	if tree.Ungrouped != nil {
		t.Errorf("ungrouped list should stay empty, got %v", names(tree.Ungrouped))
	}
	if len(tree.Groups[0]) != 0 || len(tree.Groups[1]) != 1 {
		t.Errorf("groups = %v / %v", names(tree.Groups[0]), names(tree.Groups[1]))
	}
	if len(tree.Dropped) != 1 || !errors.Is(tree.Dropped[0], ErrOrphanVariable) {
		t.Fatalf("dropped = %v, want one ErrOrphanVariable", tree.Dropped)
	}
	if !strings.Contains(buf.String(), "lost") {
		t.Errorf("expected warning naming the record, got %q", buf.String())
	}
}

func TestBuildOutOfRangeBlockFallsBackToUngrouped(t *testing.T) {
	tree := NewTreeBuilder(nil).Build([]FlatVariable{
		blockMember("stray", GLFloat, 5, 0),
	}, 2, true)

	if diff := cmp.Diff([]string{"stray"}, names(tree.Ungrouped)); diff != "" {
		t.Errorf("ungrouped (-want +got):\n%s", diff)
	}
}

func TestBuildMalformedNames(t *testing.T) {
	tests := []string{
		"s.m[1]",
		"s[1]",
		"s[0][1]",
		"s[x].m",
		".m",
		"s.",
		"s[0",
	}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			tree := NewTreeBuilder(nil).Build([]FlatVariable{uniform(name, GLFloat, 0)}, 0, true)
			if len(tree.Ungrouped) != 0 {
				t.Errorf("malformed record inserted %v", names(tree.Ungrouped))
			}
			if len(tree.Dropped) != 1 || !errors.Is(tree.Dropped[0], ErrMalformedName) {
				t.Errorf("dropped = %v, want one ErrMalformedName", tree.Dropped)
			}
		})
	}
}

func TestBuildStopsAtFirstLaterElement(t *testing.T) {
	tree := NewTreeBuilder(nil).Build([]FlatVariable{
		uniform("s[0].m[0]", GLFloat, 0),
		uniform("s[1].m[1]", GLFloat, 1),
		uniform("s[2].m[0", GLFloat, 2),
	}, 0, true)

	if len(tree.Dropped) != 0 {
		t.Fatalf("unexpected drops: %v", tree.Dropped)
	}
	if len(tree.Ungrouped) != 1 {
		t.Fatalf("ungrouped = %v, want [s]", names(tree.Ungrouped))
	}
	s := tree.Ungrouped[0]
	if s.Elements != 3 {
		t.Errorf("s elements = %d, want 3", s.Elements)
	}
	if diff := cmp.Diff([]string{"m"}, names(s.Members)); diff != "" {
		t.Errorf("members (-want +got):\n%s", diff)
	}
}

func TestBuildSkipsOpaqueTypes(t *testing.T) {
	tree := NewTreeBuilder(nil).Build([]FlatVariable{
		uniform("tex", GLSampler2D, 0),
		uniform("counter", GLUnsignedIntAtomicCounter, 1),
		uniform("tint", GLFloatVec4, 2),
	}, 0, true)

	if diff := cmp.Diff([]string{"tint"}, names(tree.Ungrouped)); diff != "" {
		t.Errorf("ungrouped (-want +got):\n%s", diff)
	}
	if len(tree.Dropped) != 0 {
		t.Errorf("opaque types are not errors: %v", tree.Dropped)
	}
}

func TestBuildFlatArrays(t *testing.T) {
	tree := NewTreeBuilder(nil).Build([]FlatVariable{
		func() FlatVariable { v := uniform("weights[0]", GLFloat, 0); v.ArraySize = 8; return v }(),
		func() FlatVariable { v := uniform("bias", GLFloat, 8); v.ArraySize = 1; return v }(),
	}, 0, true)

	got := map[string]uint32{}
	for _, n := range tree.Ungrouped {
		got[n.Name] = n.Elements
	}
	if diff := cmp.Diff(map[string]uint32{"weights": 8, "bias": 0}, got); diff != "" {
		t.Errorf("elements (-want +got):\n%s", diff)
	}
}

// Duplicate names with different type metadata have no documented
// precedence; the last record wins and names stay unique.
func TestBuildDuplicateLeafLastWriteWins(t *testing.T) {
	tree := NewTreeBuilder(nil).Build([]FlatVariable{
		blockMember("s.v", GLFloatVec4, 0, 0),
		blockMember("s.v", GLIntVec2, 0, 0),
	}, 1, false)

	s := tree.Groups[0][0]
	if len(s.Members) != 1 {
		t.Fatalf("expected unique member, got %v", names(s.Members))
	}
	if v := s.Members[0]; v.TypeName != "ivec2" || v.Type != VarInt {
		t.Errorf("member = %+v, want the later ivec2", v)
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	records := []FlatVariable{
		blockMember("lights[0].colour", GLFloatVec3, 0, 0),
		blockMember("lights[0].range", GLFloat, 0, 12),
		blockMember("lights[3].colour", GLFloatVec3, 0, 48),
		blockMember("view", GLFloatMat4, 0, 64),
		uniform("time", GLFloat, 2),
		uniform("bad[1]", GLFloat, 3),
	}
	tb := NewTreeBuilder(nil)
	first := tb.Build(records, 1, true)
	second := tb.Build(records, 1, true)

	if diff := cmp.Diff(first.Groups, second.Groups); diff != "" {
		t.Errorf("groups differ between runs:\n%s", diff)
	}
	if diff := cmp.Diff(first.Ungrouped, second.Ungrouped); diff != "" {
		t.Errorf("ungrouped differs between runs:\n%s", diff)
	}
	if len(first.Dropped) != len(second.Dropped) {
		t.Errorf("dropped %d vs %d", len(first.Dropped), len(second.Dropped))
	}
}

func TestOrderFrom(t *testing.T) {
	tests := []struct {
		location, offset int32
		want             StorageOrder
	}{
		{3, -1, StorageOrder{3, 0}},
		{-1, 20, StorageOrder{1, 1}},
		{5, 36, StorageOrder{2, 1}},
		{-1, -1, Unbound},
	}
	for _, tt := range tests {
		if got := OrderFrom(tt.location, tt.offset); got != tt.want {
			t.Errorf("OrderFrom(%d, %d) = %+v, want %+v", tt.location, tt.offset, got, tt.want)
		}
	}
}
