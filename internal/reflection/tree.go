package reflection

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"shaderrefl/internal/logging"
)

// NoGroup marks a variable that is not a member of any block.
const NoGroup = -1

// FlatVariable is one introspected variable before hierarchy
// reconstruction.
type FlatVariable struct {
	Name       string `json:"name" jsonschema:"description=Encoded name, e.g. lights[0].colour"`
	Type       GLType `json:"type" jsonschema:"description=GL type enumerant, numeric or GL_* name"`
	ArraySize  int32  `json:"arraySize,omitempty"`
	BlockIndex int32  `json:"blockIndex" jsonschema:"description=Enclosing block index or -1"`
	Location   int32  `json:"location" jsonschema:"description=Uniform location or -1"`
	Offset     int32  `json:"offset" jsonschema:"description=Byte offset within the block or -1"`
	RowMajor   bool   `json:"rowMajor,omitempty"`
}

// UnmarshalJSON defaults the index fields to -1 when absent.
func (v *FlatVariable) UnmarshalJSON(b []byte) error {
	type plain FlatVariable
	p := plain{BlockIndex: NoGroup, Location: -1, Offset: -1}
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*v = FlatVariable(p)
	return nil
}

// Order derives the variable's storage order.
func (v FlatVariable) Order() StorageOrder { return OrderFrom(v.Location, v.Offset) }

// ConstantNode is a leaf variable or a structure (possibly an array of
// structures) in a reconstructed constant tree.
type ConstantNode struct {
	Name     string          `json:"name"`
	Type     VarType         `json:"type"`
	TypeName string          `json:"typeName"`
	Rows     uint32          `json:"rows"`
	Cols     uint32          `json:"cols"`
	Elements uint32          `json:"elements"`
	RowMajor bool            `json:"rowMajor,omitempty"`
	Order    StorageOrder    `json:"order"`
	Struct   bool            `json:"struct,omitempty"`
	Members  []*ConstantNode `json:"members,omitempty"`
}

// Tree is the output of one Build call.
type Tree struct {
	Ungrouped []*ConstantNode
	Groups    [][]*ConstantNode
	// Dropped holds one error per record that could not be placed.
	Dropped []error
}

// TreeBuilder reconstructs constant trees. It holds no per-call state.
type TreeBuilder struct {
	logger *log.Logger
}

// NewTreeBuilder returns a builder that reports dropped records to logger.
// A nil logger discards them.
func NewTreeBuilder(logger *log.Logger) *TreeBuilder {
	return &TreeBuilder{logger: logging.Or(logger)}
}

// Build places records, in order, into numGroups block lists or the
// ungrouped list, then sorts every sibling list by storage order. When
// withUngrouped is false, records outside every block are dropped with
// ErrOrphanVariable. Records of non-numeric type are skipped silently.
func (tb *TreeBuilder) Build(records []FlatVariable, numGroups int, withUngrouped bool) Tree {
	t := Tree{Groups: make([][]*ConstantNode, max(numGroups, 0))}
	st := &buildState{index: make(map[*[]*ConstantNode]map[string]int)}

	for _, rec := range records {
		if err := st.insert(&t, rec, withUngrouped); err != nil {
			t.Dropped = append(t.Dropped, err)
			tb.logger.Warn("dropped variable", "name", rec.Name, "block", rec.BlockIndex, "err", err)
		}
	}

	sortNodes(t.Ungrouped)
	for _, g := range t.Groups {
		sortNodes(g)
	}
	tb.logger.Debug("built constant tree", "records", len(records), "groups", len(t.Groups), "dropped", len(t.Dropped))
	return t
}

// buildState is the find-or-create index for one Build call: for every
// sibling list it maps a node name to its position.
type buildState struct {
	index map[*[]*ConstantNode]map[string]int
}

func (st *buildState) lookup(list *[]*ConstantNode, name string) (int, bool) {
	pos, ok := st.index[list][name]
	return pos, ok
}

func (st *buildState) add(list *[]*ConstantNode, n *ConstantNode) {
	idx := st.index[list]
	if idx == nil {
		idx = make(map[string]int)
		st.index[list] = idx
	}
	idx[n.Name] = len(*list)
	*list = append(*list, n)
}

// put inserts n, replacing a sibling of the same name.
func (st *buildState) put(list *[]*ConstantNode, n *ConstantNode) {
	if pos, ok := st.lookup(list, n.Name); ok {
		(*list)[pos] = n
		return
	}
	st.add(list, n)
}

func (st *buildState) insert(t *Tree, rec FlatVariable, withUngrouped bool) error {
	desc, ok := Describe(rec.Type)
	if !ok {
		return nil
	}

	// a trailing [0] marks element zero of a flat array; the array size is
	// only kept for those names
	elements := uint32(max(rec.ArraySize, 1))
	name, isArray := strings.CutSuffix(rec.Name, "[0]")
	if !isArray {
		elements = 0
	}

	var list *[]*ConstantNode
	switch {
	case rec.BlockIndex >= 0 && int(rec.BlockIndex) < len(t.Groups):
		list = &t.Groups[rec.BlockIndex]
	case withUngrouped:
		list = &t.Ungrouped
	default:
		return fmt.Errorf("%w: %q has block index %d, %d blocks known", ErrOrphanVariable, rec.Name, rec.BlockIndex, len(t.Groups))
	}

	path, leafName, err := parsePath(name)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrMalformedName, rec.Name, err)
	}

	order := rec.Order()
	for _, seg := range path {
		var elems uint32
		if seg.indexed() {
			elems = uint32(seg.index) + 1
		}

		var parent *ConstantNode
		if pos, ok := st.lookup(list, seg.name); ok {
			parent = (*list)[pos]
			if !parent.Struct {
				// a leaf of the same name loses to the structure
				*parent = ConstantNode{Name: parent.Name, Order: parent.Order}
				parent.Struct = true
				parent.TypeName = "struct"
				parent.Type = desc.Type
			}
			parent.Elements = max(parent.Elements, elems)
			parent.Order = minOrder(parent.Order, order)
		} else {
			parent = &ConstantNode{
				Name:     seg.name,
				Type:     desc.Type,
				TypeName: "struct",
				Elements: elems,
				Order:    order,
				Struct:   true,
			}
			st.add(list, parent)
		}

		// only element zero carries member detail; later elements just
		// grow the element count
		if seg.index > 0 {
			return nil
		}
		list = &parent.Members
	}

	st.put(list, &ConstantNode{
		Name:     leafName,
		Type:     desc.Type,
		TypeName: desc.Name,
		Rows:     desc.Rows,
		Cols:     desc.Cols,
		Elements: elements,
		RowMajor: rec.RowMajor,
		Order:    order,
	})
	return nil
}

func sortNodes(nodes []*ConstantNode) {
	slices.SortStableFunc(nodes, func(a, b *ConstantNode) int {
		switch {
		case a.Order.Less(b.Order):
			return -1
		case b.Order.Less(a.Order):
			return 1
		}
		return 0
	})
	for _, n := range nodes {
		sortNodes(n.Members)
	}
}
