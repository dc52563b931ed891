package spirv

import "fmt"

// maxIDBound caps the header id bound the symbol table will allocate for.
// Real modules stay orders of magnitude below it; a larger bound is treated
// as a corrupt header.
const maxIDBound = 1 << 22

type memberKey struct {
	id, index uint32
}

// SymbolTable maps result ids to display names. Ids without a debug name
// resolve to a "<N>" placeholder.
type SymbolTable struct {
	names   []string
	members map[memberKey]string
}

func newSymbolTable(bound uint32) *SymbolTable {
	t := &SymbolTable{
		names:   make([]string, bound),
		members: make(map[memberKey]string),
	}
	for id := range t.names {
		t.names[id] = fmt.Sprintf("<%d>", id)
	}
	return t
}

// Name returns the display name for id.
func (t *SymbolTable) Name(id uint32) string {
	if int(id) < len(t.names) {
		return t.names[id]
	}
	return fmt.Sprintf("<%d>", id)
}

// Member returns the debug name of member index of the struct type id.
func (t *SymbolTable) Member(id, index uint32) (string, bool) {
	name, ok := t.members[memberKey{id, index}]
	return name, ok
}

// Len is the number of ids the table covers, the header bound.
func (t *SymbolTable) Len() int { return len(t.names) }

func (t *SymbolTable) bind(id uint32, name string) {
	if int(id) < len(t.names) && name != "" {
		t.names[id] = name
	}
}

func (t *SymbolTable) bindMember(id, index uint32, name string) {
	if name != "" {
		t.members[memberKey{id, index}] = name
	}
}
