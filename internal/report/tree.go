package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/tree"

	"shaderrefl/internal/reflection"
	"shaderrefl/internal/shaderrefl/styles"
)

const swizzle = "xyzw"

// NodeLabel is the one-line description of a constant: type, name, array
// size and the register it starts at, e.g. "vec4 tint[2] @c3.x".
func NodeLabel(n *reflection.ConstantNode) string {
	var sb strings.Builder
	if n.Struct {
		sb.WriteString("struct ")
	} else {
		sb.WriteString(n.TypeName)
		sb.WriteByte(' ')
	}
	sb.WriteString(n.Name)
	if n.Elements > 0 {
		fmt.Fprintf(&sb, "[%d]", n.Elements)
	}
	if n.RowMajor {
		sb.WriteString(" row_major")
	}
	if n.Order != reflection.Unbound {
		fmt.Fprintf(&sb, " @c%d.%c", n.Order.Major, swizzle[n.Order.Minor%4])
	}
	return sb.String()
}

// ConstantTree draws a constant list as a plain tree under title.
func ConstantTree(title string, nodes []*reflection.ConstantNode) string {
	return buildTree(title, nodes, false).String()
}

// StyledConstantTree is ConstantTree with terminal colours.
func StyledConstantTree(title string, nodes []*reflection.ConstantNode) string {
	return buildTree(title, nodes, true).String()
}

func buildTree(title string, nodes []*reflection.ConstantNode, styled bool) *tree.Tree {
	t := tree.Root(title).Enumerator(tree.RoundedEnumerator)
	if styled {
		t = t.RootStyle(styles.TreeRoot).EnumeratorStyle(styles.TreeEnum)
	}
	for _, n := range nodes {
		t.Child(subtree(n, styled))
	}
	return t
}

func subtree(n *reflection.ConstantNode, styled bool) any {
	label := NodeLabel(n)
	if !n.Struct || len(n.Members) == 0 {
		return label
	}
	t := tree.Root(label).Enumerator(tree.RoundedEnumerator)
	if styled {
		t = t.EnumeratorStyle(styles.TreeEnum).RootStyle(lipgloss.NewStyle().Bold(true))
	}
	for _, m := range n.Members {
		t.Child(subtree(m, styled))
	}
	return t
}
