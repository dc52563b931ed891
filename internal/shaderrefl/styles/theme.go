package styles

import (
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/exp/charmtone"
)

// Disassembly colours, shared by the chroma style and the TUI.
const (
	SPIRVText       = "#D4D4D4"
	SPIRVMnemonic   = "#569CD6"
	SPIRVIdentifier = "#9CDCFE"
	SPIRVUnnamedID  = "#858585"
	SPIRVNumber     = "#B5CEA8"
	SPIRVString     = "#CE9178"
	SPIRVGutter     = "#4F4F4F"
	SPIRVHeader     = "#6A9955"
	SPIRVBackground = "#1E1E1E"
)

var (
	// MenuBar is the TUI footer.
	MenuBar = lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("252")).
		Padding(0, 1)

	// Title marks list and pane titles.
	Title = lipgloss.NewStyle().
		Foreground(charmtone.Charple).
		Bold(true).
		MarginLeft(2)

	Selected = lipgloss.NewStyle().Foreground(charmtone.Malibu)
	Dim      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	Warning  = lipgloss.NewStyle().Foreground(charmtone.Coral)

	// TreeRoot and TreeEnum style constant trees.
	TreeRoot = lipgloss.NewStyle().Foreground(charmtone.Zest).Bold(true)
	TreeEnum = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginRight(1)
)
