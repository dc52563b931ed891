package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/spinner"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/spf13/cobra"

	"shaderrefl/internal/reflection"
	"shaderrefl/internal/report"
	"shaderrefl/internal/shaderrefl/log"
	"shaderrefl/internal/shaderrefl/styles"
	"shaderrefl/internal/spirv"
	"shaderrefl/internal/ui/colorize"
)

type viewMode int

const (
	viewReport viewMode = iota
	viewBlocks
	viewTree
	viewListing
)

var viewCmd = &cobra.Command{
	Use:   "view <dump.json|module.spv>",
	Short: "Browse a reflection or a SPIR-V listing interactively",
	Example: `
shaderrefl view forward.json --spirv forward.frag.spv
shaderrefl view shader.spv
  `,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spvPath, _ := cmd.Flags().GetString("spirv")

		program := tea.NewProgram(
			newViewModel(args[0], spvPath),
			tea.WithAltScreen(),
			tea.WithContext(cmd.Context()),
		)
		if _, err := program.Run(); err != nil {
			slog.Error("TUI run error", "error", err)
			return fmt.Errorf("TUI error: %v", err)
		}
		return nil
	},
}

func init() {
	viewCmd.Flags().String("spirv", "", "SPIR-V module to show alongside a dump")
}

// blockItem is one constant tree in the blocks list: a constant block or
// a storage buffer resource with members.
type blockItem struct {
	name    string
	kind    string
	members []*reflection.ConstantNode
}

func (i blockItem) Title() string       { return i.name }
func (i blockItem) Description() string { return fmt.Sprintf("%s, %d members", i.kind, len(i.members)) }
func (i blockItem) FilterValue() string { return i.name }

type blockDelegate struct{}

func (d blockDelegate) Height() int                               { return 1 }
func (d blockDelegate) Spacing() int                              { return 0 }
func (d blockDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d blockDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(blockItem)
	if !ok {
		return
	}
	indicator, name := " ", i.name
	if index == m.Index() {
		indicator, name = ">", styles.Selected.Render(i.name)
	}
	fmt.Fprintf(w, " %s  %s  %s", indicator, name, styles.Dim.Render(i.Description()))
}

// loadedMsg carries the result of loading the input in the background.
type loadedMsg struct {
	refl     *reflection.ShaderReflection
	bindings *reflection.BindpointMapping
	listing  string
	err      error
}

func loadCmd(path, spvPath string) tea.Cmd {
	return func() tea.Msg {
		if strings.EqualFold(filepath.Ext(path), ".json") {
			refl, bindings, err := loadReflection(path, spvPath)
			if err != nil {
				return loadedMsg{err: err}
			}
			return loadedMsg{refl: refl, bindings: bindings, listing: refl.Disassembly}
		}

		mod, err := spirv.Open(path)
		if err != nil {
			return loadedMsg{err: err}
		}
		text, err := spirv.New(spirv.DefaultOptions(), log.Logger()).Disassemble(mod.Words)
		if err != nil && !errors.Is(err, spirv.ErrMagicMismatch) {
			return loadedMsg{err: err}
		}
		return loadedMsg{listing: text}
	}
}

type viewModel struct {
	report   viewport.Model
	tree     viewport.Model
	listing  viewport.Model
	blocks   list.Model
	spinner  spinner.Model
	mode     viewMode
	path     string
	spvPath  string
	loading  bool
	err      error
	refl     *reflection.ShaderReflection
	bindings *reflection.BindpointMapping
	text     string
	width    int
	height   int
}

func newViewModel(path, spvPath string) viewModel {
	newViewport := func() viewport.Model {
		vp := viewport.New()
		vp.SetWidth(80)
		vp.SetHeight(24)
		return vp
	}

	blocks := list.New([]list.Item{}, blockDelegate{}, 80, 24)
	blocks.SetShowStatusBar(false)
	blocks.SetFilteringEnabled(true)
	blocks.Title = "Constant trees"
	blocks.Styles.Title = styles.Title

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Selected

	m := viewModel{
		report:  newViewport(),
		tree:    newViewport(),
		listing: newViewport(),
		blocks:  blocks,
		spinner: s,
		mode:    viewReport,
		path:    path,
		spvPath: spvPath,
		loading: true,
		width:   80,
		height:  24,
	}
	m.updateReport()
	return m
}

func (m viewModel) Init() tea.Cmd {
	return tea.Batch(loadCmd(m.path, m.spvPath), m.spinner.Tick)
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		m.refl = msg.refl
		m.bindings = msg.bindings
		m.text = msg.listing
		m.updateBlocks()
		m.updateReport()
		m.listing.SetContent(colorize.Listing(m.text))
		if m.refl == nil && m.text != "" {
			m.mode = viewListing
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		m.updateReport()
		return m, cmd

	case tea.WindowSizeMsg:
		if msg.Width != m.width || msg.Height != m.height {
			m.width, m.height = msg.Width, msg.Height
			for _, vp := range []*viewport.Model{&m.report, &m.tree, &m.listing} {
				vp.SetWidth(msg.Width)
				vp.SetHeight(msg.Height - 2)
			}
			m.blocks.SetWidth(msg.Width)
			m.blocks.SetHeight(msg.Height - 2)
			m.updateReport()
		}

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return m, tea.Quit
		}
		// the filter prompt owns the keyboard while open
		if m.mode == viewBlocks && m.blocks.FilterState() == list.Filtering {
			break
		}
		switch key {
		case "q":
			return m, tea.Quit
		case "r":
			m.switchMode(viewReport)
			return m, nil
		case "b":
			m.switchMode(viewBlocks)
			return m, nil
		case "l":
			m.switchMode(viewListing)
			return m, nil
		case "esc":
			if m.mode == viewTree {
				m.switchMode(viewBlocks)
				return m, nil
			}
		case "enter":
			if m.mode == viewBlocks {
				m.openSelected()
				return m, nil
			}
		case "tab":
			m.cycle(1)
			return m, nil
		case "shift+tab":
			m.cycle(-1)
			return m, nil
		}
	}

	switch m.mode {
	case viewBlocks:
		m.blocks, cmd = m.blocks.Update(msg)
	case viewTree:
		m.tree, cmd = m.tree.Update(msg)
	case viewListing:
		m.listing, cmd = m.listing.Update(msg)
	default:
		m.report, cmd = m.report.Update(msg)
	}
	return m, cmd
}

// available reports whether mode has content to show.
func (m viewModel) available(mode viewMode) bool {
	switch mode {
	case viewBlocks:
		return len(m.blocks.Items()) > 0
	case viewTree:
		return false
	case viewListing:
		return m.text != ""
	}
	return true
}

func (m *viewModel) switchMode(mode viewMode) {
	if m.available(mode) {
		m.mode = mode
	}
}

func (m *viewModel) cycle(step int) {
	cur := m.mode
	if cur == viewTree {
		cur = viewBlocks
	}
	modes := []viewMode{viewReport, viewBlocks, viewListing}
	i := 0
	for j, md := range modes {
		if md == cur {
			i = j
		}
	}
	for range modes {
		i = (i + step + len(modes)) % len(modes)
		if m.available(modes[i]) {
			m.mode = modes[i]
			return
		}
	}
}

func (m *viewModel) openSelected() {
	item, ok := m.blocks.SelectedItem().(blockItem)
	if !ok {
		return
	}
	m.tree.SetContent(report.StyledConstantTree(item.name, item.members))
	m.tree.GotoTop()
	m.mode = viewTree
}

func (m *viewModel) updateBlocks() {
	if m.refl == nil {
		return
	}
	var items []list.Item
	for _, cb := range m.refl.ConstantBlocks {
		kind := "uniform block"
		if !cb.BufferBacked {
			kind = "loose uniforms"
		}
		items = append(items, blockItem{name: cb.Name, kind: kind, members: cb.Variables})
	}
	for _, r := range m.refl.Resources {
		if len(r.Members) > 0 {
			items = append(items, blockItem{name: r.Name, kind: "storage buffer", members: r.Members})
		}
	}
	m.blocks.SetItems(items)
}

func (m *viewModel) updateReport() {
	width := m.width
	if width == 0 {
		width = 80
	}

	var content string
	switch {
	case m.loading:
		content = fmt.Sprintf("\n  %s Loading %s...", m.spinner.View(), filepath.Base(m.path))
	case m.err != nil:
		content = "\n  " + styles.Warning.Render(m.err.Error())
	case m.refl == nil:
		content = "\n  " + styles.Dim.Render("No reflection for a bare module; press l for the listing.")
	default:
		rendered, err := report.Render(m.refl, report.Options{Bindings: m.bindings}, width-2)
		if err != nil {
			rendered = report.Markdown(m.refl, report.Options{Bindings: m.bindings})
		}
		content = strings.TrimSuffix(rendered, "\n")
	}
	m.report.SetContent(content)
}

func (m viewModel) View() string {
	var content string
	switch m.mode {
	case viewBlocks:
		content = m.blocks.View()
	case viewTree:
		content = m.tree.View()
	case viewListing:
		content = m.listing.View()
	default:
		content = m.report.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, styles.MenuBar.Width(m.width).Render(m.menu()))
}

func (m viewModel) menu() string {
	var keys []string
	switch m.mode {
	case viewBlocks:
		keys = append(keys, "Enter: tree", "/: filter")
	case viewTree:
		keys = append(keys, "Esc: back")
	}
	if m.mode != viewReport {
		keys = append(keys, "R: report")
	}
	if m.mode != viewBlocks && m.available(viewBlocks) {
		keys = append(keys, "B: blocks")
	}
	if m.mode != viewListing && m.available(viewListing) {
		keys = append(keys, "L: listing")
	}
	keys = append(keys, "Tab: cycle", "Q: quit")
	return " " + strings.Join(keys, " • ") + " "
}
