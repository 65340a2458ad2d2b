// Package ui provides the optional terminal interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/tm/internal/project"
	"github.com/nibzard/tm/internal/task"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	openStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// RunTUI starts the interactive tree browser on the current project.
func RunTUI(ctx context.Context, store *project.Store) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}
	model := newTUIModel(store)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(*tuiModel); ok && m.fatalErr != nil {
		return m.fatalErr
	}
	return nil
}

// row is one visible line of the flattened tree.
type row struct {
	path task.Path
	node *task.Node
}

type tuiModel struct {
	store        *project.Store
	projectName  string
	rows         []row
	cursor       int
	loadErr      error
	opErr        error
	fatalErr     error
	showHelp     bool
	tickInterval time.Duration
}

type tickMsg time.Time

func newTUIModel(store *project.Store) *tuiModel {
	return &tuiModel{
		store:        store,
		tickInterval: 2 * time.Second,
	}
}

func (m *tuiModel) Init() tea.Cmd {
	m.refresh()
	return tickCmd(m.tickInterval)
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.opErr = nil
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			return m, nil
		case "g", "home":
			m.cursor = 0
			return m, nil
		case "G", "end":
			if len(m.rows) > 0 {
				m.cursor = len(m.rows) - 1
			}
			return m, nil
		case " ", "enter":
			m.toggle()
			return m, nil
		case "d":
			m.apply(task.Operation{Kind: task.OpDelete, Path: m.cursorPath()})
			return m, nil
		case "K":
			m.apply(task.Operation{Kind: task.OpMove, Path: m.cursorPath(), Move: task.MoveSpec{Kind: task.MoveUp}})
			return m, nil
		case "J":
			m.apply(task.Operation{Kind: task.OpMove, Path: m.cursorPath(), Move: task.MoveSpec{Kind: task.MoveDown}})
			return m, nil
		case "r", "f5":
			m.refresh()
			return m, nil
		case "h", "?":
			m.showHelp = !m.showHelp
			return m, nil
		}
	case tickMsg:
		m.refresh()
		return m, tickCmd(m.tickInterval)
	}
	return m, nil
}

func (m *tuiModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("tm: "+m.projectName) + "\n\n")

	if m.showHelp {
		writeHelp(&b)
		writeFooter(&b)
		return b.String()
	}
	if m.loadErr != nil {
		b.WriteString("Error loading project:\n")
		b.WriteString("  " + m.loadErr.Error() + "\n\n")
		writeFooter(&b)
		return b.String()
	}
	if len(m.rows) == 0 {
		b.WriteString(dimStyle.Render("  list is empty.") + "\n\n")
		writeFooter(&b)
		return b.String()
	}

	for i, r := range m.rows {
		line := formatRow(r)
		if i == m.cursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	if m.opErr != nil {
		b.WriteString(openStyle.Render("  "+m.opErr.Error()) + "\n\n")
	}
	writeFooter(&b)
	return b.String()
}

func formatRow(r row) string {
	indent := strings.Repeat("  ", len(r.path)-1)
	mark := openStyle.Render("○")
	if r.node.Completed {
		mark = doneStyle.Render("✓")
	}
	return fmt.Sprintf("  %s%s %d. %s", indent, mark, r.path[len(r.path)-1], r.node.Text)
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refresh reloads the current project and reflattens the tree, clamping the
// cursor when rows disappear.
func (m *tuiModel) refresh() {
	name, tr, err := m.store.CurrentTree()
	if err != nil {
		m.loadErr = err
		m.rows = nil
		return
	}
	m.loadErr = nil
	m.projectName = name
	m.rows = flatten(tr)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func flatten(tr *task.Tree) []row {
	var rows []row
	tr.Walk(func(p task.Path, n *task.Node) {
		path := make(task.Path, len(p))
		copy(path, p)
		rows = append(rows, row{path: path, node: n})
	})
	return rows
}

func (m *tuiModel) cursorPath() task.Path {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return m.rows[m.cursor].path
}

func (m *tuiModel) toggle() {
	path := m.cursorPath()
	if path == nil {
		return
	}
	kind := task.OpCheck
	if m.rows[m.cursor].node.Completed {
		kind = task.OpUncheck
	}
	m.apply(task.Operation{Kind: kind, Path: path})
}

func (m *tuiModel) apply(op task.Operation) {
	if op.Path == nil {
		return
	}
	if err := m.store.Apply(op); err != nil {
		m.opErr = err
		return
	}
	m.refresh()
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  q, ctrl+c    Quit\n")
	b.WriteString("  j/k, arrows  Move cursor\n")
	b.WriteString("  g/G          Jump to top/bottom\n")
	b.WriteString("  space/enter  Toggle completed\n")
	b.WriteString("  J/K          Move item down/up\n")
	b.WriteString("  d            Delete item\n")
	b.WriteString("  r, F5        Refresh\n")
	b.WriteString("  h, ?         Toggle this help screen\n\n")
}

func writeFooter(b *strings.Builder) {
	b.WriteString(dimStyle.Render("Press h for help | q to quit") + "\n")
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}
