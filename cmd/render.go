package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/tm/internal/project"
	"github.com/nibzard/tm/internal/task"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	openStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	currentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
)

// renderTree writes the project header and the indented task tree.
func renderTree(w io.Writer, name string, tr *task.Tree) {
	fmt.Fprintln(w, headerStyle.Render("Current: "+name))
	if len(tr.Tasks) == 0 {
		fmt.Fprintln(w, "list is empty.")
		return
	}
	tr.Walk(func(p task.Path, n *task.Node) {
		indent := strings.Repeat("  ", len(p)-1)
		fmt.Fprintf(w, "%s%s %d. %s\n", indent, marker(n), p[len(p)-1], n.Text)
	})
}

func marker(n *task.Node) string {
	if n.Completed {
		return "[" + doneStyle.Render("✓") + "]"
	}
	return "[" + openStyle.Render("○") + "]"
}

// renderProjects writes the project listing with the current one marked.
func renderProjects(w io.Writer, infos []project.Info) {
	fmt.Fprintln(w, headerStyle.Render("Projects:"))
	for _, info := range infos {
		if info.Current {
			fmt.Fprintln(w, currentStyle.Render("* "+info.Name))
		} else {
			fmt.Fprintf(w, "  %s\n", info.Name)
		}
	}
}
