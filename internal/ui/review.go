package ui

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"framewright/internal/domain"
	"framewright/internal/generator"
	"framewright/internal/services"
	"framewright/internal/theme"
)

// reviewScreen shows the generated file tree with word counts and offers
// the export actions. It regenerates from state on construction, so
// re-entering after an edit always shows fresh output.
type reviewScreen struct {
	projects *services.ProjectService
	export   *services.ExportService
	state    *domain.ProjectState

	files  []generator.GeneratedFile
	tree   *generator.FileTreeNode
	keys   reviewKeyMap
	help   help.Model
	status string

	exporting     bool
	editRequested bool
	quitRequested bool
}

func newReviewScreen(state *domain.ProjectState, projects *services.ProjectService, export *services.ExportService) *reviewScreen {
	files := generator.GenerateAll(state, projects.Catalog())
	return &reviewScreen{
		projects: projects,
		export:   export,
		state:    state,
		files:    files,
		tree:     generator.BuildTree(generator.FrameworkFolderName(state), files),
		keys:     newReviewKeyMap(),
		help:     help.New(),
	}
}

func (r *reviewScreen) Init() tea.Cmd { return nil }

func (r *reviewScreen) exportDirCmd() tea.Cmd {
	dest := generator.FrameworkFolderName(r.state)
	return func() tea.Msg {
		n, err := r.export.WriteDir(context.Background(), dest)
		return exportDoneMsg{files: n, dest: dest, err: err}
	}
}

func (r *reviewScreen) exportZipCmd() tea.Cmd {
	dest := generator.FrameworkFolderName(r.state) + ".zip"
	return func() tea.Msg {
		f, err := os.Create(dest)
		if err != nil {
			return exportDoneMsg{dest: dest, err: err}
		}
		defer f.Close()
		n, err := r.export.WriteZip(context.Background(), f)
		return exportDoneMsg{files: n, dest: dest, err: err}
	}
}

func (r *reviewScreen) Update(msg tea.Msg) (*reviewScreen, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		r.exporting = false
		if msg.err != nil {
			r.status = theme.BudgetDangerStyle.Render(fmt.Sprintf("Export failed: %v", msg.err))
		} else {
			r.status = theme.BudgetOKStyle.Render(fmt.Sprintf("Exported %d files to %s", msg.files, msg.dest))
		}
		return r, nil

	case tea.KeyMsg:
		if r.exporting {
			return r, nil
		}
		switch {
		case key.Matches(msg, r.keys.Edit):
			r.editRequested = true
		case key.Matches(msg, r.keys.ExportDir):
			r.exporting = true
			r.status = theme.HelpStyle.Render("Exporting…")
			return r, r.exportDirCmd()
		case key.Matches(msg, r.keys.ExportZip):
			r.exporting = true
			r.status = theme.HelpStyle.Render("Exporting…")
			return r, r.exportZipCmd()
		case key.Matches(msg, r.keys.Quit):
			r.quitRequested = true
		}
	}
	return r, nil
}

func (r *reviewScreen) View() string {
	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render("Your project framework") + "\n\n")

	wordsByPath := make(map[string]int, len(r.files))
	for _, f := range r.files {
		wordsByPath[f.Path] = f.WordCount
	}
	renderTree(&b, r.tree, "", wordsByPath)

	if len(r.state.Tasks) > 0 {
		b.WriteString("\n" + theme.LabelStyle.Render("Tasks") + "\n")
		tasks := make([]domain.Task, len(r.state.Tasks))
		copy(tasks, r.state.Tasks)
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].TaskNumber < tasks[j].TaskNumber
		})
		for _, t := range tasks {
			b.WriteString("  " +
				theme.NormalStyle.Render(fmt.Sprintf("%s %s", generator.TaskNumberLabel(t.TaskNumber), t.Name)) +
				" " + statusStyle(t.Status).Render("["+generator.StatusLabel(t.Status)+"]") + "\n")
		}
	}

	for _, f := range r.files {
		if f.Path != generator.PathProject {
			continue
		}
		status := generator.WordCountStatus(f.WordCount)
		if status != "ok" {
			style := theme.BudgetWarningStyle
			if status == "danger" {
				style = theme.BudgetDangerStyle
			}
			b.WriteString("\n" + style.Render(fmt.Sprintf(
				"PROJECT.md is %d words; keep it under %d so it fits a context window comfortably.",
				f.WordCount, generator.ProjectWordWarning)) + "\n")
		}
	}

	if r.status != "" {
		b.WriteString("\n" + r.status + "\n")
	}

	b.WriteString("\n" + r.help.View(r.keys))
	return b.String()
}

// statusStyle maps a task status to its display style
func statusStyle(s domain.TaskStatus) lipgloss.Style {
	switch s {
	case domain.StatusDone:
		return theme.StatusDoneStyle
	case domain.StatusInProgress:
		return theme.StatusInProgressStyle
	case domain.StatusBlocked:
		return theme.StatusBlockedStyle
	default:
		return theme.StatusNotStartedStyle
	}
}

// renderTree writes one node and recurses with two-space indentation
func renderTree(b *strings.Builder, n *generator.FileTreeNode, indent string, words map[string]int) {
	if n.Type == generator.NodeFolder {
		b.WriteString(indent + theme.FolderStyle.Render(n.Name+"/") + "\n")
		for _, c := range n.Children {
			renderTree(b, c, indent+"  ", words)
		}
		return
	}

	line := indent + theme.FileStyle.Render(n.Name)
	if w, ok := words[n.FilePath]; ok {
		line += " " + theme.WordCountStyle.Render(fmt.Sprintf("(%d words)", w))
	}
	b.WriteString(line + "\n")
}
