package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/datenight/internal/model"
	"github.com/Makepad-fr/datenight/internal/ui"
	"github.com/Makepad-fr/datenight/internal/view"
)

// ideaItem adapts one displayed idea to bubbles/list.Item.
type ideaItem struct {
	idea model.Idea
	card view.Card
}

func newIdeaItem(idea model.Idea) ideaItem { return ideaItem{idea: idea, card: view.Render(idea)} }

// Implement list.Item interface
func (i ideaItem) FilterValue() string { return i.card.Title }

// cardDelegate renders each idea as a fixed three-line card.
type cardDelegate struct{}

func (d cardDelegate) Height() int                               { return 3 }
func (d cardDelegate) Spacing() int                              { return 1 }
func (d cardDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d cardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(ideaItem)
	if !ok {
		return
	}
	t := ui.Current()
	c := it.card

	prefix := "  "
	title := t.Title.Render(c.Title)
	if index == m.Index() {
		prefix = t.Selected.Render(">") + " "
		title = t.Selected.Render(c.Title)
	}
	lines := []string{
		fmt.Sprintf("%s%s %s", prefix, t.Muted.Render(fmt.Sprintf("#%d", c.ID)), title),
		"  " + t.Muted.Render(c.Description),
		fmt.Sprintf("  %s %s   %s %s", t.Accent.Render("Budget:"), c.Budget, t.Accent.Render("Location:"), c.Location),
	}
	width := m.Width()
	for i, ln := range lines {
		if width > 0 {
			ln = ansi.Truncate(ln, width, "…")
		}
		if i < len(lines)-1 {
			fmt.Fprintln(w, ln)
		} else {
			fmt.Fprint(w, ln)
		}
	}
}
