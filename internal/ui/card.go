package ui

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/datenight/internal/view"
)

// CardLines renders c as styled lines no wider than width (0 = unlimited).
// The first line carries the id so the card's own controls can target it.
func CardLines(c view.Card, width int) []string {
	t := current
	lines := []string{
		fmt.Sprintf("%s %s", t.Muted.Render(fmt.Sprintf("#%d", c.ID)), t.Title.Render(c.Title)),
	}
	if c.Description != "" {
		lines = append(lines, c.Description)
	}
	lines = append(lines,
		fmt.Sprintf("%s %s", t.Accent.Render("Budget:"), c.Budget),
		fmt.Sprintf("%s %s", t.Accent.Render("Location:"), c.Location),
	)
	if width > 0 {
		for i, ln := range lines {
			lines[i] = ansi.Truncate(ln, width, "…")
		}
	}
	return lines
}
