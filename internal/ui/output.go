package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func OK(w io.Writer, msg string) { fmt.Fprintln(w, current.Success.Render(current.SymOK+" "+msg)) }

func Fail(w io.Writer, msg string) { fmt.Fprintln(w, current.Error.Render(current.SymFail+" "+msg)) }

// Hint prints a muted follow-up line, usually after Fail.
func Hint(w io.Writer, msg string) { fmt.Fprintln(w, current.Muted.Render(msg)) }

// Box frames inner with the current theme's border.
func Box(inner string) string {
	return lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(current.BorderColor).
		Padding(0, 1).
		Render(inner)
}

// Panel draws a framed box around lines.
func Panel(w io.Writer, lines []string) {
	fmt.Fprintln(w, Box(strings.Join(lines, "\n")))
}
