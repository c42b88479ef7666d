package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel frames lines in a box using the current theme.
func Panel(lines []string) string {
	t := Current()
	border := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

// Notice renders a success or failure message with its symbol.
func Notice(ok bool, msg string) string {
	t := Current()
	if ok {
		return t.Success.Render(t.SymOK + " " + msg)
	}
	return t.Error.Render(t.SymFail + " " + msg)
}

func OK(w io.Writer, msg string)   { fmt.Fprintln(w, Notice(true, msg)) }
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, Notice(false, msg)) }
