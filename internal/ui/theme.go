package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Selected lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	SymOK, SymFail, Cursor string
}

var asciiBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
	MiddleLeft: "+", MiddleRight: "+", Middle: "+", MiddleTop: "+", MiddleBottom: "+",
}

var current = themeFor("classic")

// SetTheme switches the theme; unknown names get classic.
func SetTheme(name string) { current = themeFor(name) }

// Current exposes what renderers need.
func Current() Theme { return current }

func themeFor(name string) Theme {
	plain := lipgloss.NewStyle()
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:        "neon",
			Title:       plain.Bold(true).Foreground(lipgloss.Color("13")),
			Muted:       plain.Faint(true),
			Accent:      plain.Foreground(lipgloss.Color("14")),
			Success:     plain.Foreground(lipgloss.Color("10")),
			Error:       plain.Foreground(lipgloss.Color("9")).Bold(true),
			Selected:    plain.Bold(true).Foreground(lipgloss.Color("11")),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),
			SymOK:       "✔", SymFail: "✖", Cursor: "▸ ",
		}
	case "mono":
		return Theme{
			Name:        "mono",
			Title:       plain,
			Muted:       plain,
			Accent:      plain,
			Success:     plain,
			Error:       plain,
			Selected:    plain,
			Border:      asciiBorder,
			BorderColor: lipgloss.NoColor{},
			SymOK:       "ok", SymFail: "error:", Cursor: "> ",
		}
	default: // classic
		return Theme{
			Name:        "classic",
			Title:       plain.Bold(true),
			Muted:       plain.Faint(true),
			Accent:      plain.Foreground(lipgloss.Color("12")),
			Success:     plain.Foreground(lipgloss.Color("42")),
			Error:       plain.Foreground(lipgloss.Color("9")).Bold(true),
			Selected:    plain.Bold(true).Reverse(true),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("8"),
			SymOK:       "✔", SymFail: "✖", Cursor: "> ",
		}
	}
}
