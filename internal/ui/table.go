package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/idilsaglam/stockpile/internal/inventory"
	"github.com/idilsaglam/stockpile/internal/model"
)

// Listing renders the inventory table followed by count and total value.
func Listing(l inventory.Listing, currency string) string {
	t := Current()

	lines := []string{t.Title.Render("Current Inventory"), ""}
	if l.Count == 0 {
		lines = append(lines, t.Muted.Render("no items"))
	} else {
		rows := make([][]string, 0, len(l.Items))
		for _, it := range l.Items {
			rows = append(rows, []string{
				truncate(it.Name, 40),
				Price(it.Price, currency),
				strconv.Itoa(it.Quantity),
			})
		}
		tbl := table.New().
			Border(t.Border).
			BorderStyle(lipgloss.NewStyle().Foreground(t.BorderColor)).
			Headers(t.Accent.Render("Item"), t.Accent.Render("Price"), t.Accent.Render("Quantity")).
			Rows(rows...).
			StyleFunc(func(_, col int) lipgloss.Style {
				s := lipgloss.NewStyle().Padding(0, 1)
				if col > 0 {
					s = s.Align(lipgloss.Right)
				}
				return s
			})
		lines = append(lines, tbl.Render())
	}
	lines = append(lines, "",
		fmt.Sprintf("Total items: %d", l.Count),
		fmt.Sprintf("Total value: %s", Money(l.Total, currency)),
	)
	return Panel(lines)
}

// Item renders a single search hit.
func Item(it model.Item, currency string) string {
	t := Current()
	return Panel([]string{
		t.Title.Render("Item found: " + it.Name),
		fmt.Sprintf("Price: %s", Price(it.Price, currency)),
		fmt.Sprintf("Quantity: %d", it.Quantity),
	})
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
