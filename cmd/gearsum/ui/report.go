package ui

import (
	"fmt"
	"io"
	"strconv"

	"gearsum/internal/schematic"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const ratioColumn = 4

// RenderGears formats gears as a table followed by their total.
func RenderGears(s Styles, gears []schematic.Gear, total int) string {
	if len(gears) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			s.Title.Render("Gears"),
			s.Muted.Render("No gears found"),
			s.Total.Render("Total: 0"),
		)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		Headers("Row", "Col", "Part A", "Part B", "Ratio").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return s.Header
			case col == ratioColumn:
				return s.Ratio
			default:
				return s.Cell
			}
		})

	for _, g := range gears {
		t.Row(
			strconv.Itoa(g.Marker.Row),
			strconv.Itoa(g.Marker.ColStart),
			strconv.Itoa(g.Values[0]),
			strconv.Itoa(g.Values[1]),
			strconv.Itoa(g.Ratio),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Gears"),
		t.String(),
		s.Total.Render(fmt.Sprintf("Total: %d", total)),
	)
}

// WriteGears renders the gear report to w.
func WriteGears(w io.Writer, s Styles, gears []schematic.Gear, total int) error {
	_, err := fmt.Fprintln(w, RenderGears(s, gears, total))
	return err
}
