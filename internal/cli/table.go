package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/caliper/pkg/core/constraint"
)

// constraintRows formats constraints as table rows: index, identifier,
// equation and priority.
func constraintRows(cs []*constraint.Constraint) [][]string {
	rows := make([][]string, len(cs))
	for i, c := range cs {
		id := c.Identifier
		if id == "" {
			id = "—"
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			id,
			c.String(),
			fmt.Sprintf("%g", c.Priority),
		}
	}
	return rows
}

// constraintTable renders cs with optional constraints highlighted. When
// selected is a valid index that row is drawn bold.
func constraintTable(cs []*constraint.Constraint, selected int) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "ID", "Constraint", "Priority").
		Rows(constraintRows(cs)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row < 0 || row >= len(cs) {
				return base
			}
			if col == 0 || col == 1 {
				base = base.Foreground(colorGray)
			} else if !cs[row].Priority.IsRequired() {
				base = base.Foreground(colorYellow)
			}
			if row == selected {
				base = base.Bold(true)
			}
			return base
		}).
		Render()
}
