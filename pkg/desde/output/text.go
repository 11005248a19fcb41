package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ukaji3/desde-go/pkg/desde/models"
)

var (
	textHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	textCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	textBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8B7F74"))
)

// TableToText renders the table for a terminal. The minimum-price row is
// drawn in the highlight color and centered columns stay centered. An empty
// table renders as its placeholder.
func TableToText(t *models.Table) string {
	if t.Empty() {
		return t.Placeholder
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(textBorderStyle).
		Headers(t.Columns...).
		Rows(t.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return textHeaderStyle.Align(textAlign(t.Style(0, col)))
			}
			style := t.Style(row, col)
			s := textCellStyle.Align(textAlign(style))
			if style.Highlight {
				s = s.Bold(true).Foreground(lipgloss.Color(style.Color))
			}
			return s
		})

	return tbl.String()
}

func textAlign(s models.CellStyle) lipgloss.Position {
	if s.Align == models.AlignCenter {
		return lipgloss.Center
	}
	return lipgloss.Left
}
