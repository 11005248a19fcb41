package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
	"github.com/ukaji3/desde-go/pkg/desde/models"
)

// pdfGrid is the width of each table column on maroto's 12-column grid.
var pdfGrid = []uint{2, 3, 1, 2, 2, 2}

var (
	pdfDark      = color.Color{Red: 46, Green: 46, Blue: 46}
	pdfGray      = color.Color{Red: 121, Green: 119, Blue: 109}
	pdfHighlight = color.Color{Red: 255, Green: 215, Blue: 0}
)

// TableToPDF renders the table as an A4 landscape report. title is printed
// above the table and subtitle (typically the selection) below it.
func TableToPDF(t *models.Table, title, subtitle string) ([]byte, error) {
	m := pdf.NewMaroto(consts.Landscape, consts.A4)
	m.SetPageMargins(15, 15, 15)

	m.Row(12, func() {
		m.Col(12, func() {
			m.Text(title, props.Text{
				Size:  18,
				Style: consts.Bold,
				Color: pdfDark,
			})
		})
	})
	if subtitle != "" {
		m.Row(8, func() {
			m.Col(12, func() {
				m.Text(subtitle, props.Text{
					Size:  10,
					Color: pdfGray,
				})
			})
		})
	}
	m.Row(4, func() {})

	if t.Empty() {
		m.Row(8, func() {
			m.Col(12, func() {
				m.Text(t.Placeholder, props.Text{Size: 10, Color: pdfDark})
			})
		})
		return pdfBytes(m)
	}

	cols := len(t.Columns)
	if cols > len(pdfGrid) {
		cols = len(pdfGrid)
	}

	m.Row(8, func() {
		for c := 0; c < cols; c++ {
			name := t.Columns[c]
			m.Col(pdfGrid[c], func() {
				m.Text(name, props.Text{
					Size:  9,
					Style: consts.Bold,
					Align: pdfAlign(t.Style(0, c)),
					Color: pdfDark,
				})
			})
		}
	})

	for r, row := range t.Rows {
		m.Row(7, func() {
			for c := 0; c < cols && c < len(row); c++ {
				style := t.Style(r, c)
				text := props.Text{
					Size:  9,
					Align: pdfAlign(style),
					Color: pdfDark,
				}
				if style.Highlight {
					text.Style = consts.Bold
					text.Color = pdfColor(style.Color)
				}
				value := row[c]
				m.Col(pdfGrid[c], func() {
					m.Text(value, text)
				})
			}
		})
	}

	return pdfBytes(m)
}

func pdfBytes(m pdf.Maroto) ([]byte, error) {
	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func pdfAlign(s models.CellStyle) consts.Align {
	if s.Align == models.AlignCenter {
		return consts.Center
	}
	return consts.Left
}

// pdfColor converts a #RRGGBB string, falling back to the highlight yellow.
func pdfColor(hex string) color.Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return pdfHighlight
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return pdfHighlight
	}
	return color.Color{Red: int(v >> 16 & 0xFF), Green: int(v >> 8 & 0xFF), Blue: int(v & 0xFF)}
}
