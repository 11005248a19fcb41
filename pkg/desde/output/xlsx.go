package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/desde-go/pkg/desde/models"
	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the sheet name of exported workbooks.
const DefaultSheetName = "Desde"

// numericColumns are written as numbers rather than text.
var numericColumns = map[string]bool{
	models.ColArea:         true,
	models.ColPricePerArea: true,
	models.ColDesde:        true,
}

// TableToXLSX writes the table as a single-sheet workbook, carrying over
// the highlight and alignment of every cell.
func TableToXLSX(w io.Writer, t *models.Table, sheet string) error {
	if sheet == "" {
		sheet = DefaultSheetName
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for c, name := range t.Columns {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	styleIDs := make(map[models.CellStyle]int)
	for r, row := range t.Rows {
		for c, value := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := setCell(f, sheet, cell, t.Columns[c], value); err != nil {
				return err
			}

			style := t.Style(r, c)
			if style == (models.CellStyle{}) {
				continue
			}
			id, ok := styleIDs[style]
			if !ok {
				id, err = f.NewStyle(xlsxStyle(style))
				if err != nil {
					return fmt.Errorf("failed to create cell style: %w", err)
				}
				styleIDs[style] = id
			}
			if err := f.SetCellStyle(sheet, cell, cell, id); err != nil {
				return err
			}
		}
	}

	if len(t.Columns) > 0 {
		last, _ := excelize.ColumnNumberToName(len(t.Columns))
		if err := f.SetColWidth(sheet, "A", last, 20); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func setCell(f *excelize.File, sheet, cell, column, value string) error {
	if numericColumns[column] && value != "" {
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			return f.SetCellFloat(sheet, cell, v, 2, 64)
		}
	}
	return f.SetCellValue(sheet, cell, value)
}

func xlsxStyle(s models.CellStyle) *excelize.Style {
	style := &excelize.Style{}
	if s.Color != "" {
		style.Font = &excelize.Font{Bold: s.Highlight, Color: strings.TrimPrefix(s.Color, "#")}
	}
	if s.Align != models.AlignDefault {
		style.Alignment = &excelize.Alignment{Horizontal: string(s.Align)}
	}
	return style
}
