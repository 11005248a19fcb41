package parser

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Header is the located header row of a listings sheet.
type Header struct {
	// Row is the 0-based index of the header row within the scanned rows.
	Row int
	// Columns maps a normalized column name to its 0-based column index.
	Columns map[string]int
}

// Index returns the column index of name, or -1 if absent.
func (h Header) Index(name string) int {
	if idx, ok := h.Columns[NormalizeHeader(name)]; ok {
		return idx
	}
	return -1
}

// MissingColumnError lists required columns absent from every candidate header row.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("columns not found: %s", strings.Join(e.Columns, ", "))
}

// NormalizeHeader trims a header cell and folds it to Unicode NFC, so that
// decomposed accents (TIPOLOGI + U+0301) match their composed form.
func NormalizeHeader(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// FindHeader locates the first row within the data bounds that carries every
// required column. When no row qualifies, the error reports the columns
// missing from the best candidate.
func FindHeader(rows [][]string, required []string) (Header, error) {
	minRow, maxRow, _, _ := findDataBounds(rows)
	if minRow < 0 {
		return Header{}, &MissingColumnError{Columns: required}
	}

	var bestMissing []string
	for rowIdx := minRow; rowIdx <= maxRow; rowIdx++ {
		columns := make(map[string]int)
		for colIdx, cell := range rows[rowIdx] {
			name := NormalizeHeader(cell)
			if name == "" {
				continue
			}
			// Keep the leftmost column when a header is repeated.
			if _, seen := columns[name]; !seen {
				columns[name] = colIdx
			}
		}

		var missing []string
		for _, col := range required {
			if _, ok := columns[NormalizeHeader(col)]; !ok {
				missing = append(missing, col)
			}
		}
		if len(missing) == 0 {
			return Header{Row: rowIdx, Columns: columns}, nil
		}
		if bestMissing == nil || len(missing) < len(bestMissing) {
			bestMissing = missing
		}
	}

	return Header{}, &MissingColumnError{Columns: bestMissing}
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
