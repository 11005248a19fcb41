package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellRange represents cell coordinate bounds.
type CellRange struct {
	// R1 is the start row (1-based).
	R1 int
	// C1 is the start column (1-based).
	C1 int
	// R2 is the end row (1-based, inclusive).
	R2 int
	// C2 is the end column (1-based, inclusive).
	C2 int
}

// ResolveRange turns ref into a CellRange on sheetName. ref is either an A1
// range ("A1:H500", "$A$1:$H$500", "Sheet1!A1:H500") or the name of a
// workbook defined name whose reference points at sheetName.
func ResolveRange(f *excelize.File, sheetName, ref string) (*CellRange, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, nil
	}

	if sheet, area := parseReference(ref); area != nil {
		if sheet != "" && sheet != sheetName {
			return nil, fmt.Errorf("range %q refers to sheet %q, not %q", ref, sheet, sheetName)
		}
		return area, nil
	}

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, ref) {
			continue
		}
		if dn.Scope != "" && dn.Scope != "Workbook" && dn.Scope != sheetName {
			continue
		}
		sheet, area := parseReference(dn.RefersTo)
		if area == nil {
			return nil, fmt.Errorf("defined name %q has unsupported reference %q", ref, dn.RefersTo)
		}
		if sheet != "" && sheet != sheetName {
			return nil, fmt.Errorf("defined name %q refers to sheet %q, not %q", ref, sheet, sheetName)
		}
		return area, nil
	}

	return nil, fmt.Errorf("invalid range or unknown defined name: %q", ref)
}

// ApplyRange restricts rows to the area. It returns the restricted rows and
// the 1-based sheet row of the first returned row.
func ApplyRange(rows [][]string, area *CellRange) ([][]string, int) {
	if area == nil {
		return rows, 1
	}

	var result [][]string
	for r := area.R1; r <= area.R2 && r <= len(rows); r++ {
		row := rows[r-1]
		var cells []string
		if area.C1 <= len(row) {
			end := area.C2
			if end > len(row) {
				end = len(row)
			}
			cells = row[area.C1-1 : end]
		}
		result = append(result, cells)
	}

	return result, area.R1
}

// parseReference parses a reference string.
// Format: 'SheetName'!$A$1:$D$10, SheetName!$A$1:$D$10 or $A$1:$D$10
func parseReference(ref string) (string, *CellRange) {
	ref = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(ref), "="))

	var sheet string
	rangeStr := ref
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet = strings.Trim(ref[:idx], "'")
		rangeStr = ref[idx+1:]
	}

	return sheet, ParseRange(rangeStr)
}

// ParseRange parses a range string like $A$1:$D$10 to a CellRange.
func ParseRange(rangeStr string) *CellRange {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	// Split by :
	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return &CellRange{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}
}
