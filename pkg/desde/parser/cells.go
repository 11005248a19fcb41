package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/desde-go/pkg/desde/models"
)

// ParseListings converts the rows below the header into listings.
// firstRow is the 1-based sheet row of rows[0]. Rows whose required cells are
// all empty are skipped.
func ParseListings(rows [][]string, header Header, firstRow int) []models.Listing {
	idx := func(name string) int { return header.Index(name) }
	var (
		district  = idx(models.ColDistrict)
		typology  = idx(models.ColTypology)
		developer = idx(models.ColDeveloper)
		project   = idx(models.ColProject)
		unit      = idx(models.ColUnit)
		area      = idx(models.ColArea)
		ppa       = idx(models.ColPricePerArea)
		price     = idx(models.ColPrice)
	)

	var result []models.Listing
	for rowIdx := header.Row + 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		if !hasAny(row, district, typology, developer, project, unit, area, ppa, price) {
			continue
		}

		result = append(result, models.Listing{
			Row:          firstRow + rowIdx,
			Developer:    strings.TrimSpace(cellText(row, developer)),
			Project:      strings.TrimSpace(cellText(row, project)),
			Unit:         strings.TrimSpace(cellText(row, unit)),
			District:     strings.TrimSpace(cellText(row, district)),
			Typology:     strings.TrimSpace(cellText(row, typology)),
			Area:         parseNumber(cellText(row, area)),
			PricePerArea: parseNumber(cellText(row, ppa)),
			Price:        parseNumber(cellText(row, price)),
		})
	}

	return result
}

// cellText returns the cell at col, or "" when the row is shorter.
func cellText(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// hasAny reports whether any of the given columns holds a non-blank value.
func hasAny(row []string, cols ...int) bool {
	for _, col := range cols {
		if strings.TrimSpace(cellText(row, col)) != "" {
			return true
		}
	}
	return false
}

// parseNumber attempts to parse a cell value as a number.
// Returns nil for blank or non-numeric values.
func parseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
