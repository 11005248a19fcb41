package desde

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/ukaji3/desde-go/pkg/desde/models"
)

// Placeholder is shown instead of the table and chart when nothing matches.
const Placeholder = "No hay datos para la selección actual."

// HighlightColor is the text color of the minimum-price row.
const HighlightColor = "#FFD700"

// CenteredColumns are center-aligned on every row.
var CenteredColumns = []string{models.ColDpto, models.ColArea, models.ColPricePerArea, models.ColDesde}

// styleRule decorates the cells of matching rows in the given columns.
// A nil columns list means every column.
type styleRule struct {
	row     func(cells []string) bool
	columns []string
	apply   func(s *models.CellStyle)
}

// BuildTable sorts the starting prices by price, formats the numeric columns
// and computes the cell styles.
func BuildTable(prices []models.StartingPrice) *models.Table {
	t := &models.Table{
		Columns: append([]string(nil), models.DesdeColumns...),
		Rows:    [][]string{},
		Styles:  [][]models.CellStyle{},
	}
	if len(prices) == 0 {
		t.Placeholder = Placeholder
		return t
	}

	sorted := append([]models.StartingPrice(nil), prices...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return lessNullable(sorted[i].Price, sorted[j].Price)
	})

	for _, p := range sorted {
		t.Rows = append(t.Rows, []string{
			p.Developer,
			p.Project,
			p.Unit,
			FormatNumber(p.Area),
			FormatNumber(p.PricePerArea),
			FormatNumber(p.Price),
		})
	}

	desdeCol := columnIndex(t.Columns, models.ColDesde)
	t.MinPrice = minParsed(t.Rows, desdeCol)

	t.Styles = applyRules(t.Columns, t.Rows, tableRules(t.MinPrice, desdeCol))
	return t
}

// tableRules returns the declarative styling of the starting price table.
func tableRules(minPrice *float64, desdeCol int) []styleRule {
	rules := []styleRule{
		{
			row:     func([]string) bool { return true },
			columns: CenteredColumns,
			apply:   func(s *models.CellStyle) { s.Align = models.AlignCenter },
		},
	}
	if minPrice != nil {
		lowest := *minPrice
		rules = append(rules, styleRule{
			row: func(cells []string) bool {
				v, ok := parseCell(cells, desdeCol)
				return ok && v == lowest
			},
			apply: func(s *models.CellStyle) {
				s.Highlight = true
				s.Color = HighlightColor
			},
		})
	}
	return rules
}

// applyRules materializes the per-cell styles for rows.
func applyRules(columns []string, rows [][]string, rules []styleRule) [][]models.CellStyle {
	styles := make([][]models.CellStyle, len(rows))
	for r, cells := range rows {
		styles[r] = make([]models.CellStyle, len(columns))
		for _, rule := range rules {
			if !rule.row(cells) {
				continue
			}
			for c, name := range columns {
				if rule.columns == nil || contains(rule.columns, name) {
					rule.apply(&styles[r][c])
				}
			}
		}
	}
	return styles
}

// FormatNumber formats v with two decimals, or "" when v is nil.
func FormatNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *v)
}

// minParsed returns the minimum of the values in column col that parse as numbers.
func minParsed(rows [][]string, col int) *float64 {
	var lowest *float64
	for _, cells := range rows {
		v, ok := parseCell(cells, col)
		if !ok {
			continue
		}
		if lowest == nil || v < *lowest {
			lowest = models.Float(v)
		}
	}
	return lowest
}

func parseCell(cells []string, col int) (float64, bool) {
	if col < 0 || col >= len(cells) || cells[col] == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cells[col], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// lessNullable orders numbers ascending with nil values last.
func lessNullable(a, b *float64) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return *a < *b
}

func columnIndex(columns []string, name string) int {
	for i, c := range columns {
		if c == name {
			return i
		}
	}
	return -1
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
