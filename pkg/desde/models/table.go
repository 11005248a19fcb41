package models

// Align is the horizontal alignment of a table cell.
type Align string

const (
	AlignDefault Align = ""
	AlignCenter  Align = "center"
)

// CellStyle is the display decoration of a single table cell.
type CellStyle struct {
	// Highlight marks cells of the minimum-price row.
	Highlight bool `json:"highlight,omitempty"`
	// Color is the text color applied when highlighted (CSS hex).
	Color string `json:"color,omitempty"`
	// Align is the horizontal alignment.
	Align Align `json:"align,omitempty"`
}

// CSS returns the inline CSS declarations for the style.
func (s CellStyle) CSS() string {
	css := ""
	if s.Color != "" {
		css += "color: " + s.Color + ";"
	}
	if s.Align != AlignDefault {
		if css != "" {
			css += " "
		}
		css += "text-align: " + string(s.Align) + ";"
	}
	return css
}

// Table is the formatted, styled starting price table.
type Table struct {
	// Columns is the header row (always DesdeColumns).
	Columns []string `json:"columns"`
	// Rows holds the formatted cell values in display order.
	Rows [][]string `json:"rows"`
	// Styles holds one style per cell, parallel to Rows.
	Styles [][]CellStyle `json:"styles"`
	// MinPrice is the lowest starting price shown (nil when no row has one).
	MinPrice *float64 `json:"min_price,omitempty"`
	// Placeholder is the message shown instead of an empty table.
	Placeholder string `json:"placeholder,omitempty"`
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// Style returns the style of the cell at (row, col).
func (t *Table) Style(row, col int) CellStyle {
	if t == nil || row < 0 || row >= len(t.Styles) || col < 0 || col >= len(t.Styles[row]) {
		return CellStyle{}
	}
	return t.Styles[row][col]
}

// Highlighted reports whether the given row is a minimum-price row.
func (t *Table) Highlighted(row int) bool {
	return t.Style(row, 0).Highlight
}
