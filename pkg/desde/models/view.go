package models

// View is everything a host needs to display one render of the dashboard.
type View struct {
	// BookName is the workbook the view was computed from.
	BookName string `json:"book_name"`
	// Selection is the district and typology in effect.
	Selection Selection `json:"selection"`
	// Districts is the sorted list of selectable districts.
	Districts []string `json:"districts"`
	// Typologies is the sorted list of selectable typologies.
	Typologies []string `json:"typologies"`
	// Matches is the number of listings in the filtered set.
	Matches int `json:"matches"`
	// StartingPrices is the raw aggregator output, one entry per project.
	StartingPrices []StartingPrice `json:"starting_prices"`
	// Table is the formatted starting price table.
	Table *Table `json:"table"`
	// Chart is the price-per-area chart (nil when nothing matched).
	Chart *Figure `json:"chart,omitempty"`
	// Placeholder is set when nothing matched the selection.
	Placeholder string `json:"placeholder,omitempty"`
}

// Empty reports whether the selection matched no projects.
func (v *View) Empty() bool {
	return v == nil || len(v.StartingPrices) == 0
}
