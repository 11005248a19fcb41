// Package desde loads unit listings from a workbook and computes the
// per-project starting price table and price-per-area chart.
package desde

// DefaultMaxLabelChars is the default line budget for wrapped project labels.
const DefaultMaxLabelChars = 9

// Options configures loading and rendering.
type Options struct {
	// Sheet is the sheet holding the listings. Empty means the first sheet.
	Sheet string
	// Range restricts the cells read, either an A1 range ("A1:H500") or a
	// workbook defined name. Empty reads the whole sheet.
	Range string
	// MaxLabelChars is the line budget for wrapped project labels.
	// Zero or negative uses DefaultMaxLabelChars.
	MaxLabelChars int
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		MaxLabelChars: DefaultMaxLabelChars,
	}
}

// LabelWidth returns the effective label line budget.
func (o Options) LabelWidth() int {
	if o.MaxLabelChars <= 0 {
		return DefaultMaxLabelChars
	}
	return o.MaxLabelChars
}
