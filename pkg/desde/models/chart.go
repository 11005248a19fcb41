package models

// Bar is a single bar of a chart series.
type Bar struct {
	// Index is the bar's position on the x-axis.
	Index int `json:"index"`
	// Category is the x-axis category (the wrapped project label).
	Category string `json:"category"`
	// Value is the bar height (nil renders no bar).
	Value *float64 `json:"value"`
	// Text is the value label shown above the bar.
	Text string `json:"text"`
	// Color is the bar fill color.
	Color string `json:"color"`
	// Highlight marks the global minimum bar.
	Highlight bool `json:"highlight,omitempty"`
}

// Trace represents one chart series, the bars of a single developer.
type Trace struct {
	// Name is the series display name (the developer).
	Name string `json:"name"`
	// Color is the palette color assigned to the series.
	Color string `json:"color"`
	// Bars lists the series bars in category order.
	Bars []Bar `json:"bars"`
}

// Layout holds the presentation settings of a chart.
type Layout struct {
	// Title is the chart title.
	Title string `json:"title"`
	// XAxisTitle is the x-axis title.
	XAxisTitle string `json:"x_axis_title"`
	// YAxisTitle is the y-axis title.
	YAxisTitle string `json:"y_axis_title"`
	// BarMode is the plotly bar mode ("group").
	BarMode string `json:"bar_mode"`
	// BarGap is the gap between bar groups as a fraction of the band.
	BarGap float64 `json:"bar_gap"`
	// TextPosition is where value labels go relative to bars.
	TextPosition string `json:"text_position"`
	// FontFamily is the font used across the chart.
	FontFamily string `json:"font_family"`
	// FontColor is the default text color.
	FontColor string `json:"font_color"`
	// GridColor is the y-axis grid color.
	GridColor string `json:"grid_color"`
	// MarkerLineColor is the bar outline color.
	MarkerLineColor string `json:"marker_line_color"`
	// MarkerLineWidth is the bar outline width.
	MarkerLineWidth float64 `json:"marker_line_width"`
	// HighlightTextBackground is the background behind the minimum bar's label.
	HighlightTextBackground string `json:"highlight_text_background"`
	// Height is the chart height in pixels.
	Height int `json:"height"`
}

// Figure is a grouped bar chart ready for display.
type Figure struct {
	// Categories is the fixed x-axis order shared by every trace.
	Categories []string `json:"categories"`
	// Traces holds one series per developer in first-seen order.
	Traces []Trace `json:"traces"`
	// Layout holds presentation settings.
	Layout Layout `json:"layout"`
	// MinCategory is the category of the global minimum bar.
	MinCategory string `json:"min_category,omitempty"`
}

// BarCount returns the total number of bars across traces.
func (f *Figure) BarCount() int {
	if f == nil {
		return 0
	}
	n := 0
	for _, t := range f.Traces {
		n += len(t.Bars)
	}
	return n
}
