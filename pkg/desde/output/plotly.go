package output

import (
	"fmt"

	"github.com/ukaji3/desde-go/pkg/desde/models"
)

// PlotlyFigure is a plotly.js figure: traces plus layout.
type PlotlyFigure struct {
	Data   []map[string]interface{} `json:"data"`
	Layout map[string]interface{}   `json:"layout"`
}

// highlightSpan wraps the minimum bar's value label.
const highlightSpan = "<span style='background-color:%s;padding:2px;border-radius:3px;color:black'>%s</span>"

// ChartToPlotly converts the figure to plotly.js traces and layout.
func ChartToPlotly(fig *models.Figure) *PlotlyFigure {
	if fig == nil {
		return nil
	}
	l := fig.Layout

	data := make([]map[string]interface{}, 0, len(fig.Traces))
	for _, t := range fig.Traces {
		x := make([]string, 0, len(t.Bars))
		y := make([]*float64, 0, len(t.Bars))
		text := make([]string, 0, len(t.Bars))
		colors := make([]string, 0, len(t.Bars))
		for _, b := range t.Bars {
			x = append(x, b.Category)
			y = append(y, b.Value)
			colors = append(colors, b.Color)
			if b.Highlight {
				text = append(text, fmt.Sprintf(highlightSpan, l.HighlightTextBackground, b.Text))
			} else {
				text = append(text, b.Text)
			}
		}

		data = append(data, map[string]interface{}{
			"type":         "bar",
			"name":         t.Name,
			"x":            x,
			"y":            y,
			"text":         text,
			"textposition": l.TextPosition,
			"texttemplate": "%{text}",
			"marker": map[string]interface{}{
				"color": colors,
				"line": map[string]interface{}{
					"color": l.MarkerLineColor,
					"width": l.MarkerLineWidth,
				},
			},
		})
	}

	font := func(size int) map[string]interface{} {
		return map[string]interface{}{"family": l.FontFamily, "size": size, "color": l.FontColor}
	}

	layout := map[string]interface{}{
		"barmode":       l.BarMode,
		"bargap":        l.BarGap,
		"plot_bgcolor":  "rgba(0,0,0,0)",
		"paper_bgcolor": "rgba(0,0,0,0)",
		"font":          font(14),
		"title": map[string]interface{}{
			"text":    l.Title,
			"x":       0.01,
			"xanchor": "left",
			"font":    font(20),
		},
		"yaxis": map[string]interface{}{
			"title":         map[string]interface{}{"text": l.YAxisTitle, "font": font(16)},
			"tickfont":      font(12),
			"gridcolor":     l.GridColor,
			"zerolinecolor": l.GridColor,
			"automargin":    true,
		},
		"xaxis": map[string]interface{}{
			"title":         map[string]interface{}{"text": l.XAxisTitle, "font": font(16)},
			"tickfont":      font(11),
			"tickangle":     0,
			"automargin":    true,
			"categoryorder": "array",
			"categoryarray": fig.Categories,
		},
		"margin": map[string]interface{}{"t": 120, "b": 240, "r": 150},
		"height": l.Height,
		"legend": map[string]interface{}{"font": font(12)},
	}

	return &PlotlyFigure{Data: data, Layout: layout}
}

// ToPlotlyJSON serializes the figure as a plotly.js {data, layout} document.
func ToPlotlyJSON(fig *models.Figure, pretty bool) ([]byte, error) {
	return marshal(ChartToPlotly(fig), pretty)
}
