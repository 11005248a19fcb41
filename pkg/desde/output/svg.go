package output

import (
	"errors"
	"io"
	"strings"

	"github.com/ukaji3/desde-go/pkg/desde"
	"github.com/ukaji3/desde-go/pkg/desde/models"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrEmptyChart is returned when there is no chart to render.
var ErrEmptyChart = errors.New("chart has no bars")

const (
	svgBarWidth   = 60
	svgBarSpacing = 24
	svgMinWidth   = 640
)

// ChartToSVG renders the figure as a static bar chart. Each category gets
// one bar filled with its series color, or the minimum color.
func ChartToSVG(w io.Writer, fig *models.Figure) error {
	return renderChart(w, fig, chart.SVG)
}

// ChartToPNG renders the figure as a PNG image.
func ChartToPNG(w io.Writer, fig *models.Figure) error {
	return renderChart(w, fig, chart.PNG)
}

func renderChart(w io.Writer, fig *models.Figure, provider chart.RendererProvider) error {
	if fig.BarCount() == 0 {
		return ErrEmptyChart
	}

	bars := make([]chart.Value, 0, len(fig.Categories))
	top := 0.0
	for _, bar := range orderedBars(fig) {
		value := 0.0
		if bar.Value != nil {
			value = *bar.Value
		}
		if value > top {
			top = value
		}
		bars = append(bars, chart.Value{
			Label: strings.Join(desde.LabelLines(bar.Category), "\n"),
			Value: value,
			Style: chart.Style{
				FillColor:   hexColor(bar.Color),
				StrokeColor: drawing.Color{R: 0, G: 0, B: 0, A: 153},
				StrokeWidth: fig.Layout.MarkerLineWidth,
			},
		})
	}

	width := len(bars)*(svgBarWidth+svgBarSpacing) + 120
	if width < svgMinWidth {
		width = svgMinWidth
	}

	// Headroom above the tallest bar, as plotly leaves for outside labels.
	top *= 1.15
	if top <= 0 {
		top = 1
	}

	graph := chart.BarChart{
		Title:        fig.Layout.Title,
		Width:        width,
		Height:       fig.Layout.Height,
		BarWidth:     svgBarWidth,
		BarSpacing:   svgBarSpacing,
		UseBaseValue: true,
		BaseValue:    0,
		Background: chart.Style{
			Padding: chart.Box{Top: 60, Left: 20, Right: 20, Bottom: 20},
		},
		YAxis: chart.YAxis{
			Name:  fig.Layout.YAxisTitle,
			Range: &chart.ContinuousRange{Min: 0, Max: top},
			GridMajorStyle: chart.Style{
				StrokeColor: hexColor(fig.Layout.GridColor),
				StrokeWidth: 1,
			},
		},
		Bars: bars,
	}

	return graph.Render(provider, w)
}

// orderedBars flattens the traces into x-axis order.
func orderedBars(fig *models.Figure) []models.Bar {
	slots := make([]*models.Bar, len(fig.Categories))
	for ti := range fig.Traces {
		for bi := range fig.Traces[ti].Bars {
			b := &fig.Traces[ti].Bars[bi]
			if b.Index >= 0 && b.Index < len(slots) {
				slots[b.Index] = b
			}
		}
	}
	bars := make([]models.Bar, 0, len(slots))
	for _, b := range slots {
		if b != nil {
			bars = append(bars, *b)
		}
	}
	return bars
}

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
