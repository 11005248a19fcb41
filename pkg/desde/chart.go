package desde

import (
	"sort"

	"github.com/ukaji3/desde-go/pkg/desde/models"
)

// Palette colors the developer series in first-seen order.
var Palette = []string{"#2E2E2E", "#6E6353", "#8B7F74", "#A69C8F", "#5A5049", "#BFB7AD", "#7F7F7F"}

const (
	// MinimumColor fills the bar with the lowest price per area.
	MinimumColor = "#E07A5F"
	// MinimumTextBackground is drawn behind the lowest bar's value label.
	MinimumTextBackground = "#FFE5DC"

	baseHeight      = 700
	heightThreshold = 12
	heightPerRow    = 25
)

// ChartHeight returns the chart height for the given number of projects.
func ChartHeight(rows int) int {
	extra := (rows - heightThreshold) * heightPerRow
	if extra < 0 {
		extra = 0
	}
	return baseHeight + extra
}

// BuildChart builds the price-per-area bar chart, one series per developer,
// with categories ordered by ascending price per area. It returns nil when
// prices is empty.
func BuildChart(prices []models.StartingPrice) *models.Figure {
	if len(prices) == 0 {
		return nil
	}

	sorted := append([]models.StartingPrice(nil), prices...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return lessNullable(sorted[i].PricePerArea, sorted[j].PricePerArea)
	})

	minIdx := -1
	for i, p := range sorted {
		if p.PricePerArea == nil {
			continue
		}
		if minIdx < 0 || *p.PricePerArea < *sorted[minIdx].PricePerArea {
			minIdx = i
		}
	}

	fig := &models.Figure{
		Categories: make([]string, 0, len(sorted)),
		Layout:     defaultLayout(len(sorted)),
	}
	if minIdx >= 0 {
		fig.MinCategory = sorted[minIdx].Label
	}

	series := make(map[string]int)
	for i, p := range sorted {
		fig.Categories = append(fig.Categories, p.Label)

		ti, ok := series[p.Developer]
		if !ok {
			ti = len(fig.Traces)
			series[p.Developer] = ti
			fig.Traces = append(fig.Traces, models.Trace{
				Name:  p.Developer,
				Color: Palette[ti%len(Palette)],
			})
		}

		bar := models.Bar{
			Index:    i,
			Category: p.Label,
			Value:    p.PricePerArea,
			Text:     FormatNumber(p.PricePerArea),
			Color:    fig.Traces[ti].Color,
		}
		if i == minIdx {
			bar.Color = MinimumColor
			bar.Highlight = true
		}
		fig.Traces[ti].Bars = append(fig.Traces[ti].Bars, bar)
	}

	return fig
}

func defaultLayout(rows int) models.Layout {
	return models.Layout{
		Title:                   "Comparación de precios UF/m² por Proyecto",
		XAxisTitle:              "Proyecto",
		YAxisTitle:              "UF/m²",
		BarMode:                 "group",
		BarGap:                  0.18,
		TextPosition:            "outside",
		FontFamily:              "Nunito",
		FontColor:               "#2E2E2E",
		GridColor:               "#D1D0CB",
		MarkerLineColor:         "rgba(0,0,0,0.6)",
		MarkerLineWidth:         1.5,
		HighlightTextBackground: MinimumTextBackground,
		Height:                  ChartHeight(rows),
	}
}
