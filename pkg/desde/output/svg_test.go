package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/desde-go/pkg/desde/models"
)

func TestChartToSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ChartToSVG(&buf, sampleFigure()))

	svg := buf.String()
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "Vista")
}

func TestChartToPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ChartToPNG(&buf, sampleFigure()))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestChartToSVGEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, ChartToSVG(&buf, nil), ErrEmptyChart)
	assert.ErrorIs(t, ChartToSVG(&buf, &models.Figure{}), ErrEmptyChart)
}

func TestOrderedBars(t *testing.T) {
	bars := orderedBars(sampleFigure())
	require.Len(t, bars, 2)
	assert.Equal(t, "Vista<br>Parque", bars[0].Category)
	assert.True(t, bars[0].Highlight)
	assert.Equal(t, "Edificio<br>Sol", bars[1].Category)
}
