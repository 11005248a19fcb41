package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/desde-go/pkg/desde"
)

func TestTableToPDF(t *testing.T) {
	data, err := TableToPDF(sampleTable(), "Valores 'Desde' por Proyecto", "Comuna: Providencia")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestTableToPDFEmpty(t *testing.T) {
	data, err := TableToPDF(desde.BuildTable(nil), "Valores 'Desde' por Proyecto", "")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestPDFColor(t *testing.T) {
	c := pdfColor("#E07A5F")
	assert.Equal(t, 224, c.Red)
	assert.Equal(t, 122, c.Green)
	assert.Equal(t, 95, c.Blue)

	assert.Equal(t, pdfHighlight, pdfColor("bogus"))
}
