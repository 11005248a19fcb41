package desde

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/desde-go/pkg/desde/models"
)

func TestStartingPrices(t *testing.T) {
	filtered := Filter(providenciaListings(), models.Selection{District: "Providencia", Typology: "2D2B"})

	got := StartingPrices(filtered, DefaultMaxLabelChars)
	require.Len(t, got, 2)

	assert.Equal(t, "Edificio Sol", got[0].Project)
	assert.Equal(t, "302", got[0].Unit)
	assert.Equal(t, 3100.0, *got[0].Price)
	assert.Equal(t, "Edificio<br>Sol", got[0].Label)

	assert.Equal(t, "Vista Parque", got[1].Project)
	assert.Equal(t, "101", got[1].Unit)
	assert.Equal(t, 2900.0, *got[1].Price)
}

func TestStartingPricesTieKeepsFirst(t *testing.T) {
	listings := []models.Listing{
		listing("Providencia", "2D2B", "Inmo A", "Edificio Sol", "301", 3000),
		listing("Providencia", "2D2B", "Inmo A", "Edificio Sol", "302", 3000),
	}

	got := StartingPrices(listings, DefaultMaxLabelChars)
	require.Len(t, got, 1)
	assert.Equal(t, "301", got[0].Unit)
}

func TestStartingPricesMissingPrices(t *testing.T) {
	noPrice := listing("Providencia", "2D2B", "Inmo A", "Edificio Sol", "301", 0)
	noPrice.Price = nil
	priced := listing("Providencia", "2D2B", "Inmo A", "Edificio Sol", "302", 3500)
	unpriced := listing("Providencia", "2D2B", "Inmo B", "Torre Norte", "11", 0)
	unpriced.Price = nil
	unpricedLater := unpriced
	unpricedLater.Unit = "12"

	got := StartingPrices([]models.Listing{noPrice, priced, unpriced, unpricedLater}, DefaultMaxLabelChars)
	require.Len(t, got, 2)

	assert.Equal(t, "302", got[0].Unit, "a priced row beats an unpriced one")
	assert.Equal(t, "Torre Norte", got[1].Project)
	assert.Equal(t, "11", got[1].Unit, "an unpriced project keeps its first row")
	assert.Nil(t, got[1].Price)
}

func TestStartingPricesSkipsEmptyProject(t *testing.T) {
	listings := []models.Listing{
		listing("Providencia", "2D2B", "Inmo A", "", "1", 100),
		listing("Providencia", "2D2B", "Inmo A", "Edificio Sol", "301", 3200),
	}

	got := StartingPrices(listings, DefaultMaxLabelChars)
	require.Len(t, got, 1)
	assert.Equal(t, "Edificio Sol", got[0].Project)
}

func TestStartingPricesNormalizesLabels(t *testing.T) {
	listings := []models.Listing{
		listing("Providencia", "2D2B", "Inmo A", "Edificio<br/>Las Torres del Parque", "1", 100),
	}

	got := StartingPrices(listings, DefaultMaxLabelChars)
	require.Len(t, got, 1)

	want := models.StartingPrice{
		Developer:    "Inmo A",
		Project:      "Edificio<br/>Las Torres del Parque",
		RawProject:   "Edificio Las Torres del Parque",
		Label:        "Edificio<br>Las<br>Torres<br>del<br>Parque",
		Unit:         "1",
		Area:         models.Float(50),
		PricePerArea: models.Float(2),
		Price:        models.Float(100),
	}
	if diff := cmp.Diff(want, got[0]); diff != "" {
		t.Errorf("StartingPrices mismatch (-want +got):\n%s", diff)
	}
}

func TestStartingPricesEmpty(t *testing.T) {
	got := StartingPrices(nil, DefaultMaxLabelChars)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
