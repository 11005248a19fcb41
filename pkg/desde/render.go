package desde

import (
	"github.com/ukaji3/desde-go/pkg/desde/models"
)

// Render runs the filter, aggregation, table and chart stages for one
// selection. It does not modify ds.
func Render(ds *models.Dataset, sel models.Selection, opts Options) *models.View {
	districts, typologies := FilterOptions(ds)

	var listings []models.Listing
	view := &models.View{
		Selection:  sel,
		Districts:  districts,
		Typologies: typologies,
	}
	if ds != nil {
		view.BookName = ds.BookName
		listings = ds.Listings
	}

	filtered := Filter(listings, sel)
	prices := StartingPrices(filtered, opts.LabelWidth())

	view.Matches = len(filtered)
	view.StartingPrices = prices
	view.Table = BuildTable(prices)
	view.Chart = BuildChart(prices)
	if len(prices) == 0 {
		view.Placeholder = Placeholder
	}
	return view
}
