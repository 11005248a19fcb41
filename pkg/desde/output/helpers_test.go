package output

import (
	"github.com/ukaji3/desde-go/pkg/desde"
	"github.com/ukaji3/desde-go/pkg/desde/models"
)

func samplePrices() []models.StartingPrice {
	return []models.StartingPrice{
		{
			Developer:    "Inmo A",
			Project:      "Edificio Sol",
			Label:        "Edificio<br>Sol",
			Unit:         "302",
			Area:         models.Float(50),
			PricePerArea: models.Float(62),
			Price:        models.Float(3100),
		},
		{
			Developer:    "Inmo B",
			Project:      "Vista Parque",
			Label:        "Vista<br>Parque",
			Unit:         "101",
			Area:         models.Float(50),
			PricePerArea: models.Float(58),
			Price:        models.Float(2900),
		},
	}
}

func sampleTable() *models.Table {
	return desde.BuildTable(samplePrices())
}

func sampleFigure() *models.Figure {
	return desde.BuildChart(samplePrices())
}
