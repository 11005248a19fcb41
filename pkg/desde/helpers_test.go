package desde

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/desde-go/pkg/desde/models"
)

var sheetHeader = []interface{}{"COMUNA", "TIPOLOGÍA", "INMOBILIARIA", "PROYECTO", "N°", "SUP TOTAL (M2)", "UF/M2", "Real"}

// writeWorkbook saves rows to a new workbook in a temp dir and returns its path.
func writeWorkbook(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "" && sheet != "Sheet1" {
		require.NoError(t, f.SetSheetName("Sheet1", sheet))
	} else {
		sheet = "Sheet1"
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "Consolidado_Unidades.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func listing(district, typology, developer, project, unit string, price float64) models.Listing {
	return models.Listing{
		District:     district,
		Typology:     typology,
		Developer:    developer,
		Project:      project,
		Unit:         unit,
		Area:         models.Float(50),
		PricePerArea: models.Float(price / 50),
		Price:        models.Float(price),
	}
}

func providenciaListings() []models.Listing {
	return []models.Listing{
		listing("Providencia", "2D2B", "Inmo A", "Edificio Sol", "301", 3200),
		listing("Providencia", "2D2B", "Inmo A", "Edificio Sol", "302", 3100),
		listing("Providencia", "2D2B", "Inmo A", "Edificio Sol", "303", 3300),
		listing("Providencia", "2D2B", "Inmo B", "Vista Parque", "101", 2900),
		listing("Providencia", "1D1B", "Inmo B", "Vista Parque", "102", 2000),
		listing("Ñuñoa", "2D2B", "Inmo C", "Plaza Ñuñoa", "501", 2500),
	}
}
