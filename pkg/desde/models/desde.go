package models

// Column names of the source sheet.
const (
	ColDistrict     = "COMUNA"
	ColTypology     = "TIPOLOGÍA"
	ColDeveloper    = "INMOBILIARIA"
	ColProject      = "PROYECTO"
	ColUnit         = "N°"
	ColArea         = "SUP TOTAL (M2)"
	ColPricePerArea = "UF/M2"
	ColPrice        = "Real"
)

// Column names of the starting price table.
const (
	ColDpto  = "Dpto"
	ColDesde = "Desde (UF)"
)

// RequiredColumns lists the sheet columns the loader must find.
var RequiredColumns = []string{
	ColDistrict,
	ColTypology,
	ColDeveloper,
	ColProject,
	ColUnit,
	ColArea,
	ColPricePerArea,
	ColPrice,
}

// DesdeColumns is the fixed schema of the starting price table.
var DesdeColumns = []string{
	ColDeveloper,
	ColProject,
	ColDpto,
	ColArea,
	ColPricePerArea,
	ColDesde,
}

// StartingPrice is the cheapest listing of one project under the current selection.
type StartingPrice struct {
	// Developer is the project's INMOBILIARIA.
	Developer string `json:"developer"`
	// Project is the project name as it appears in the sheet.
	Project string `json:"project"`
	// RawProject is Project with line-break markup replaced by spaces.
	RawProject string `json:"raw_project"`
	// Label is RawProject wrapped for chart axis display.
	Label string `json:"label"`
	// Unit is the unit number of the cheapest listing (Dpto).
	Unit string `json:"dpto"`
	// Area is the unit's total area in m2.
	Area *float64 `json:"area,omitempty"`
	// PricePerArea is the unit's UF/M2.
	PricePerArea *float64 `json:"price_per_area,omitempty"`
	// Price is the starting price, Desde (UF).
	Price *float64 `json:"desde,omitempty"`
	// Row is the source row of the selected listing.
	Row int `json:"row"`
}
