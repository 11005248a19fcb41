// Package models defines data structures for the unit listing dashboard.
package models

// Listing represents a single unit row read from the listings sheet.
type Listing struct {
	// Row is the source row index (1-based) in the sheet.
	Row int `json:"row"`
	// Developer is the INMOBILIARIA column.
	Developer string `json:"developer"`
	// Project is the PROYECTO column.
	Project string `json:"project"`
	// Unit is the N° column (unit number).
	Unit string `json:"unit"`
	// District is the COMUNA column.
	District string `json:"district"`
	// Typology is the TIPOLOGÍA column.
	Typology string `json:"typology"`
	// Area is the SUP TOTAL (M2) column (nil if missing or not numeric).
	Area *float64 `json:"area,omitempty"`
	// PricePerArea is the UF/M2 column (nil if missing or not numeric).
	PricePerArea *float64 `json:"price_per_area,omitempty"`
	// Price is the Real column (nil if missing or not numeric).
	Price *float64 `json:"price,omitempty"`
}

// Dataset represents the listings loaded from one workbook sheet.
type Dataset struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the sheet the listings were read from.
	SheetName string `json:"sheet_name"`
	// Listings holds the rows in sheet order.
	Listings []Listing `json:"listings"`
}

// Selection is the pair of categorical values chosen by the user.
type Selection struct {
	District string `json:"comuna" validate:"required"`
	Typology string `json:"tipologia" validate:"required"`
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}
