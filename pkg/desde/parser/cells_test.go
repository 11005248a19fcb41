package parser

import (
	"testing"

	"github.com/ukaji3/desde-go/pkg/desde/models"
)

func listingHeader() []string {
	return []string{"COMUNA", "TIPOLOGÍA", "INMOBILIARIA", "PROYECTO", "N°", "SUP TOTAL (M2)", "UF/M2", "Real"}
}

func TestParseListings(t *testing.T) {
	rows := [][]string{
		listingHeader(),
		{"Providencia", "2D2B", "Inmo A", "Edificio Sol", "301", "55.5", "57.66", "3200"},
		{},
		{"Ñuñoa", "1D1B", "Inmo B", "Vista Parque", " 12 ", "", "n/a", "2900.25"},
	}

	header, err := FindHeader(rows, models.RequiredColumns)
	if err != nil {
		t.Fatalf("FindHeader failed: %v", err)
	}

	listings := ParseListings(rows, header, 1)
	if len(listings) != 2 {
		t.Fatalf("Expected 2 listings, got %d", len(listings))
	}

	first := listings[0]
	if first.Row != 2 {
		t.Errorf("Expected row 2, got %d", first.Row)
	}
	if first.District != "Providencia" || first.Typology != "2D2B" {
		t.Errorf("Unexpected selection columns: %q, %q", first.District, first.Typology)
	}
	if first.Developer != "Inmo A" || first.Project != "Edificio Sol" || first.Unit != "301" {
		t.Errorf("Unexpected text columns: %+v", first)
	}
	if first.Price == nil || *first.Price != 3200 {
		t.Errorf("Expected price 3200, got %v", first.Price)
	}
	if first.Area == nil || *first.Area != 55.5 {
		t.Errorf("Expected area 55.5, got %v", first.Area)
	}

	second := listings[1]
	if second.Row != 4 {
		t.Errorf("Expected row 4, got %d", second.Row)
	}
	if second.Unit != "12" {
		t.Errorf("Expected trimmed unit '12', got %q", second.Unit)
	}
	if second.Area != nil {
		t.Errorf("Expected nil area for blank cell, got %v", *second.Area)
	}
	if second.PricePerArea != nil {
		t.Errorf("Expected nil price per area for text cell, got %v", *second.PricePerArea)
	}
	if second.Price == nil || *second.Price != 2900.25 {
		t.Errorf("Expected price 2900.25, got %v", second.Price)
	}
}

func TestParseListingsShortRows(t *testing.T) {
	rows := [][]string{
		listingHeader(),
		{"Providencia", "2D2B", "Inmo A", "Edificio Sol"},
	}
	header, err := FindHeader(rows, models.RequiredColumns)
	if err != nil {
		t.Fatalf("FindHeader failed: %v", err)
	}

	listings := ParseListings(rows, header, 10)
	if len(listings) != 1 {
		t.Fatalf("Expected 1 listing, got %d", len(listings))
	}
	if listings[0].Row != 11 {
		t.Errorf("Expected row 11, got %d", listings[0].Row)
	}
	if listings[0].Price != nil || listings[0].Unit != "" {
		t.Errorf("Expected missing trailing cells to be empty, got %+v", listings[0])
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected *float64
	}{
		{"123", models.Float(123)},
		{"123.45", models.Float(123.45)},
		{" -100 ", models.Float(-100)},
		{"1e3", models.Float(1000)},
		{"hello", nil},
		{"", nil},
		{"   ", nil},
		{"NaN", nil},
		{"Inf", nil},
	}

	for _, tt := range tests {
		result := parseNumber(tt.input)
		switch {
		case tt.expected == nil && result != nil:
			t.Errorf("parseNumber(%q) = %v, expected nil", tt.input, *result)
		case tt.expected != nil && result == nil:
			t.Errorf("parseNumber(%q) = nil, expected %v", tt.input, *tt.expected)
		case tt.expected != nil && *result != *tt.expected:
			t.Errorf("parseNumber(%q) = %v, expected %v", tt.input, *result, *tt.expected)
		}
	}
}

func TestParseListingsTrimsText(t *testing.T) {
	rows := [][]string{
		listingHeader(),
		{"Providencia ", " 2D2B", " Inmo A ", "Edificio Sol  ", "301", "50", "64", "3200"},
		{"   ", "2D2B", "Inmo B", "Vista Parque", "101", "50", "58", "2900"},
	}
	header, err := FindHeader(rows, models.RequiredColumns)
	if err != nil {
		t.Fatalf("FindHeader failed: %v", err)
	}

	listings := ParseListings(rows, header, 1)
	if len(listings) != 2 {
		t.Fatalf("Expected 2 listings, got %d", len(listings))
	}

	first := listings[0]
	if first.District != "Providencia" || first.Typology != "2D2B" {
		t.Errorf("Expected trimmed selection columns, got %q, %q", first.District, first.Typology)
	}
	if first.Developer != "Inmo A" || first.Project != "Edificio Sol" {
		t.Errorf("Expected trimmed text columns, got %q, %q", first.Developer, first.Project)
	}
	if listings[1].District != "" {
		t.Errorf("Expected blank district to be missing, got %q", listings[1].District)
	}
}
