package parser

import (
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		input    string
		expected *CellRange
	}{
		{"A1:H500", &CellRange{R1: 1, C1: 1, R2: 500, C2: 8}},
		{"$B$2:$D$10", &CellRange{R1: 2, C1: 2, R2: 10, C2: 4}},
		{"D10:B2", &CellRange{R1: 2, C1: 2, R2: 10, C2: 4}},
		{"A1", nil},
		{"A1:ZZZZ", nil},
		{"", nil},
	}

	for _, tt := range tests {
		result := ParseRange(tt.input)
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("ParseRange(%q) = %+v, expected %+v", tt.input, result, tt.expected)
		}
	}
}

func TestParseReference(t *testing.T) {
	tests := []struct {
		input string
		sheet string
		area  *CellRange
	}{
		{"'Hoja 1'!$A$1:$B$2", "Hoja 1", &CellRange{R1: 1, C1: 1, R2: 2, C2: 2}},
		{"=Sheet1!A1:B2", "Sheet1", &CellRange{R1: 1, C1: 1, R2: 2, C2: 2}},
		{"A1:B2", "", &CellRange{R1: 1, C1: 1, R2: 2, C2: 2}},
		{"Listado", "", nil},
	}

	for _, tt := range tests {
		sheet, area := parseReference(tt.input)
		if sheet != tt.sheet || !reflect.DeepEqual(area, tt.area) {
			t.Errorf("parseReference(%q) = (%q, %+v), expected (%q, %+v)", tt.input, sheet, area, tt.sheet, tt.area)
		}
	}
}

func TestResolveRange(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "Listado",
		RefersTo: "Sheet1!$B$2:$I$20",
	}); err != nil {
		t.Fatalf("Failed to set defined name: %v", err)
	}
	if _, err := f.NewSheet("Otra"); err != nil {
		t.Fatalf("Failed to add sheet: %v", err)
	}
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "Ajena",
		RefersTo: "Otra!$A$1:$B$2",
	}); err != nil {
		t.Fatalf("Failed to set defined name: %v", err)
	}

	area, err := ResolveRange(f, "Sheet1", "")
	if err != nil || area != nil {
		t.Errorf("Expected nil range for empty ref, got %+v, %v", area, err)
	}

	area, err = ResolveRange(f, "Sheet1", "A1:C3")
	if err != nil {
		t.Fatalf("ResolveRange failed: %v", err)
	}
	if !reflect.DeepEqual(area, &CellRange{R1: 1, C1: 1, R2: 3, C2: 3}) {
		t.Errorf("Unexpected range %+v", area)
	}

	area, err = ResolveRange(f, "Sheet1", "listado")
	if err != nil {
		t.Fatalf("ResolveRange by name failed: %v", err)
	}
	if !reflect.DeepEqual(area, &CellRange{R1: 2, C1: 2, R2: 20, C2: 9}) {
		t.Errorf("Unexpected defined name range %+v", area)
	}

	if _, err := ResolveRange(f, "Sheet1", "Ajena"); err == nil {
		t.Error("Expected error for defined name on another sheet")
	}
	if _, err := ResolveRange(f, "Sheet1", "Otra!A1:B2"); err == nil {
		t.Error("Expected error for range on another sheet")
	}
	if _, err := ResolveRange(f, "Sheet1", "NoExiste"); err == nil {
		t.Error("Expected error for unknown defined name")
	}
}

func TestApplyRange(t *testing.T) {
	rows := [][]string{
		{"title"},
		{"", "h1", "h2", "h3"},
		{"", "a", "b"},
		{"", "c", "d", "e", "f"},
	}

	got, first := ApplyRange(rows, nil)
	if first != 1 || len(got) != 4 {
		t.Errorf("Expected rows unchanged from row 1, got %d rows from %d", len(got), first)
	}

	got, first = ApplyRange(rows, &CellRange{R1: 2, C1: 2, R2: 10, C2: 4})
	expected := [][]string{
		{"h1", "h2", "h3"},
		{"a", "b"},
		{"c", "d", "e"},
	}
	if first != 2 {
		t.Errorf("Expected first row 2, got %d", first)
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("ApplyRange = %v, expected %v", got, expected)
	}

	got, _ = ApplyRange(rows, &CellRange{R1: 1, C1: 3, R2: 1, C2: 4})
	if len(got) != 1 || got[0] != nil {
		t.Errorf("Expected one empty row for out-of-row columns, got %v", got)
	}
}
