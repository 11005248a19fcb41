package desde

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/desde-go/pkg/desde/models"
	"github.com/ukaji3/desde-go/pkg/desde/parser"
	"github.com/xuri/excelize/v2"
)

// Load reads the listings sheet of an Excel file.
func Load(path string, opts Options) (*models.Dataset, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, NewLoadError(opts.Sheet, "open", fmt.Errorf("%w: %s", ErrFileNotFound, path))
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewLoadError(opts.Sheet, "open", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer f.Close()

	ds, err := LoadFile(f, opts)
	if err != nil {
		return nil, err
	}
	ds.BookName = filepath.Base(path)
	return ds, nil
}

// LoadFile reads the listings sheet of an already opened workbook.
func LoadFile(f *excelize.File, opts Options) (*models.Dataset, error) {
	sheetName, err := resolveSheet(f, opts.Sheet)
	if err != nil {
		return nil, NewLoadError(opts.Sheet, "sheet", err)
	}

	// Raw values keep numbers unformatted so they parse exactly.
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, NewLoadError(sheetName, "rows", err)
	}

	area, err := parser.ResolveRange(f, sheetName, opts.Range)
	if err != nil {
		return nil, NewLoadError(sheetName, "range", err)
	}
	rows, firstRow := parser.ApplyRange(rows, area)

	header, err := parser.FindHeader(rows, models.RequiredColumns)
	if err != nil {
		return nil, NewLoadError(sheetName, "header", fmt.Errorf("%w: %v", ErrMissingColumn, err))
	}

	return &models.Dataset{
		BookName:  filepath.Base(f.Path),
		SheetName: sheetName,
		Listings:  parser.ParseListings(rows, header, firstRow),
	}, nil
}

// resolveSheet returns the configured sheet, or the first sheet when none is set.
func resolveSheet(f *excelize.File, name string) (string, error) {
	sheetList := f.GetSheetList()
	if name == "" {
		if len(sheetList) == 0 {
			return "", ErrSheetNotFound
		}
		return sheetList[0], nil
	}
	for _, s := range sheetList {
		if s == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrSheetNotFound, name)
}
