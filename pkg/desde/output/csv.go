package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ukaji3/desde-go/pkg/desde/models"
)

// TableToCSV writes the table header and rows as CSV. When bom is set a UTF-8
// byte order mark is written first so Excel detects the encoding.
func TableToCSV(w io.Writer, t *models.Table, bom bool) error {
	if bom {
		if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(t.Columns); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for i, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
