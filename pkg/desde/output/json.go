// Package output serializes dashboard views to JSON, CSV, XLSX, PDF, SVG,
// plotly figures and terminal tables.
package output

import (
	"encoding/json"

	"github.com/ukaji3/desde-go/pkg/desde/models"
)

// ToJSON serializes a view.
func ToJSON(v *models.View, pretty bool) ([]byte, error) {
	return marshal(v, pretty)
}

// TableToJSON serializes the starting price table only.
func TableToJSON(t *models.Table, pretty bool) ([]byte, error) {
	return marshal(t, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
