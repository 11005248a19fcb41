package desde

import (
	"sort"

	"github.com/ukaji3/desde-go/pkg/desde/models"
)

// FilterOptions returns the selectable districts and typologies: the distinct
// non-empty values of each column, sorted ascending.
func FilterOptions(ds *models.Dataset) (districts, typologies []string) {
	if ds == nil {
		return []string{}, []string{}
	}
	districts = distinct(ds.Listings, func(l models.Listing) string { return l.District })
	typologies = distinct(ds.Listings, func(l models.Listing) string { return l.Typology })
	return districts, typologies
}

// DefaultSelection returns the first district and typology on offer.
func DefaultSelection(ds *models.Dataset) models.Selection {
	districts, typologies := FilterOptions(ds)
	var sel models.Selection
	if len(districts) > 0 {
		sel.District = districts[0]
	}
	if len(typologies) > 0 {
		sel.Typology = typologies[0]
	}
	return sel
}

// Filter returns the listings whose district and typology both equal the
// selection exactly, in their original order. A blank selection value matches
// nothing, since missing cells are never a category.
func Filter(listings []models.Listing, sel models.Selection) []models.Listing {
	result := make([]models.Listing, 0)
	if sel.District == "" || sel.Typology == "" {
		return result
	}
	for _, l := range listings {
		if l.District == sel.District && l.Typology == sel.Typology {
			result = append(result, l)
		}
	}
	return result
}

func distinct(listings []models.Listing, key func(models.Listing) string) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, l := range listings {
		v := key(l)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
