package desde

import (
	"sort"

	"github.com/ukaji3/desde-go/pkg/desde/models"
)

// StartingPrices picks, for every project in listings, the listing with the
// lowest price. Ties go to the listing that comes first in listings. Rows
// without a project are ignored; a project none of whose rows has a price
// keeps its first row with a nil price. The result is ordered by project name.
func StartingPrices(listings []models.Listing, maxLabelChars int) []models.StartingPrice {
	best := make(map[string]int)
	var projects []string

	for i, l := range listings {
		if l.Project == "" {
			continue
		}
		cur, ok := best[l.Project]
		if !ok {
			best[l.Project] = i
			projects = append(projects, l.Project)
			continue
		}
		if cheaper(l.Price, listings[cur].Price) {
			best[l.Project] = i
		}
	}

	sort.Strings(projects)

	result := make([]models.StartingPrice, 0, len(projects))
	for _, p := range projects {
		l := listings[best[p]]
		raw := NormalizeProject(l.Project)
		result = append(result, models.StartingPrice{
			Developer:    l.Developer,
			Project:      l.Project,
			RawProject:   raw,
			Label:        WrapLabel(raw, maxLabelChars),
			Unit:         l.Unit,
			Area:         l.Area,
			PricePerArea: l.PricePerArea,
			Price:        l.Price,
			Row:          l.Row,
		})
	}
	return result
}

// cheaper reports whether candidate strictly beats current. A missing price
// never wins; any price beats a missing one.
func cheaper(candidate, current *float64) bool {
	if candidate == nil {
		return false
	}
	if current == nil {
		return true
	}
	return *candidate < *current
}
