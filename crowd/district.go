package crowd

import (
	"strings"

	"crowd-server/dataset"
)

// FindDistrict resolves a destination on the default dataset.
func FindDistrict(destination string) string {
	return defaultEstimator.FindDistrict(destination)
}

// FindDistrict maps free text such as "weekend in Coorg" to a district by
// keyword substring match. The first district in table order with a matching
// keyword wins; unmatched text resolves to DEFAULT_DISTRICT.
func (e *Estimator) FindDistrict(destination string) string {
	dest := strings.ToLower(destination)
	for _, dk := range e.data.DistrictKeywords {
		for _, keyword := range dk.Keywords {
			if strings.Contains(dest, keyword) {
				return dk.District
			}
		}
	}
	return dataset.DEFAULT_DISTRICT
}
