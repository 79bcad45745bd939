// Package crowd estimates how crowded Karnataka tourist destinations are on a
// calendar date.
//
// Two independent schemes live here and are deliberately not merged:
// CrowdLevel scores a named hotspot from its own season lists, while
// DailyIntensity scores a district from the shared holiday and festival
// calendar. Every function is pure over the read-only dataset, so an
// Estimator can be shared by any number of goroutines.
package crowd

import (
	"crowd-server/dataset"
	"crowd-server/models/hotspot"
)

// DEFAULT_MAX_TRIP_DAYS caps the span accepted by TripCalendar.
const DEFAULT_MAX_TRIP_DAYS = 366

// Estimator computes crowd estimates over one dataset.
type Estimator struct {
	data        *dataset.Dataset
	maxTripDays int
}

// NewEstimator builds an Estimator; maxTripDays <= 0 selects DEFAULT_MAX_TRIP_DAYS.
func NewEstimator(data *dataset.Dataset, maxTripDays int) *Estimator {
	if maxTripDays <= 0 {
		maxTripDays = DEFAULT_MAX_TRIP_DAYS
	}
	return &Estimator{data: data, maxTripDays: maxTripDays}
}

var defaultEstimator = NewEstimator(dataset.Default(), DEFAULT_MAX_TRIP_DAYS)

// Hotspots returns a copy of the hotspot table.
func (e *Estimator) Hotspots() []hotspot.Hotspot {
	out := make([]hotspot.Hotspot, len(e.data.Hotspots))
	copy(out, e.data.Hotspots)
	return out
}

// FindHotspot looks up a hotspot by exact name.
func (e *Estimator) FindHotspot(name string) (hotspot.Hotspot, bool) {
	return e.data.FindHotspot(name)
}
