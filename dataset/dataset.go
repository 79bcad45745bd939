// Package dataset holds the static reference tables behind the crowd estimates:
// the Karnataka hotspots, the 2026 holiday and festival calendar and the
// keyword table used to resolve free-text destinations to districts.
package dataset

import (
	"fmt"

	"crowd-server/models/calendar"
	"crowd-server/models/hotspot"
)

// Months is the fixed ordered list of month names used by the season tables.
var Months = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Dataset bundles the reference tables. It is read-only once built.
type Dataset struct {
	Hotspots         []hotspot.Hotspot
	PublicHolidays   []calendar.PublicHoliday
	LocalHolidays    []calendar.LocalHoliday
	Festivals        []calendar.Festival
	DistrictKeywords []DistrictKeyword
}

var defaultDataset = &Dataset{
	Hotspots:         karnatakaHotspots,
	PublicHolidays:   publicHolidaysKarnataka2026,
	LocalHolidays:    districtOfficialLocalHolidays2026,
	Festivals:        districtFestivals,
	DistrictKeywords: districtKeywords,
}

// Default returns the shipped Karnataka dataset. Callers must not modify it.
func Default() *Dataset {
	return defaultDataset
}

// FindHotspot looks a hotspot up by its exact name.
func (d *Dataset) FindHotspot(name string) (hotspot.Hotspot, bool) {
	for _, h := range d.Hotspots {
		if h.Name == name {
			return h, true
		}
	}
	return hotspot.Hotspot{}, false
}

// Validate checks the invariants of the reference records.
func Validate(d *Dataset) error {
	seen := make(map[string]struct{}, len(d.Hotspots))
	for _, h := range d.Hotspots {
		if _, dup := seen[h.Name]; dup {
			return fmt.Errorf("duplicate hotspot name %q", h.Name)
		}
		seen[h.Name] = struct{}{}
		if h.CrowdScore < 0 || h.CrowdScore > 100 {
			return fmt.Errorf("hotspot %q: crowd score %d out of range", h.Name, h.CrowdScore)
		}
		for _, m := range append(append([]string{}, h.PeakSeason...), h.OffSeason...) {
			if !isMonth(m) {
				return fmt.Errorf("hotspot %q: unknown month %q", h.Name, m)
			}
		}
	}

	for _, f := range d.Festivals {
		if f.Shapes() != 1 {
			return fmt.Errorf("festival %q (%s): expected exactly one of period, season or date", f.Name, f.District)
		}
		for _, r := range []*calendar.DateRange{f.Period, f.Season} {
			if r != nil && r.End.Before(r.Start) {
				return fmt.Errorf("festival %q (%s): range ends before it starts", f.Name, f.District)
			}
		}
	}

	for _, k := range d.DistrictKeywords {
		if len(k.Keywords) == 0 {
			return fmt.Errorf("district %q has no keywords", k.District)
		}
	}
	return nil
}

func isMonth(name string) bool {
	for _, m := range Months {
		if m == name {
			return true
		}
	}
	return false
}
