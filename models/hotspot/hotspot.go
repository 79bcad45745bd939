package hotspot

import "fmt"

// Hotspot is a named tourist destination with static popularity and seasonality data.
type Hotspot struct {
	Name       string   `json:"name"`
	Lat        float64  `json:"lat"`
	Lng        float64  `json:"lng"`
	District   string   `json:"district"`
	Type       string   `json:"type"`
	CrowdScore int      `json:"crowd_score"`
	PeakSeason []string `json:"peak_season"`
	OffSeason  []string `json:"off_season"`
}

// InPeakSeason reports whether month (e.g. "January") is listed as peak season.
func (h Hotspot) InPeakSeason(month string) bool {
	return contains(h.PeakSeason, month)
}

// InOffSeason reports whether month is listed as off season.
func (h Hotspot) InOffSeason(month string) bool {
	return contains(h.OffSeason, month)
}

// ToString formats the identifying fields for log lines.
func (h *Hotspot) ToString() string {
	return fmt.Sprintf("Hotspot(name=%s, district=%s, lat=%f, lng=%f)",
		h.Name, h.District, h.Lat, h.Lng)
}

func contains(months []string, month string) bool {
	for _, m := range months {
		if m == month {
			return true
		}
	}
	return false
}
