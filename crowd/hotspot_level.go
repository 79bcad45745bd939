package crowd

import (
	"math"
	"strings"
	"time"

	"crowd-server/dataset"
	"crowd-server/models/hotspot"
)

const (
	PEAK_SEASON_MODIFIER = 1.3
	OFF_SEASON_MODIFIER  = 0.6
	WEEKEND_MODIFIER     = 1.2

	DASARA_MODIFIER          = 1.4
	TEMPLE_FESTIVAL_MODIFIER = 1.3
	FLOWER_SHOW_MODIFIER     = 1.5

	MAX_CROWD_SCORE = 100.0
)

// CrowdLevel scores a hotspot for a date on a 0..1 scale.
//
// The hotspot's base score is scaled by its season (peak wins over off when a
// month is listed twice), by the weekend and by a few named events, then
// saturates at 100 before being brought down to 0..1.
func CrowdLevel(h hotspot.Hotspot, date time.Time) float64 {
	day := civil(date)
	month := dataset.Months[day.Month()-1]

	modifier := 1.0
	if h.InPeakSeason(month) {
		modifier = PEAK_SEASON_MODIFIER
	} else if h.InOffSeason(month) {
		modifier = OFF_SEASON_MODIFIER
	}

	if isWeekend(day) {
		modifier *= WEEKEND_MODIFIER
	}

	// Dasara
	if month == "September" && (strings.Contains(h.Name, "Mysore") || strings.Contains(h.Name, "Chamundi")) {
		modifier *= DASARA_MODIFIER
	}
	if month == "August" && strings.Contains(h.Type, "Temple") {
		modifier *= TEMPLE_FESTIVAL_MODIFIER
	}
	// Lalbagh flower shows
	if (month == "January" || month == "August") && strings.Contains(h.Name, "Lalbagh") {
		modifier *= FLOWER_SHOW_MODIFIER
	}

	adjusted := math.Min(MAX_CROWD_SCORE, float64(h.CrowdScore)*modifier)
	return adjusted / MAX_CROWD_SCORE
}

// LevelOf turns a 0..1 crowd level into the 0..10 scale shown on the heatmap.
func LevelOf(crowdLevel float64) int {
	return int(math.Round(crowdLevel * 10))
}
