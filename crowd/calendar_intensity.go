package crowd

import (
	"strings"
	"time"

	"crowd-server/models/calendar"
)

const (
	BASE_INTENSITY = 1
	MAX_INTENSITY  = 10

	SUNDAY_BONUS          = 2
	HOLIDAY_BONUS         = 3
	FESTIVAL_PERIOD_BONUS = 4
	FESTIVAL_SEASON_BONUS = 2
	FESTIVAL_DAY_BONUS    = 3
	WINTER_BONUS          = 1
	FESTIVAL_DAY_WINDOW   = 2
)

const (
	SUNDAY_REASON = "Sunday"
	WINTER_REASON = "Winter season (peak tourism)"
)

// DailyIntensity scores a district for a date on the default dataset.
func DailyIntensity(district string, date time.Time) calendar.DayIntensity {
	return defaultEstimator.DailyIntensity(district, date)
}

// DailyIntensity scores a district for a date on a 1..10 scale and lists the
// reasons in the order they were applied.
func (e *Estimator) DailyIntensity(district string, date time.Time) calendar.DayIntensity {
	day := civil(date)
	intensity := BASE_INTENSITY
	reasons := []string{}

	if day.Weekday() == time.Sunday {
		intensity += SUNDAY_BONUS
		reasons = append(reasons, SUNDAY_REASON)
	}

	for _, h := range e.data.PublicHolidays {
		if h.Date.Equal(day) {
			intensity += HOLIDAY_BONUS
			reasons = append(reasons, h.Name)
		}
	}

	for _, h := range e.data.LocalHolidays {
		if h.District == district && h.Date.Equal(day) {
			intensity += HOLIDAY_BONUS
			reasons = append(reasons, h.Name)
		}
	}

	for _, f := range e.data.Festivals {
		// Substring association is intentionally loose, see DESIGN.md.
		if f.District != district && !strings.Contains(f.District, district) {
			continue
		}
		switch {
		case f.Period != nil:
			if f.Period.Contains(day) {
				intensity += FESTIVAL_PERIOD_BONUS
				reasons = append(reasons, f.Name)
			}
		case f.Season != nil:
			if f.Season.Contains(day) {
				intensity += FESTIVAL_SEASON_BONUS
				reasons = append(reasons, f.Name+" season")
			}
		case f.Date != nil:
			window := calendar.DateRange{
				Start: f.Date.AddDate(0, 0, -FESTIVAL_DAY_WINDOW),
				End:   f.Date.AddDate(0, 0, FESTIVAL_DAY_WINDOW),
			}
			if window.Contains(day) {
				intensity += FESTIVAL_DAY_BONUS
				reasons = append(reasons, f.Name)
			}
		}
	}

	if isWinter(day.Month()) {
		intensity += WINTER_BONUS
		reasons = append(reasons, WINTER_REASON)
	}

	if intensity > MAX_INTENSITY {
		intensity = MAX_INTENSITY
	}

	return calendar.DayIntensity{
		Date:      FormatDate(day),
		Intensity: intensity,
		Reasons:   reasons,
		Color:     ColorForIntensity(intensity),
	}
}

func isWinter(m time.Month) bool {
	return m >= time.November || m <= time.February
}
