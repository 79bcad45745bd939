package crowd

import (
	"math"
	"strings"
	"time"

	"crowd-server/models"
	"crowd-server/models/hotspot"
)

// Weights of the blended forecast score.
const (
	WEATHER_WEIGHT  = 0.25
	HOLIDAY_WEIGHT  = 0.30
	SEASONAL_WEIGHT = 0.25
	FESTIVAL_WEIGHT = 0.20
)

// Month 1..12 -> base seasonal factor.
var seasonalFactors = map[int]float64{
	1: 0.4, 2: 0.4, 3: 0.5, 4: 0.6, 5: 0.7, 6: 0.9,
	7: 1.0, 8: 0.9, 9: 0.6, 10: 0.7, 11: 0.5, 12: 0.8,
}

var timeOfDayFactors = map[int]float64{
	0: 0.1, 1: 0.1, 2: 0.1, 3: 0.1, 4: 0.1, 5: 0.1,
	6: 0.1, 7: 0.2, 8: 0.4, 9: 0.7, 10: 0.9, 11: 1.0,
	12: 0.9, 13: 0.8, 14: 0.9, 15: 1.0, 16: 0.8, 17: 0.6,
	18: 0.4, 19: 0.3, 20: 0.2, 21: 0.1, 22: 0.1, 23: 0.1,
}

var dayOfWeekFactors = map[time.Weekday]float64{
	time.Monday:    0.5,
	time.Tuesday:   0.5,
	time.Wednesday: 0.5,
	time.Thursday:  0.6,
	time.Friday:    0.7,
	time.Saturday:  0.9,
	time.Sunday:    0.8,
}

var (
	winterKeywords   = []string{"ski", "snow", "mountain"}
	beachKeywords    = []string{"beach", "coast", "island"}
	southernKeywords = []string{"australia", "new zealand", "south africa", "argentina", "brazil"}
)

// SeasonalFactor is the 0..1 seasonal crowd factor for a month (1..12). The
// destination text can add a winter-sports or beach bonus, or flip the
// seasons for the southern hemisphere, which overrides both bonuses.
func SeasonalFactor(month int, destination string) float64 {
	factor, ok := seasonalFactors[month]
	if !ok {
		factor = 0.5
	}
	if destination == "" {
		return factor
	}

	dest := strings.ToLower(destination)
	if containsAny(dest, winterKeywords) && (month == 12 || month == 1 || month == 2) {
		factor = math.Min(1.0, factor+0.3)
	}
	if containsAny(dest, beachKeywords) && month >= 6 && month <= 8 {
		factor = math.Min(1.0, factor+0.2)
	}
	if containsAny(dest, southernKeywords) {
		reversed := (month + 6) % 12
		if reversed == 0 {
			reversed = 12
		}
		factor, ok = seasonalFactors[reversed]
		if !ok {
			factor = 0.5
		}
	}
	return factor
}

// TimeOfDayFactor is the crowd factor for an hour 0..23; other values get 0.5.
func TimeOfDayFactor(hour int) float64 {
	if f, ok := timeOfDayFactors[hour]; ok {
		return f
	}
	return 0.5
}

// DayOfWeekFactor is the crowd factor for a weekday.
func DayOfWeekFactor(wd time.Weekday) float64 {
	if f, ok := dayOfWeekFactors[wd]; ok {
		return f
	}
	return 0.5
}

// WeatherImpact maps weather conditions to a 0..1 crowd factor. Nil
// conditions are neutral (0.5); a missing temperature counts as 20°C.
func WeatherImpact(w *models.WeatherConditions) float64 {
	if w == nil {
		return 0.5
	}
	impact := 0.5

	temp := 20.0
	if w.AvgTempC != nil {
		temp = *w.AvgTempC
	}
	if temp >= 20 && temp <= 28 {
		impact += 0.2
	} else if temp > 35 || temp < 10 {
		impact -= 0.2
	}

	impact -= w.PrecipitationProbability / 100 * 0.3

	condition := strings.ToLower(w.Condition)
	if strings.Contains(condition, "clear") || strings.Contains(condition, "sun") {
		impact += 0.1
	} else if isWet(condition) {
		impact -= 0.2
	}

	return clamp01(impact)
}

// HolidaySet is a set of YYYY-MM-DD holiday dates.
type HolidaySet map[string]struct{}

// NewHolidaySet builds a set from YYYY-MM-DD strings.
func NewHolidaySet(dates ...string) HolidaySet {
	s := make(HolidaySet, len(dates))
	for _, d := range dates {
		s[d] = struct{}{}
	}
	return s
}

// Contains reports whether day is a holiday.
func (s HolidaySet) Contains(day time.Time) bool {
	_, ok := s[FormatDate(civil(day))]
	return ok
}

// HolidayImpact is the 0..1 crowd factor of holidays, weekends, the summer
// vacation and long weekends around a date.
func HolidayImpact(date time.Time, holidays HolidaySet) float64 {
	day := civil(date)
	impact := 0.5

	if holidays.Contains(day) {
		impact += 0.3
	}
	if isWeekend(day) {
		impact += 0.2
	}
	if day.Month() >= time.June && day.Month() <= time.August {
		impact += 0.1
	}

	// long weekend: a Friday or Monday next to a holiday
	if holidays.Contains(day.AddDate(0, 0, 1)) || holidays.Contains(day.AddDate(0, 0, -1)) {
		if wd := day.Weekday(); wd == time.Friday || wd == time.Monday {
			impact += 0.15
		}
	}

	return math.Min(1, impact)
}

// CombinedScore blends the individual factors into one 0..1 score.
func CombinedScore(f models.Factors) float64 {
	score := f.Weather*WEATHER_WEIGHT +
		f.Holiday*HOLIDAY_WEIGHT +
		f.Seasonal*SEASONAL_WEIGHT +
		f.Festival*FESTIVAL_WEIGHT
	return clamp01(score)
}

// Recommend returns visiting advice for a 0..1 crowd score.
func Recommend(score float64) hotspot.Recommendation {
	switch {
	case score >= 0.8:
		return hotspot.Recommendation{
			Level:  "very_high",
			Advice: "Expect very large crowds. Consider visiting early morning or late evening. Book tickets in advance.",
			Color:  "#d32f2f",
		}
	case score >= 0.6:
		return hotspot.Recommendation{
			Level:  "high",
			Advice: "Crowds will be significant. Arrive early to avoid long queues.",
			Color:  "#f57c00",
		}
	case score >= 0.4:
		return hotspot.Recommendation{
			Level:  "medium",
			Advice: "Moderate crowds expected. Normal visiting hours should be fine.",
			Color:  "#fbc02d",
		}
	case score >= 0.2:
		return hotspot.Recommendation{
			Level:  "low",
			Advice: "Light crowds expected. Good time to visit without rushing.",
			Color:  "#388e3c",
		}
	}
	return hotspot.Recommendation{
		Level:  "very_low",
		Advice: "Minimal crowds expected. Excellent time to visit!",
		Color:  "#1976d2",
	}
}

// PredictPeakHours estimates the busiest visiting hours of a date.
func PredictPeakHours(date time.Time, condition string, isHoliday bool) []models.PeakHour {
	peaks := []models.PeakHour{
		{Hour: 10, Crowd: 0.8},
		{Hour: 11, Crowd: 0.9},
		{Hour: 14, Crowd: 0.85},
		{Hour: 15, Crowd: 0.9},
	}

	wet := isWet(strings.ToLower(condition))
	dayFactor := 0.7 + DayOfWeekFactor(civil(date).Weekday())*0.3
	for i := range peaks {
		if wet {
			peaks[i].Crowd *= 0.7
		}
		if isHoliday {
			peaks[i].Crowd = math.Min(1.0, peaks[i].Crowd*1.3)
		}
		peaks[i].Crowd = math.Min(1.0, peaks[i].Crowd*dayFactor)
	}
	return peaks
}

// ForecastInput carries the caller-supplied context of a forecast.
type ForecastInput struct {
	Destination string
	Date        time.Time
	CountryCode string
	Hour        *int
	Weather     *models.WeatherConditions
	Holidays    HolidaySet
}

// Forecast blends weather, holidays, season and the district festival
// calendar into one score for a destination and date.
func (e *Estimator) Forecast(in ForecastInput) models.CrowdForecast {
	day := civil(in.Date)
	district := e.FindDistrict(in.Destination)
	daily := e.DailyIntensity(district, day)
	isHoliday := in.Holidays.Contains(day)

	factors := models.Factors{
		Weather:  WeatherImpact(in.Weather),
		Holiday:  HolidayImpact(day, in.Holidays),
		Seasonal: SeasonalFactor(int(day.Month()), in.Destination),
		Festival: float64(daily.Intensity) / MAX_INTENSITY,
	}
	score := CombinedScore(factors)

	condition := ""
	if in.Weather != nil {
		condition = in.Weather.Condition
	}

	forecast := models.CrowdForecast{
		Destination:    in.Destination,
		District:       district,
		Date:           FormatDate(day),
		CountryCode:    in.CountryCode,
		IsHoliday:      isHoliday,
		Factors:        factors,
		Score:          score,
		Recommendation: Recommend(score),
		PeakHours:      PredictPeakHours(day, condition, isHoliday),
		Reasons:        daily.Reasons,
	}
	if in.Hour != nil {
		f := TimeOfDayFactor(*in.Hour)
		forecast.TimeOfDay = &f
	}
	return forecast
}

func isWet(condition string) bool {
	return strings.Contains(condition, "rain") || strings.Contains(condition, "storm")
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// clamp01 maps NaN to 0 so a bad input never leaks into a score.
func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
