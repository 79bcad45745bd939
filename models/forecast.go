// models/forecast.go
package models

import "crowd-server/models/hotspot"

// WeatherConditions is the caller-supplied weather for a forecast. A nil
// AvgTempC is scored as a mild 20°C day.
type WeatherConditions struct {
	AvgTempC                 *float64 `json:"avg_temp_c,omitempty"`
	PrecipitationProbability float64  `json:"precipitation_probability"`
	Condition                string   `json:"condition,omitempty"`
}

// Factors are the individual 0-1 crowd drivers blended into one score.
type Factors struct {
	Weather  float64 `json:"weather"`
	Holiday  float64 `json:"holiday"`
	Seasonal float64 `json:"seasonal"`
	Festival float64 `json:"festival"`
}

// PeakHour is the expected crowd level at one hour of the day.
type PeakHour struct {
	Hour  int     `json:"hour"`
	Crowd float64 `json:"crowd"`
}

// CrowdForecast is the blended forecast for a destination on a date.
type CrowdForecast struct {
	Destination    string                 `json:"destination"`
	District       string                 `json:"district"`
	Date           string                 `json:"date"`
	CountryCode    string                 `json:"country_code"`
	IsHoliday      bool                   `json:"is_holiday"`
	Factors        Factors                `json:"factors"`
	Score          float64                `json:"score"`
	TimeOfDay      *float64               `json:"time_of_day_factor,omitempty"`
	Recommendation hotspot.Recommendation `json:"recommendation"`
	PeakHours      []PeakHour             `json:"peak_hours"`
	Reasons        []string               `json:"reasons"`
}
