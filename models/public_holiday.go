// models/public_holiday.go
package models

const (
	HolidaySourceNager   = "nager_api"
	HolidaySourceDefault = "default"
)

// NagerPublicHoliday matches one element of GET /PublicHolidays/{year}/{countryCode}.
type NagerPublicHoliday struct {
	Date        string   `json:"date"`
	LocalName   string   `json:"localName"`
	Name        string   `json:"name"`
	CountryCode string   `json:"countryCode"`
	Global      bool     `json:"global"`
	Counties    []string `json:"counties,omitempty"`
	LaunchYear  *int     `json:"launchYear,omitempty"`
	Types       []string `json:"types,omitempty"`
}

// ExternalHoliday is a public holiday as served and cached by this service.
type ExternalHoliday struct {
	Date   string `json:"date"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Global bool   `json:"global"`
	Source string `json:"source"`
}

// HolidayList is the cached holiday set for one country and year.
type HolidayList struct {
	CountryCode string            `json:"country_code"`
	Year        int               `json:"year"`
	Holidays    []ExternalHoliday `json:"holidays"`
}
