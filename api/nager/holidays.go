package nager

import (
	"fmt"
	"strings"

	"crowd-server/models"
)

const DEFAULT_HOLIDAY_TYPE = "public"

type defaultHoliday struct {
	monthDay string
	name     string
}

var defaultHolidays = map[string][]defaultHoliday{
	"US": {{"01-01", "New Year's Day"}, {"07-04", "Independence Day"}, {"12-25", "Christmas Day"}},
	"IN": {{"01-26", "Republic Day"}, {"08-15", "Independence Day"}, {"10-02", "Gandhi Jayanti"}},
	"GB": {{"01-01", "New Year's Day"}, {"12-25", "Christmas Day"}, {"12-26", "Boxing Day"}},
	"FR": {{"01-01", "New Year's Day"}, {"07-14", "Bastille Day"}, {"12-25", "Christmas Day"}},
	"JP": {{"01-01", "New Year's Day"}, {"02-11", "National Foundation Day"}, {"12-23", "Emperor's Birthday"}},
}

var fallbackHolidays = []defaultHoliday{{"01-01", "New Year's Day"}, {"12-25", "Christmas Day"}}

// FromNager converts API entries, naming each holiday by its local name. The
// v3 payload only carries a types list, so every entry is typed "public".
func FromNager(countryCode string, year int, in []models.NagerPublicHoliday) *models.HolidayList {
	list := &models.HolidayList{
		CountryCode: strings.ToUpper(countryCode),
		Year:        year,
		Holidays:    make([]models.ExternalHoliday, 0, len(in)),
	}
	for _, h := range in {
		list.Holidays = append(list.Holidays, models.ExternalHoliday{
			Date:   h.Date,
			Name:   h.LocalName,
			Type:   DEFAULT_HOLIDAY_TYPE,
			Global: h.Global,
			Source: models.HolidaySourceNager,
		})
	}
	return list
}

// DefaultHolidays is the built-in list used when the API is unavailable.
func DefaultHolidays(countryCode string, year int) *models.HolidayList {
	cc := strings.ToUpper(countryCode)
	entries, ok := defaultHolidays[cc]
	if !ok {
		entries = fallbackHolidays
	}

	list := &models.HolidayList{CountryCode: cc, Year: year}
	for _, e := range entries {
		list.Holidays = append(list.Holidays, models.ExternalHoliday{
			Date:   fmt.Sprintf("%04d-%s", year, e.monthDay),
			Name:   e.name,
			Type:   DEFAULT_HOLIDAY_TYPE,
			Global: true,
			Source: models.HolidaySourceDefault,
		})
	}
	return list
}
