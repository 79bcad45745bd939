package calendar

import "time"

// PublicHoliday is a state-wide holiday that applies to every district.
type PublicHoliday struct {
	Date time.Time
	Name string
}

// LocalHoliday is a district-official single-day holiday.
type LocalHoliday struct {
	District string
	Name     string
	Date     time.Time
}

// DateRange is an inclusive range of civil dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether day falls within the range, both ends inclusive.
func (r DateRange) Contains(day time.Time) bool {
	return !day.Before(r.Start) && !day.After(r.End)
}

// Festival is a district festival. Exactly one of Period, Season or Date is set:
// Period is the active duration of the festival, Season a recurring
// low-intensity window and Date a single festival day.
type Festival struct {
	District string
	Name     string
	Period   *DateRange
	Season   *DateRange
	Date     *time.Time
}

// Shapes returns how many of Period, Season and Date are set.
func (f Festival) Shapes() int {
	n := 0
	if f.Period != nil {
		n++
	}
	if f.Season != nil {
		n++
	}
	if f.Date != nil {
		n++
	}
	return n
}
