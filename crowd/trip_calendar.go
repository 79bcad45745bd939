package crowd

import (
	"errors"
	"fmt"
	"time"

	"crowd-server/models/calendar"
)

var (
	ErrInvalidRange = errors.New("end date is before start date")
	ErrRangeTooLong = errors.New("date range is too long")
)

// TripCalendar computes a trip calendar on the default dataset.
func TripCalendar(destination string, start, end time.Time) (*calendar.TripCalendar, error) {
	return defaultEstimator.TripCalendar(destination, start, end)
}

// TripCalendar scores every day of [start, end] for the district the
// destination resolves to and derives the trip aggregates. Peak and quiet
// dates are the first day holding the maximum and minimum intensity.
func (e *Estimator) TripCalendar(destination string, start, end time.Time) (*calendar.TripCalendar, error) {
	first, last := civil(start), civil(end)
	if last.Before(first) {
		return nil, ErrInvalidRange
	}
	days := int(last.Sub(first).Hours()/24) + 1
	if days > e.maxTripDays {
		return nil, fmt.Errorf("%w: %d days, at most %d allowed", ErrRangeTooLong, days, e.maxTripDays)
	}

	district := e.FindDistrict(destination)
	trip := &calendar.TripCalendar{
		Destination:  destination,
		District:     district,
		StartDate:    FormatDate(first),
		EndDate:      FormatDate(last),
		DurationDays: days,
		PerDay:       make([]calendar.DayIntensity, 0, days),
		Events:       []calendar.TripEvent{},
	}

	total := 0
	maxIntensity, minIntensity := 0, 0
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		di := e.DailyIntensity(district, d)
		trip.PerDay = append(trip.PerDay, di)
		total += di.Intensity

		if len(trip.PerDay) == 1 || di.Intensity > maxIntensity {
			maxIntensity = di.Intensity
			trip.PeakDate = di.Date
		}
		if len(trip.PerDay) == 1 || di.Intensity < minIntensity {
			minIntensity = di.Intensity
			trip.QuietDate = di.Date
		}

		if len(di.Reasons) > 0 {
			trip.Events = append(trip.Events, calendar.TripEvent{
				Date:      di.Date,
				Reasons:   di.Reasons,
				Intensity: di.Intensity,
			})
		}
	}
	trip.MeanIntensity = float64(total) / float64(len(trip.PerDay))

	return trip, nil
}
