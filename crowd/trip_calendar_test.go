package crowd

import (
	"errors"
	"testing"

	"crowd-server/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripCalendar_SingleDay(t *testing.T) {
	d := mustParse(t, "2026-11-26")

	trip, err := TripCalendar("weekend in Coorg", d, d)

	require.NoError(t, err)
	assert.Equal(t, "Kodagu", trip.District)
	require.Len(t, trip.PerDay, 1)
	assert.Equal(t, 1, trip.DurationDays)
	assert.Equal(t, "2026-11-26", trip.PeakDate)
	assert.Equal(t, "2026-11-26", trip.QuietDate)
	assert.Equal(t, float64(trip.PerDay[0].Intensity), trip.MeanIntensity)
	assert.Equal(t, 5, trip.PerDay[0].Intensity)
	require.Len(t, trip.Events, 1)
	assert.Equal(t, trip.PerDay[0].Reasons, trip.Events[0].Reasons)
}

func TestTripCalendar_Aggregates(t *testing.T) {
	trip, err := TripCalendar("Coorg", mustParse(t, "2026-11-25"), mustParse(t, "2026-11-29"))
	require.NoError(t, err)

	intensities := make([]int, 0, len(trip.PerDay))
	for _, d := range trip.PerDay {
		intensities = append(intensities, d.Intensity)
	}
	assert.Equal(t, []int{2, 5, 2, 2, 4}, intensities)
	assert.Equal(t, 5, trip.DurationDays)
	assert.InDelta(t, 3.0, trip.MeanIntensity, 1e-9)
	assert.Equal(t, "2026-11-26", trip.PeakDate)
	assert.Equal(t, "2026-11-25", trip.QuietDate, "first occurrence wins on ties")
	assert.Len(t, trip.Events, 5, "every winter day carries a reason")
	assert.Equal(t, "2026-11-29", trip.Events[4].Date)
	assert.Equal(t, []string{"Sunday", "Winter season (peak tourism)"}, trip.Events[4].Reasons)
}

func TestTripCalendar_QuietTripHasNoEvents(t *testing.T) {
	trip, err := TripCalendar("Coorg", mustParse(t, "2026-06-02"), mustParse(t, "2026-06-04"))
	require.NoError(t, err)

	assert.Len(t, trip.PerDay, 3)
	assert.Empty(t, trip.Events)
	assert.NotNil(t, trip.Events)
	assert.Equal(t, 1.0, trip.MeanIntensity)
	assert.Equal(t, "2026-06-02", trip.PeakDate)
	assert.Equal(t, "2026-06-02", trip.QuietDate)
}

func TestTripCalendar_UnknownDestinationUsesDefaultDistrict(t *testing.T) {
	trip, err := TripCalendar("Timbuktu", mustParse(t, "2026-11-23"), mustParse(t, "2026-11-23"))
	require.NoError(t, err)

	assert.Equal(t, dataset.DEFAULT_DISTRICT, trip.District)
	assert.Contains(t, trip.PerDay[0].Reasons, "Kadalekai Parishe")
}

func TestTripCalendar_InvalidRange(t *testing.T) {
	_, err := TripCalendar("Coorg", mustParse(t, "2026-06-04"), mustParse(t, "2026-06-02"))
	assert.True(t, errors.Is(err, ErrInvalidRange))
}

func TestTripCalendar_RangeTooLong(t *testing.T) {
	e := NewEstimator(dataset.Default(), 7)

	_, err := e.TripCalendar("Coorg", mustParse(t, "2026-06-01"), mustParse(t, "2026-06-07"))
	assert.NoError(t, err)

	_, err = e.TripCalendar("Coorg", mustParse(t, "2026-06-01"), mustParse(t, "2026-06-08"))
	assert.True(t, errors.Is(err, ErrRangeTooLong))
}
