package crowd

import (
	"testing"

	"crowd-server/dataset"
	"crowd-server/models/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyIntensity(t *testing.T) {
	tests := []struct {
		name      string
		district  string
		date      string
		intensity int
		reasons   []string
	}{
		{
			name:      "local holiday in winter",
			district:  "Kodagu",
			date:      "2026-11-26",
			intensity: 5,
			reasons:   []string{"Huthri Festival", "Winter season (peak tourism)"},
		},
		{
			name:      "local holiday does not leak to other districts",
			district:  "Mysuru",
			date:      "2026-11-26",
			intensity: 2,
			reasons:   []string{"Winter season (peak tourism)"},
		},
		{
			name:      "sunday public holiday",
			district:  "Kolar",
			date:      "2026-11-01",
			intensity: 7,
			reasons:   []string{"Sunday", "Kannada Rajyotsava", "Winter season (peak tourism)"},
		},
		{
			name:      "public holiday inside a festival period",
			district:  "Mysuru",
			date:      "2026-10-10",
			intensity: 8,
			reasons:   []string{"Deepavali", "Mysuru Dasara"},
		},
		{
			name:      "festival season",
			district:  "Udupi",
			date:      "2026-01-01",
			intensity: 7,
			reasons:   []string{"New Year's Day", "Kambala (Buffalo Racing) season", "Winter season (peak tourism)"},
		},
		{
			name:      "two days before a single-day festival",
			district:  "Bengaluru Urban",
			date:      "2026-11-21",
			intensity: 5,
			reasons:   []string{"Kadalekai Parishe", "Winter season (peak tourism)"},
		},
		{
			name:      "two days after a single-day festival",
			district:  "Bengaluru Urban",
			date:      "2026-11-25",
			intensity: 5,
			reasons:   []string{"Kadalekai Parishe", "Winter season (peak tourism)"},
		},
		{
			name:      "outside the single-day festival window",
			district:  "Bengaluru Urban",
			date:      "2026-11-20",
			intensity: 2,
			reasons:   []string{"Winter season (peak tourism)"},
		},
		{
			name:      "plain weekday",
			district:  "Kodagu",
			date:      "2026-06-02",
			intensity: 1,
			reasons:   []string{},
		},
		{
			name:      "first day of a festival period",
			district:  "Mysuru",
			date:      "2026-10-07",
			intensity: 5,
			reasons:   []string{"Mysuru Dasara"},
		},
		{
			name:      "last day of a festival period",
			district:  "Mysuru",
			date:      "2026-10-16",
			intensity: 5,
			reasons:   []string{"Mysuru Dasara"},
		},
		{
			name:      "day after a festival period",
			district:  "Mysuru",
			date:      "2026-10-17",
			intensity: 1,
			reasons:   []string{},
		},
		{
			name:      "last day of a festival season",
			district:  "Udupi",
			date:      "2026-03-30",
			intensity: 3,
			reasons:   []string{"Kambala (Buffalo Racing) season"},
		},
		{
			name:      "day after a festival season",
			district:  "Udupi",
			date:      "2026-03-31",
			intensity: 1,
			reasons:   []string{},
		},
		{
			name:      "district name contained in festival district",
			district:  "Kannada",
			date:      "2026-02-10",
			intensity: 4,
			reasons:   []string{"Kambala (Buffalo Racing) season", "Winter season (peak tourism)"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := DailyIntensity(test.district, mustParse(t, test.date))
			assert.Equal(t, test.date, got.Date)
			assert.Equal(t, test.intensity, got.Intensity)
			assert.Equal(t, test.reasons, got.Reasons)
			assert.Equal(t, ColorForIntensity(test.intensity), got.Color)
		})
	}
}

func TestDailyIntensity_AppliesEveryMatchAndClamps(t *testing.T) {
	d := mustParse(t, "2026-06-02")
	e := NewEstimator(&dataset.Dataset{
		PublicHolidays: []calendar.PublicHoliday{
			{Date: d, Name: "A"}, {Date: d, Name: "B"}, {Date: d, Name: "C"}, {Date: d, Name: "D"},
		},
	}, 0)

	got := e.DailyIntensity("Anywhere", d)

	assert.Equal(t, MAX_INTENSITY, got.Intensity)
	assert.Equal(t, []string{"A", "B", "C", "D"}, got.Reasons)
}

func TestDailyIntensity_Bounded(t *testing.T) {
	districts := []string{"", "Nowhere"}
	for _, dk := range dataset.Default().DistrictKeywords {
		districts = append(districts, dk.District)
	}

	start := mustParse(t, "2025-11-01")
	end := mustParse(t, "2027-01-31")
	for _, district := range districts {
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			got := DailyIntensity(district, d)
			if got.Intensity < BASE_INTENSITY || got.Intensity > MAX_INTENSITY {
				t.Fatalf("%q on %s: intensity %d out of [1,10]", district, got.Date, got.Intensity)
			}
		}
	}
}

func TestDailyIntensity_Idempotent(t *testing.T) {
	d := mustParse(t, "2026-10-10")
	first := DailyIntensity("Mysuru", d)
	second := DailyIntensity("Mysuru", d)
	require.Equal(t, first, second)
}

func TestColorForIntensity(t *testing.T) {
	expected := map[int]string{
		1: "#00ff41", 2: "#00ff41", 3: "#7fff00", 4: "#7fff00", 5: "#dfff00",
		6: "#ffdf00", 7: "#ffbf00", 8: "#ff8000", 9: "#ff4000", 10: "#ff0000",
	}
	for intensity, color := range expected {
		assert.Equal(t, color, ColorForIntensity(intensity), "intensity %d", intensity)
	}
}

func TestColorForLevel(t *testing.T) {
	assert.Equal(t, "#22c55e", ColorForLevel(0))
	assert.Equal(t, "#84cc16", ColorForLevel(4))
	assert.Equal(t, "#eab308", ColorForLevel(5))
	assert.Equal(t, "#f97316", ColorForLevel(8))
	assert.Equal(t, "#ef4444", ColorForLevel(9))
}
