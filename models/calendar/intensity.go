package calendar

// DayIntensity is the district-scheme crowd estimate for one date.
type DayIntensity struct {
	Date      string   `json:"date"`
	Intensity int      `json:"intensity"`
	Reasons   []string `json:"reasons"`
	Color     string   `json:"color,omitempty"`
}

// TripEvent is a trip day that had at least one reason for crowding.
type TripEvent struct {
	Date      string   `json:"date"`
	Reasons   []string `json:"reasons"`
	Intensity int      `json:"intensity"`
}

// TripCalendar is the per-day intensity of a trip plus its aggregates.
type TripCalendar struct {
	Destination   string         `json:"destination"`
	District      string         `json:"district"`
	StartDate     string         `json:"start_date"`
	EndDate       string         `json:"end_date"`
	DurationDays  int            `json:"duration_days"`
	PerDay        []DayIntensity `json:"per_day"`
	MeanIntensity float64        `json:"mean_intensity"`
	PeakDate      string         `json:"peak_date"`
	QuietDate     string         `json:"quiet_date"`
	Events        []TripEvent    `json:"events"`
}
