// models/heatmap.go
package models

// HeatPoint is one hotspot rendered on the heatmap.
type HeatPoint struct {
	Name       string  `json:"name"`
	District   string  `json:"district"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	CrowdLevel float64 `json:"crowd_level"`
	Level      int     `json:"level"`
	Color      string  `json:"color"`
	Cell       string  `json:"cell,omitempty"`
}

// HeatCell aggregates the hotspots that fall in the same H3 cell.
type HeatCell struct {
	Cell           string   `json:"cell"`
	Hotspots       []string `json:"hotspots"`
	MeanCrowdLevel float64  `json:"mean_crowd_level"`
}

// RankedHotspot names a hotspot together with its 0-10 level.
type RankedHotspot struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// HeatmapSnapshot is the crowd picture of every hotspot for one date.
type HeatmapSnapshot struct {
	Date         string        `json:"date"`
	DayOfWeek    string        `json:"day_of_week"`
	H3Resolution int           `json:"h3_resolution"`
	Points       []HeatPoint   `json:"points"`
	Cells        []HeatCell    `json:"cells"`
	Bounds       BoundingBox   `json:"bounds"`
	AverageLevel float64       `json:"average_level"`
	MostCrowded  RankedHotspot `json:"most_crowded"`
	LeastCrowded RankedHotspot `json:"least_crowded"`
}
