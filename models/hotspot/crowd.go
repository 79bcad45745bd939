package hotspot

// HotspotCrowd pairs a hotspot with its estimated crowd level for one date.
// DistanceKm is only set on nearby results, where zero is a real distance.
type HotspotCrowd struct {
	Hotspot        Hotspot         `json:"hotspot"`
	Date           string          `json:"date"`
	CrowdLevel     float64         `json:"crowd_level"`
	Level          int             `json:"level"`
	Color          string          `json:"color"`
	Recommendation *Recommendation `json:"recommendation,omitempty"`
	DistanceKm     *float64        `json:"distance_km,omitempty"`
}

// Recommendation is the visiting advice attached to a crowd score.
type Recommendation struct {
	Level  string `json:"level"`
	Advice string `json:"advice"`
	Color  string `json:"color"`
}
