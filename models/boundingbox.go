package models

// BoundingBox is the extent of a set of points plus its center. RadiusKm is
// the distance from the center to the farthest corner.
type BoundingBox struct {
	Lat      float64 `json:"lat"`
	LatMax   float64 `json:"lat_max"`
	LatMin   float64 `json:"lat_min"`
	Lng      float64 `json:"lng"`
	LngMax   float64 `json:"lng_max"`
	LngMin   float64 `json:"lng_min"`
	RadiusKm float64 `json:"radius_km"`
}
