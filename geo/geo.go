// Package geo holds the small spatial helpers shared by the heatmap and the
// in-memory geo index.
package geo

import (
	"fmt"
	"math"

	"crowd-server/models"

	"github.com/uber/h3-go/v4"
)

const EARTH_RADIUS_KM = 6371.0

// MAX_H3_RESOLUTION is the finest resolution H3 supports.
const MAX_H3_RESOLUTION = 15

// CellFor returns the H3 cell id containing the coordinate.
func CellFor(lat, lng float64, resolution int) (string, error) {
	if resolution < 0 || resolution > MAX_H3_RESOLUTION {
		return "", fmt.Errorf("h3 resolution %d out of range [0,%d]", resolution, MAX_H3_RESOLUTION)
	}
	cell := h3.LatLngToCell(h3.NewLatLng(lat, lng), resolution)
	return cell.String(), nil
}

// HaversineKm is the great-circle distance between two coordinates in kilometres.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	return EARTH_RADIUS_KM * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// BoundingBoxOf returns the extent of the given {lat, lng} pairs. An empty
// input yields the zero box.
func BoundingBoxOf(coords [][2]float64) models.BoundingBox {
	if len(coords) == 0 {
		return models.BoundingBox{}
	}
	box := models.BoundingBox{
		LatMin: coords[0][0], LatMax: coords[0][0],
		LngMin: coords[0][1], LngMax: coords[0][1],
	}
	for _, c := range coords[1:] {
		box.LatMin, box.LatMax = math.Min(box.LatMin, c[0]), math.Max(box.LatMax, c[0])
		box.LngMin, box.LngMax = math.Min(box.LngMin, c[1]), math.Max(box.LngMax, c[1])
	}
	box.Lat = (box.LatMin + box.LatMax) / 2
	box.Lng = (box.LngMin + box.LngMax) / 2
	box.RadiusKm = HaversineKm(box.Lat, box.Lng, box.LatMax, box.LngMax)
	return box
}
