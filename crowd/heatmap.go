package crowd

import (
	"fmt"
	"math"
	"sort"
	"time"

	"crowd-server/geo"
	"crowd-server/models"
)

// Heatmap scores every hotspot for a date and groups them by H3 cell. A
// negative resolution skips the cell grouping.
func (e *Estimator) Heatmap(date time.Time, h3Resolution int) (*models.HeatmapSnapshot, error) {
	day := civil(date)
	snap := &models.HeatmapSnapshot{
		Date:         FormatDate(day),
		DayOfWeek:    day.Weekday().String(),
		H3Resolution: h3Resolution,
		Points:       make([]models.HeatPoint, 0, len(e.data.Hotspots)),
		Cells:        []models.HeatCell{},
	}

	type cellAcc struct {
		names []string
		total float64
	}
	cells := map[string]*cellAcc{}

	coords := make([][2]float64, 0, len(e.data.Hotspots))
	totalLevel := 0
	for i, h := range e.data.Hotspots {
		crowdLevel := CrowdLevel(h, day)
		level := LevelOf(crowdLevel)
		point := models.HeatPoint{
			Name:       h.Name,
			District:   h.District,
			Lat:        h.Lat,
			Lng:        h.Lng,
			CrowdLevel: crowdLevel,
			Level:      level,
			Color:      ColorForLevel(level),
		}

		if h3Resolution >= 0 {
			cell, err := geo.CellFor(h.Lat, h.Lng, h3Resolution)
			if err != nil {
				return nil, fmt.Errorf("heatmap cell for %q: %w", h.Name, err)
			}
			point.Cell = cell
			acc, ok := cells[cell]
			if !ok {
				acc = &cellAcc{}
				cells[cell] = acc
			}
			acc.names = append(acc.names, h.Name)
			acc.total += crowdLevel
		}

		totalLevel += level
		if i == 0 || level > snap.MostCrowded.Level {
			snap.MostCrowded = models.RankedHotspot{Name: h.Name, Level: level}
		}
		if i == 0 || level < snap.LeastCrowded.Level {
			snap.LeastCrowded = models.RankedHotspot{Name: h.Name, Level: level}
		}
		snap.Points = append(snap.Points, point)
		coords = append(coords, [2]float64{h.Lat, h.Lng})
	}
	snap.Bounds = geo.BoundingBoxOf(coords)

	if n := len(snap.Points); n > 0 {
		snap.AverageLevel = math.Round(float64(totalLevel)/float64(n)*10) / 10
	}

	for id, acc := range cells {
		snap.Cells = append(snap.Cells, models.HeatCell{
			Cell:           id,
			Hotspots:       acc.names,
			MeanCrowdLevel: acc.total / float64(len(acc.names)),
		})
	}
	sort.Slice(snap.Cells, func(i, j int) bool { return snap.Cells[i].Cell < snap.Cells[j].Cell })

	return snap, nil
}
