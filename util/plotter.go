package util

import (
	"fmt"
	"io"
	"math"

	"crowd-server/models"
	"crowd-server/models/calendar"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const CHART_WIDTH = "900px"
const CHART_HEIGHT = "600px"

// Map margin around the plotted hotspots, in degrees.
const HEATMAP_PADDING_DEGREES = 0.5

type levelBand struct {
	name  string
	max   int
	color string
}

// Bands follow crowd.ColorForLevel.
var levelBands = []levelBand{
	{"Quiet (0-2)", 2, "#22c55e"},
	{"Light (3-4)", 4, "#84cc16"},
	{"Moderate (5-6)", 6, "#eab308"},
	{"Busy (7-8)", 8, "#f97316"},
	{"Packed (9-10)", 10, "#ef4444"},
}

// PlotHeatmap renders the snapshot as a longitude/latitude scatter map,
// one series per crowd band.
func PlotHeatmap(w io.Writer, snapshot *models.HeatmapSnapshot) error {
	scatter := charts.NewScatter()

	minLat, maxLat, minLng, maxLng := paddedBounds(snapshot.Bounds)
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Crowd heatmap " + snapshot.Date,
			Width:     CHART_WIDTH,
			Height:    CHART_HEIGHT,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Crowd heatmap",
			Subtitle: fmt.Sprintf("%s (%s), average level %.1f", snapshot.Date, snapshot.DayOfWeek, snapshot.AverageLevel),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Formatter: "{b}"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Longitude", Type: "value", Min: minLng, Max: maxLng}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Latitude", Type: "value", Min: minLat, Max: maxLat}),
	)

	for i, band := range levelBands {
		low := 0
		if i > 0 {
			low = levelBands[i-1].max + 1
		}
		var data []opts.ScatterData
		for _, p := range snapshot.Points {
			if p.Level < low || p.Level > band.max {
				continue
			}
			data = append(data, opts.ScatterData{
				Name:       fmt.Sprintf("%s: %d/10", p.Name, p.Level),
				Value:      []float64{p.Lng, p.Lat},
				SymbolSize: 8 + 2*p.Level,
			})
		}
		scatter.AddSeries(band.name, data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: band.color}),
		)
	}

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("failed to render heatmap chart: %w", err)
	}
	return nil
}

// PlotTripCalendar renders the per-day intensity of a trip as a line chart.
func PlotTripCalendar(w io.Writer, trip *calendar.TripCalendar) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Crowd calendar " + trip.Destination,
			Width:     CHART_WIDTH,
			Height:    CHART_HEIGHT,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Crowd calendar: %s (%s)", trip.Destination, trip.District),
			Subtitle: fmt.Sprintf("%s to %s, mean %.1f, peak %s, quietest %s",
				trip.StartDate, trip.EndDate, trip.MeanIntensity, trip.PeakDate, trip.QuietDate),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Intensity", Type: "value", Min: 0, Max: 10}),
	)

	dates := make([]string, 0, len(trip.PerDay))
	data := make([]opts.LineData, 0, len(trip.PerDay))
	for _, d := range trip.PerDay {
		dates = append(dates, d.Date)
		data = append(data, opts.LineData{Value: d.Intensity, Name: d.Date})
	}

	line.SetXAxis(dates).AddSeries("Intensity", data,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(len(data) <= 31)}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#ff8000"}),
	)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render trip calendar chart: %w", err)
	}
	return nil
}

func paddedBounds(b models.BoundingBox) (minLat, maxLat, minLng, maxLng float64) {
	pad := HEATMAP_PADDING_DEGREES
	return math.Floor(b.LatMin - pad), math.Ceil(b.LatMax + pad), math.Floor(b.LngMin - pad), math.Ceil(b.LngMax + pad)
}
