package crowd

// ColorForIntensity is the calendar palette for the 1..10 district intensity.
func ColorForIntensity(intensity int) string {
	switch {
	case intensity <= 2:
		return "#00ff41"
	case intensity <= 4:
		return "#7fff00"
	case intensity <= 5:
		return "#dfff00"
	case intensity <= 6:
		return "#ffdf00"
	case intensity <= 7:
		return "#ffbf00"
	case intensity <= 8:
		return "#ff8000"
	case intensity <= 9:
		return "#ff4000"
	}
	return "#ff0000"
}

// ColorForLevel is the heatmap palette for the 0..10 hotspot level.
func ColorForLevel(level int) string {
	switch {
	case level <= 2:
		return "#22c55e"
	case level <= 4:
		return "#84cc16"
	case level <= 6:
		return "#eab308"
	case level <= 8:
		return "#f97316"
	}
	return "#ef4444"
}
