package chart

import "github.com/ukaji3/pointstrack-go/pkg/pointstrack/models"

// DefaultBoundaryColor is used when no boundary color is given.
const DefaultBoundaryColor = "grey"

// BoundaryTraces draws a dotted vertical segment from (round, 0) to
// (round, yMax) for every boundary. The round does not have to be one of
// the chart's labels. Markers are hidden from the legend and from hover.
func BoundaryTraces(boundaries []models.Boundary, yMax float64, color string) []models.Trace {
	if color == "" {
		color = DefaultBoundaryColor
	}

	traces := make([]models.Trace, 0, len(boundaries))
	for _, b := range boundaries {
		name := b.Label
		if name == "" {
			name = b.Round
		}
		hidden := false
		traces = append(traces, models.Trace{
			Kind:       models.KindBoundary,
			X:          []string{b.Round, b.Round},
			Y:          []float64{0, yMax},
			Mode:       "lines",
			Name:       name,
			HoverInfo:  "none",
			Line:       models.Line{Color: color, Dash: "dot"},
			ShowLegend: &hidden,
		})
	}
	return traces
}
