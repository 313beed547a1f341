package chart

import "github.com/ukaji3/pointstrack-go/pkg/pointstrack/models"

// Legend placements.
const (
	LegendRight  = "right"
	LegendBottom = "bottom"
)

const (
	// DefaultHoverMode shows the hover text of the nearest point.
	DefaultHoverMode = "closest"
	xAxisTitle       = "Round"
	yAxisTitle       = "Cumulative Scores"
	xTickAngle       = -45
)

// DefaultMargin leaves room for rotated x labels and a legend on the right.
var DefaultMargin = models.Margin{T: 80, R: 180, B: 120, L: 60}

// LayoutOptions controls the non-data part of the chart.
type LayoutOptions struct {
	Theme     models.Theme
	HoverMode string
	// LegendOrientation is "v" or "h". Setting it without
	// LegendPosition=right gives an unanchored legend.
	LegendOrientation string
	// LegendPosition is LegendRight, LegendBottom or empty.
	LegendPosition string
	// Margin overrides DefaultMargin when non-nil.
	Margin *models.Margin
}

// AssembleChart wraps traces in a themed layout.
func AssembleChart(traces []models.Trace, title string, opts LayoutOptions) models.Figure {
	colors := ThemeColors(opts.Theme)

	margin := DefaultMargin
	if opts.Margin != nil {
		margin = *opts.Margin
	}

	hoverMode := opts.HoverMode
	if hoverMode == "" {
		hoverMode = DefaultHoverMode
	}

	if traces == nil {
		traces = []models.Trace{}
	}

	tickAngle := xTickAngle
	return models.Figure{
		Data: traces,
		Layout: models.Layout{
			Title:        title,
			PaperBGColor: colors.PaperBG,
			PlotBGColor:  colors.PlotBG,
			Font:         models.Font{Color: colors.Font},
			XAxis: models.Axis{
				Title:         xAxisTitle,
				TickAngle:     &tickAngle,
				GridColor:     colors.Grid,
				ZeroLineColor: colors.Grid,
				Color:         colors.Font,
			},
			YAxis: models.Axis{
				Title:     yAxisTitle,
				GridColor: colors.Grid,
				Color:     colors.Font,
			},
			HoverMode: hoverMode,
			Legend:    legendFor(opts.LegendOrientation, opts.LegendPosition),
			Margin:    margin,
		},
	}
}

// legendFor places the legend vertically to the right of the plot unless a
// bottom position or an orientation is requested.
func legendFor(orientation, position string) models.Legend {
	if position == LegendRight || (orientation == "" && position != LegendBottom) {
		x, y := 1.02, 1.0
		return models.Legend{Orientation: "v", X: &x, Y: &y, XAnchor: "left"}
	}
	if orientation == "" {
		orientation = "h"
	}
	return models.Legend{Orientation: orientation}
}
