// Package pointstrack turns per-round score sheets into cumulative standings
// charts.
package pointstrack

import (
	"github.com/rs/zerolog"

	"github.com/ukaji3/pointstrack-go/pkg/pointstrack/chart"
	"github.com/ukaji3/pointstrack-go/pkg/pointstrack/models"
)

// Options configures the pipeline. The zero value is usable.
type Options struct {
	// Delimiter separates fields in text input. Defaults to ','.
	Delimiter rune
	// Sheet selects the worksheet for xlsx input. Defaults to the first sheet.
	Sheet string
	// Title is the chart title.
	Title string
	// LineWidth and MarkerSize style every series. Default 2 and 6.
	LineWidth  float64
	MarkerSize float64
	// Boundaries adds vertical markers at the given rounds.
	Boundaries []models.Boundary
	// BoundaryColor overrides the theme's boundary color.
	BoundaryColor string
	// HoverMode defaults to "closest".
	HoverMode string
	// LegendOrientation is "v" or "h".
	LegendOrientation string
	// LegendPosition is "right" or "bottom".
	LegendPosition string
	// Margin overrides the default plot margins.
	Margin *models.Margin
	// Theme forces a theme. It takes precedence over HostTheme.
	Theme models.Theme
	// HostTheme is the theme signalled by the environment hosting the chart.
	// If neither Theme nor HostTheme is set the chart is dark.
	HostTheme models.Theme
	// Palette overrides the theme's series colors.
	Palette []string
	// Logger receives debug events. If nil, nothing is logged.
	Logger *zerolog.Logger
}

// DefaultOptions returns default pipeline options.
func DefaultOptions() Options {
	return Options{
		Delimiter:  ',',
		LineWidth:  chart.DefaultLineWidth,
		MarkerSize: chart.DefaultMarkerSize,
		HoverMode:  chart.DefaultHoverMode,
	}
}

// ResolvedTheme returns the theme the chart will be drawn in.
func (o Options) ResolvedTheme() models.Theme {
	return chart.ResolveTheme(o.Theme, o.HostTheme)
}

// ResolvedPalette returns Palette, or the default palette of the resolved theme.
func (o Options) ResolvedPalette() []string {
	if len(o.Palette) > 0 {
		return o.Palette
	}
	return chart.Palette(o.ResolvedTheme())
}

// ResolvedBoundaryColor returns BoundaryColor, or the boundary color of the
// resolved theme.
func (o Options) ResolvedBoundaryColor() string {
	if o.BoundaryColor != "" {
		return o.BoundaryColor
	}
	return chart.ThemeColors(o.ResolvedTheme()).Boundary
}

func (o Options) logger() *zerolog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	nop := zerolog.Nop()
	return &nop
}
