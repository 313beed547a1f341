// Package chart assembles renderer-ready chart descriptions from running totals.
package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/pointstrack-go/pkg/pointstrack/models"
	"github.com/ukaji3/pointstrack-go/pkg/pointstrack/standings"
)

const (
	// DefaultLineWidth is used when SeriesOptions.LineWidth is not positive.
	DefaultLineWidth = 2
	// DefaultMarkerSize is used when SeriesOptions.MarkerSize is not positive.
	DefaultMarkerSize = 6
)

// SeriesOptions controls per-series styling and boundary markers.
type SeriesOptions struct {
	LineWidth  float64
	MarkerSize float64
	// Palette colors series by index, cycling when shorter than the player
	// count. Series are left uncolored when empty.
	Palette []string
	// Boundaries are drawn after all series.
	Boundaries []models.Boundary
	// BoundaryColor defaults to DefaultBoundaryColor.
	BoundaryColor string
}

// BuildSeries creates one cumulative line per entry of totals, followed by
// the requested boundary markers.
//
// points supplies the raw per-round values shown in hover text. It is
// matched to totals by position when the names line up, and by name
// otherwise.
func BuildSeries(totals models.RunningTotals, points []models.PlayerRow, rounds []string, opts SeriesOptions) []models.Trace {
	lineWidth := opts.LineWidth
	if lineWidth <= 0 {
		lineWidth = DefaultLineWidth
	}
	markerSize := opts.MarkerSize
	if markerSize <= 0 {
		markerSize = DefaultMarkerSize
	}

	// Standings are shared by every player's hover text at the same round.
	snapshots := make([]string, len(rounds))
	for i := range rounds {
		snapshots[i] = standingsText(standings.At(totals, i))
	}

	traces := make([]models.Trace, 0, len(totals)+len(opts.Boundaries))
	for idx, pt := range totals {
		raw := rawValues(points, idx, pt.Player)

		n := min(len(rounds), len(pt.Totals))
		trace := models.Trace{
			Kind:      models.KindSeries,
			X:         rounds[:n:n],
			Y:         pt.Totals[:n:n],
			Mode:      "lines+markers",
			Name:      pt.Player,
			Text:      make([]string, n),
			HoverInfo: "text",
			Line:      models.Line{Width: lineWidth},
			Marker:    &models.Marker{Size: markerSize},
		}

		for i := 0; i < n; i++ {
			var roundPts float64
			if i < len(raw) {
				roundPts = raw[i]
			}
			trace.Text[i] = hoverText(pt.Player, pt.Totals[i], rounds[i], roundPts, i, snapshots[i])
		}

		if len(opts.Palette) > 0 {
			color := opts.Palette[idx%len(opts.Palette)]
			trace.Line.Color = color
			trace.Marker.Color = color
		}

		traces = append(traces, trace)
	}

	traces = append(traces, BoundaryTraces(opts.Boundaries, standings.YMax(totals), opts.BoundaryColor)...)
	return traces
}

// rawValues finds the per-round values for the idx-th series.
func rawValues(points []models.PlayerRow, idx int, player string) []float64 {
	if idx < len(points) && points[idx].Player == player {
		return points[idx].Values
	}
	for i := len(points) - 1; i >= 0; i-- {
		if points[i].Player == player {
			return points[i].Values
		}
	}
	return nil
}

// hoverText renders the annotation for one point. The renderer reads <b>, <i>
// and <br> as emphasis and line breaks.
func hoverText(player string, total float64, round string, roundPts float64, i int, snapshot string) string {
	return fmt.Sprintf("<b>%s Total: %s</b><br><i>%s Points:</i> %s<br><i>Standings after Round %d:</i><br>%s",
		player, FormatNumber(total), round, FormatNumber(roundPts), i+1, snapshot)
}

func standingsText(ranked []models.Standing) string {
	lines := make([]string, len(ranked))
	for i, s := range ranked {
		lines[i] = s.Player + ": " + FormatNumber(s.Total)
	}
	return strings.Join(lines, "<br>")
}

// FormatNumber prints v the way the renderer's hover text expects: the
// shortest exact decimal (12, 12.5, -3), switching to exponent form at
// 1e21 and below 1e-6 (1e+21, 1.5e-7).
func FormatNumber(v float64) string {
	switch {
	case v == 0:
		// Avoid "-0"
		return "0"
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	if abs := math.Abs(v); abs >= 1e21 || abs < 1e-6 {
		mant, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
