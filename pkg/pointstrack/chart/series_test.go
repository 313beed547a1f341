package chart

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/pointstrack-go/pkg/pointstrack/models"
	"github.com/ukaji3/pointstrack-go/pkg/pointstrack/standings"
)

func fixture() (models.RunningTotals, []models.PlayerRow, []string) {
	points := []models.PlayerRow{
		{Player: "Alice", Values: []float64{5, 0}},
		{Player: "Bob", Values: []float64{3, 4}},
	}
	return standings.CumulativeSums(points), points, []string{"R1", "R2"}
}

func TestBuildSeries(t *testing.T) {
	totals, points, rounds := fixture()

	traces := BuildSeries(totals, points, rounds, SeriesOptions{})
	require.Len(t, traces, 2)

	alice := traces[0]
	assert.Equal(t, models.KindSeries, alice.Kind)
	assert.Equal(t, "Alice", alice.Name)
	assert.Equal(t, []string{"R1", "R2"}, alice.X)
	assert.Equal(t, []float64{5, 5}, alice.Y)
	assert.Equal(t, "lines+markers", alice.Mode)
	assert.Equal(t, "text", alice.HoverInfo)
	assert.Equal(t, 2.0, alice.Line.Width)
	require.NotNil(t, alice.Marker)
	assert.Equal(t, 6.0, alice.Marker.Size)
	assert.Empty(t, alice.Line.Color)
	assert.Nil(t, alice.ShowLegend)

	assert.Equal(t,
		"<b>Alice Total: 5</b><br><i>R1 Points:</i> 5<br><i>Standings after Round 1:</i><br>Alice: 5<br>Bob: 3",
		alice.Text[0])
	assert.Equal(t,
		"<b>Alice Total: 5</b><br><i>R2 Points:</i> 0<br><i>Standings after Round 2:</i><br>Bob: 7<br>Alice: 5",
		alice.Text[1])
	assert.Equal(t,
		"<b>Bob Total: 7</b><br><i>R2 Points:</i> 4<br><i>Standings after Round 2:</i><br>Bob: 7<br>Alice: 5",
		traces[1].Text[1])
}

func TestBuildSeriesStyleOptions(t *testing.T) {
	totals, points, rounds := fixture()

	traces := BuildSeries(totals, points, rounds, SeriesOptions{
		LineWidth:  3,
		MarkerSize: 9,
		Palette:    []string{"#111111"},
	})

	require.Len(t, traces, 2)
	for _, tr := range traces {
		assert.Equal(t, 3.0, tr.Line.Width)
		assert.Equal(t, 9.0, tr.Marker.Size)
		// Single-color palette cycles
		assert.Equal(t, "#111111", tr.Line.Color)
		assert.Equal(t, "#111111", tr.Marker.Color)
	}
}

func TestBuildSeriesPaletteCycles(t *testing.T) {
	points := []models.PlayerRow{
		{Player: "A", Values: []float64{1}},
		{Player: "B", Values: []float64{1}},
		{Player: "C", Values: []float64{1}},
	}
	traces := BuildSeries(standings.CumulativeSums(points), points, []string{"R1"}, SeriesOptions{
		Palette: []string{"red", "blue"},
	})

	require.Len(t, traces, 3)
	assert.Equal(t, "red", traces[0].Line.Color)
	assert.Equal(t, "blue", traces[1].Line.Color)
	assert.Equal(t, "red", traces[2].Line.Color)
}

func TestBuildSeriesStandingsTieKeepsOrder(t *testing.T) {
	points := []models.PlayerRow{
		{Player: "Zed", Values: []float64{4}},
		{Player: "Amy", Values: []float64{4}},
		{Player: "Max", Values: []float64{9}},
	}
	traces := BuildSeries(standings.CumulativeSums(points), points, []string{"R1"}, SeriesOptions{})

	require.NotEmpty(t, traces)
	assert.True(t, strings.HasSuffix(traces[0].Text[0], "<br>Max: 9<br>Zed: 4<br>Amy: 4"), traces[0].Text[0])
}

func TestBuildSeriesBoundaries(t *testing.T) {
	totals, points, rounds := fixture()

	traces := BuildSeries(totals, points, rounds, SeriesOptions{
		Boundaries: []models.Boundary{
			{Round: "R2", Label: "Phase 2"},
			{Round: "Nowhere"},
		},
	})

	require.Len(t, traces, 4)
	phase := traces[2]
	assert.Equal(t, models.KindBoundary, phase.Kind)
	assert.Equal(t, "Phase 2", phase.Name)
	assert.Equal(t, []string{"R2", "R2"}, phase.X)
	assert.Equal(t, []float64{0, 7}, phase.Y)

	missing := traces[3]
	assert.Equal(t, "Nowhere", missing.Name)
	assert.Equal(t, []string{"Nowhere", "Nowhere"}, missing.X)
	assert.Equal(t, []float64{0, 7}, missing.Y)
}

func TestBuildSeriesEmpty(t *testing.T) {
	traces := BuildSeries(nil, nil, nil, SeriesOptions{
		Boundaries: []models.Boundary{{Round: "R1"}},
	})

	require.Len(t, traces, 1)
	assert.Equal(t, []float64{0, 0}, traces[0].Y)

	assert.Empty(t, BuildSeries(nil, nil, nil, SeriesOptions{}))
}

func TestBuildSeriesDuplicateNames(t *testing.T) {
	points := []models.PlayerRow{
		{Player: "Alice", Values: []float64{1}},
		{Player: "Alice", Values: []float64{2}},
	}
	traces := BuildSeries(standings.CumulativeSums(points), points, []string{"R1"}, SeriesOptions{})

	require.Len(t, traces, 2)
	assert.Contains(t, traces[0].Text[0], "<i>R1 Points:</i> 1<br>")
	assert.Contains(t, traces[1].Text[0], "<i>R1 Points:</i> 2<br>")
}

func TestBoundaryTraces(t *testing.T) {
	traces := BoundaryTraces([]models.Boundary{{Round: "UK", Label: "Round 2"}}, 42, "")

	require.Len(t, traces, 1)
	tr := traces[0]
	assert.Equal(t, "lines", tr.Mode)
	assert.Equal(t, "none", tr.HoverInfo)
	assert.Equal(t, DefaultBoundaryColor, tr.Line.Color)
	assert.Equal(t, "dot", tr.Line.Dash)
	require.NotNil(t, tr.ShowLegend)
	assert.False(t, *tr.ShowLegend)
	assert.Nil(t, tr.Marker)
	assert.Equal(t, []float64{0, 42}, tr.Y)
}

func TestFormatNumber(t *testing.T) {
	a, b := 0.1, 0.2

	tests := []struct {
		input    float64
		expected string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{12, "12"},
		{12.5, "12.5"},
		{-3, "-3"},
		{a + b, "0.30000000000000004"},
		{1234567, "1234567"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{-2.5e22, "-2.5e+22"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{1.5e-7, "1.5e-7"},
		{1e-100, "1e-100"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatNumber(tt.input), "FormatNumber(%v)", tt.input)
	}
}
