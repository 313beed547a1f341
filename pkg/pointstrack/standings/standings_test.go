package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/pointstrack-go/pkg/pointstrack/models"
)

func TestCumulativeSums(t *testing.T) {
	rows := []models.PlayerRow{
		{Player: "Alice", Values: []float64{5, 0}},
		{Player: "Bob", Values: []float64{3, 4}},
	}

	totals := CumulativeSums(rows)

	require.Len(t, totals, 2)
	assert.Equal(t, models.PlayerTotals{Player: "Alice", Totals: []float64{5, 5}}, totals[0])
	assert.Equal(t, models.PlayerTotals{Player: "Bob", Totals: []float64{3, 7}}, totals[1])
}

func TestCumulativeSumsEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		rows     []models.PlayerRow
		expected models.RunningTotals
	}{
		{
			name:     "empty input",
			rows:     nil,
			expected: models.RunningTotals{},
		},
		{
			name:     "no rounds",
			rows:     []models.PlayerRow{{Player: "Alice", Values: []float64{}}},
			expected: models.RunningTotals{{Player: "Alice", Totals: []float64{}}},
		},
		{
			name:     "negative values",
			rows:     []models.PlayerRow{{Player: "Alice", Values: []float64{10, -3, -8}}},
			expected: models.RunningTotals{{Player: "Alice", Totals: []float64{10, 7, -1}}},
		},
		{
			name: "duplicate names tracked independently",
			rows: []models.PlayerRow{
				{Player: "Alice", Values: []float64{1, 1}},
				{Player: "Alice", Values: []float64{2, 2}},
			},
			expected: models.RunningTotals{
				{Player: "Alice", Totals: []float64{1, 2}},
				{Player: "Alice", Totals: []float64{2, 4}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CumulativeSums(tt.rows))
		})
	}
}

func TestAtOrdersDescendingWithStableTies(t *testing.T) {
	totals := models.RunningTotals{
		{Player: "Alice", Totals: []float64{5, 9}},
		{Player: "Bob", Totals: []float64{7, 9}},
		{Player: "Carol", Totals: []float64{7}},
	}

	assert.Equal(t, []models.Standing{
		{Player: "Bob", Total: 7},
		{Player: "Carol", Total: 7},
		{Player: "Alice", Total: 5},
	}, At(totals, 0))

	// Carol has no second round and ranks with 0
	assert.Equal(t, []models.Standing{
		{Player: "Alice", Total: 9},
		{Player: "Bob", Total: 9},
		{Player: "Carol", Total: 0},
	}, At(totals, 1))
}

func TestFinal(t *testing.T) {
	totals := models.RunningTotals{
		{Player: "Alice", Totals: []float64{5, 5}},
		{Player: "Bob", Totals: []float64{3, 7}},
	}

	final := Final(totals)
	require.Len(t, final, 2)
	assert.Equal(t, "Bob", final[0].Player)
	assert.Equal(t, 7.0, final[0].Total)

	assert.Empty(t, Final(nil))
}

func TestYMax(t *testing.T) {
	assert.Equal(t, 0.0, YMax(nil))
	assert.Equal(t, 0.0, YMax(models.RunningTotals{{Player: "A", Totals: []float64{}}}))
	assert.Equal(t, 12.0, YMax(models.RunningTotals{
		{Player: "A", Totals: []float64{3, 12}},
		{Player: "B", Totals: []float64{4, 8}},
	}))
	assert.Equal(t, -2.0, YMax(models.RunningTotals{{Player: "A", Totals: []float64{-5, -2}}}))
}
