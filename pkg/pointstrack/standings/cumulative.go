// Package standings computes running totals and ranked snapshots of them.
package standings

import (
	"math"

	"github.com/ukaji3/pointstrack-go/pkg/pointstrack/models"
)

// CumulativeSums returns one running-total series per input row, in order.
// Non-finite values count as 0.
func CumulativeSums(rows []models.PlayerRow) models.RunningTotals {
	totals := make(models.RunningTotals, 0, len(rows))
	for _, r := range rows {
		cum := make([]float64, len(r.Values))
		var sum float64
		for i, v := range r.Values {
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				sum += v
			}
			cum[i] = sum
		}
		totals = append(totals, models.PlayerTotals{Player: r.Player, Totals: cum})
	}
	return totals
}
