package standings

import (
	"sort"

	"github.com/ukaji3/pointstrack-go/pkg/pointstrack/models"
)

// At ranks every player by cumulative total after round (0-based),
// highest first. Ties keep the order of totals. Players with no value
// at that round rank with 0.
func At(totals models.RunningTotals, round int) []models.Standing {
	out := make([]models.Standing, 0, len(totals))
	for _, pt := range totals {
		var v float64
		if round >= 0 && round < len(pt.Totals) {
			v = pt.Totals[round]
		}
		out = append(out, models.Standing{Player: pt.Player, Total: v})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	return out
}

// Final ranks players after the last round any of them has a total for.
func Final(totals models.RunningTotals) []models.Standing {
	last := -1
	for _, pt := range totals {
		if n := len(pt.Totals) - 1; n > last {
			last = n
		}
	}
	return At(totals, last)
}

// YMax returns the largest cumulative total, or 0 when there is none.
func YMax(totals models.RunningTotals) float64 {
	var (
		top   float64
		found bool
	)
	for _, pt := range totals {
		for _, v := range pt.Totals {
			if !found || v > top {
				top = v
				found = true
			}
		}
	}
	return top
}
