package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ukaji3/pointstrack-go/pkg/pointstrack/chart"
	"github.com/ukaji3/pointstrack-go/pkg/pointstrack/models"
)

// WriteStandings writes a ranked table of players and totals.
// Tied players share a rank.
func WriteStandings(w io.Writer, ranked []models.Standing) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tPLAYER\tTOTAL")

	rank := 0
	for i, s := range ranked {
		if i == 0 || s.Total != ranked[i-1].Total {
			rank = i + 1
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", rank, s.Player, chart.FormatNumber(s.Total))
	}

	return tw.Flush()
}
