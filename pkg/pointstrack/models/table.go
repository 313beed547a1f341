// Package models defines the value types that flow through the points pipeline.
package models

// Row is one tokenized line of delimited text.
type Row []string

// PlayerRow holds one participant's per-round values in table order.
type PlayerRow struct {
	// Player is the participant name from the first cell of the row.
	Player string `json:"player"`
	// Values has one entry per round; blank or non-numeric cells are 0.
	Values []float64 `json:"values"`
}

// Table is the typed view of a points sheet.
type Table struct {
	// Rounds are the header labels, excluding the corner cell.
	Rounds []string `json:"rounds"`
	// Players lists participant names in row order. Duplicates are kept.
	Players []string `json:"players"`
	// Rows is the primary representation, one entry per non-blank data row.
	Rows []PlayerRow `json:"table_rows"`
}

// PointsByPlayer returns a name-keyed view of Rows.
// When a name occurs more than once the last row wins.
func (t Table) PointsByPlayer() map[string][]float64 {
	m := make(map[string][]float64, len(t.Rows))
	for _, r := range t.Rows {
		m[r.Player] = r.Values
	}
	return m
}

// PlayerTotals holds one participant's running totals.
type PlayerTotals struct {
	Player string    `json:"player"`
	Totals []float64 `json:"totals"`
}

// RunningTotals is an ordered list of cumulative series, one per table row.
type RunningTotals []PlayerTotals

// Standing is one line of a standings snapshot.
type Standing struct {
	Player string  `json:"player"`
	Total  float64 `json:"total"`
}
