package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/pointstrack-go/pkg/pointstrack/models"
)

// ExtractTable tokenizes text and interprets it as a points table.
func ExtractTable(text string, delimiter rune) models.Table {
	return TableFromRows(Tokenize(text, delimiter))
}

// TableFromRows interprets the first row as round labels and every further
// row as one participant's per-round points.
//
// The corner cell of the header is ignored. Blank round labels become
// "Round N" and blank player names become "Player N", where N is the row
// index. Rows whose cells are all blank are skipped.
func TableFromRows(rows []models.Row) models.Table {
	table := models.Table{
		Rounds:  []string{},
		Players: []string{},
		Rows:    []models.PlayerRow{},
	}
	if len(rows) == 0 {
		return table
	}

	header := rows[0]
	for i := 1; i < len(header); i++ {
		label := strings.TrimSpace(header[i])
		if label == "" {
			label = fmt.Sprintf("Round %d", i)
		}
		table.Rounds = append(table.Rounds, label)
	}

	for r := 1; r < len(rows); r++ {
		row := rows[r]
		if isBlankRow(row) {
			continue
		}

		name := strings.TrimSpace(row[0])
		if name == "" {
			name = fmt.Sprintf("Player %d", r)
		}

		values := make([]float64, 0, len(table.Rounds))
		for c := 1; c < len(header); c++ {
			var cell string
			if c < len(row) {
				cell = row[c]
			}
			values = append(values, parsePoints(cell))
		}

		table.Players = append(table.Players, name)
		table.Rows = append(table.Rows, models.PlayerRow{Player: name, Values: values})
	}

	return table
}

// isBlankRow reports whether every cell in row is empty after trimming.
func isBlankRow(row models.Row) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parsePoints converts a cell to a number.
// Thousands separators are stripped; anything unparseable or non-finite is 0.
func parsePoints(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
