// Package output serializes chart descriptions for renderers and terminals.
package output

import (
	"encoding/json"

	"github.com/ukaji3/pointstrack-go/pkg/pointstrack"
	"github.com/ukaji3/pointstrack-go/pkg/pointstrack/models"
)

// ToJSON serializes a figure.
func ToJSON(fig *models.Figure, pretty bool) ([]byte, error) {
	return marshal(fig, pretty)
}

// ResultToJSON serializes a pipeline result: the figure together with the
// table and running totals it was built from.
func ResultToJSON(res *pointstrack.Result, pretty bool) ([]byte, error) {
	return marshal(res, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
