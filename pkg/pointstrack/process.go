package pointstrack

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/pointstrack-go/pkg/pointstrack/chart"
	"github.com/ukaji3/pointstrack-go/pkg/pointstrack/models"
	"github.com/ukaji3/pointstrack-go/pkg/pointstrack/parser"
	"github.com/ukaji3/pointstrack-go/pkg/pointstrack/standings"
)

// Result holds the chart description together with the intermediate data
// it was built from.
type Result struct {
	Figure models.Figure        `json:"figure"`
	Table  models.Table         `json:"table"`
	Totals models.RunningTotals `json:"running_totals"`
}

// Standings returns the ranking after the last round.
func (r *Result) Standings() []models.Standing {
	return standings.Final(r.Totals)
}

// Process runs the full pipeline over delimited text. It never fails:
// malformed cells become 0 and blank rows are skipped.
func Process(text string, opts Options) *Result {
	return ProcessRows(parser.Tokenize(text, opts.Delimiter), opts)
}

// ProcessRows runs the pipeline over already tokenized rows.
func ProcessRows(rows []models.Row, opts Options) *Result {
	log := opts.logger()

	table := parser.TableFromRows(rows)
	totals := standings.CumulativeSums(table.Rows)
	theme := opts.ResolvedTheme()

	log.Debug().
		Int("rows", len(rows)).
		Int("players", len(table.Players)).
		Int("rounds", len(table.Rounds)).
		Str("theme", string(theme)).
		Msg("points table extracted")

	traces := chart.BuildSeries(totals, table.Rows, table.Rounds, chart.SeriesOptions{
		LineWidth:     opts.LineWidth,
		MarkerSize:    opts.MarkerSize,
		Palette:       opts.ResolvedPalette(),
		Boundaries:    opts.Boundaries,
		BoundaryColor: opts.ResolvedBoundaryColor(),
	})

	fig := chart.AssembleChart(traces, opts.Title, chart.LayoutOptions{
		Theme:             theme,
		HoverMode:         opts.HoverMode,
		LegendOrientation: opts.LegendOrientation,
		LegendPosition:    opts.LegendPosition,
		Margin:            opts.Margin,
	})

	log.Debug().Int("traces", len(fig.Data)).Msg("chart assembled")

	return &Result{
		Figure: fig,
		Table:  table,
		Totals: totals,
	}
}

// ProcessFile reads a points sheet from path and runs the pipeline.
// The reader is chosen by extension: .csv and .txt use opts.Delimiter,
// .tsv uses tabs, and .xlsx reads opts.Sheet.
func ProcessFile(path string, opts Options) (*Result, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, NewProcessError(path, "open", ErrFileNotFound)
	}

	var rows []models.Row
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt", ".tsv":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, NewProcessError(path, "read", err)
		}
		delim := opts.Delimiter
		if ext == ".tsv" {
			delim = '\t'
		}
		rows = parser.Tokenize(string(data), delim)
	case ".xlsx", ".xlsm":
		var err error
		rows, err = parser.ReadWorkbook(path, opts.Sheet)
		if err != nil {
			return nil, NewProcessError(path, "workbook", err)
		}
	default:
		return nil, NewProcessError(path, "open", ErrUnsupportedFormat)
	}

	opts.logger().Debug().Str("path", path).Int("rows", len(rows)).Msg("input loaded")
	return ProcessRows(rows, opts), nil
}
