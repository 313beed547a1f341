package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ukaji3/pointstrack-go/internal/config"
	"github.com/ukaji3/pointstrack-go/pkg/pointstrack"
	"github.com/ukaji3/pointstrack-go/pkg/pointstrack/models"
	"github.com/ukaji3/pointstrack-go/pkg/pointstrack/output"
)

// flags holds command-line values. Only flags the user set override the
// loaded configuration.
type flags struct {
	configPath string
	outputPath string

	format            string
	pretty            bool
	delimiter         string
	sheet             string
	title             string
	theme             string
	lineWidth         float64
	markerSize        float64
	boundaries        []string
	hoverMode         string
	legendOrientation string
	legendPosition    string
	palette           []string
	logLevel          string
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "pointstrack [input.csv|input.tsv|input.xlsx|-]",
		Short: "Chart cumulative standings from a per-round points sheet",
		Long: `pointstrack reads a points sheet (rounds as columns, players as rows),
computes running totals, and writes a chart description as JSON, a
standalone HTML page, or a plain-text standings table.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args[0])
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "YAML config file")
	fs.StringVarP(&f.outputPath, "output", "o", "", "Output file path (default: stdout)")
	fs.StringVar(&f.format, "format", config.FormatJSON, "Output format: json, html, standings, result")
	fs.BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")
	fs.StringVar(&f.delimiter, "delimiter", ",", `Field delimiter for text input ("tab" for tabs)`)
	fs.StringVar(&f.sheet, "sheet", "", "Worksheet name for xlsx input (default: first sheet)")
	fs.StringVar(&f.title, "title", "", "Chart title")
	fs.StringVar(&f.theme, "theme", "", "Color theme: light, dark (default: dark)")
	fs.Float64Var(&f.lineWidth, "line-width", 2, "Series line width")
	fs.Float64Var(&f.markerSize, "marker-size", 6, "Series marker size")
	fs.StringArrayVar(&f.boundaries, "boundary", nil, `Boundary marker as "round=label" (repeatable)`)
	fs.StringVar(&f.hoverMode, "hovermode", "closest", "Renderer hover mode")
	fs.StringVar(&f.legendOrientation, "legend-orientation", "", "Legend orientation: v, h")
	fs.StringVar(&f.legendPosition, "legend-position", "", "Legend position: right, bottom")
	fs.StringSliceVar(&f.palette, "palette", nil, "Comma-separated series colors")
	fs.StringVar(&f.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	return cmd
}

func run(cmd *cobra.Command, f *flags, input string) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if err := f.apply(cmd.Flags(), cfg); err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger := log.Logger.Level(level)

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	opts.Logger = &logger

	logger.Info().Str("input", input).Str("format", cfg.Format).Msg("processing points sheet")

	res, err := process(cmd.InOrStdin(), input, opts)
	if err != nil {
		return fmt.Errorf("processing failed: %w", err)
	}

	var buf bytes.Buffer
	if err := render(&buf, res, cfg); err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if f.outputPath == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	if dir := filepath.Dir(f.outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(f.outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info().Str("path", f.outputPath).Int("players", len(res.Table.Players)).Msg("chart written")
	return nil
}

// apply overrides cfg with every flag set on the command line.
func (f *flags) apply(fs *pflag.FlagSet, cfg *config.Config) error {
	set := func(name string, fn func()) {
		if fs.Changed(name) {
			fn()
		}
	}

	set("format", func() { cfg.Format = f.format })
	set("pretty", func() { cfg.Pretty = f.pretty })
	set("delimiter", func() { cfg.Delimiter = f.delimiter })
	set("sheet", func() { cfg.Sheet = f.sheet })
	set("title", func() { cfg.Title = f.title })
	set("theme", func() { cfg.Theme = f.theme })
	set("line-width", func() { cfg.LineWidth = f.lineWidth })
	set("marker-size", func() { cfg.MarkerSize = f.markerSize })
	set("hovermode", func() { cfg.HoverMode = f.hoverMode })
	set("legend-orientation", func() { cfg.LegendOrientation = f.legendOrientation })
	set("legend-position", func() { cfg.LegendPosition = f.legendPosition })
	set("palette", func() { cfg.Palette = f.palette })
	set("log-level", func() { cfg.LogLevel = f.logLevel })

	if fs.Changed("boundary") {
		boundaries := make([]models.Boundary, 0, len(f.boundaries))
		for _, s := range f.boundaries {
			b, err := config.ParseBoundary(s)
			if err != nil {
				return err
			}
			boundaries = append(boundaries, b)
		}
		cfg.Boundaries = boundaries
	}

	return cfg.Validate()
}

// process reads text from stdin when input is "-", otherwise from a file.
func process(stdin io.Reader, input string, opts pointstrack.Options) (*pointstrack.Result, error) {
	if input != "-" {
		return pointstrack.ProcessFile(input, opts)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, err
	}
	return pointstrack.Process(string(data), opts), nil
}

func render(w io.Writer, res *pointstrack.Result, cfg *config.Config) error {
	switch cfg.Format {
	case config.FormatHTML:
		return output.WriteHTML(w, &res.Figure)
	case config.FormatStandings:
		return output.WriteStandings(w, res.Standings())
	}

	var (
		data []byte
		err  error
	)
	if cfg.Format == config.FormatResult {
		data, err = output.ResultToJSON(res, cfg.Pretty)
	} else {
		data, err = output.ToJSON(&res.Figure, cfg.Pretty)
	}
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
