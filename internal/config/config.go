// Package config loads pointstrack CLI settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/pointstrack-go/pkg/pointstrack"
	"github.com/ukaji3/pointstrack-go/pkg/pointstrack/models"
)

// EnvPrefix prefixes every environment variable, e.g. POINTSTRACK_THEME.
const EnvPrefix = "POINTSTRACK"

// Output formats.
const (
	FormatJSON      = "json"
	FormatHTML      = "html"
	FormatStandings = "standings"
	FormatResult    = "result"
)

var validate = newValidator()

// Config represents the complete CLI configuration.
type Config struct {
	Delimiter  string  `yaml:"delimiter" envconfig:"DELIMITER" validate:"delimiter"`
	Sheet      string  `yaml:"sheet" envconfig:"SHEET"`
	Title      string  `yaml:"title" envconfig:"TITLE"`
	Theme      string  `yaml:"theme" envconfig:"THEME" validate:"omitempty,oneof=light dark"`
	LineWidth  float64 `yaml:"line_width" envconfig:"LINE_WIDTH" validate:"gte=0"`
	MarkerSize float64 `yaml:"marker_size" envconfig:"MARKER_SIZE" validate:"gte=0"`
	HoverMode  string  `yaml:"hovermode" envconfig:"HOVERMODE"`

	LegendOrientation string `yaml:"legend_orientation" envconfig:"LEGEND_ORIENTATION" validate:"omitempty,oneof=v h"`
	LegendPosition    string `yaml:"legend_position" envconfig:"LEGEND_POSITION" validate:"omitempty,oneof=right bottom"`

	Palette       []string `yaml:"palette" envconfig:"PALETTE"`
	BoundaryColor string   `yaml:"boundary_color" envconfig:"BOUNDARY_COLOR"`

	// Structured values are only read from the file.
	Boundaries []models.Boundary `yaml:"boundaries" ignored:"true" validate:"dive"`
	Margin     *models.Margin    `yaml:"margin" ignored:"true"`

	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json html standings result"`
	Pretty   bool   `yaml:"pretty" envconfig:"PRETTY"`
	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	defaults := pointstrack.DefaultOptions()
	return &Config{
		Delimiter:  ",",
		LineWidth:  defaults.LineWidth,
		MarkerSize: defaults.MarkerSize,
		HoverMode:  defaults.HoverMode,
		Format:     FormatJSON,
		LogLevel:   "warn",
	}
}

// Load reads the YAML file at path, when given, over the defaults and then
// applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks enumerated and bounded values.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, errors.New(formatValidationError(fe)))
	}
	return errors.Join(errs...)
}

// Options converts the configuration to pipeline options.
func (c *Config) Options() (pointstrack.Options, error) {
	delim, err := parseDelimiter(c.Delimiter)
	if err != nil {
		return pointstrack.Options{}, err
	}

	return pointstrack.Options{
		Delimiter:         delim,
		Sheet:             c.Sheet,
		Title:             c.Title,
		LineWidth:         c.LineWidth,
		MarkerSize:        c.MarkerSize,
		Boundaries:        c.Boundaries,
		BoundaryColor:     c.BoundaryColor,
		HoverMode:         c.HoverMode,
		LegendOrientation: c.LegendOrientation,
		LegendPosition:    c.LegendPosition,
		Margin:            c.Margin,
		Theme:             models.Theme(c.Theme),
		Palette:           c.Palette,
	}, nil
}

// ParseBoundary parses "round=label" or a bare "round".
func ParseBoundary(s string) (models.Boundary, error) {
	round, label, _ := strings.Cut(s, "=")
	round = strings.TrimSpace(round)
	if round == "" {
		return models.Boundary{}, fmt.Errorf("invalid boundary %q: empty round", s)
	}
	return models.Boundary{Round: round, Label: strings.TrimSpace(label)}, nil
}

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterValidation("delimiter", isDelimiter)

	// Use YAML tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

func isDelimiter(fl validator.FieldLevel) bool {
	_, err := parseDelimiter(fl.Field().String())
	return err == nil
}

// formatValidationError formats validation error messages
func formatValidationError(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s (got %q)", field, strings.ReplaceAll(param, " ", ", "), fe.Value())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "delimiter":
		return fmt.Sprintf("%s must be a single character or \"tab\" (got %q)", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// parseDelimiter accepts a single character or the names "tab" and "\t".
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return ',', nil
	case "tab", `\t`:
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("invalid delimiter %q (must be a single character)", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
