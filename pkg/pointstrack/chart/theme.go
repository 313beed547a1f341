package chart

import "github.com/ukaji3/pointstrack-go/pkg/pointstrack/models"

// Colors is the background and foreground scheme of a theme.
type Colors struct {
	PaperBG  string
	PlotBG   string
	Font     string
	Grid     string
	Boundary string
}

var (
	lightColors = Colors{
		PaperBG:  "#ffffff",
		PlotBG:   "#ffffff",
		Font:     "#111827",
		Grid:     "rgba(17,24,39,0.06)",
		Boundary: "rgba(0,0,0,0.08)",
	}
	darkColors = Colors{
		PaperBG:  "#0b1220",
		PlotBG:   "#071423",
		Font:     "#e6eef8",
		Grid:     "rgba(230,238,248,0.06)",
		Boundary: "rgba(255,255,255,0.06)",
	}

	lightPalette = []string{
		"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
		"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
	}
	darkPalette = []string{
		"#63a0ff", "#ffa94d", "#7be07b", "#ff7b7b", "#bfa0ff",
		"#d6a78f", "#ff9ad8", "#bdbdbd", "#fff07a", "#57e7ef",
	}
)

// ThemeColors returns the color scheme for t. Anything but light is dark.
func ThemeColors(t models.Theme) Colors {
	if t == models.ThemeLight {
		return lightColors
	}
	return darkColors
}

// Palette returns a copy of the default series palette for t.
func Palette(t models.Theme) []string {
	src := darkPalette
	if t == models.ThemeLight {
		src = lightPalette
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// ResolveTheme picks the explicit theme when set, then the host signal,
// then dark.
func ResolveTheme(explicit, host models.Theme) models.Theme {
	switch {
	case explicit.Valid():
		return explicit
	case host.Valid():
		return host
	default:
		return models.ThemeDark
	}
}
