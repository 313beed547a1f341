package models

// Theme is the two-color scheme a chart is drawn in.
type Theme string

const (
	// ThemeUnset means no preference was expressed.
	ThemeUnset Theme = ""
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t names a concrete theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}
