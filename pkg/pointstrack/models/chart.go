package models

// TraceKind distinguishes data series from boundary markers.
type TraceKind int

const (
	// KindSeries is a participant's cumulative score line.
	KindSeries TraceKind = iota
	// KindBoundary is a vertical reference line between phases.
	KindBoundary
)

// Line holds line styling for a trace.
type Line struct {
	Width float64 `json:"width,omitempty"`
	Color string  `json:"color,omitempty"`
	Dash  string  `json:"dash,omitempty"`
}

// Marker holds point styling for a trace.
type Marker struct {
	Size  float64 `json:"size,omitempty"`
	Color string  `json:"color,omitempty"`
}

// Trace is a single renderable series.
type Trace struct {
	// Kind is not serialized; the renderer tells markers apart by their style.
	Kind TraceKind `json:"-"`
	// X holds round labels.
	X []string `json:"x"`
	// Y holds cumulative totals (or [0, yMax] for boundary markers).
	Y []float64 `json:"y"`
	// Mode is the renderer draw mode, e.g. "lines+markers".
	Mode string `json:"mode"`
	// Name is the legend entry.
	Name string `json:"name"`
	// Text is the per-point hover annotation.
	Text []string `json:"text,omitempty"`
	// HoverInfo selects what the renderer shows on hover.
	HoverInfo string  `json:"hoverinfo"`
	Line      Line    `json:"line"`
	Marker    *Marker `json:"marker,omitempty"`
	// ShowLegend is nil for the renderer default.
	ShowLegend *bool `json:"showlegend,omitempty"`
}

// Boundary requests a vertical marker at a round.
type Boundary struct {
	// Round is the x-axis label the marker is drawn at.
	Round string `json:"round" yaml:"round" validate:"required"`
	// Label is the marker's display name. Defaults to Round.
	Label string `json:"label,omitempty" yaml:"label"`
}

// Font sets the global font color.
type Font struct {
	Color string `json:"color"`
}

// Axis describes one chart axis.
type Axis struct {
	Title         string `json:"title"`
	TickAngle     *int   `json:"tickangle,omitempty"`
	GridColor     string `json:"gridcolor,omitempty"`
	ZeroLineColor string `json:"zerolinecolor,omitempty"`
	Color         string `json:"color,omitempty"`
}

// Legend describes legend placement. Position fields are nil unless anchored.
type Legend struct {
	Orientation string   `json:"orientation"`
	X           *float64 `json:"x,omitempty"`
	Y           *float64 `json:"y,omitempty"`
	XAnchor     string   `json:"xanchor,omitempty"`
}

// Margin holds plot margins in pixels.
type Margin struct {
	T int `json:"t" yaml:"t"`
	R int `json:"r" yaml:"r"`
	B int `json:"b" yaml:"b"`
	L int `json:"l" yaml:"l"`
}

// Layout is the non-data part of a chart description.
type Layout struct {
	Title        string `json:"title"`
	PaperBGColor string `json:"paper_bgcolor"`
	PlotBGColor  string `json:"plot_bgcolor"`
	Font         Font   `json:"font"`
	XAxis        Axis   `json:"xaxis"`
	YAxis        Axis   `json:"yaxis"`
	HoverMode    string `json:"hovermode"`
	Legend       Legend `json:"legend"`
	Margin       Margin `json:"margin"`
}

// Figure is the complete chart description handed to the renderer.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}
