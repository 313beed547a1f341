package output

import (
	"encoding/json"
	"html/template"
	"io"

	"github.com/ukaji3/pointstrack-go/pkg/pointstrack/models"
)

// PlotlyCDN is the renderer script the page loads.
const PlotlyCDN = "https://cdn.plot.ly/plotly-2.35.2.min.js"

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.Script}}"></script>
<style>html,body{margin:0;height:100%;background:{{.Background}}}#chart{width:100%;height:100%}</style>
</head>
<body>
<div id="chart"></div>
<script>
var figure = {{.Figure}};
Plotly.newPlot("chart", figure.data, figure.layout, {responsive: true});
</script>
</body>
</html>
`))

type page struct {
	Title      string
	Script     string
	Background template.CSS
	Figure     template.JS
}

// WriteHTML writes a standalone interactive page that draws fig.
func WriteHTML(w io.Writer, fig *models.Figure) error {
	data, err := json.Marshal(fig)
	if err != nil {
		return err
	}

	return pageTemplate.Execute(w, page{
		Title:      fig.Layout.Title,
		Script:     PlotlyCDN,
		Background: template.CSS(fig.Layout.PaperBGColor),
		Figure:     template.JS(data),
	})
}
