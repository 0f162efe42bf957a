// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"io"

	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
)

// plotlySymbols are the marker shapes given to algorithms in turn.
var plotlySymbols = []string{
	"circle", "diamond", "square", "x", "cross",
	"triangle-up", "triangle-down", "pentagon", "hexagon", "star",
}

var htmlTemplate = template.Must(template.New("chart").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://cdn.plot.ly/plotly-2.27.0.min.js"></script>
</head>
<body>
<div id="chart" style="width:100%;height:95vh"></div>
<script>{{.Script}}</script>
</body>
</html>
`))

type htmlData struct {
	Title  string
	Script safehtml.Script
}

// figure is the JSON form of a Plotly figure.
type figure struct {
	Data   []trace `json:"data"`
	Layout layout  `json:"layout"`
}

type trace struct {
	Type          string      `json:"type"`
	Mode          string      `json:"mode"`
	Name          string      `json:"name"`
	X             []string    `json:"x"`
	Y             []float64   `json:"y"`
	CustomData    [][]any     `json:"customdata"`
	HoverTemplate string      `json:"hovertemplate"`
	Marker        traceMarker `json:"marker"`
}

type traceMarker struct {
	Symbol    string    `json:"symbol"`
	Size      []float64 `json:"size"`
	Color     []int     `json:"color"`
	ColorAxis string    `json:"coloraxis"`
	Line      struct {
		Width int `json:"width"`
	} `json:"line"`
}

type layout struct {
	Title     title     `json:"title"`
	XAxis     axis      `json:"xaxis"`
	YAxis     axis      `json:"yaxis"`
	ColorAxis colorAxis `json:"coloraxis"`
	Legend    struct {
		Title title `json:"title"`
	} `json:"legend"`
}

type title struct {
	Text string `json:"text"`
}

type axis struct {
	Title         title    `json:"title"`
	Type          string   `json:"type,omitempty"`
	CategoryOrder string   `json:"categoryorder,omitempty"`
	CategoryArray []string `json:"categoryarray,omitempty"`
}

type colorAxis struct {
	ColorScale string  `json:"colorscale"`
	CMin       float64 `json:"cmin"`
	CMax       float64 `json:"cmax"`
	ColorBar   struct {
		Title title `json:"title"`
	} `json:"colorbar"`
}

const hoverTemplate = "%{customdata[2]}<br>" +
	"size=%{x}<br>" +
	"error=%{y}<br>" +
	"quantization=%{marker.color}<br>" +
	"Parameter=%{customdata[0]}<br>" +
	"Jpeg quality=%{customdata[1]}" +
	"<extra></extra>"

// plotlyFigure builds one trace per algorithm so that each gets its own
// legend entry and symbol. All traces share one color axis.
func (c *Chart) plotlyFigure() *figure {
	f := &figure{Data: []trace{}}
	for i, algo := range c.Algorithms {
		f.Data = append(f.Data, trace{
			Type:          "scatter",
			Mode:          "markers",
			Name:          algo,
			HoverTemplate: hoverTemplate,
		})
		f.Data[i].Marker.Symbol = plotlySymbols[i%len(plotlySymbols)]
		f.Data[i].Marker.ColorAxis = "coloraxis"
	}
	for _, p := range c.Points {
		t := &f.Data[p.Symbol]
		t.X = append(t.X, p.X)
		t.Y = append(t.Y, p.Y)
		t.CustomData = append(t.CustomData, []any{p.Parameter, p.RawQuality, p.Label})
		t.Marker.Size = append(t.Marker.Size, p.Marker)
		t.Marker.Color = append(t.Marker.Color, p.Quantization)
	}

	f.Layout.Title.Text = c.Title
	f.Layout.XAxis = axis{
		Title:         title{c.XLabel},
		Type:          "category",
		CategoryOrder: "array",
		CategoryArray: c.Categories,
	}
	f.Layout.YAxis.Title.Text = c.YLabel
	f.Layout.ColorAxis.ColorScale = "Plasma"
	f.Layout.ColorAxis.CMin = c.QuantMin
	f.Layout.ColorAxis.CMax = c.QuantMax
	f.Layout.ColorAxis.ColorBar.Title.Text = "quantization"
	f.Layout.Legend.Title.Text = "algorithm"
	return f
}

// WriteHTML writes c to w as a self-contained interactive page. The
// page loads Plotly from its CDN.
func (c *Chart) WriteHTML(w io.Writer) error {
	script, err := safehtml.ScriptFromDataAndConstant("figure", c.plotlyFigure(),
		`Plotly.newPlot("chart", figure.data, figure.layout, {responsive: true});`)
	if err != nil {
		return err
	}
	return htmlTemplate.Execute(w, htmlData{Title: c.Title, Script: script})
}
