// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dstream/benchcharts/benchtable"
	"github.com/dstream/benchcharts/profile"
	"github.com/google/go-cmp/cmp"
)

func TestFigure(t *testing.T) {
	f := New(testTable(), profile.A).plotlyFigure()

	if len(f.Data) != 3 {
		t.Fatalf("want 3 traces, got %d", len(f.Data))
	}
	hilbert := f.Data[1]
	if hilbert.Name != "Hilbert" || hilbert.Marker.Symbol != "diamond" {
		t.Errorf("trace 1 is %q with symbol %q", hilbert.Name, hilbert.Marker.Symbol)
	}
	if diff := cmp.Diff([]string{"1", "52"}, hilbert.X); diff != "" {
		t.Errorf("Hilbert x differs (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{14, 10}, hilbert.Marker.Color); diff != "" {
		t.Errorf("Hilbert colors differ (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]any{{4, "80", "Hilbert_14_80_4"}, {2, "70", "Hilbert_10_70_2"}}, hilbert.CustomData); diff != "" {
		t.Errorf("Hilbert hover data differs (-want +got):\n%s", diff)
	}
	for _, tr := range f.Data {
		if tr.Marker.ColorAxis != "coloraxis" {
			t.Errorf("%s: trace does not share the color axis", tr.Name)
		}
	}
	if f.Layout.XAxis.Type != "category" {
		t.Errorf("x axis type = %q, want category", f.Layout.XAxis.Type)
	}
	if diff := cmp.Diff([]string{"1", "30", "52"}, f.Layout.XAxis.CategoryArray); diff != "" {
		t.Errorf("category order differs (-want +got):\n%s", diff)
	}
	if f.Layout.ColorAxis.CMin != 10 || f.Layout.ColorAxis.CMax != 16 {
		t.Errorf("color axis range = [%v, %v]", f.Layout.ColorAxis.CMin, f.Layout.ColorAxis.CMax)
	}
}

func TestWriteHTML(t *testing.T) {
	var buf strings.Builder
	if err := New(testTable(), profile.B).WriteHTML(&buf); err != nil {
		t.Fatal(err)
	}
	page := buf.String()
	for _, want := range []string{
		"<title>Despeckled</title>",
		`<script src="https://cdn.plot.ly/plotly-2.27.0.min.js"></script>`,
		`<div id="chart"`,
		"var figure = ",
		`Plotly.newPlot("chart", figure.data, figure.layout`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page lacks %q:\n%s", want, page)
		}
	}

	// The figure literal must be valid JSON describing the chart.
	_, rest, _ := strings.Cut(page, "var figure = ")
	literal, _, ok := strings.Cut(rest, ";\nPlotly.newPlot")
	if !ok {
		t.Fatalf("cannot find figure literal in:\n%s", page)
	}
	var f figure
	if err := json.Unmarshal([]byte(literal), &f); err != nil {
		t.Fatalf("figure is not JSON: %v\n%s", err, literal)
	}
	if diff := cmp.Diff([]string{"1KB", "30KB", "52KB"}, f.Layout.XAxis.CategoryArray); diff != "" {
		t.Errorf("categories differ (-want +got):\n%s", diff)
	}
	if f.Layout.YAxis.Title.Text != profile.B.YLabel {
		t.Errorf("y label = %q", f.Layout.YAxis.Title.Text)
	}
}

func TestWriteHTMLEscapes(t *testing.T) {
	p := profile.A
	p.Title = "</title><script>alert(1)</script>"
	var buf strings.Builder
	if err := New(testTable(), p).WriteHTML(&buf); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "<script>alert(1)") {
		t.Errorf("title was not escaped:\n%s", buf.String())
	}
}

func TestWriteHTMLEmpty(t *testing.T) {
	var buf strings.Builder
	if err := New(benchtable.New(nil), profile.A).WriteHTML(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"data":[]`) {
		t.Errorf("want empty trace list:\n%s", buf.String())
	}
}
