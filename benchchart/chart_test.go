// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"math"
	"strconv"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/dstream/benchcharts/benchcsv"
	"github.com/dstream/benchcharts/benchtable"
	"github.com/dstream/benchcharts/profile"
	"github.com/google/go-cmp/cmp"
)

func res(label, algo string, quant, raw, param int, avg, avgD, kb float64) *benchcsv.Result {
	return &benchcsv.Result{
		Label:            label,
		Algorithm:        algo,
		Quantization:     quant,
		RawQuality:       raw,
		RawQualityText:   strconv.Itoa(raw),
		Quality:          benchcsv.NormalizeQuality(raw),
		Parameter:        param,
		MaxErr:           avg * 10,
		AvgErr:           avg,
		AvgDespeckledErr: avgD,
		SizeKB:           kb,
	}
}

func testTable() *table.Table {
	return benchtable.SortBySize(benchtable.New([]*benchcsv.Result{
		res("Hilbert_10_70_2", "Hilbert", 10, 70, 2, 3.25, 0, 52),
		res("Morton_12_90_8", "Morton", 12, 90, 8, 0.75, 0.5, 1),
		res("Packed_16_60_6", "Packed", 16, 60, 6, 7.5, 2.25, 30),
		res("Hilbert_14_80_4", "Hilbert", 14, 80, 4, 1.5, 0.125, 1),
	}))
}

func TestNew(t *testing.T) {
	c := New(testTable(), profile.A)

	if c.Title != "PNG" || c.XLabel != "Compressed texture size" || c.YLabel != "Logarithmic mean error" {
		t.Errorf("labels: %q %q %q", c.Title, c.XLabel, c.YLabel)
	}
	if diff := cmp.Diff([]string{"Morton", "Hilbert", "Packed"}, c.Algorithms); diff != "" {
		t.Errorf("algorithms differ (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"1", "30", "52"}, c.Categories); diff != "" {
		t.Errorf("categories differ (-want +got):\n%s", diff)
	}
	if c.QuantMin != 10 || c.QuantMax != 16 {
		t.Errorf("quantization bounds = %v, %v, want 10, 16", c.QuantMin, c.QuantMax)
	}

	type summary struct {
		Label  string
		X      string
		Y      float64
		Symbol int
		Raw    string
	}
	var got []summary
	for _, p := range c.Points {
		got = append(got, summary{p.Label, p.X, p.Y, p.Symbol, p.RawQuality})
	}
	want := []summary{
		{"Morton_12_90_8", "1", 0.75, 0, "90"},
		{"Hilbert_14_80_4", "1", 1.5, 1, "80"},
		{"Packed_16_60_6", "30", 7.5, 2, "60"},
		{"Hilbert_10_70_2", "52", 3.25, 1, "70"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("points differ (-want +got):\n%s", diff)
	}

	// Quality 100 gets the largest marker and quality 0 the smallest.
	for _, p := range c.Points {
		switch p.Quality {
		case 100:
			if p.Marker != maxMarker {
				t.Errorf("%s: marker %v, want %v", p.Label, p.Marker, maxMarker)
			}
		case 0:
			if p.Marker != minMarker {
				t.Errorf("%s: marker %v, want %v", p.Label, p.Marker, minMarker)
			}
		}
	}
}

func TestNewLabelAxis(t *testing.T) {
	c := New(testTable(), profile.B)
	if diff := cmp.Diff([]string{"1KB", "30KB", "52KB"}, c.Categories); diff != "" {
		t.Errorf("categories differ (-want +got):\n%s", diff)
	}
	var ys []float64
	for _, p := range c.Points {
		ys = append(ys, p.Y)
	}
	if diff := cmp.Diff([]float64{0.5, 0.125, 2.25, 0}, ys); diff != "" {
		t.Errorf("despeckled errors differ (-want +got):\n%s", diff)
	}
}

func TestNewEmpty(t *testing.T) {
	c := New(benchtable.New(nil), profile.A)
	if len(c.Points) != 0 || len(c.Algorithms) != 0 {
		t.Errorf("want empty chart, got %+v", c)
	}
	if c.Title != "PNG" {
		t.Errorf("title = %q", c.Title)
	}
}

func TestXCategory(t *testing.T) {
	for _, test := range []struct {
		kb   float64
		axis profile.Axis
		want string
	}{
		{12.345, profile.AxisCategory, "12.345"},
		{12.345, profile.AxisLabel, "12.345KB"},
		{1, profile.AxisLabel, "1KB"},
		{0.5, profile.AxisCategory, "0.5"},
	} {
		if got := xCategory(test.kb, test.axis); got != test.want {
			t.Errorf("xCategory(%v, %v) = %q, want %q", test.kb, test.axis, got, test.want)
		}
	}
}

func TestMarkerSize(t *testing.T) {
	check := func(q, min, max, want float64) {
		t.Helper()
		if got := markerSize(q, min, max); math.Abs(got-want) > 1e-9 {
			t.Errorf("markerSize(%v, %v, %v) = %v, want %v", q, min, max, got, want)
		}
	}
	check(0, 0, 100, minMarker)
	check(100, 0, 100, maxMarker)
	check(-50, -50, 100, minMarker)
	check(50, 0, 100, math.Sqrt((minMarker*minMarker+maxMarker*maxMarker)/2))
	check(66, 66, 66, maxMarker)
	check(-50, -100, -50, minMarker)
	check(-100, -100, -50, minMarker)
	check(0, 0, 0, minMarker)
}

func TestNewLowQualities(t *testing.T) {
	// Raw qualities below 60 normalize below zero and draw smallest.
	c := New(benchtable.SortBySize(benchtable.New([]*benchcsv.Result{
		res("Hilbert_10_45_2", "Hilbert", 10, 45, 2, 3.25, 0, 52),
		res("Morton_12_30_8", "Morton", 12, 30, 8, 0.75, 0.5, 1),
	})), profile.A)
	for _, p := range c.Points {
		if p.Marker != minMarker {
			t.Errorf("%s: marker = %v, want %v", p.Label, p.Marker, minMarker)
		}
	}
}
