// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart renders benchmark results as a scatter plot.
//
// Each result becomes one point. The x position is the compressed
// size, the y position is the error metric selected by the profile,
// the color encodes the quantization level, the marker size encodes
// the normalized JPEG quality and the marker shape encodes the
// algorithm. A Chart can be written as an interactive HTML page
// (WriteHTML) or as a static image (WriteImage).
package benchchart

import (
	"math"
	"strconv"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/dstream/benchcharts/benchtable"
	"github.com/dstream/benchcharts/profile"
	"github.com/samber/lo"
)

// Marker diameters, in points, of the lowest and highest quality.
const (
	minMarker = 4
	maxMarker = 20
)

// A Point is one result placed on the chart.
type Point struct {
	Label     string
	Algorithm string

	// X is the category of the point on the x axis.
	X      string
	SizeKB float64
	Y      float64

	Quantization int
	Quality      int
	RawQuality   string
	Parameter    int

	// Marker is the diameter of the point in points, derived from
	// Quality.
	Marker float64
	// Symbol indexes the marker shape of the point's algorithm.
	Symbol int
}

// A Chart is a scatter plot of one table.
type Chart struct {
	Title  string
	XLabel string
	YLabel string

	Points []Point

	// Algorithms lists the distinct algorithms in order of first
	// appearance. The Symbol of a point indexes this slice.
	Algorithms []string
	// Categories lists the distinct x values in order of first
	// appearance, which is ascending size for a sorted table.
	Categories []string

	// QuantMin and QuantMax bound the quantization levels, for the
	// color scale.
	QuantMin, QuantMax float64
}

// New lays out the rows of t using the axis, metric and labels of p.
// t is expected to be sorted by size.
func New(t *table.Table, p profile.Profile) *Chart {
	c := &Chart{
		Title:  p.Title,
		XLabel: p.XLabel,
		YLabel: p.YLabel,
	}
	if t.Len() == 0 {
		return c
	}

	var (
		labels    = t.MustColumn(benchtable.Label).([]string)
		algos     = t.MustColumn(benchtable.Algorithm).([]string)
		sizes     = t.MustColumn(benchtable.Size).([]float64)
		ys        = t.MustColumn(p.Metric.Column()).([]float64)
		quants    = t.MustColumn(benchtable.Quantization).([]int)
		qualities = t.MustColumn(benchtable.Quality).([]int)
		rawTexts  = t.MustColumn(benchtable.RawQualityText).([]string)
		params    = t.MustColumn(benchtable.Parameter).([]int)
	)

	c.Algorithms = lo.Uniq(algos)
	symbols := make(map[string]int, len(c.Algorithms))
	for i, a := range c.Algorithms {
		symbols[a] = i
	}

	xs := lo.Map(sizes, func(kb float64, _ int) string {
		return xCategory(kb, p.XAxis)
	})
	c.Categories = slice.Nub(xs).([]string)

	c.QuantMin, c.QuantMax = stats.Bounds(toFloats(quants))
	qmin, qmax := stats.Bounds(toFloats(qualities))

	c.Points = make([]Point, t.Len())
	for i := range c.Points {
		c.Points[i] = Point{
			Label:        labels[i],
			Algorithm:    algos[i],
			X:            xs[i],
			SizeKB:       sizes[i],
			Y:            ys[i],
			Quantization: quants[i],
			Quality:      qualities[i],
			RawQuality:   rawTexts[i],
			Parameter:    params[i],
			Marker:       markerSize(float64(qualities[i]), qmin, qmax),
			Symbol:       symbols[algos[i]],
		}
	}
	return c
}

// xCategory formats a size in kilobytes as an x-axis category.
func xCategory(kb float64, axis profile.Axis) string {
	s := strconv.FormatFloat(kb, 'f', -1, 64)
	if axis == profile.AxisLabel {
		s += "KB"
	}
	return s
}

// markerSize maps quality q in [min, max] to a marker diameter whose
// area grows linearly with q. Qualities at or below zero draw as the
// smallest marker. If every quality is the same positive value, all
// markers are the largest size.
func markerSize(q, min, max float64) float64 {
	if min < 0 {
		min = 0
	}
	if max <= 0 {
		return minMarker
	}
	if q < min {
		q = min
	}
	if max <= min {
		return maxMarker
	}
	frac := (q - min) / (max - min)
	area := minMarker*minMarker + frac*(maxMarker*maxMarker-minMarker*minMarker)
	return math.Sqrt(area)
}

func toFloats(xs []int) []float64 {
	var out []float64
	slice.Convert(&out, xs)
	return out
}
