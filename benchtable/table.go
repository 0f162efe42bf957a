// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtable arranges benchmark results into a column table.
//
// Each field of a benchcsv.Result becomes one column. Operations on
// the table (sorting, filtering) permute every column together, so a
// row always describes a single result.
package benchtable

import (
	"fmt"

	"github.com/aclements/go-gg/table"
	"github.com/dstream/benchcharts/benchcsv"
)

// Column names.
const (
	Label            = "label"
	Algorithm        = "algorithm"
	Quantization     = "quantization"
	RawQuality       = "raw quality"
	RawQualityText   = "raw quality text"
	Quality          = "quality"
	Parameter        = "parameter"
	MaxErr           = "max error"
	AvgErr           = "avg error"
	MaxDespeckledErr = "max despeckled error"
	AvgDespeckledErr = "avg despeckled error"
	Size             = "size"
)

// A Metric names one of the error columns.
type Metric string

const (
	MetricMax           Metric = "max"
	MetricAvg           Metric = "avg"
	MetricMaxDespeckled Metric = "max-despeckled"
	MetricAvgDespeckled Metric = "avg-despeckled"
)

var metricCols = map[Metric]string{
	MetricMax:           MaxErr,
	MetricAvg:           AvgErr,
	MetricMaxDespeckled: MaxDespeckledErr,
	MetricAvgDespeckled: AvgDespeckledErr,
}

// Column returns the name of the column holding m.
func (m Metric) Column() string {
	return metricCols[m]
}

// ParseMetric checks that s names a Metric.
func ParseMetric(s string) (Metric, error) {
	m := Metric(s)
	if _, ok := metricCols[m]; !ok {
		return "", fmt.Errorf("unknown metric %q (want max, avg, max-despeckled or avg-despeckled)", s)
	}
	return m, nil
}

// New returns a table with one row per result, in the order given.
func New(results []*benchcsv.Result) *table.Table {
	n := len(results)
	var (
		labels    = make([]string, n)
		algos     = make([]string, n)
		quants    = make([]int, n)
		raws      = make([]int, n)
		rawTexts  = make([]string, n)
		qualities = make([]int, n)
		params    = make([]int, n)
		maxErrs   = make([]float64, n)
		avgErrs   = make([]float64, n)
		maxDErrs  = make([]float64, n)
		avgDErrs  = make([]float64, n)
		sizes     = make([]float64, n)
	)
	for i, r := range results {
		labels[i] = r.Label
		algos[i] = r.Algorithm
		quants[i] = r.Quantization
		raws[i] = r.RawQuality
		rawTexts[i] = r.RawQualityText
		qualities[i] = r.Quality
		params[i] = r.Parameter
		maxErrs[i] = r.MaxErr
		avgErrs[i] = r.AvgErr
		maxDErrs[i] = r.MaxDespeckledErr
		avgDErrs[i] = r.AvgDespeckledErr
		sizes[i] = r.SizeKB
	}

	return new(table.Builder).
		Add(Label, labels).
		Add(Algorithm, algos).
		Add(Quantization, quants).
		Add(RawQuality, raws).
		Add(RawQualityText, rawTexts).
		Add(Quality, qualities).
		Add(Parameter, params).
		Add(MaxErr, maxErrs).
		Add(AvgErr, avgErrs).
		Add(MaxDespeckledErr, maxDErrs).
		Add(AvgDespeckledErr, avgDErrs).
		Add(Size, sizes).
		Done()
}

// SortBySize returns t ordered by ascending compressed size. Rows
// with equal sizes keep their relative order.
func SortBySize(t *table.Table) *table.Table {
	return table.Flatten(table.SortBy(t, Size))
}

// Results converts t back into results, in table order. Position
// information is not preserved.
func Results(t *table.Table) []*benchcsv.Result {
	if t.Len() == 0 {
		return nil
	}
	var (
		labels    = t.MustColumn(Label).([]string)
		algos     = t.MustColumn(Algorithm).([]string)
		quants    = t.MustColumn(Quantization).([]int)
		raws      = t.MustColumn(RawQuality).([]int)
		rawTexts  = t.MustColumn(RawQualityText).([]string)
		qualities = t.MustColumn(Quality).([]int)
		params    = t.MustColumn(Parameter).([]int)
		maxErrs   = t.MustColumn(MaxErr).([]float64)
		avgErrs   = t.MustColumn(AvgErr).([]float64)
		maxDErrs  = t.MustColumn(MaxDespeckledErr).([]float64)
		avgDErrs  = t.MustColumn(AvgDespeckledErr).([]float64)
		sizes     = t.MustColumn(Size).([]float64)
	)
	out := make([]*benchcsv.Result, t.Len())
	for i := range out {
		out[i] = &benchcsv.Result{
			Label:            labels[i],
			Algorithm:        algos[i],
			Quantization:     quants[i],
			RawQuality:       raws[i],
			RawQualityText:   rawTexts[i],
			Quality:          qualities[i],
			Parameter:        params[i],
			MaxErr:           maxErrs[i],
			AvgErr:           avgErrs[i],
			MaxDespeckledErr: maxDErrs[i],
			AvgDespeckledErr: avgDErrs[i],
			SizeKB:           sizes[i],
		}
	}
	return out
}
