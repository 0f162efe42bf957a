// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtable

import (
	"io"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
)

// Summary column names. The metric columns are "min <metric column>"
// and "mean <metric column>".
const (
	Rows    = "rows"
	MinSize = "min " + Size
)

// Summarize returns one row per algorithm giving its number of rows,
// its smallest size, and the minimum and mean of metric m. Algorithms
// appear in the order they first appear in t.
func Summarize(t *table.Table, m Metric) *table.Table {
	if t.Len() == 0 {
		return new(table.Table)
	}
	col := m.Column()
	in := new(table.Builder).
		Add(Algorithm, t.MustColumn(Algorithm)).
		Add(Size, t.MustColumn(Size)).
		Add(col, t.MustColumn(col)).
		Done()

	agg := table.Flatten(ggstat.Agg(Algorithm)(
		ggstat.AggCount(Rows),
		ggstat.AggMin(Size),
		ggstat.AggMin(col),
		ggstat.AggMean(col),
	).F(in))

	// Agg keeps input columns that happen to be constant within
	// every group; drop them.
	return new(table.Builder).
		Add(Algorithm, agg.MustColumn(Algorithm)).
		Add(Rows, agg.MustColumn(Rows)).
		Add(MinSize, agg.MustColumn(MinSize)).
		Add("min "+col, agg.MustColumn("min "+col)).
		Add("mean "+col, agg.MustColumn("mean "+col)).
		Done()
}

// WriteSummary writes the summary of t for metric m to w as an
// aligned text table.
func WriteSummary(w io.Writer, t *table.Table, m Metric) error {
	return table.Fprint(w, Summarize(t, m), "%s", "%d", "%.3f", "%.4g", "%.4g")
}
