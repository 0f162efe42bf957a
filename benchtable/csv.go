// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtable

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/aclements/go-gg/table"
)

// csvCols are the columns written by WriteCSV, in order.
var csvCols = []string{
	Label, Algorithm, Quantization, RawQuality, Quality, Parameter,
	MaxErr, AvgErr, MaxDespeckledErr, AvgDespeckledErr, Size,
}

// WriteCSV writes t to w as CSV with a header row. Sizes are in
// kilobytes. Floating-point values use the fewest digits that
// represent them exactly.
func WriteCSV(w io.Writer, t *table.Table) error {
	tab := [][]string{csvCols}
	cols := make([]table.Slice, len(csvCols))
	for i, name := range csvCols {
		cols[i] = t.MustColumn(name)
	}
	for row := 0; row < t.Len(); row++ {
		rec := make([]string, len(cols))
		for i, col := range cols {
			switch col := col.(type) {
			case []string:
				rec[i] = col[row]
			case []int:
				rec[i] = strconv.Itoa(col[row])
			case []float64:
				rec[i] = strconv.FormatFloat(col[row], 'f', -1, 64)
			default:
				panic(fmt.Sprintf("column %q has unexpected type %T", csvCols[i], col))
			}
		}
		tab = append(tab, rec)
	}
	csvw := csv.NewWriter(w)
	return csvw.WriteAll(tab)
}
