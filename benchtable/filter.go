// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtable

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
)

// A Filter keeps the rows whose Key column equals one of Values.
type Filter struct {
	Key    string
	Values []string
}

// filterCols maps filter keys to columns. Integer columns compare
// numerically, so "quality:070" matches a raw quality of 70.
var filterCols = map[string]struct {
	col   string
	isInt bool
}{
	"algorithm":    {Algorithm, false},
	"label":        {Label, false},
	"quantization": {Quantization, true},
	"quality":      {RawQuality, true},
	"parameter":    {Parameter, true},
}

// ParseFilters parses a list of "key:value" expressions. Expressions
// with the same key are merged, in order of first appearance, so
// that a row matches if it equals any of their values.
func ParseFilters(exprs []string) ([]Filter, error) {
	var out []Filter
	index := make(map[string]int)
	for _, expr := range exprs {
		key, val, ok := strings.Cut(expr, ":")
		if !ok || key == "" || val == "" {
			return nil, fmt.Errorf("bad filter %q: want key:value", expr)
		}
		fc, ok := filterCols[key]
		if !ok {
			return nil, fmt.Errorf("bad filter %q: unknown key %q", expr, key)
		}
		if fc.isInt {
			if _, err := strconv.Atoi(val); err != nil {
				return nil, fmt.Errorf("bad filter %q: %s must be an integer", expr, key)
			}
		}
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, Filter{Key: key})
		}
		out[i].Values = append(out[i].Values, val)
	}
	return out, nil
}

// Apply returns the rows of t that pass every filter.
func Apply(t *table.Table, filters []Filter) *table.Table {
	var g table.Grouping = t
	for _, f := range filters {
		fc, ok := filterCols[f.Key]
		if !ok {
			panic(fmt.Sprintf("unknown filter key %q", f.Key))
		}
		if fc.isInt {
			want := make(map[int]bool)
			for _, v := range f.Values {
				n, _ := strconv.Atoi(v)
				want[n] = true
			}
			g = table.Filter(g, func(x int) bool { return want[x] }, fc.col)
		} else {
			want := make(map[string]bool)
			for _, v := range f.Values {
				want[v] = true
			}
			g = table.Filter(g, func(x string) bool { return want[x] }, fc.col)
		}
	}
	return table.Flatten(g)
}
