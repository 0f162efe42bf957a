// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchreport runs the report pipeline: it loads the results
// file named by a profile, keeps the rows matching a set of filters,
// sorts them by compressed size and lays them out as a chart.
package benchreport

import (
	"github.com/aclements/go-gg/table"
	"github.com/dstream/benchcharts/benchchart"
	"github.com/dstream/benchcharts/benchcsv"
	"github.com/dstream/benchcharts/benchtable"
	"github.com/dstream/benchcharts/profile"
)

// A Report is the sorted result table of one profile.
type Report struct {
	Profile profile.Profile
	Table   *table.Table
}

// Load reads p.Input using p's sentinel policy. The input "-" reads
// stdin.
func Load(p profile.Profile, filters []benchtable.Filter) (*Report, error) {
	files := &benchcsv.Files{
		Paths:      []string{p.Input},
		AllowStdin: true,
		Policy:     p.Sentinel,
	}
	return Build(p, files, filters)
}

// Build reads every result from s and returns those matching filters
// in ascending order of size.
func Build(p profile.Profile, s benchcsv.Scanner, filters []benchtable.Filter) (*Report, error) {
	results, err := benchcsv.ReadAll(s)
	if err != nil {
		return nil, err
	}
	t := benchtable.Apply(benchtable.New(results), filters)
	return &Report{Profile: p, Table: benchtable.SortBySize(t)}, nil
}

// Results returns the rows of r in order.
func (r *Report) Results() []*benchcsv.Result {
	return benchtable.Results(r.Table)
}

// Chart lays r out using its profile.
func (r *Report) Chart() *benchchart.Chart {
	return benchchart.New(r.Table, r.Profile)
}
