// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profile

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/dstream/benchcharts/benchcsv"
	"github.com/dstream/benchcharts/benchtable"
	"github.com/google/go-cmp/cmp"
)

func TestBuiltin(t *testing.T) {
	set := Builtin()
	if diff := cmp.Diff([]string{"despeckled", "png"}, set.Names()); diff != "" {
		t.Errorf("names differ (-want +got):\n%s", diff)
	}
	for _, name := range set.Names() {
		p, err := set.Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		if err := p.Validate(); err != nil {
			t.Errorf("built-in profile %s: %v", name, err)
		}
	}
	if p, _ := set.Lookup(Default); p.Name != A.Name {
		t.Errorf("default profile is %q, want %q", p.Name, A.Name)
	}
	if A.Sentinel != benchcsv.SentinelZero || B.Sentinel != benchcsv.SentinelStrict {
		t.Errorf("sentinel policies: A=%v B=%v", A.Sentinel, B.Sentinel)
	}
	if A.Metric != benchtable.MetricAvg || B.Metric != benchtable.MetricAvgDespeckled {
		t.Errorf("metrics: A=%v B=%v", A.Metric, B.Metric)
	}
	if A.XAxis != AxisCategory || B.XAxis != AxisLabel {
		t.Errorf("axes: A=%v B=%v", A.XAxis, B.XAxis)
	}
	if _, err := set.Lookup("jpeg"); err == nil || !strings.Contains(err.Error(), "despeckled") {
		t.Errorf("want unknown profile error listing names, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	set, err := Load("testdata/profiles.yaml")
	if err != nil {
		t.Fatal(err)
	}

	check := func(name string, want Profile) {
		t.Helper()
		got, err := set.Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("profile %s differs (-want +got):\n%s", name, diff)
		}
	}

	hilbert := B
	hilbert.Name = "hilbert"
	hilbert.Input = "../build/Hilbert/results.csv"
	hilbert.Metric = benchtable.MetricMaxDespeckled
	hilbert.Title = "Hilbert"
	check("hilbert", hilbert)

	png := A
	png.Input = "old/results.csv"
	check("png", png)

	lenient := A
	lenient.Name = "lenient"
	lenient.XAxis = AxisLabel
	lenient.YLabel = "Mean error"
	check("lenient", lenient)

	check("despeckled", B)

	// The built-in set is untouched.
	if got := Builtin()["png"].Input; got != A.Input {
		t.Errorf("built-in png input changed to %q", got)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("testdata/nonexistent.yaml")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("want fs.ErrNotExist, got %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	for _, test := range []struct {
		yaml string
		want string
	}{
		{"profiles:\n  x:\n    base: jpeg\n", `profile "x": unknown base "jpeg"`},
		{"profiles:\n  x:\n    metric: median\n", `profile "x": unknown metric "median"`},
		{"profiles:\n  x:\n    sentinel: skip\n", `profile "x": unknown sentinel policy "skip"`},
		{"profiles:\n  x:\n    x_axis: log\n", `profile "x": unknown x axis "log"`},
		{"profiles: [1, 2]\n", "cannot unmarshal"},
	} {
		_, err := Parse([]byte(test.yaml), Builtin())
		if err == nil {
			t.Errorf("%q: want error", test.yaml)
			continue
		}
		if !strings.Contains(err.Error(), test.want) {
			t.Errorf("%q: want error containing %q, got %q", test.yaml, test.want, err)
		}
	}
}
