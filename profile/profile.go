// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package profile defines the named report configurations.
//
// Two profiles are built in. "png" (A) reads the sentinel as zero and
// plots the average error against a categorical size axis.
// "despeckled" (B) rejects the sentinel and plots the average
// despeckled error against size labels such as "12.345KB". More
// profiles can be loaded from a YAML file; see Load.
package profile

import (
	"fmt"
	"os"
	"sort"

	"github.com/dstream/benchcharts/benchcsv"
	"github.com/dstream/benchcharts/benchtable"
	"gopkg.in/yaml.v3"
)

// An Axis says how compressed sizes are placed on the x axis.
type Axis string

const (
	// AxisCategory treats each distinct size as a category.
	AxisCategory Axis = "category"
	// AxisLabel labels each size with a "KB" suffix.
	AxisLabel Axis = "label"
)

// A Profile configures one report.
type Profile struct {
	Name string

	// Input is the results file to read. "-" means stdin.
	Input string

	Sentinel benchcsv.SentinelPolicy
	XAxis    Axis
	Metric   benchtable.Metric

	Title  string
	XLabel string
	YLabel string
}

var (
	A = Profile{
		Name:     "png",
		Input:    "../build/OldOutput/Output/results.csv",
		Sentinel: benchcsv.SentinelZero,
		XAxis:    AxisCategory,
		Metric:   benchtable.MetricAvg,
		Title:    "PNG",
		XLabel:   "Compressed texture size",
		YLabel:   "Logarithmic mean error",
	}
	B = Profile{
		Name:     "despeckled",
		Input:    "../build/Output/results.csv",
		Sentinel: benchcsv.SentinelStrict,
		XAxis:    AxisLabel,
		Metric:   benchtable.MetricAvgDespeckled,
		Title:    "Despeckled",
		XLabel:   "Compressed texture size",
		YLabel:   "Logarithmic mean despeckled error",
	}
)

// Default is the name of the profile used when none is given.
const Default = "png"

// Builtin returns a new set holding the built-in profiles.
func Builtin() Set {
	return Set{A.Name: A, B.Name: B}
}

// A Set maps profile names to profiles.
type Set map[string]Profile

// Lookup returns the profile called name.
func (s Set) Lookup(name string) (Profile, error) {
	p, ok := s[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile %q (have %v)", name, s.Names())
	}
	return p, nil
}

// Names returns the profile names in sorted order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that every field of p holds a known value.
func (p Profile) Validate() error {
	if p.Input == "" {
		return fmt.Errorf("profile %q: no input file", p.Name)
	}
	switch p.XAxis {
	case AxisCategory, AxisLabel:
	default:
		return fmt.Errorf("profile %q: unknown x axis %q (want category or label)", p.Name, p.XAxis)
	}
	if _, err := benchtable.ParseMetric(string(p.Metric)); err != nil {
		return fmt.Errorf("profile %q: %w", p.Name, err)
	}
	switch p.Sentinel {
	case benchcsv.SentinelZero, benchcsv.SentinelStrict:
	default:
		return fmt.Errorf("profile %q: unknown sentinel policy %v", p.Name, p.Sentinel)
	}
	return nil
}

// file is the YAML form of a profile file:
//
//	profiles:
//	  hilbert:
//	    base: despeckled
//	    input: hilbert/results.csv
//	    metric: max-despeckled
//
// Fields left out are inherited from base. base defaults to the
// profile of the same name if there is one, and to Default otherwise.
type file struct {
	Profiles map[string]entry `yaml:"profiles"`
}

type entry struct {
	Base     string `yaml:"base"`
	Input    string `yaml:"input"`
	Sentinel string `yaml:"sentinel"`
	XAxis    string `yaml:"x_axis"`
	Metric   string `yaml:"metric"`
	Title    string `yaml:"title"`
	XLabel   string `yaml:"x_label"`
	YLabel   string `yaml:"y_label"`
}

// Load reads a YAML profile file and returns the built-in profiles
// extended or overridden by the profiles it defines.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	set, err := Parse(data, Builtin())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Parse decodes YAML profile data on top of base. base is not
// modified.
func Parse(data []byte, base Set) (Set, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	out := make(Set, len(base)+len(f.Profiles))
	for name, p := range base {
		out[name] = p
	}
	// Resolve in sorted order so errors are deterministic.
	names := make([]string, 0, len(f.Profiles))
	for name := range f.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		e := f.Profiles[name]
		baseName := e.Base
		if baseName == "" {
			baseName = Default
			if _, ok := base[name]; ok {
				baseName = name
			}
		}
		p, ok := base[baseName]
		if !ok {
			return nil, fmt.Errorf("profile %q: unknown base %q", name, baseName)
		}
		p.Name = name
		if err := e.apply(&p); err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		out[name] = p
	}
	return out, nil
}

func (e entry) apply(p *Profile) error {
	set := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	set(&p.Input, e.Input)
	set(&p.Title, e.Title)
	set(&p.XLabel, e.XLabel)
	set(&p.YLabel, e.YLabel)
	if e.XAxis != "" {
		p.XAxis = Axis(e.XAxis)
	}
	if e.Metric != "" {
		m, err := benchtable.ParseMetric(e.Metric)
		if err != nil {
			return err
		}
		p.Metric = m
	}
	if e.Sentinel != "" {
		s, err := benchcsv.ParseSentinelPolicy(e.Sentinel)
		if err != nil {
			return err
		}
		p.Sentinel = s
	}
	return nil
}
