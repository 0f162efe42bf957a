// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"fmt"
	"strconv"
)

// Sentinel is the placeholder the benchmark writes in place of an
// error metric it did not compute.
const Sentinel = "/"

// A SentinelPolicy says how a Reader treats the Sentinel when it
// appears in one of the despeckled error fields.
type SentinelPolicy int

const (
	// SentinelZero reads the Sentinel as 0.
	SentinelZero SentinelPolicy = iota
	// SentinelStrict rejects the Sentinel with a *SyntaxError.
	SentinelStrict
)

func (p SentinelPolicy) String() string {
	switch p {
	case SentinelZero:
		return "zero"
	case SentinelStrict:
		return "strict"
	}
	return "SentinelPolicy(" + strconv.Itoa(int(p)) + ")"
}

// ParseSentinelPolicy parses the String form of a SentinelPolicy.
func ParseSentinelPolicy(s string) (SentinelPolicy, error) {
	switch s {
	case "zero":
		return SentinelZero, nil
	case "strict":
		return SentinelStrict, nil
	}
	return 0, fmt.Errorf("unknown sentinel policy %q (want zero or strict)", s)
}

// A Result is a single line of a benchmark results file.
//
// The label of every line names a coder configuration, such as
// "Hilbert_10_70_2", from which the algorithm name and the three
// integer parameters are derived.
type Result struct {
	// Label is the configuration label, the text before the first
	// comma.
	Label string

	// Algorithm is the prefix of Label before its first underscore.
	Algorithm string

	// Quantization, RawQuality and Parameter are the first three
	// runs of digits on the line.
	Quantization int
	RawQuality   int
	Parameter    int

	// RawQualityText is RawQuality exactly as it was written.
	RawQualityText string

	// Quality is RawQuality remapped from the 60–90 range onto
	// 0–100. See NormalizeQuality.
	Quality int

	MaxErr           float64
	AvgErr           float64
	MaxDespeckledErr float64
	AvgDespeckledErr float64

	// SizeKB is the compressed size in kilobytes (1000 bytes).
	SizeKB float64

	// fileName and line give the position of this result in the
	// input. They are informational only.
	fileName string
	line     int
}

// NormalizeQuality maps a raw JPEG quality setting linearly so that
// 60 becomes 0 and 90 becomes 100, truncating toward zero.
func NormalizeQuality(raw int) int {
	return int((float64(raw) - 60) / 30 * 100)
}

// Clone makes a copy of r.
func (r *Result) Clone() *Result {
	r2 := *r
	return &r2
}

// Pos returns the file name and line number of r.
func (r *Result) Pos() (fileName string, line int) {
	return r.fileName, r.line
}
