// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchcsv reads the results file written by the dstream
// codec benchmark.
//
// Each line of a results file has the form
//
//	label,maxErr,avgErr,maxDespeckledErr,avgDespeckledErr,sizeBytes
//
// where label looks like "Hilbert_10_70_2": an algorithm name, then
// the quantization level, the raw JPEG quality and an algorithm
// parameter. The two despeckled fields may hold the Sentinel "/".
// Lines without any digits, such as a header, are ignored.
package benchcsv

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// A Reader reads a benchmark results file.
//
// Its API is modeled on bufio.Scanner. A Reader retains ownership of
// the Result it returns and reuses it on the next call to Scan; a
// caller should Clone anything it needs to retain.
type Reader struct {
	s      *bufio.Scanner
	err    error
	policy SentinelPolicy

	result Result
}

// A SyntaxError represents a syntax error on a particular line of a
// benchmark results file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", s.FileName, s.Line, s.Msg)
}

var errSkip = &SyntaxError{"", 0, "skip line"}

// NewReader constructs a reader to parse benchmark results from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string, policy SentinelPolicy) *Reader {
	reader := &Reader{policy: policy}
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input. It keeps
// the reader's SentinelPolicy.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.err = nil
	r.result = Result{fileName: fileName}
}

// Scan advances the reader to the next result and reports whether a
// result was read. The caller should use the Result method to get the
// result. If Scan reaches EOF, an I/O error occurs, or a line cannot
// be parsed, it returns false, in which case the caller should use
// the Err method to check for errors. A malformed line stops the
// reader: there is no per-line recovery.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}

	for r.s.Scan() {
		r.result.line++
		err := r.parseLine(r.s.Text())
		if err == nil {
			return true
		}
		if err == errSkip {
			continue
		}
		r.err = err
		return false
	}

	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.result.fileName, r.result.line, err)
	}
	return false
}

// Result returns the Result that was just read by Scan. The Result is
// valid until the next call to Scan or Reset.
func (r *Reader) Result() *Result {
	return &r.result
}

// Err returns the first error encountered by the Reader: an I/O
// error or a *SyntaxError. If Scan stopped because it read the input
// to completion, Err returns nil.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) newSyntaxError(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{r.result.fileName, r.result.line, fmt.Sprintf(format, args...)}
}

// parseLine parses line into r.result. It returns errSkip if line
// has no digits at all.
func (r *Reader) parseLine(line string) error {
	line = strings.TrimSuffix(line, "\r")

	runs, n := digitRuns(line)
	if n == 0 {
		return errSkip
	}
	if n < 3 {
		return r.newSyntaxError("found %d digit runs, want at least 3", n)
	}

	comma := strings.IndexByte(line, ',')
	if comma < 0 {
		return r.newSyntaxError("missing comma-separated fields")
	}
	fields := strings.Split(line[comma+1:], ",")
	if len(fields) < 5 {
		return r.newSyntaxError("found %d fields after label, want 5", len(fields))
	}

	res := &r.result
	res.Label = line[:comma]
	res.Algorithm = res.Label
	if i := strings.IndexByte(res.Label, '_'); i >= 0 {
		res.Algorithm = res.Label[:i]
	}

	var err error
	var ints [3]int
	for i, run := range runs {
		ints[i], err = strconv.Atoi(run)
		if err != nil {
			return r.newSyntaxError("parsing %q: %v", run, err)
		}
	}
	res.Quantization, res.RawQuality, res.Parameter = ints[0], ints[1], ints[2]
	res.RawQualityText = runs[1]
	res.Quality = NormalizeQuality(res.RawQuality)

	if res.MaxErr, err = r.parseFloat(fields[0], "max error", false); err != nil {
		return err
	}
	if res.AvgErr, err = r.parseFloat(fields[1], "avg error", false); err != nil {
		return err
	}
	if res.MaxDespeckledErr, err = r.parseFloat(fields[2], "max despeckled error", true); err != nil {
		return err
	}
	if res.AvgDespeckledErr, err = r.parseFloat(fields[3], "avg despeckled error", true); err != nil {
		return err
	}
	size, err := r.parseFloat(fields[4], "size", false)
	if err != nil {
		return err
	}
	res.SizeKB = size / 1000
	return nil
}

// parseFloat parses field as a finite float64. If sentinelOK is set,
// the Sentinel is handled according to the reader's policy.
func (r *Reader) parseFloat(field, what string, sentinelOK bool) (float64, error) {
	field = strings.TrimSpace(field)
	if field == Sentinel && sentinelOK {
		switch r.policy {
		case SentinelZero:
			return 0, nil
		case SentinelStrict:
			return 0, r.newSyntaxError("%s is unavailable (%q)", what, Sentinel)
		}
	}
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, r.newSyntaxError("bad %s %q", what, field)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, r.newSyntaxError("%s %q is not a finite number", what, field)
	}
	return v, nil
}

// digitRuns returns the first three maximal runs of ASCII digits in
// line and the total number of runs, up to three.
func digitRuns(line string) (runs []string, n int) {
	for i := 0; i < len(line) && n < 3; {
		if !isDigit(line[i]) {
			i++
			continue
		}
		j := i + 1
		for j < len(line) && isDigit(line[j]) {
			j++
		}
		runs = append(runs, line[i:j])
		n++
		i = j
	}
	return runs, n
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
