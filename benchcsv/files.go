// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"os"
)

// A Files reads benchmark results from a sequence of input files.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// AllowStdin indicates that the path "-" should be treated as
	// stdin.
	AllowStdin bool

	// Policy is the SentinelPolicy used for every file.
	Policy SentinelPolicy

	// inputs is the sequence of remaining inputs, or nil if this
	// Files has not started yet.
	inputs []string

	reader  *Reader
	file    *os.File
	isStdin bool
	err     error
}

// Scan advances the reader to the next result in the sequence of
// files and reports whether a result was read. The caller should use
// the Result method to get the result. If Scan reaches the end of the
// file sequence, or if an error occurs, it returns false. In this
// case, the caller should use the Err method to check for errors.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}

	if f.inputs == nil {
		f.inputs = append([]string{}, f.Paths...)
		f.reader = NewReader(nil, "", f.Policy)
	}

	for {
		if f.file == nil {
			// Open the next file.
			if len(f.inputs) == 0 {
				return false
			}
			path := f.inputs[0]
			f.inputs = f.inputs[1:]

			if f.AllowStdin && path == "-" {
				f.isStdin, f.file = true, os.Stdin
			} else {
				file, err := os.Open(path)
				if err != nil {
					f.err = err
					return false
				}
				f.isStdin, f.file = false, file
			}
			f.reader.Reset(f.file, path)
		}

		if f.reader.Scan() {
			return true
		}
		err := f.reader.Err()
		f.close()
		if err != nil {
			f.err = err
			return false
		}
	}
}

func (f *Files) close() {
	if !f.isStdin {
		f.file.Close()
	}
	f.file = nil
}

// Result returns the Result that was just read by Scan.
// See Reader.Result.
func (f *Files) Result() *Result {
	return f.reader.Result()
}

// Err returns the error that stopped Scan, if any.
// If Scan stopped because it read each file to completion,
// or if Scan has not yet returned false, Err returns nil.
func (f *Files) Err() error {
	return f.err
}

// A Scanner is a source of Results, such as a *Reader or a *Files.
type Scanner interface {
	Scan() bool
	Result() *Result
	Err() error
}

// ReadAll reads every Result from s, in input order.
func ReadAll(s Scanner) ([]*Result, error) {
	var out []*Result
	for s.Scan() {
		out = append(out, s.Result().Clone())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
