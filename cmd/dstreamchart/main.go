// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Dstreamchart plots depth-stream codec benchmark results.
//
// Usage:
//
//	dstreamchart [flags]
//
// Dstreamchart reads the results file of a report profile, sorts the
// results by compressed size and shows them as an interactive scatter
// plot in the browser. With no flags it uses the "png" profile, which
// reads ../build/OldOutput/Output/results.csv.
//
// The x axis is the compressed size, the y axis the profile's error
// metric. Point color is the quantization level, point size the
// normalized JPEG quality and point shape the algorithm. Hovering a
// point shows its parameter and raw JPEG quality.
//
// # Profiles
//
// The built-in profiles are "png" and "despeckled". The -profiles flag
// loads more from a YAML file:
//
//	profiles:
//	  hilbert:
//	    base: despeckled
//	    input: ../build/Hilbert/results.csv
//	    metric: max-despeckled
//
// # Filters
//
// Each -filter flag is a key:value pair. Rows must match every key and,
// for a key given more than once, any of its values. The keys are
// algorithm, label, quantization, quality (the raw JPEG quality) and
// parameter.
//
// # Outputs
//
// -csv and -summary print the sorted table or a per-algorithm summary
// to stdout. -png, -svg and -pdf write static charts into a directory.
// -html writes the interactive page to a file and -http serves it until
// interrupted; both open the page in the browser unless -open=false.
// With none of these flags the chart is opened in the browser, or
// written to stdout as HTML if -open=false.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/dstream/benchcharts/benchchart"
	"github.com/dstream/benchcharts/benchreport"
	"github.com/dstream/benchcharts/benchtable"
	"github.com/dstream/benchcharts/profile"
)

// Replaced by tests.
var (
	openChart = (*benchchart.Chart).Open
	openURL   = benchchart.OpenURL
)

func usage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintf(fs.Output(), `Usage: dstreamchart [flags]

Plots benchmark results from the input file of a profile.

`)
		fs.PrintDefaults()
	}
}

// filterFlag collects repeated -filter flags.
type filterFlag []string

func (f *filterFlag) String() string { return strings.Join(*f, " ") }

func (f *filterFlag) Set(s string) error {
	*f = append(*f, s)
	return nil
}

func main() {
	log.SetPrefix("dstreamchart: ")
	log.SetFlags(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := dstreamchart(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fail("%v\n", err)
	}
}

func dstreamchart(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	logger := log.New(stderr, "dstreamchart: ", 0)
	warn := func(format string, args ...interface{}) {
		fmt.Fprintf(stderr, format, args...)
	}

	fs := flag.NewFlagSet("dstreamchart", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = usage(fs)
	var filters filterFlag
	var (
		flagProfile  = fs.String("profile", profile.Default, "report `profile` to use")
		flagProfiles = fs.String("profiles", "", "load extra profiles from YAML `file`")
		flagIn       = fs.String("in", "", "read results from `file` instead of the profile's input (- for stdin)")
		flagHTML     = fs.String("html", "", "write the interactive chart to `file`")
		flagHTTP     = fs.String("http", "", "serve the interactive chart on `address` until interrupted")
		flagOpen     = fs.Bool("open", true, "open the chart in the browser")
		flagPNG      = fs.String("png", "", "write a png chart into `dir`")
		flagSVG      = fs.String("svg", "", "write an svg chart into `dir`")
		flagPDF      = fs.String("pdf", "", "write a pdf chart into `dir`")
		flagCSV      = fs.Bool("csv", false, "print the sorted results in CSV form")
		flagSummary  = fs.Bool("summary", false, "print a per-algorithm summary")
	)
	fs.Var(&filters, "filter", "keep rows matching `key:value` (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return flag.ErrHelp
	}

	profiles := profile.Builtin()
	if *flagProfiles != "" {
		var err error
		if profiles, err = profile.Load(*flagProfiles); err != nil {
			return err
		}
	}
	p, err := profiles.Lookup(*flagProfile)
	if err != nil {
		return err
	}
	if *flagIn != "" {
		p.Input = *flagIn
	}
	fl, err := benchtable.ParseFilters(filters)
	if err != nil {
		return err
	}

	report, err := benchreport.Load(p, fl)
	if err != nil {
		return err
	}
	if report.Table.Len() == 0 {
		warn("no results in %s\n", p.Input)
	}

	wrote := false
	if *flagCSV {
		if err := benchtable.WriteCSV(stdout, report.Table); err != nil {
			return err
		}
		wrote = true
	}
	if *flagSummary {
		if err := benchtable.WriteSummary(stdout, report.Table, p.Metric); err != nil {
			return err
		}
		wrote = true
	}

	chart := report.Chart()
	for _, img := range []struct{ dir, format string }{
		{*flagPNG, "png"},
		{*flagSVG, "svg"},
		{*flagPDF, "pdf"},
	} {
		if img.dir == "" {
			continue
		}
		file, err := chart.SaveImage(img.dir, p.Name, img.format)
		if err != nil {
			return err
		}
		logger.Printf("wrote %s", file)
		wrote = true
	}

	if *flagHTML != "" {
		if err := writeHTML(chart, *flagHTML); err != nil {
			return err
		}
		logger.Printf("wrote %s", *flagHTML)
		if *flagOpen {
			abs, err := filepath.Abs(*flagHTML)
			if err != nil {
				return err
			}
			if err := openURL("file://" + abs); err != nil {
				return err
			}
		}
		wrote = true
	}

	if *flagHTTP != "" {
		l, err := net.Listen("tcp", *flagHTTP)
		if err != nil {
			return err
		}
		return chart.Serve(ctx, l, func(url string) {
			logger.Printf("serving %s on %s", p.Name, url)
			if *flagOpen {
				if err := openURL(url); err != nil {
					warn("%v\n", err)
				}
			}
		})
	}

	if wrote {
		return nil
	}
	if !*flagOpen {
		return chart.WriteHTML(stdout)
	}
	file, err := openChart(chart)
	if err != nil {
		return err
	}
	logger.Printf("opened %s", file)
	return nil
}

func writeHTML(chart *benchchart.Chart, file string) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := chart.WriteHTML(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "dstreamchart: "+format, args...)
	os.Exit(1)
}
