// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/pkg/browser"
	"golang.org/x/sync/errgroup"
)

// openFile shows a local file in the system browser.
var openFile = browser.OpenFile

// Open writes c to a temporary HTML file and shows it in the system
// browser. It returns the name of the file, which is left in place
// for the browser to read.
func (c *Chart) Open() (string, error) {
	f, err := os.CreateTemp("", "dstreamchart-*.html")
	if err != nil {
		return "", err
	}
	if err := c.WriteHTML(f); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	if err := openFile(f.Name()); err != nil {
		return f.Name(), fmt.Errorf("opening %s: %w", f.Name(), err)
	}
	return f.Name(), nil
}

// OpenURL shows url in the system browser.
func OpenURL(url string) error {
	return browser.OpenURL(url)
}

// Handler returns an HTTP handler serving c as an HTML page.
func (c *Chart) Handler() (http.Handler, error) {
	var page bytes.Buffer
	if err := c.WriteHTML(&page); err != nil {
		return nil, err
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page.Bytes())
	}), nil
}

// Serve serves c over HTTP on l until ctx is done, then shuts the
// server down. If ready is not nil, it is called with the page URL
// once the server is accepting connections.
func (c *Chart) Serve(ctx context.Context, l net.Listener, ready func(url string)) error {
	h, err := c.Handler()
	if err != nil {
		return err
	}
	srv := &http.Server{Handler: h, ReadHeaderTimeout: 10 * time.Second}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(l); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if ready != nil {
		ready("http://" + l.Addr().String() + "/")
	}
	return g.Wait()
}
