// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ImageFormats are the formats accepted by WriteImage.
var ImageFormats = []string{"png", "svg", "pdf"}

// glyphs are the marker shapes given to algorithms in turn, in the
// same order as the shapes of the HTML chart where gonum has one.
var glyphs = []draw.GlyphDrawer{
	draw.CircleGlyph{},
	draw.PyramidGlyph{},
	draw.SquareGlyph{},
	CrossGlyph{},
	draw.PlusGlyph{},
	TriUp{},
	TriDown{},
	draw.RingGlyph{},
	draw.BoxGlyph{},
	draw.TriangleGlyph{},
}

// gonumPlot lays c out as a gonum plot.
func (c *Chart) gonumPlot() (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = c.Title
	pl.Title.TextStyle.Font.Size = 20
	pl.X.Label.Text = c.XLabel
	pl.Y.Label.Text = c.YLabel
	pl.Legend.Top = true

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	pl.Add(grid)

	cmap := moreland.Kindlmann()
	cmap.SetMin(c.QuantMin)
	cmap.SetMax(math.Max(c.QuantMax, c.QuantMin+1))

	xIndex := make(map[string]int, len(c.Categories))
	for i, x := range c.Categories {
		xIndex[x] = i
	}

	for sym, algo := range c.Algorithms {
		var (
			xys    plotter.XYs
			styles []draw.GlyphStyle
		)
		for _, p := range c.Points {
			if p.Symbol != sym {
				continue
			}
			clr, err := quantColor(cmap, p.Quantization)
			if err != nil {
				return nil, err
			}
			xys = append(xys, plotter.XY{X: float64(xIndex[p.X]), Y: p.Y})
			styles = append(styles, draw.GlyphStyle{
				Color:  clr,
				Radius: vg.Points(p.Marker / 2),
				Shape:  glyphs[sym%len(glyphs)],
			})
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", algo, err)
		}
		s.GlyphStyle = draw.GlyphStyle{
			Color:  color.Black,
			Radius: vg.Points(minMarker),
			Shape:  glyphs[sym%len(glyphs)],
		}
		s.GlyphStyleFunc = func(i int) draw.GlyphStyle { return styles[i] }
		pl.Add(s)
		pl.Legend.Add(algo, s)
	}
	if len(c.Categories) > 0 {
		pl.NominalX(c.Categories...)
	}

	pl.X.Tick.Width = vg.Points(0.5)
	pl.X.Tick.Length = vg.Points(8)
	pl.X.Tick.Label.Rotation = -math.Pi / 4
	pl.X.Tick.Label.YAlign = draw.YTop
	pl.X.Tick.Label.XAlign = draw.XLeft
	return pl, nil
}

func quantColor(cmap palette.ColorMap, q int) (color.Color, error) {
	clr, err := cmap.At(float64(q))
	if err != nil {
		return nil, fmt.Errorf("color for quantization %d: %w", q, err)
	}
	return clr, nil
}

// imageSize returns a width and height that leave room for every
// category on the x axis.
func (c *Chart) imageSize() (w, h vg.Length) {
	width := 0.6 * float64(2+len(c.Categories))
	if width < 20 {
		width = 20
	}
	return vg.Length(width) * vg.Centimeter, 12 * vg.Centimeter
}

// WriteImage writes c to w as a static image in the given format, one
// of ImageFormats.
func (c *Chart) WriteImage(w io.Writer, format string) error {
	if !validFormat(format) {
		return fmt.Errorf("unsupported image format %q", format)
	}
	pl, err := c.gonumPlot()
	if err != nil {
		return err
	}
	width, height := c.imageSize()
	wt, err := pl.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// SaveImage writes c as dir/name.format, creating dir if needed, and
// returns the file name. No file is left behind on error.
func (c *Chart) SaveImage(dir, name, format string) (string, error) {
	if !validFormat(format) {
		return "", fmt.Errorf("unsupported image format %q", format)
	}
	if err := os.MkdirAll(dir, 0777); err != nil {
		return "", err
	}
	file := filepath.Join(dir, name) + "." + format
	f, err := os.Create(file)
	if err != nil {
		return "", err
	}
	if err := c.WriteImage(f, format); err != nil {
		f.Close()
		os.Remove(file)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(file)
		return "", err
	}
	return file, nil
}

func validFormat(format string) bool {
	for _, f := range ImageFormats {
		if f == format {
			return true
		}
	}
	return false
}

const cosπover4 = vg.Length(.707106781202420)

// CrossGlyph is a glyph that draws a big X with a heavier stroke than
// draw.CrossGlyph.
type CrossGlyph struct{}

// DrawGlyph implements the Glyph interface.
func (CrossGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetLineStyle(draw.LineStyle{Color: sty.Color, Width: vg.Points(2)})
	r := sty.Radius * cosπover4
	p := make(vg.Path, 0, 2)
	p.Move(vg.Point{X: pt.X - r, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y + r})
	c.Stroke(p)
	p = p[:0]
	p.Move(vg.Point{X: pt.X - r, Y: pt.Y + r})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y - r})
	c.Stroke(p)
}

// TriUp draws an upward pointing arrowhead.
type TriUp struct{}

// DrawGlyph implements the Glyph interface.
func (TriUp) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	tri(c, sty, pt, 1)
}

// TriDown draws a downward pointing arrowhead.
type TriDown struct{}

// DrawGlyph implements the Glyph interface.
func (TriDown) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	tri(c, sty, pt, -1)
}

// tri strokes two sides of a triangle with its apex in direction dir
// and a bar through pt.
func tri(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point, dir vg.Length) {
	c.SetLineStyle(draw.LineStyle{Color: sty.Color, Width: vg.Points(2)})
	r := sty.Radius * cosπover4
	apex := vg.Point{X: pt.X, Y: pt.Y + dir*r}
	p := make(vg.Path, 0, 3)
	p.Move(vg.Point{X: pt.X - r, Y: pt.Y - dir*r})
	p.Line(apex)
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y - dir*r})
	c.Stroke(p)
	p = p[:0]
	p.Move(vg.Point{X: pt.X - r, Y: pt.Y})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y})
	c.Stroke(p)
}
