// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package plots renders membrane simulation runs as PNG figures, with one
panel per group of series (potential, gates, currents, stimulus) stacked
over a common time axis.
*/
package plots

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/emer/neurosim/membrane"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Panel is one subplot of a figure
type Panel struct {
	Title  string   `desc:"title of the panel"`
	YLabel string   `desc:"label of the Y axis, with units"`
	Vars   []string `desc:"names of the State series plotted, each as one line"`
	Scale  float64  `desc:"values are multiplied by this for display, e.g., 1000 for mV"`
}

// Figure holds the layout of a figure
type Figure struct {
	Title  string  `desc:"title shown on the top panel"`
	Width  float64 `def:"8" desc:"width in inches"`
	Height float64 `def:"2.5" desc:"height of each panel in inches"`
	DPI    int     `def:"100" desc:"resolution of the PNG"`
	Stride int     `def:"1" min:"1" desc:"plot every Stride'th time step"`
	Panels []Panel `desc:"panels, top to bottom -- StdPanels if empty"`
}

func (fg *Figure) Defaults() {
	fg.Width = 8
	fg.Height = 2.5
	fg.DPI = 100
	fg.Stride = 1
}

// Update ensures values are in range
func (fg *Figure) Update() {
	if fg.Stride < 1 {
		fg.Stride = 1
	}
	if fg.DPI <= 0 {
		fg.DPI = 100
	}
}

// StdPanels returns the standard panels for the state: potential in mV,
// gating variables, currents in uA / cm^2 and the stimulus
func StdPanels(st *membrane.State) []Panel {
	gates := []string{"M", "H", "N"}
	curs := []string{"INa", "IK", "IL"}
	if st.IA != nil {
		gates = append(gates, "A", "B")
		curs = append(curs, "IA")
	}
	return []Panel{
		{Title: "Membrane potential", YLabel: "V (mV)", Vars: []string{"V"}, Scale: 1000},
		{Title: "Gating variables", YLabel: "open fraction", Vars: gates, Scale: 1},
		{Title: "Ionic currents", YLabel: "I (uA / cm^2)", Vars: curs, Scale: 1e6},
		{Title: "Stimulus", YLabel: "I (uA / cm^2)", Vars: []string{"IStim"}, Scale: 1e6},
	}
}

// XYs returns the points of ys against xs at given stride, scaled, skipping
// any non-finite values, which the plotter rejects
func XYs(xs, ys []float64, stride int, xscale, yscale float64) plotter.XYs {
	if stride < 1 {
		stride = 1
	}
	pts := make(plotter.XYs, 0, len(ys)/stride+1)
	for i := 0; i < len(ys) && i < len(xs); i += stride {
		x := xs[i] * xscale
		y := ys[i] * yscale
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
	}
	return pts
}

// Plots returns one plot per panel for the state
func (fg *Figure) Plots(st *membrane.State) ([]*plot.Plot, error) {
	fg.Update()
	pnls := fg.Panels
	if len(pnls) == 0 {
		pnls = StdPanels(st)
	}
	plts := make([]*plot.Plot, len(pnls))
	for pi, pn := range pnls {
		p := plot.New()
		p.Title.Text = pn.Title
		if pi == 0 && fg.Title != "" {
			p.Title.Text = fg.Title + ": " + pn.Title
		}
		p.X.Label.Text = "time (ms)"
		p.Y.Label.Text = pn.YLabel
		scale := pn.Scale
		if scale == 0 {
			scale = 1
		}
		for vi, nm := range pn.Vars {
			ys := st.Series(nm)
			if ys == nil {
				return nil, fmt.Errorf("plots: %v model has no series named %q", st.Type, nm)
			}
			pts := XYs(st.Time, ys, fg.Stride, 1000, scale)
			if len(pts) == 0 {
				continue
			}
			ln, err := plotter.NewLine(pts)
			if err != nil {
				return nil, err
			}
			ln.LineStyle.Width = vg.Points(1.5)
			ln.LineStyle.Color = plotutil.Color(vi)
			p.Add(ln)
			if len(pn.Vars) > 1 {
				p.Legend.Add(nm, ln)
			}
		}
		p.Legend.Top = true
		plts[pi] = p
	}
	return plts, nil
}

// Render draws the panels stacked vertically on a new image canvas
func (fg *Figure) Render(plts []*plot.Plot) *vgimg.Canvas {
	w := vg.Length(fg.Width) * vg.Inch
	h := vg.Length(fg.Height*float64(len(plts))) * vg.Inch
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(fg.DPI))
	dc := draw.New(c)
	rows := make([][]*plot.Plot, len(plts))
	for i, p := range plts {
		rows[i] = []*plot.Plot{p}
	}
	t := draw.Tiles{
		Rows:      len(plts),
		Cols:      1,
		PadTop:    vg.Points(4),
		PadBottom: vg.Points(4),
		PadLeft:   vg.Points(4),
		PadRight:  vg.Points(8),
		PadY:      vg.Points(8),
	}
	cvs := plot.Align(rows, t, dc)
	for i, p := range plts {
		p.Draw(cvs[i][0])
	}
	return c
}

// WritePNG renders the state as a PNG image to w
func (fg *Figure) WritePNG(w io.Writer, st *membrane.State) error {
	plts, err := fg.Plots(st)
	if err != nil {
		return err
	}
	return writePNG(w, fg.Render(plts))
}

// SavePNG renders the state as a PNG file
func (fg *Figure) SavePNG(filename string, st *membrane.State) error {
	return saveFile(filename, func(w io.Writer) error { return fg.WritePNG(w, st) })
}

func writePNG(w io.Writer, c *vgimg.Canvas) error {
	pngc := vgimg.PngCanvas{Canvas: c}
	if _, err := pngc.WriteTo(w); err != nil {
		return fmt.Errorf("plots: cannot write png: %w", err)
	}
	return nil
}

func saveFile(filename string, fun func(w io.Writer) error) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	if err := fun(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return f.Close()
}
