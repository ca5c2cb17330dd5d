// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"fmt"
	"io"

	"github.com/emer/neurosim/membrane"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Run is one labeled simulation run, for comparing runs in one panel
type Run struct {
	Label string
	State *membrane.State
}

// Overlay returns a plot of the named series of every run, one line per run
func (fg *Figure) Overlay(runs []Run, pn Panel) (*plot.Plot, error) {
	fg.Update()
	if len(pn.Vars) != 1 {
		return nil, fmt.Errorf("plots.Overlay: panel must have exactly one var, has %d", len(pn.Vars))
	}
	nm := pn.Vars[0]
	scale := pn.Scale
	if scale == 0 {
		scale = 1
	}
	p := plot.New()
	p.Title.Text = pn.Title
	if fg.Title != "" {
		p.Title.Text = fg.Title + ": " + pn.Title
	}
	p.X.Label.Text = "time (ms)"
	p.Y.Label.Text = pn.YLabel
	for ri, rn := range runs {
		ys := rn.State.Series(nm)
		if ys == nil {
			return nil, fmt.Errorf("plots.Overlay: %v model has no series named %q", rn.State.Type, nm)
		}
		pts := XYs(rn.State.Time, ys, fg.Stride, 1000, scale)
		if len(pts) == 0 {
			continue
		}
		ln, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		ln.LineStyle.Width = vg.Points(1.5)
		ln.LineStyle.Color = plotutil.Color(ri)
		p.Add(ln)
		p.Legend.Add(rn.Label, ln)
	}
	p.Legend.Top = true
	return p, nil
}

// WriteOverlayPNG renders the runs compared on each of the panels, which
// must each have one var, as a PNG image to w
func (fg *Figure) WriteOverlayPNG(w io.Writer, runs []Run, pnls []Panel) error {
	plts := make([]*plot.Plot, len(pnls))
	for i, pn := range pnls {
		p, err := fg.Overlay(runs, pn)
		if err != nil {
			return err
		}
		plts[i] = p
	}
	return writePNG(w, fg.Render(plts))
}

// SaveOverlayPNG renders the runs compared on each of the panels as a PNG file
func (fg *Figure) SaveOverlayPNG(filename string, runs []Run, pnls []Panel) error {
	return saveFile(filename, func(w io.Writer) error { return fg.WriteOverlayPNG(w, runs, pnls) })
}
