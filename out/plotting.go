// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	Alias string    // alias
	X     []float64 // x-values
	Y     []float64 // y-values
	Style plt.A     // style
}

// SplotDat stores all data for one subplot
type SplotDat struct {
	Id     string       // unique identifier
	Title  string       // title of subplot
	Xscale float64      // x-axis scale
	Yscale float64      // y-axis scale
	Xrange []float64    // x range
	Yrange []float64    // y range. use {zmax, zmin} to point depth downwards
	Xlbl   string       // x-axis label (formatted; e.g. "$S_h\;[psi]$")
	Ylbl   string       // y-axis label (formatted; e.g. "$z\;[ft]$")
	Data   []*PltEntity // data and styles to be plotted
}

// Figure holds subplots drawn together
type Figure struct {
	Splots []*SplotDat // all subplots
	Csplot *SplotDat   // current subplot
}

// Splot activates a new subplot window
func (o *Figure) Splot(id, splotTitle string) {
	s := &SplotDat{Id: id, Title: splotTitle}
	o.Splots = append(o.Splots, s)
	o.Csplot = s
}

// SplotConfig configures labels and scales of axes of the current subplot
//  xkey, ykey -- keys of labels; see GetTexLabel
//  xunit, yunit -- units appended to labels
func (o *Figure) SplotConfig(xkey, ykey, xunit, yunit string, xscale, yscale float64) {
	if o.Csplot == nil {
		chk.Panic("SplotConfig must be called after Splot")
	}
	o.Csplot.Xlbl = GetTexLabel(xkey, xunit)
	o.Csplot.Ylbl = GetTexLabel(ykey, yunit)
	o.Csplot.Xscale = xscale
	o.Csplot.Yscale = yscale
}

// Plot adds x-y data to the current subplot
func (o *Figure) Plot(x, y []float64, alias string, style plt.A) {
	if len(x) != len(y) {
		chk.Panic("lengths of x- and y-series are different. len(x)=%d, len(y)=%d, alias=%q", len(x), len(y), alias)
	}
	if o.Csplot == nil {
		o.Splot("0", "")
	}
	o.Csplot.Data = append(o.Csplot.Data, &PltEntity{Alias: alias, X: x, Y: y, Style: style})
}

// Draw draws and saves figure
//  dirout -- directory to save figure
//  fnkey  -- file name key (without extension). Use "" to show figure instead
//  nr     -- number of rows. Use -1 to compute best value
//  nc     -- number of columns. Use -1 to compute best value
//  split  -- split subplots into separated figures
//  extra  -- is called just after Subplot command and before any plotting
func (o Figure) Draw(dirout, fnkey string, nr, nc int, split bool, extra func(id string)) {
	nplots := len(o.Splots)
	if nplots == 0 {
		return
	}
	if nr < 0 || nc < 0 {
		nr, nc = utl.BestSquare(nplots)
	}
	for k, spl := range o.Splots {
		if !split {
			plt.Subplot(nr, nc, k+1)
		}
		if extra != nil {
			extra(spl.Id)
		}
		if spl.Title != "" {
			plt.Title(spl.Title, nil)
		}
		for _, d := range spl.Data {
			sty := d.Style
			if sty.L == "" {
				sty.L = d.Alias
			}
			x, y := d.X, d.Y
			if spl.Xscale != 0 && spl.Xscale != 1 {
				x = utl.GetMapped(d.X, func(v float64) float64 { return spl.Xscale * v })
			}
			if spl.Yscale != 0 && spl.Yscale != 1 {
				y = utl.GetMapped(d.Y, func(v float64) float64 { return spl.Yscale * v })
			}
			plt.Plot(x, y, &sty)
		}
		plt.Gll(spl.Xlbl, spl.Ylbl, nil)
		if len(spl.Xrange) == 2 {
			plt.AxisXrange(spl.Xrange[0], spl.Xrange[1])
		}
		if len(spl.Yrange) == 2 {
			plt.AxisYrange(spl.Yrange[0], spl.Yrange[1])
		}
		if split && fnkey != "" {
			plt.Save(dirout, fnkey+"_"+spl.Id)
			plt.Clf()
		}
	}
	if !split && fnkey != "" {
		plt.Save(dirout, fnkey)
	}
	if fnkey == "" {
		plt.Show()
	}
}
