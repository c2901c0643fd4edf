// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input of scenarios for stress barrier analyses
package inp

import (
	"bytes"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/barriers/ana"
	"github.com/cpmech/barriers/geost"
	"github.com/cpmech/barriers/tect"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// ColumnData holds the geometry of the column and the geostatic gradients
type ColumnData struct {
	Ztop      float64 `yaml:"ztop"`      // depth of first sample (reference depth)
	Thickness float64 `yaml:"thickness"` // depth span of samples
	Npts      int     `yaml:"npts"`      // number of samples
	Zpart     float64 `yaml:"zpart"`     // depth of partition between top and bottom layers; default = ztop + top thickness
	SVG       float64 `yaml:"svg"`       // overburden gradient
	PPRatio   float64 `yaml:"ppratio"`   // pore pressure to overburden ratio
	SD        float64 `yaml:"sd"`        // depth used in the vertical term of the strain model; default = ztop
}

// LayerData holds the material of one layer
type LayerData struct {
	Model     string     `yaml:"model"`     // name of model; "vti" or "iso". default = "vti"
	Thickness float64    `yaml:"thickness"` // thickness of layer
	Prms      dbf.Params `yaml:"prms"`      // model parameters
}

// LayersData holds the top and bottom layers
type LayersData struct {
	Top    *LayerData `yaml:"top"`
	Bottom *LayerData `yaml:"bottom"`
}

// CalibData holds the calibration stresses. Either ratios of the overburden at the
// reference depth (shratio, dshratio) or absolute values (sh, bigsh) are given
type CalibData struct {
	ShRatio  *float64 `yaml:"shratio"`  // Sh / SV0
	DShRatio float64  `yaml:"dshratio"` // (SH - Sh) / SV0
	Sh       *float64 `yaml:"sh"`       // minimum horizontal stress
	SH       *float64 `yaml:"bigsh"`    // maximum horizontal stress
}

// PolygonData holds the settings of the stress polygon
type PolygonData struct {
	Npts    int     `yaml:"npts"`    // number of points along each axis
	Workers int     `yaml:"workers"` // number of concurrent rows; ≤ 1 means sequential
	Depth   float64 `yaml:"depth"`   // depth where the polygon is computed; default = ztop
}

// Scenario holds all input data of one analysis
type Scenario struct {

	// input
	Name        string      `yaml:"name"`        // name of scenario
	Column      ColumnData  `yaml:"column"`      // column data
	Layers      LayersData  `yaml:"layers"`      // layers
	Calibration CalibData   `yaml:"calibration"` // calibration point
	Polygon     PolygonData `yaml:"polygon"`     // polygon settings

	// derived
	Key string `yaml:"-"` // filename key or name of scenario
}

// Default returns the two-layers scenario with zero anisotropy, SD = 2000 and 40 samples
// over 20 m
func Default() *Scenario {
	r := 1.0
	return &Scenario{
		Name: "two-layers",
		Column: ColumnData{
			Ztop:      2000,
			Thickness: 20,
			Npts:      40,
			Zpart:     2010,
			SVG:       2,
			PPRatio:   0.8,
		},
		Layers: LayersData{
			Top:    &LayerData{Model: "vti", Thickness: 10, Prms: defaultPrms()},
			Bottom: &LayerData{Model: "vti", Thickness: 10, Prms: defaultPrms()},
		},
		Calibration: CalibData{ShRatio: &r},
		Polygon:     PolygonData{Npts: 300, Workers: 1},
		Key:         "two-layers",
	}
}

// Load reads a scenario from a YAML file. Missing values take the defaults
func Load(path string) (o *Scenario, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read scenario file %q: %v", path, err)
	}
	o, err = Read(bytes.NewReader(b))
	if err != nil {
		return nil, chk.Err("scenario file %q: %v", path, err)
	}
	if o.Name == "" {
		o.Key = io.FnKey(filepath.Base(path))
	}
	return
}

// Read decodes a scenario from r and validates it
func Read(r goio.Reader) (o *Scenario, err error) {
	o = Default()
	o.Name = ""
	o.Column.Zpart = 0
	o.Layers = LayersData{}
	o.Calibration = CalibData{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err = dec.Decode(o)
	if err != nil {
		return nil, chk.Err("cannot decode scenario: %v", err)
	}
	o.Key = o.Name
	if o.Key == "" {
		o.Key = "scenario"
	}
	err = o.Validate()
	if err != nil {
		return nil, err
	}
	return
}

// Validate checks the input data
func (o *Scenario) Validate() (err error) {
	c := o.Column
	if c.Npts < 2 {
		return chk.Err("column.npts must be at least 2. npts=%d", c.Npts)
	}
	if c.Thickness <= 0 {
		return chk.Err("column.thickness must be positive. thickness=%g", c.Thickness)
	}
	if c.Ztop <= 0 {
		return chk.Err("column.ztop must be positive. ztop=%g", c.Ztop)
	}
	if c.SD < 0 {
		return chk.Err("column.sd must be non-negative. sd=%g", c.SD)
	}
	if _, err = o.ColumnModel(); err != nil {
		return
	}
	for name, l := range map[string]*LayerData{"top": o.Layers.Top, "bottom": o.Layers.Bottom} {
		if l == nil {
			return chk.Err("layers.%s must be given", name)
		}
		if len(l.Prms) == 0 {
			return chk.Err("layers.%s.prms must be given", name)
		}
		if l.Thickness < 0 {
			return chk.Err("layers.%s.thickness must be non-negative. thickness=%g", name, l.Thickness)
		}
	}
	if zpart := o.Partition(); zpart <= c.Ztop {
		return chk.Err("column.zpart must be below ztop. zpart=%g, ztop=%g", zpart, c.Ztop)
	}
	cal := o.Calibration
	if cal.ShRatio != nil && (cal.Sh != nil || cal.SH != nil) {
		return chk.Err("calibration: either ratios (shratio, dshratio) or stresses (sh, bigsh) must be given, not both")
	}
	if cal.ShRatio == nil && (cal.Sh == nil || cal.SH == nil) {
		return chk.Err("calibration: shratio or both sh and bigsh must be given")
	}
	if o.Polygon.Npts == 1 || o.Polygon.Npts < 0 {
		return chk.Err("polygon.npts must be at least 2. npts=%d", o.Polygon.Npts)
	}
	return
}

// ColumnModel returns the geostatic column
func (o Scenario) ColumnModel() (col ana.Column, err error) {
	err = col.Init(dbf.Params{
		&dbf.P{N: "svg", V: o.Column.SVG},
		&dbf.P{N: "ppratio", V: o.Column.PPRatio},
	})
	return
}

// Grid returns the depth grid
func (o Scenario) Grid() (geost.Grid, error) {
	return geost.GridSpan(o.Column.Ztop, o.Column.Thickness, o.Column.Npts)
}

// Partition returns the depth of the partition between top and bottom layers. If zpart is
// not given, the top layer starts at ztop; without its thickness, the partition is at the
// middle of the column
func (o Scenario) Partition() float64 {
	c := o.Column
	if c.Zpart != 0 {
		return c.Zpart
	}
	if o.Layers.Top != nil && o.Layers.Top.Thickness > 0 {
		return c.Ztop + o.Layers.Top.Thickness
	}
	return c.Ztop + c.Thickness/2.0
}

// RefDepth returns the depth used in the vertical term of the strain model
func (o Scenario) RefDepth() float64 {
	if o.Column.SD > 0 {
		return o.Column.SD
	}
	return o.Column.Ztop
}

// CalibrationPoint returns the calibration stresses; sv0 is the overburden at the reference
// depth
func (o Scenario) CalibrationPoint(sv0 float64) tect.Calibration {
	if o.Calibration.ShRatio != nil {
		return tect.FromRatios(*o.Calibration.ShRatio, o.Calibration.DShRatio, sv0)
	}
	return tect.Calibration{Sh: *o.Calibration.Sh, SH: *o.Calibration.SH}
}

// PolygonNpts returns the number of points along each polygon axis
func (o Scenario) PolygonNpts() int {
	if o.Polygon.Npts == 0 {
		return 300
	}
	return o.Polygon.Npts
}

// PolygonDepth returns the depth where the polygon is computed
func (o Scenario) PolygonDepth() float64 {
	if o.Polygon.Depth > 0 {
		return o.Polygon.Depth
	}
	return o.Column.Ztop
}
