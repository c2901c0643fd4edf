// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/barriers/geost"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// defaultPrms returns the parameters of the layers in the two-layers scenario
func defaultPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "C33", V: 1e9},
		&dbf.P{N: "C44", V: 5e8},
		&dbf.P{N: "Ks", V: 1e8},
		&dbf.P{N: "eps", V: 0},
		&dbf.P{N: "delta", V: 0},
		&dbf.P{N: "gamma", V: 0},
		&dbf.P{N: "deps", V: 0},
		&dbf.P{N: "ddelta", V: 0},
		&dbf.P{N: "dgamma", V: 0},
	}
}

// Alloc allocates and initialises the material model of a layer
func (o LayerData) Alloc(name string) (lay *geost.Layer, err error) {
	model := o.Model
	if model == "" {
		model = "vti"
	}
	lay, err = geost.NewLayer(name, o.Thickness, model, o.Prms)
	if err != nil {
		return nil, chk.Err("cannot allocate layer %q with model %q: %v", name, model, err)
	}
	return
}

// AllocLayers allocates the top and bottom layers
func (o Scenario) AllocLayers() (top, bot *geost.Layer, err error) {
	if o.Layers.Top == nil || o.Layers.Bottom == nil {
		return nil, nil, chk.Err("top and bottom layers must be given")
	}
	top, err = o.Layers.Top.Alloc("top")
	if err != nil {
		return
	}
	bot, err = o.Layers.Bottom.Alloc("bottom")
	return
}

// SetPrm sets the value of parameter name of layer ("top", "bottom" or "both"). The
// parameter is appended if absent
func (o *Scenario) SetPrm(layer, name string, value float64) (err error) {
	var layers []*LayerData
	switch layer {
	case "top":
		layers = []*LayerData{o.Layers.Top}
	case "bottom":
		layers = []*LayerData{o.Layers.Bottom}
	case "both":
		layers = []*LayerData{o.Layers.Top, o.Layers.Bottom}
	default:
		return chk.Err("layer %q is incorrect; options are \"top\", \"bottom\" and \"both\"", layer)
	}
	for _, l := range layers {
		if l == nil {
			return chk.Err("layer %q is not given", layer)
		}
		p := l.Prms.Find(name)
		if p == nil {
			l.Prms = append(l.Prms, &dbf.P{N: name, V: value})
			continue
		}
		p.V = value
	}
	return
}
