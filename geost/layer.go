// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geost composes layered columns into depth profiles
package geost

import (
	"github.com/cpmech/barriers/mdl/aniso"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Layer holds the material of one column layer
type Layer struct {
	Name      string        // name of layer; e.g. "top"
	Thickness float64       // thickness of layer
	C33       float64       // vertical P-wave modulus
	C44       float64       // vertical shear modulus
	Ks        float64       // bulk modulus of grains
	T         aniso.Thomsen // baseline anisotropy
	Dt        aniso.Thomsen // differential anisotropy
}

// NewLayer allocates a layer with the material given by model name and parameters
func NewLayer(name string, thickness float64, model string, prms dbf.Params) (o *Layer, err error) {
	mdl, err := aniso.New(model)
	if err != nil {
		return
	}
	err = mdl.Init(prms)
	if err != nil {
		return nil, chk.Err("layer %q: %v", name, err)
	}
	o = &Layer{Name: name, Thickness: thickness}
	o.C33, o.C44, o.Ks = mdl.Moduli()
	o.T, o.Dt = mdl.Anisotropy()
	return
}

// Mean returns the arithmetic mean of every parameter of o and b
func (o Layer) Mean(b *Layer) *Layer {
	return &Layer{
		Name:      o.Name + "/" + b.Name,
		Thickness: 0,
		C33:       (o.C33 + b.C33) / 2.0,
		C44:       (o.C44 + b.C44) / 2.0,
		Ks:        (o.Ks + b.Ks) / 2.0,
		T:         o.T.Mean(b.T),
		Dt:        o.Dt.Mean(b.Dt),
	}
}

// States computes the baseline and differential stiffness states of this layer
func (o Layer) States() (base, diff *aniso.State, err error) {
	return aniso.Pair(o.C33, o.C44, o.Ks, o.T, o.Dt)
}
