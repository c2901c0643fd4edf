// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aniso

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Iso implements an isotropic layer; both states are isotropic
type Iso struct {
	C33 float64 // [Pa] P-wave modulus
	C44 float64 // [Pa] shear modulus
	Ks  float64 // [Pa] bulk modulus of grains
}

// add model to factory
func init() {
	allocators["iso"] = func() Model { return new(Iso) }
}

// Init initialises model. Young's modulus and Poisson's coefficient may be given instead
// of C33 and C44
func (o *Iso) Init(prms dbf.Params) (err error) {
	var E, ν float64
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "c33":
			o.C33 = p.V
		case "c44":
			o.C44 = p.V
		case "ks":
			o.Ks = p.V
		case "e":
			E = p.V
		case "nu":
			ν = p.V
		default:
			return chk.Err("iso: parameter named %q is incorrect\n", p.N)
		}
	}
	if E > 0 {
		if ν <= -1 || ν >= 0.5 {
			return chk.Err("iso: Poisson's coefficient must be in (-1, 0.5). nu=%g", ν)
		}
		o.C33 = E * (1.0 - ν) / ((1.0 + ν) * (1.0 - 2.0*ν))
		o.C44 = E / (2.0 * (1.0 + ν))
	}
	return checkModuli("iso", o.C33, o.C44, o.Ks)
}

// GetPrms gets (an example) of parameters
func (o Iso) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "C33", V: 1e9}, // [Pa]
			&dbf.P{N: "C44", V: 5e8}, // [Pa]
			&dbf.P{N: "Ks", V: 1e8},  // [Pa]
		}
	}
	return dbf.Params{
		&dbf.P{N: "C33", V: o.C33},
		&dbf.P{N: "C44", V: o.C44},
		&dbf.P{N: "Ks", V: o.Ks},
	}
}

// Moduli returns C33, C44 and Ks
func (o Iso) Moduli() (c33, c44, ks float64) { return o.C33, o.C44, o.Ks }

// Anisotropy returns zero parameters
func (o Iso) Anisotropy() (t, dt Thomsen) { return }
