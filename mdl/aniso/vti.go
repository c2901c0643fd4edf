// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aniso

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Vti implements a transversely isotropic layer with vertical symmetry axis. The drift
// parameters (deps, ddelta, dgamma) define the differential state
type Vti struct {
	C33 float64 // [Pa] vertical P-wave modulus
	C44 float64 // [Pa] vertical shear modulus
	Ks  float64 // [Pa] bulk modulus of grains
	T   Thomsen // baseline anisotropy
	Dt  Thomsen // differential anisotropy
}

// add model to factory
func init() {
	allocators["vti"] = func() Model { return new(Vti) }
}

// Init initialises model
func (o *Vti) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "c33":
			o.C33 = p.V
		case "c44":
			o.C44 = p.V
		case "ks":
			o.Ks = p.V
		case "eps":
			o.T.Eps = p.V
		case "delta":
			o.T.Delta = p.V
		case "gamma":
			o.T.Gamma = p.V
		case "deps":
			o.Dt.Eps = p.V
		case "ddelta":
			o.Dt.Delta = p.V
		case "dgamma":
			o.Dt.Gamma = p.V
		default:
			return chk.Err("vti: parameter named %q is incorrect\n", p.N)
		}
	}
	return checkModuli("vti", o.C33, o.C44, o.Ks)
}

// GetPrms gets (an example) of parameters
func (o Vti) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "C33", V: 1e9},   // [Pa]
			&dbf.P{N: "C44", V: 5e8},   // [Pa]
			&dbf.P{N: "Ks", V: 1e8},    // [Pa]
			&dbf.P{N: "eps", V: 0.2},   // [-]
			&dbf.P{N: "delta", V: 0.1}, // [-]
			&dbf.P{N: "gamma", V: 0.2}, // [-]
			&dbf.P{N: "deps", V: 0},    // [-]
			&dbf.P{N: "ddelta", V: 0},  // [-]
			&dbf.P{N: "dgamma", V: 0},  // [-]
		}
	}
	return dbf.Params{
		&dbf.P{N: "C33", V: o.C33},
		&dbf.P{N: "C44", V: o.C44},
		&dbf.P{N: "Ks", V: o.Ks},
		&dbf.P{N: "eps", V: o.T.Eps},
		&dbf.P{N: "delta", V: o.T.Delta},
		&dbf.P{N: "gamma", V: o.T.Gamma},
		&dbf.P{N: "deps", V: o.Dt.Eps},
		&dbf.P{N: "ddelta", V: o.Dt.Delta},
		&dbf.P{N: "dgamma", V: o.Dt.Gamma},
	}
}

// Moduli returns C33, C44 and Ks
func (o Vti) Moduli() (c33, c44, ks float64) { return o.C33, o.C44, o.Ks }

// Anisotropy returns baseline and differential Thomsen parameters
func (o Vti) Anisotropy() (t, dt Thomsen) { return o.T, o.Dt }

// checkModuli checks that moduli are positive
func checkModuli(model string, c33, c44, ks float64) error {
	if c33 <= 0 || c44 <= 0 {
		return chk.Err("%s: C33 and C44 must be positive. C33=%g, C44=%g", model, c33, c44)
	}
	if ks == 0 {
		return chk.Err("%s: Ks must be non-zero", model)
	}
	return nil
}
