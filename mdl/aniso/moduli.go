// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aniso

import "math"

// unit conversions and reference values used with field (psi) logs
const (
	PaToPsi  = 0.00014504        // [psi/Pa]
	KsRefPa  = 76.8e9            // [Pa] reference bulk modulus of grains (calcite)
	KsRefPsi = KsRefPa * PaToPsi // [psi]
)

// Moduli holds the engineering constants of a VTI medium, as given by sonic logs
type Moduli struct {
	Ev  float64 // vertical Young's modulus
	Eh  float64 // horizontal Young's modulus
	NuV float64 // vertical Poisson's coefficient
	NuH float64 // horizontal Poisson's coefficient
}

// Cij holds the VTI stiffness components computed from Moduli
type Cij struct {
	C11, C12, C13, C33, C44, C66 float64
}

// Stiffness computes the stiffness components from the engineering constants
//
//    d   = (1 - νh)・Ev - 2・νv²・Eh
//    C11 = (Eh・Ev - νv²・Eh²) / ((1 + νh)・d)
//    C33 = (Ev² - νh・Ev²) / d
//    C12 = (νv²・Eh² + νh・Eh・Ev) / ((1 + νh)・d)
//    C13 = νv・Ev・Eh / d
//    C66 = (C11 - C12) / 2
//
// C44 cannot be recovered from these four constants and is left zero; see BackThomsen
func (o Moduli) Stiffness() (c Cij, err error) {
	d := (1.0-o.NuH)*o.Ev - 2.0*o.NuV*o.NuV*o.Eh
	if Cancels((1.0-o.NuH)*o.Ev, 2.0*o.NuV*o.NuV*o.Eh) || Cancels(o.NuH, -1) {
		return c, NewSingularityError("moduli", "zero denominator", "Ev", o.Ev, "Eh", o.Eh, "nuv", o.NuV, "nuh", o.NuH)
	}
	ν2 := o.NuV * o.NuV
	c.C11 = (o.Eh*o.Ev - ν2*o.Eh*o.Eh) / ((1.0 + o.NuH) * d)
	c.C33 = (o.Ev*o.Ev - o.NuH*o.Ev*o.Ev) / d
	c.C12 = (ν2*o.Eh*o.Eh + o.NuH*o.Eh*o.Ev) / ((1.0 + o.NuH) * d)
	c.C13 = o.NuV * o.Ev * o.Eh / d
	c.C66 = (c.C11 - c.C12) / 2.0
	return
}

// Biot computes the Biot coefficients from the full set of horizontal components, with
// the grains bulk modulus ks
//
//    αv = 1 - (2・C13 + C33) / (3・Ks)
//    αh = 1 - (C11 + C12 + C13) / (3・Ks)
//
func (o Cij) Biot(ks float64) Biot {
	return Biot{
		H: 1.0 - (o.C11+o.C12+o.C13)/(3.0*ks),
		V: 1.0 - (2.0*o.C13+o.C33)/(3.0*ks),
	}
}

// BackThomsen recovers Thomsen's parameters and C44 from C11, C13, C33 and C66 assuming
// γ = ε (elliptical shear)
//
//    ε   = (C11 - C33) / (2・C33)
//    γ   = ε
//    C44 = C66 / (1 + 2γ)
//    δ   = [(C13 + C44)² - (C33 - C44)²] / (2・C33・(C33 - C44))
//
// The returned Cij has C44 set
func (o Cij) BackThomsen() (t Thomsen, c Cij, err error) {
	c = o
	if o.C33 == 0 {
		return t, c, NewSingularityError("thomsen", "C33 is zero", "C33", o.C33)
	}
	t.Eps = (o.C11 - o.C33) / (2.0 * o.C33)
	t.Gamma = t.Eps
	c.C44 = o.C66 / (1.0 + 2.0*t.Gamma)
	if Cancels(o.C33, c.C44) {
		return t, c, NewSingularityError("thomsen", "C33 equals C44", "C33", o.C33, "C44", c.C44)
	}
	t.Delta = (math.Pow(o.C13+c.C44, 2) - math.Pow(o.C33-c.C44, 2)) / (2.0 * o.C33 * (o.C33 - c.C44))
	return
}
