// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package aniso implements stiffness models for transversely isotropic (VTI) rocks
// described by Thomsen's parameters
//  References:
//   [1] Thomsen L (1986) Weak elastic anisotropy. Geophysics, 51(10), 1954-1966
//   [2] Higgins S, Goodwin S, Donald A, Bratton T and Tracy G (2008) Anisotropic stress models
//       improve completion design in the Baxter Shale. SPE 115736
package aniso

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Thomsen holds Thomsen's anisotropy parameters. The same structure is used for the
// differential (drift) values dε, dδ and dγ
type Thomsen struct {
	Eps   float64 `yaml:"eps"`   // ε
	Delta float64 `yaml:"delta"` // δ
	Gamma float64 `yaml:"gamma"` // γ
}

// Add returns o + d
func (o Thomsen) Add(d Thomsen) Thomsen {
	return Thomsen{o.Eps + d.Eps, o.Delta + d.Delta, o.Gamma + d.Gamma}
}

// Mean returns (o + b) / 2
func (o Thomsen) Mean(b Thomsen) Thomsen {
	return Thomsen{(o.Eps + b.Eps) / 2.0, (o.Delta + b.Delta) / 2.0, (o.Gamma + b.Gamma) / 2.0}
}

// IsZero tells whether all parameters are zero
func (o Thomsen) IsZero() bool {
	return o.Eps == 0 && o.Delta == 0 && o.Gamma == 0
}

// String returns a short representation
func (o Thomsen) String() string {
	return io.Sf("ε=%g δ=%g γ=%g", o.Eps, o.Delta, o.Gamma)
}

// Stiffness holds the subset of VTI stiffness components used by the stress models
type Stiffness struct {
	C11 float64 // horizontal P-wave modulus
	C13 float64 // coupling between vertical and horizontal normal components
	C33 float64 // vertical P-wave modulus
	C44 float64 // vertical shear modulus
	C66 float64 // horizontal shear modulus
	Eta float64 // η = (ε - δ) / (1 + 2δ)
}

// Biot holds the horizontal and vertical Biot coefficients
type Biot struct {
	H float64 // horizontal
	V float64 // vertical
}

// State holds stiffness and Biot coefficients for one anisotropy state (baseline or
// differential) at one point of the column
type State struct {
	Thomsen           // anisotropy used to compute this state
	Ks      float64   // bulk modulus of the solid grains
	C       Stiffness // stiffness components
	B       Biot      // Biot coefficients
}

// Calc computes the stiffness components and Biot coefficients
//
//    C11 = C33・(1 + 2ε)
//    C66 = C44・(1 + 2γ)
//    C13 = -C44 + √[(C33 - C44)² + 2δ・(C33² - C33・C44)]
//    η   = (ε - δ) / (1 + 2δ)
//    αh  = 1 - (2・C11 - 2・C66 + C13) / (3・Ks)
//    αv  = 1 - (2・C13 + C33) / (3・Ks)
//
func Calc(c33, c44, ks float64, t Thomsen) (o *State, err error) {

	// C13
	if math.IsNaN(c33) || math.IsNaN(c44) || math.IsNaN(ks) || math.IsNaN(t.Eps) || math.IsNaN(t.Gamma) {
		return nil, &DomainError{"state", "NaN input", newPrms("C33", c33, "C44", c44, "Ks", ks, "eps", t.Eps, "gamma", t.Gamma)}
	}
	rad := (c33-c44)*(c33-c44) + 2.0*t.Delta*(c33*c33-c33*c44)
	if rad < 0 || math.IsNaN(rad) {
		return nil, &DomainError{"C13", "negative radicand", newPrms("C33", c33, "C44", c44, "delta", t.Delta, "radicand", rad)}
	}

	// denominators
	den := 1.0 + 2.0*t.Delta
	if Cancels(1.0, -2.0*t.Delta) {
		return nil, &SingularityError{"eta", "1+2δ is zero", newPrms("delta", t.Delta)}
	}
	if ks == 0 {
		return nil, &SingularityError{"biot", "Ks is zero", newPrms("Ks", ks)}
	}

	// stiffness
	o = &State{Thomsen: t, Ks: ks}
	o.C.C33 = c33
	o.C.C44 = c44
	o.C.C11 = c33 * (1.0 + 2.0*t.Eps)
	o.C.C66 = c44 * (1.0 + 2.0*t.Gamma)
	o.C.C13 = -c44 + math.Sqrt(rad)
	o.C.Eta = (t.Eps - t.Delta) / den

	// Biot coefficients
	o.B.H = 1.0 - (2.0*o.C.C11-2.0*o.C.C66+o.C.C13)/(3.0*ks)
	o.B.V = 1.0 - (2.0*o.C.C13+o.C.C33)/(3.0*ks)
	return
}

// Pair computes the baseline state with t and the differential state with t + dt. C33, C44
// and Ks are the same for both states
func Pair(c33, c44, ks float64, t, dt Thomsen) (base, diff *State, err error) {
	base, err = Calc(c33, c44, ks, t)
	if err != nil {
		return
	}
	diff, err = Calc(c33, c44, ks, t.Add(dt))
	return
}

// Isotropic computes the state with ε = δ = γ = 0; i.e. C11 = C33, C66 = C44 and
// C13 = C33 - 2・C44
func Isotropic(c33, c44, ks float64) (*State, error) {
	return Calc(c33, c44, ks, Thomsen{})
}

// MinDelta returns the smallest δ keeping the C13 radicand non-negative. It returns -∞ if
// C33 ≤ C44 because there is no lower bound in this case
func MinDelta(c33, c44 float64) float64 {
	den := 2.0 * (c33*c33 - c33*c44)
	if den <= 0 {
		return math.Inf(-1)
	}
	return -(c33 - c44) * (c33 - c44) / den
}

// String returns a short representation of the state
func (o State) String() string {
	return io.Sf("C11=%g C13=%g C33=%g C44=%g C66=%g η=%g αh=%g αv=%g", o.C.C11, o.C.C13, o.C.C33, o.C.C44, o.C.C66, o.C.Eta, o.B.H, o.B.V)
}
