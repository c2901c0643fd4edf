// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/plt"
)

// Styles holds the line styles of stresses along columns and wells
var Styles = map[string]plt.A{
	"SV":   {C: "r", Lw: 1, L: "SV"},
	"PP":   {C: "c", Lw: 1, L: "PP"},
	"Sh":   {C: "k", Lw: 2, L: "Sh"},
	"SH":   {C: "b", Lw: 2, L: "SH"},
	"Sh_D": {C: "k", Lw: 2, Ls: "--", L: "Sh diff"},
	"SH_D": {C: "b", Lw: 2, Ls: "--", L: "SH diff"},
	"iso":  {C: "k", Lw: 2, L: "iso"},
	"ani":  {C: "b", Lw: 2, L: "ani"},
	"ane":  {C: "m", Lw: 2, Ls: "--", L: "ani (no δ)"},
	"calc": {C: "g", Lw: 1, Ls: ":", L: "moduli"},
}

// Style returns the style corresponding to key or a black line if not found
func Style(key string) plt.A {
	if s, ok := Styles[key]; ok {
		return s
	}
	return plt.A{C: "k", L: key}
}

// GetTexLabel returns a TeX label corresponding to key
func GetTexLabel(key, unit string) string {
	l := "$"
	switch key {
	case "z":
		l += "z"
	case "SV":
		l += "S_V"
	case "PP":
		l += "P_p"
	case "Sh":
		l += "S_h"
	case "SH":
		l += "S_H"
	case "Sh_D", "ShD":
		l += "S_h^{d}"
	case "SH_D", "SHD":
		l += "S_H^{d}"
	case "Smin":
		l += "S_{min}"
	case "Smax":
		l += "S_{max}"
	case "grad":
		l += "\\mathrm{d}S/\\mathrm{d}z"
	case "Cij":
		l += "C_{ij}"
	case "stress":
		l += "\\sigma"
	case "eps":
		l += "\\varepsilon"
	case "delta":
		l += "\\delta"
	case "gamma":
		l += "\\gamma"
	default:
		l += key
	}
	if unit != "" {
		l += "\\;" + unit
	}
	l += "$"
	return l
}
