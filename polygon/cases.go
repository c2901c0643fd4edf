// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polygon

import (
	"github.com/cpmech/barriers/mdl/aniso"
	"github.com/cpmech/barriers/tect"
)

// DefaultCases holds three calibration points [psi] inside the polygon of a shale at about
// 7000 ft
var DefaultCases = []tect.Calibration{
	{Sh: 0.75e4, SH: 0.8e4},
	{Sh: 0.875e4, SH: 0.95e4},
	{Sh: 0.85e4, SH: 1.3e4},
}

// Shale returns the input of a shale at about 7000 ft with moduli and stresses in psi. It is
// the reference model of DefaultCases
func Shale(t aniso.Thomsen, n, workers int) Input {
	return Input{
		C33:     3.2e6,
		C44:     1.3e6,
		Ks:      aniso.KsRefPsi,
		T:       t,
		SV:      1e4,
		PP:      4.5e3,
		SD:      1e4,
		N:       n,
		Workers: workers,
	}
}

// Cases evaluates many calibration points
func (o Input) Cases(cals []tect.Calibration) (cells []*Cell, err error) {
	m, err := newModel(o)
	if err != nil {
		return
	}
	cells = make([]*Cell, len(cals))
	for i, cal := range cals {
		c := m.eval(cal.Sh, cal.SH)
		cells[i] = &c
	}
	return
}
