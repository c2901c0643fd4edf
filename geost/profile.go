// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geost

import (
	"fmt"
	"math"

	"github.com/cpmech/barriers/ana"
	"github.com/cpmech/barriers/mdl/aniso"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Kind tells which layer a sample belongs to
type Kind int

// kinds of samples
const (
	TopKind Kind = iota
	TransitionKind
	BottomKind
)

// String returns the name of kind
func (o Kind) String() string {
	switch o {
	case TopKind:
		return "top"
	case TransitionKind:
		return "transition"
	case BottomKind:
		return "bottom"
	}
	return "unknown"
}

// Grid defines equally spaced depths
type Grid struct {
	Ztop float64 // depth of first sample
	Dz   float64 // spacing
	Npts int     // number of samples
}

// NewGrid returns a new grid with npts samples starting at ztop
func NewGrid(ztop, dz float64, npts int) (o Grid, err error) {
	if npts < 2 {
		return o, chk.Err("grid: number of points must be at least 2. npts=%d", npts)
	}
	if dz <= 0 {
		return o, chk.Err("grid: spacing must be positive. dz=%g", dz)
	}
	return Grid{ztop, dz, npts}, nil
}

// GridSpan returns a grid with npts samples spanning [ztop, ztop+thickness] including both ends
func GridSpan(ztop, thickness float64, npts int) (o Grid, err error) {
	if npts < 2 {
		return o, chk.Err("grid: number of points must be at least 2. npts=%d", npts)
	}
	return NewGrid(ztop, thickness/float64(npts-1), npts)
}

// Depths returns all depths
func (o Grid) Depths() []float64 {
	return utl.LinSpace(o.Ztop, o.Zbot(), o.Npts)
}

// Zbot returns the depth of the last sample
func (o Grid) Zbot() float64 {
	return o.Ztop + o.Dz*float64(o.Npts-1)
}

// Sample holds the state of one depth sample
type Sample struct {
	Index int           // index of sample
	Z     float64       // depth
	SV    float64       // overburden
	PP    float64       // pore pressure
	C33   float64       // vertical P-wave modulus
	C44   float64       // vertical shear modulus
	Ks    float64       // bulk modulus of grains
	T     aniso.Thomsen // baseline anisotropy
	Dt    aniso.Thomsen // differential anisotropy
	Kind  Kind          // top, transition or bottom
}

// Profile holds the samples of a two-layers column
type Profile struct {
	Samples []*Sample // all samples in increasing depth order
	trans   int       // index of transition sample; -1 if none
}

// Compose builds the depth profile of a column with top and bottom layers. Samples above
// zpart take the top layer; the first sample at or below zpart takes the mean of both layers;
// the remaining samples take the bottom layer
func Compose(top, bot *Layer, grid Grid, zpart float64, col ana.Column) (o Profile, err error) {
	if top == nil || bot == nil {
		return o, chk.Err("compose: top and bottom layers must be given")
	}
	if grid.Npts < 2 {
		return o, chk.Err("compose: grid must have at least 2 points. npts=%d", grid.Npts)
	}
	if math.IsNaN(zpart) {
		return o, chk.Err("compose: partition depth is NaN")
	}
	mid := top.Mean(bot)
	o.trans = -1
	o.Samples = make([]*Sample, grid.Npts)
	for i, z := range grid.Depths() {
		lay, kind := top, TopKind
		if z >= zpart {
			if o.trans < 0 {
				o.trans = i
				lay, kind = mid, TransitionKind
			} else {
				lay, kind = bot, BottomKind
			}
		}
		sv, pp := col.Calc(z)
		o.Samples[i] = &Sample{
			Index: i,
			Z:     z,
			SV:    sv,
			PP:    pp,
			C33:   lay.C33,
			C44:   lay.C44,
			Ks:    lay.Ks,
			T:     lay.T,
			Dt:    lay.Dt,
			Kind:  kind,
		}
	}
	return
}

// Transition returns the index of the transition sample or -1 if the partition is below
// the last sample
func (o Profile) Transition() int {
	return o.trans
}

// Depths returns the depths of all samples
func (o Profile) Depths() (z []float64) {
	z = make([]float64, len(o.Samples))
	for i, s := range o.Samples {
		z[i] = s.Z
	}
	return
}

// Nearest returns the sample closest to depth z
func (o Profile) Nearest(z float64) (s *Sample) {
	best := math.Inf(1)
	for _, smp := range o.Samples {
		if d := math.Abs(smp.Z - z); d < best {
			best, s = d, smp
		}
	}
	if s == nil {
		chk.Panic("profile has no samples")
	}
	return
}

// Reference returns the reference (first) sample where calibration stresses are given
func (o Profile) Reference() *Sample {
	if len(o.Samples) == 0 {
		chk.Panic("profile has no samples")
	}
	return o.Samples[0]
}

// States computes the baseline and differential stiffness states of every sample
func (o Profile) States() (base, diff []*aniso.State, err error) {
	base = make([]*aniso.State, len(o.Samples))
	diff = make([]*aniso.State, len(o.Samples))
	for i, s := range o.Samples {
		base[i], diff[i], err = aniso.Pair(s.C33, s.C44, s.Ks, s.T, s.Dt)
		if err != nil {
			return nil, nil, fmt.Errorf("sample %d (%s) at z=%g: %w", i, s.Kind, s.Z, err)
		}
	}
	return
}
