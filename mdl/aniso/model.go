// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aniso

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the material of one layer: the moduli (C33, C44, Ks) and the baseline and
// differential anisotropy
type Model interface {
	Init(prms dbf.Params) error      // initialises model
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Moduli() (c33, c44, ks float64)  // returns C33, C44 and Ks
	Anisotropy() (t, dt Thomsen)     // returns baseline and differential Thomsen parameters
}

// States computes the baseline and differential states of a model
func States(mdl Model) (base, diff *State, err error) {
	c33, c44, ks := mdl.Moduli()
	t, dt := mdl.Anisotropy()
	return Pair(c33, c44, ks, t, dt)
}

// New returns new stiffness model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'aniso' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
