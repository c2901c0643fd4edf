// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aniso

import (
	"errors"
	"math"
	"strings"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// classes of numeric failures; use errors.Is to check them
var (
	ErrDomain   = errors.New("domain error")
	ErrSingular = errors.New("singularity")
)

// DomainError is returned when a formula is evaluated outside its domain; e.g. a negative
// radicand when computing C13
type DomainError struct {
	Op   string     // formula; e.g. "C13"
	Msg  string     // what went wrong
	Prms dbf.Params // offending values
}

// Error implements error
func (o *DomainError) Error() string {
	return io.Sf("%s: %s: %s [%s]", ErrDomain, o.Op, o.Msg, prmsString(o.Prms))
}

// Is allows errors.Is(err, ErrDomain)
func (o *DomainError) Is(target error) bool { return target == ErrDomain }

// SingularityError is returned when a formula would divide by zero
type SingularityError struct {
	Op   string     // formula; e.g. "eta"
	Msg  string     // what went wrong
	Prms dbf.Params // offending values
}

// Error implements error
func (o *SingularityError) Error() string {
	return io.Sf("%s: %s: %s [%s]", ErrSingular, o.Op, o.Msg, prmsString(o.Prms))
}

// Is allows errors.Is(err, ErrSingular)
func (o *SingularityError) Is(target error) bool { return target == ErrSingular }

// NewSingularityError returns a SingularityError. nameValues are pairs of (string, float64)
func NewSingularityError(op, msg string, nameValues ...interface{}) error {
	return &SingularityError{op, msg, newPrms(nameValues...)}
}

// RoundOff is the relative tolerance below which two terms of a denominator cancel
const RoundOff = 1e-12

// Cancels tells whether a - b is zero up to round-off relative to the largest of |a| and |b|
func Cancels(a, b float64) bool {
	return math.Abs(a-b) <= RoundOff*math.Max(math.Abs(a), math.Abs(b))
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////

// newPrms builds parameters from (name, value) pairs
func newPrms(nameValues ...interface{}) (prms dbf.Params) {
	for i := 0; i+1 < len(nameValues); i += 2 {
		prms = append(prms, &dbf.P{N: nameValues[i].(string), V: nameValues[i+1].(float64)})
	}
	return
}

// prmsString returns "a=1 b=2"
func prmsString(prms dbf.Params) string {
	l := make([]string, len(prms))
	for i, p := range prms {
		l[i] = io.Sf("%s=%g", p.N, p.V)
	}
	return strings.Join(l, " ")
}
