// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package wlog reads sonic well logs and computes the horizontal stresses along the well
// with isotropic and anisotropic models
package wlog

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/utl"
)

// Log holds the columns of a well log. Moduli and stresses are in psi
type Log struct {
	Depth []float64 // depth
	SigV  []float64 // overburden
	PP    []float64 // pore pressure
	Ev    []float64 // vertical Young's modulus
	Eh    []float64 // horizontal Young's modulus
	NuV   []float64 // vertical Poisson's coefficient
	NuH   []float64 // horizontal Poisson's coefficient
}

// aliases maps lower case column names to the index of the column in Log.columns
var aliases = map[string]int{
	"depth": 0, "z": 0,
	"sigv": 1, "sigv_psi": 1, "sv": 1,
	"pp": 2, "pprs": 2, "pprs_psi": 2,
	"ev": 3, "yme_v": 3, "yme_v_psi": 3,
	"eh": 4, "yme_h": 4, "yme_h_psi": 4,
	"nuv": 5, "pr_v": 5, "pr_v_psi": 5,
	"nuh": 6, "pr_h": 6, "pr_h_psi": 6,
}

var names = []string{"depth", "sigv", "pp", "ev", "eh", "nuv", "nuh"}

// columns returns pointers to all columns in the order of names
func (o *Log) columns() []*[]float64 {
	return []*[]float64{&o.Depth, &o.SigV, &o.PP, &o.Ev, &o.Eh, &o.NuV, &o.NuH}
}

// Len returns the number of samples
func (o Log) Len() int { return len(o.Depth) }

// ReadFile reads a log from a CSV file
func ReadFile(path string) (*Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, chk.Err("cannot open well log file %q: %v", path, err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV reads a log with a header row. Column names are case insensitive and unknown
// columns are ignored; all seven quantities must be present
func ReadCSV(r io.Reader) (o *Log, err error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, chk.Err("cannot read well log: %v", err)
	}
	if len(rows) < 2 {
		return nil, chk.Err("well log must have a header and at least one row")
	}

	// header
	idx := make([]int, len(names))
	for i := range idx {
		idx[i] = -1
	}
	for j, name := range rows[0] {
		if i, ok := aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
			if idx[i] >= 0 {
				return nil, chk.Err("well log has duplicated column %q", names[i])
			}
			idx[i] = j
		}
	}
	for i, j := range idx {
		if j < 0 {
			return nil, chk.Err("well log is missing column %q", names[i])
		}
	}

	// values
	o = new(Log)
	cols := o.columns()
	for _, c := range cols {
		*c = make([]float64, 0, len(rows)-1)
	}
	for k, row := range rows[1:] {
		for i, j := range idx {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[j]), 64)
			if err != nil {
				return nil, chk.Err("well log: row %d, column %q: %v", k+2, names[i], err)
			}
			*cols[i] = append(*cols[i], v)
		}
	}
	return
}

// Upsample returns a copy of the log with factor times more samples by linear interpolation
// between consecutive rows. The last row is held
func (o Log) Upsample(factor int) (res *Log) {
	if factor < 1 {
		chk.Panic("upsampling factor must be positive. factor=%d", factor)
	}
	res = new(Log)
	src, dst := (&o).columns(), res.columns()
	for i := range src {
		*dst[i] = Upsample(*src[i], factor)
	}
	return
}

// Window returns the rows in [i0, i1)
func (o Log) Window(i0, i1 int) (res *Log) {
	if i0 < 0 || i1 > o.Len() || i0 > i1 {
		chk.Panic("window [%d,%d) is out of range [0,%d)", i0, i1, o.Len())
	}
	res = new(Log)
	src, dst := (&o).columns(), res.columns()
	for i := range src {
		*dst[i] = Window(*src[i], i0, i1)
	}
	return
}

// Upsample returns len(x)・factor values; x[i] is kept at i・factor and the values in between
// are interpolated linearly. The values after the last sample repeat it
func Upsample(x []float64, factor int) (y []float64) {
	n := len(x)
	if n == 0 {
		return
	}
	if n == 1 {
		return utl.Vals(factor, x[0])
	}
	idx := utl.LinSpace(0, float64(n-1), n)
	lin := fun.NewDataInterp("lin", 1, idx, x)
	y = make([]float64, n*factor)
	for i := range y {
		t := float64(i) / float64(factor)
		if t >= float64(n-1) {
			y[i] = x[n-1]
			continue
		}
		y[i] = lin.P(t)
	}
	return
}

// Window returns a copy of x[i0:i1]
func Window(x []float64, i0, i1 int) []float64 {
	return utl.GetCopy(x[i0:i1])
}
