// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package live

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cpmech/barriers/stress"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type outcome struct {
	res *stress.Result
	err error
}

// next waits for the next recompute
func next(tst *testing.T, ch chan outcome) outcome {
	select {
	case o := <-ch:
		return o
	case <-time.After(10 * time.Second):
		tst.Fatalf("timeout waiting for recompute\n")
	}
	return outcome{}
}

func Test_watch01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("watch01")

	b, err := os.ReadFile("../inp/data/two-layers.yml")
	if err != nil {
		tst.Fatalf("cannot read scenario: %v\n", err)
	}
	txt := string(b)
	fn := filepath.Join(tst.TempDir(), "scenario.yml")
	if err = os.WriteFile(fn, b, 0644); err != nil {
		tst.Fatalf("cannot write scenario: %v\n", err)
	}

	ch := make(chan outcome, 8)
	w, err := New(fn, zap.NewNop(), func(res *stress.Result, err error) { ch <- outcome{res, err} })
	if err != nil {
		tst.Fatalf("New failed: %v\n", err)
	}
	w.Debounce = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// initial
	o := next(tst, ch)
	if o.err != nil {
		tst.Fatalf("initial recompute failed: %v\n", o.err)
	}
	chk.String(tst, o.res.Key, "two-layers")
	chk.Float64(tst, "Sh[0]", 1e-9, o.res.Records[0].Sh, 4000)

	// new calibration
	txt = strings.Replace(txt, "shratio: 1.0", "shratio: 0.9", 1)
	if err = os.WriteFile(fn, []byte(txt), 0644); err != nil {
		tst.Fatalf("cannot write scenario: %v\n", err)
	}
	o = next(tst, ch)
	if o.err != nil {
		tst.Fatalf("recompute failed: %v\n", o.err)
	}
	io.Pforan("Sh[0] = %v\n", o.res.Records[0].Sh)
	chk.Float64(tst, "Sh[0]", 1e-9, o.res.Records[0].Sh, 3600)

	// invalid file
	if err = os.WriteFile(fn, []byte("column: {npts: 1}\n"), 0644); err != nil {
		tst.Fatalf("cannot write scenario: %v\n", err)
	}
	o = next(tst, ch)
	io.Pforan("err = %v\n", o.err)
	if o.err == nil || o.res != nil {
		tst.Errorf("recompute should have failed\n")
	}

	// other files are ignored
	if err = os.WriteFile(filepath.Join(filepath.Dir(fn), "other.yml"), b, 0644); err != nil {
		tst.Fatalf("cannot write file: %v\n", err)
	}
	select {
	case o = <-ch:
		tst.Errorf("other files must not trigger recomputes\n")
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	if err = <-done; err != nil {
		tst.Errorf("Run failed: %v\n", err)
	}
}

func Test_watch02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("watch02. errors")

	if _, err := New("/tmp/scenario.yml", nil, nil); err == nil {
		tst.Errorf("New should have failed without handler\n")
	}
	err := Watch(context.Background(), filepath.Join(tst.TempDir(), "nodir", "s.yml"), nil, func(*stress.Result, error) {})
	io.Pforan("err = %v\n", err)
	if err == nil {
		tst.Errorf("Watch should have failed with missing directory\n")
	}
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}
