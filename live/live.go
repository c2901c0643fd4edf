// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package live recomputes a scenario every time its file is saved
package live

import (
	"context"
	"path/filepath"
	"time"

	"github.com/cpmech/barriers/inp"
	"github.com/cpmech/barriers/stress"
	"github.com/cpmech/gosl/chk"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Handler receives the result of each recompute. res is nil if err is not
type Handler func(res *stress.Result, err error)

// Watcher watches one scenario file
type Watcher struct {
	Debounce time.Duration // quiet period after the last write before recomputing. default = 200ms

	path    string            // absolute path of scenario file
	log     *zap.Logger       // logger
	fn      Handler           // callback
	watcher *fsnotify.Watcher // watches the directory of path
}

// New returns a watcher of the scenario file at path. The directory is watched so that
// editors replacing the file on save are handled
func New(path string, log *zap.Logger, fn Handler) (o *Watcher, err error) {
	if fn == nil {
		return nil, chk.Err("live: handler must be given")
	}
	if log == nil {
		log = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, chk.Err("live: cannot resolve %q: %v", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, chk.Err("live: cannot create watcher: %v", err)
	}
	if err = w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, chk.Err("live: cannot watch %q: %v", filepath.Dir(abs), err)
	}
	return &Watcher{Debounce: 200 * time.Millisecond, path: abs, log: log, fn: fn, watcher: w}, nil
}

// Run computes the scenario once and then after every write until ctx is cancelled. The
// watcher is closed when Run returns
func (o *Watcher) Run(ctx context.Context) error {
	defer o.watcher.Close()
	o.log.Info("watching scenario", zap.String("path", o.path), zap.Duration("debounce", o.Debounce))
	o.recompute()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			o.log.Info("stopped watching", zap.String("path", o.path))
			return nil

		case ev, ok := <-o.watcher.Events:
			if !ok {
				return chk.Err("live: event channel closed")
			}
			if filepath.Clean(ev.Name) != o.path || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			o.log.Debug("scenario changed", zap.String("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(o.Debounce)
			} else {
				timer.Reset(o.Debounce)
			}
			fire = timer.C

		case err, ok := <-o.watcher.Errors:
			if !ok {
				return chk.Err("live: error channel closed")
			}
			o.log.Warn("watcher error", zap.Error(err))

		case <-fire:
			fire = nil
			o.recompute()
		}
	}
}

// recompute loads the scenario and runs the whole analysis
func (o *Watcher) recompute() {
	start := time.Now()
	cfg, err := inp.Load(o.path)
	if err != nil {
		o.log.Error("cannot load scenario", zap.Error(err))
		o.fn(nil, err)
		return
	}
	res, err := stress.Compute(cfg)
	if err != nil {
		o.log.Error("recompute failed", zap.String("key", cfg.Key), zap.Error(err))
		o.fn(nil, err)
		return
	}
	o.log.Info("recompute done",
		zap.String("key", res.Key),
		zap.Int("samples", len(res.Records)),
		zap.Stringer("strains", res.Strains),
		zap.Duration("elapsed", time.Since(start)))
	o.fn(res, nil)
}

// Watch runs a watcher of the scenario file at path until ctx is cancelled
func Watch(ctx context.Context, path string, log *zap.Logger, fn Handler) error {
	w, err := New(path, log, fn)
	if err != nil {
		return err
	}
	return w.Run(ctx)
}
