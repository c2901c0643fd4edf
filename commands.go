// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/barriers/inp"
	"github.com/cpmech/barriers/live"
	"github.com/cpmech/barriers/out"
	"github.com/cpmech/barriers/polygon"
	"github.com/cpmech/barriers/stress"
	"github.com/cpmech/barriers/tect"
	"github.com/cpmech/barriers/wlog"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// polygon and cases
	which  string    // quantity drawn in the polygon map
	shList []float64 // calibration Sh values
	SHList []float64 // calibration SH values

	// wlog
	upsample int          // upsampling factor
	from, to int          // window of upsampled samples
	caseNum  int          // calibration case giving the strains
	clayOpts wlog.Options // anisotropy of clays
)

// runCmd computes the stresses along the column of a scenario
var runCmd = &cobra.Command{
	Use:   "run <scenario.yml>",
	Short: "Compute the horizontal stresses along the column",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, _, err := compute(args[0])
		if err != nil {
			return err
		}
		if err = out.WriteColumn(cmd.OutOrStdout(), res); err != nil {
			return err
		}
		if plotDir != "" {
			plt.Reset(false, nil)
			out.Column(res, "").Draw(plotDir, res.Key+"_column", 1, 3, false, nil)
			logger.Info("figure saved", zap.String("dir", plotDir), zap.String("key", res.Key+"_column"))
		}
		return nil
	},
}

// polygonCmd computes the stress polygon at one depth of a scenario
var polygonCmd = &cobra.Command{
	Use:   "polygon <scenario.yml>",
	Short: "Compute the stress polygon with the changes caused by anisotropy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, cfg, err := compute(args[0])
		if err != nil {
			return err
		}
		s := res.Profile.Nearest(cfg.PolygonDepth())
		in := polygon.FromSample(s, res.SD, cfg.PolygonNpts(), cfg.Polygon.Workers)
		logger.Debug("polygon", zap.Float64("z", s.Z), zap.Int("npts", in.N), zap.Int("workers", in.Workers))
		g, err := in.Sweep(cmd.Context())
		if err != nil {
			return err
		}
		if err = out.WriteGrid(cmd.OutOrStdout(), g); err != nil {
			return err
		}
		if plotDir != "" {
			var cals []tect.Calibration
			if s.Index == 0 {
				cals = []tect.Calibration{res.Cal}
			}
			out.Polygon(g, which, cals, plotDir, io.Sf("%s_polygon_%s", res.Key, which))
		}
		return nil
	},
}

// casesCmd evaluates calibration points
var casesCmd = &cobra.Command{
	Use:   "cases [scenario.yml]",
	Short: "Evaluate calibration points with the anisotropic corrections",
	Long: `Evaluates calibration points (Sh, SH) at the polygon depth of a scenario. Without a
scenario, the reference shale (psi) is used. Without --sh and --SH, three default points
are evaluated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := polygon.Shale(wlog.DefaultOptions().T, 0, 1)
		if len(args) == 1 {
			res, cfg, err := compute(args[0])
			if err != nil {
				return err
			}
			in = polygon.FromSample(res.Profile.Nearest(cfg.PolygonDepth()), res.SD, 0, 1)
		}
		cals, err := calibrations()
		if err != nil {
			return err
		}
		cells, err := in.Cases(cals)
		if err != nil {
			return err
		}
		for i, c := range cells {
			if !c.Valid {
				logger.Warn("calibration point is outside the polygon", zap.Int("case", i+1), zap.Stringer("point", cals[i]))
			}
		}
		return out.WriteCases(cmd.OutOrStdout(), cals, cells)
	},
}

// wlogCmd computes the stresses along a well
var wlogCmd = &cobra.Command{
	Use:   "wlog <logs.csv>",
	Short: "Compute the horizontal stresses along a well from sonic logs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lg, err := wlog.ReadFile(args[0])
		if err != nil {
			return err
		}
		lg = lg.Upsample(upsample)
		i1 := to
		if i1 <= 0 || i1 > lg.Len() {
			i1 = lg.Len()
		}
		if from < 0 || from >= i1 {
			return chk.Err("window [%d,%d) is empty", from, i1)
		}
		lg = lg.Window(from, i1)

		// strains from a calibration point of the reference shale
		if caseNum < 1 || caseNum > len(polygon.DefaultCases) {
			return chk.Err("case must be in [1, %d]. case=%d", len(polygon.DefaultCases), caseNum)
		}
		cal := polygon.DefaultCases[caseNum-1]
		c, err := polygon.Shale(clayOpts.T, 0, 1).Case(cal)
		if err != nil {
			return err
		}
		logger.Debug("strains", zap.Stringer("calibration", cal), zap.Stringer("strains", c.Strains))

		a, err := wlog.Analyze(lg, c.Strains, clayOpts)
		if err != nil {
			return err
		}
		logger.Info("well analysed", zap.Int("points", len(a.Points)), zap.Float64("clay", a.ClayFraction()))
		if err = out.WriteWell(cmd.OutOrStdout(), a); err != nil {
			return err
		}
		if plotDir != "" {
			plt.Reset(false, nil)
			out.Well(a).Draw(plotDir, io.FnKey(args[0])+"_well", 1, 4, false, nil)
		}
		return nil
	},
}

// watchCmd recomputes a scenario every time its file is saved
var watchCmd = &cobra.Command{
	Use:   "watch <scenario.yml>",
	Short: "Recompute the column every time the scenario file is saved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		return live.Watch(cmd.Context(), args[0], logger, func(res *stress.Result, err error) {
			if err != nil {
				return
			}
			if err = out.WriteColumn(w, res); err != nil {
				logger.Error("cannot write table", zap.Error(err))
			}
		})
	},
}

func init() {
	polygonCmd.Flags().StringVar(&which, "which", "max", "quantity in the map: min, max, weight, tau, anisomin, anisomax, sigmahmin, sigmahmax")
	casesCmd.Flags().Float64SliceVar(&shList, "sh", nil, "minimum horizontal stresses of calibration points")
	casesCmd.Flags().Float64SliceVar(&SHList, "SH", nil, "maximum horizontal stresses of calibration points")
	f := wlogCmd.Flags()
	f.IntVar(&upsample, "upsample", 4, "upsampling factor")
	f.IntVar(&from, "from", 0, "first upsampled sample")
	f.IntVar(&to, "to", 0, "upsampled sample after the last one; 0 means the end")
	f.IntVar(&caseNum, "case", 3, "calibration case of the reference shale giving the strains")
	def := wlog.DefaultOptions()
	f.Float64Var(&clayOpts.T.Eps, "eps", def.T.Eps, "Thomsen's ε of clays")
	f.Float64Var(&clayOpts.T.Delta, "delta", def.T.Delta, "Thomsen's δ of clays")
	f.Float64Var(&clayOpts.T.Gamma, "gamma", def.T.Gamma, "Thomsen's γ of clays")
	f.Float64Var(&clayOpts.Ks, "ks", def.Ks, "bulk modulus of grains [psi]")
	f.Float64Var(&clayOpts.ClayC33, "clay", def.ClayC33, "samples with C33 at or below this value are clays [psi]")
}

// compute loads and computes a scenario
func compute(path string) (res *stress.Result, cfg *inp.Scenario, err error) {
	cfg, err = inp.Load(path)
	if err != nil {
		return
	}
	logger.Info("scenario loaded", zap.String("key", cfg.Key), zap.Int("npts", cfg.Column.Npts))
	res, err = stress.Compute(cfg)
	if err != nil {
		return
	}
	logger.Debug("strains", zap.Stringer("calibration", res.Cal),
		zap.Stringer("baseline", res.Strains), zap.Stringer("differential", res.StrainD))
	return
}

// calibrations returns the calibration points given by flags or the default ones
func calibrations() ([]tect.Calibration, error) {
	if len(shList) == 0 && len(SHList) == 0 {
		return polygon.DefaultCases, nil
	}
	if len(shList) != len(SHList) {
		return nil, chk.Err("number of --sh (%d) and --SH (%d) values must be equal", len(shList), len(SHList))
	}
	cals := make([]tect.Calibration, len(shList))
	for i := range cals {
		cals[i] = tect.Calibration{Sh: shList[i], SH: SHList[i]}
	}
	return cals, nil
}
