// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package categorical

import (
	"time"

	"github.com/0xsoniclabs/categorical/logger"
	"github.com/0xsoniclabs/categorical/stochastic/generator"
	"github.com/0xsoniclabs/categorical/stochastic/recorder"
	"github.com/0xsoniclabs/categorical/stochastic/statistics/alias"
	"github.com/0xsoniclabs/categorical/utils"
	"github.com/urfave/cli/v2"
)

// SampleCommand draws an array of samples from a categorical distribution.
var SampleCommand = cli.Command{
	Action: sampleAction,
	Name:   "sample",
	Usage:  "draw samples from a categorical distribution",
	Flags: []cli.Flag{
		&utils.WeightsFlag,
		&utils.WeightsFileFlag,
		&utils.ShapeFlag,
		&utils.DTypeFlag,
		&utils.SeedFlag,
		&utils.WorkersFlag,
		&utils.OutputFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The sample command draws independent outcomes of the distribution given by
--weights (or --weights-file) into an array of the given --shape. Without a
shape a single outcome is drawn. The samples file is written to --output or
printed to stdout.`,
}

// sampleAction implements the sample command.
func sampleAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "AliasSample")

	d, err := alias.New(cfg.Weights)
	if err != nil {
		return err
	}
	seed := resolveSeed(cfg)
	log.Infof("Draw %v samples of shape %v from %v outcomes (seed %v)", cfg.DType, cfg.Shape, d.K(), seed)
	start := time.Now()
	samples, err := alias.SampleDType(d, generator.NewSource(seed), cfg.DType, cfg.Shape, batchOptions(cfg)...)
	if err != nil {
		return err
	}
	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Noticef("Sampling took %vh %vm %vs", hours, minutes, seconds)

	file, err := recorder.NewSamplesJSON(d.Weights(), seed, string(cfg.DType), samples.Shape(), samples)
	if err != nil {
		return err
	}
	if cfg.Output == "" {
		return recorder.EncodeSamples(ctx.App.Writer, file)
	}
	log.Noticef("Write samples file %v", cfg.Output)
	return recorder.WriteSamples(cfg.Output, file)
}
