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
	"fmt"
	"os"

	"github.com/0xsoniclabs/categorical/logger"
	"github.com/0xsoniclabs/categorical/stochastic/estimation"
	"github.com/0xsoniclabs/categorical/stochastic/visualizer"
	"github.com/0xsoniclabs/categorical/utils"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// VisualizeCommand renders charts of a categorical distribution.
var VisualizeCommand = cli.Command{
	Action: visualizeAction,
	Name:   "visualize",
	Usage:  "chart the probabilities and the alias table of a distribution",
	Flags: []cli.Flag{
		&utils.WeightsFlag,
		&utils.WeightsFileFlag,
		&utils.SeedFlag,
		&utils.WorkersFlag,
		&utils.SamplesFlag,
		&utils.InputFlag,
		&utils.OutputFlag,
		&utils.PortFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The visualize command charts the probability mass function of the distribution
given by --weights (or an --input samples file) next to the observed frequencies
of its samples, and the alias table. The charts are written as an HTML page to
--output, or served on --port otherwise.`,
}

// visualizeAction implements the visualize command.
func visualizeAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "AliasVisualize")

	obs, err := observe(cfg, log)
	if err != nil {
		return err
	}
	var observed []float64
	if obs.counts != nil {
		observed = estimation.Frequencies(obs.counts)
	}
	view, err := visualizer.NewView(fmt.Sprintf("Categorical Distribution (%v outcomes)", obs.dist.K()), obs.dist, observed)
	if err != nil {
		return err
	}

	if cfg.Output != "" {
		log.Noticef("Write charts to %v", cfg.Output)
		return writeCharts(cfg.Output, view)
	}
	log.Noticef("Open http://localhost:%v in a browser", cfg.Port)
	return visualizer.FireUpWeb(view, cfg.Port)
}

// writeCharts writes the HTML page of a view to a file.
func writeCharts(filename string, view *visualizer.View) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "cannot create chart file %v", filename)
	}
	defer func() {
		err = errors.CombineErrors(err, f.Close())
	}()
	return visualizer.Render(f, view)
}
