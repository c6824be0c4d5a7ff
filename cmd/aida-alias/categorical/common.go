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
	"github.com/0xsoniclabs/categorical/logger"
	"github.com/0xsoniclabs/categorical/stochastic/estimation"
	"github.com/0xsoniclabs/categorical/stochastic/generator"
	"github.com/0xsoniclabs/categorical/stochastic/recorder"
	"github.com/0xsoniclabs/categorical/stochastic/statistics/alias"
	"github.com/0xsoniclabs/categorical/utils"
)

// resolveSeed returns the configured seed, or a clock based seed if none is set.
// The returned seed is the one recorded in samples files and reports.
func resolveSeed(cfg *utils.Config) uint64 {
	return generator.ResolveSeed(cfg.Seed)
}

// batchOptions translates the configuration into options of a batch fill.
func batchOptions(cfg *utils.Config) []alias.BatchOption {
	if cfg.Workers == 0 {
		return nil
	}
	return []alias.BatchOption{alias.WithWorkers(cfg.Workers)}
}

// observation is a distribution together with the outcome counts of samples
// drawn from it.
type observation struct {
	dist   *alias.Distribution
	counts []uint64 // nil if nothing was drawn
	seed   uint64
}

// observe builds the distribution of the configuration and counts the
// outcomes of either a recorded samples file (--input) or freshly drawn samples.
func observe(cfg *utils.Config, log logger.Logger) (*observation, error) {
	if cfg.Input != "" {
		return observeFile(cfg.Input, log)
	}
	d, err := alias.New(cfg.Weights)
	if err != nil {
		return nil, err
	}
	obs := &observation{dist: d, seed: resolveSeed(cfg)}
	if cfg.Samples == 0 {
		return obs, nil
	}
	log.Infof("Draw %v samples from %v outcomes (seed %v)", cfg.Samples, d.K(), obs.seed)
	samples, err := alias.SampleArray(d, generator.NewSource(obs.seed), []int{cfg.Samples}, batchOptions(cfg)...)
	if err != nil {
		return nil, err
	}
	obs.counts, err = estimation.Counts(samples.Data(), d.K())
	if err != nil {
		return nil, err
	}
	return obs, nil
}

// observeFile counts the outcomes of a recorded samples file.
func observeFile(filename string, log logger.Logger) (*observation, error) {
	log.Noticef("Read samples file %v", filename)
	file, err := recorder.ReadSamples(filename)
	if err != nil {
		return nil, err
	}
	d, err := alias.New(file.Weights)
	if err != nil {
		return nil, err
	}
	samples, err := file.Flatten()
	if err != nil {
		return nil, err
	}
	log.Debugf("Samples file holds %v samples of type %v", len(samples), file.DType)
	counts, err := estimation.Counts(samples, d.K())
	if err != nil {
		return nil, err
	}
	return &observation{dist: d, counts: counts, seed: file.Seed}, nil
}
