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

package utils

import (
	"encoding/json"
	"os"

	"github.com/0xsoniclabs/categorical/logger"
	"github.com/0xsoniclabs/categorical/stochastic/statistics"
	"github.com/0xsoniclabs/categorical/stochastic/statistics/alias"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// Config summarizes the command line options of a command.
type Config struct {
	AppName     string
	CommandName string

	Weights     []float64   // relative weights of the outcomes
	WeightsFile string      // JSON file the weights were loaded from
	Shape       []int       // dimensions of the sample array
	DType       alias.DType // element type of the sample array
	Seed        uint64      // seed of the random source; 0 seeds from the clock
	Workers     int         // workers of a parallel fill
	Samples     int         // draws used for verification
	Alpha       float64     // significance level of the goodness-of-fit test
	Input       string      // samples file to verify
	Output      string      // output path
	Db          string      // sqlite3 report database
	Port        string      // port of the visualization server
	LogLevel    string      // level of the logger
}

// NewConfig creates and initializes Config with the flags of the current command.
func NewConfig(ctx *cli.Context) (*Config, error) {
	cfg := createConfigFromFlags(ctx)

	if cfg.WeightsFile != "" {
		if len(cfg.Weights) > 0 {
			return nil, statistics.InvalidArgumentf("NewConfig: --%v and --%v are mutually exclusive", WeightsFlag.Name, WeightsFileFlag.Name)
		}
		weights, err := ReadWeights(cfg.WeightsFile)
		if err != nil {
			return nil, err
		}
		cfg.Weights = weights
	}

	dtype, err := alias.ParseDType(getFlagValue(ctx, DTypeFlag).(string))
	if err != nil {
		return nil, err
	}
	cfg.DType = dtype

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// createConfigFromFlags returns Config instance with user specified values or the default ones
func createConfigFromFlags(ctx *cli.Context) *Config {
	cfg := &Config{
		AppName:     ctx.App.HelpName,
		CommandName: ctx.Command.Name,

		Weights:     getFlagValue(ctx, WeightsFlag).([]float64),
		WeightsFile: getFlagValue(ctx, WeightsFileFlag).(string),
		Shape:       getFlagValue(ctx, ShapeFlag).([]int),
		Seed:        getFlagValue(ctx, SeedFlag).(uint64),
		Workers:     getFlagValue(ctx, WorkersFlag).(int),
		Samples:     getFlagValue(ctx, SamplesFlag).(int),
		Alpha:       getFlagValue(ctx, AlphaFlag).(float64),
		Input:       getFlagValue(ctx, InputFlag).(string),
		Output:      getFlagValue(ctx, OutputFlag).(string),
		Db:          getFlagValue(ctx, DbFlag).(string),
		Port:        getFlagValue(ctx, PortFlag).(string),
		LogLevel:    getFlagValue(ctx, logger.LogLevelFlag).(string),
	}
	return cfg
}

func (cfg *Config) validate() error {
	if cfg.Workers < 0 {
		return statistics.InvalidArgumentf("Config: number of workers (%v) is negative", cfg.Workers)
	}
	if cfg.Samples < 0 {
		return statistics.InvalidArgumentf("Config: number of samples (%v) is negative", cfg.Samples)
	}
	if !(cfg.Alpha > 0 && cfg.Alpha < 1) {
		return statistics.InvalidArgumentf("Config: significance level (%v) is not in (0,1)", cfg.Alpha)
	}
	for i, n := range cfg.Shape {
		if n < 0 {
			return statistics.InvalidArgumentf("Config: dimension %v of shape (%v) is negative", i, n)
		}
	}
	return nil
}

// ReadWeights reads a JSON array of weights from a file.
func ReadWeights(filename string) ([]float64, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read weights file %v", filename)
	}
	var weights []float64
	if err := json.Unmarshal(data, &weights); err != nil {
		return nil, statistics.InvalidArgumentf("ReadWeights: file %v is not an array of numbers; %v", filename, err)
	}
	return weights, nil
}

// getFlagValue returns the value of a flag of the current command, or the
// flag's default value if the command does not declare it.
func getFlagValue(ctx *cli.Context, flag interface{}) interface{} {
	cmdFlags := ctx.Command.Flags
	for _, cmdFlag := range cmdFlags {
		switch f := flag.(type) {
		case cli.IntFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Int(f.Name)
			}

		case cli.Uint64Flag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Uint64(f.Name)
			}

		case cli.Float64Flag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Float64(f.Name)
			}

		case cli.StringFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.String(f.Name)
			}

		case cli.PathFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Path(f.Name)
			}

		case cli.Float64SliceFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Float64Slice(f.Name)
			}

		case cli.IntSliceFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.IntSlice(f.Name)
			}
		}
	}

	// If flag not found, return the default value of the flag
	switch f := flag.(type) {
	case cli.IntFlag:
		return f.Value
	case cli.Uint64Flag:
		return f.Value
	case cli.Float64Flag:
		return f.Value
	case cli.StringFlag:
		return f.Value
	case cli.PathFlag:
		return f.Value
	case cli.Float64SliceFlag:
		if f.Value == nil {
			return []float64(nil)
		}
		return f.Value.Value()
	case cli.IntSliceFlag:
		if f.Value == nil {
			return []int(nil)
		}
		return f.Value.Value()
	}

	return nil
}
