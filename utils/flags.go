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
	"github.com/urfave/cli/v2"
)

// command line options shared by the alias commands.
var (
	WeightsFlag = cli.Float64SliceFlag{
		Name:    "weights",
		Aliases: []string{"w"},
		Usage:   "comma separated relative weights of the outcomes",
	}
	WeightsFileFlag = cli.PathFlag{
		Name:  "weights-file",
		Usage: "JSON file holding an array of relative weights",
	}
	ShapeFlag = cli.IntSliceFlag{
		Name:  "shape",
		Usage: "comma separated dimensions of the sample array (omit for a single draw)",
	}
	DTypeFlag = cli.StringFlag{
		Name:  "dtype",
		Usage: "element type of the sample array (int8, ..., uint64, float32, float64)",
		Value: "int64",
	}
	SeedFlag = cli.Uint64Flag{
		Name:  "seed",
		Usage: "seed of the random number generator (0 seeds from the clock)",
	}
	WorkersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "number of workers filling a sample array (0 fills sequentially)",
	}
	SamplesFlag = cli.IntFlag{
		Name:  "samples",
		Usage: "number of draws used for verification",
		Value: 100_000,
	}
	AlphaFlag = cli.Float64Flag{
		Name:  "alpha",
		Usage: "significance level of the goodness-of-fit test",
		Value: 0.05,
	}
	InputFlag = cli.PathFlag{
		Name:  "input",
		Usage: "samples file to verify instead of drawing new samples",
	}
	OutputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output path (a .gz suffix compresses sample files)",
	}
	DbFlag = cli.PathFlag{
		Name:  "db",
		Usage: "sqlite3 database receiving verification reports",
	}
	PortFlag = cli.StringFlag{
		Name:  "port",
		Usage: "enable visualization on `PORT`",
		Value: "8080",
	}
)
