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
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/0xsoniclabs/categorical/stochastic/recorder"
	"github.com/0xsoniclabs/categorical/stochastic/statistics"
	"github.com/0xsoniclabs/categorical/utils"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newTestApp(commands ...*cli.Command) (*cli.App, *bytes.Buffer) {
	var out bytes.Buffer
	app := cli.NewApp()
	app.Writer = &out
	app.Commands = commands
	return app, &out
}

func TestCmd_SampleToFile(t *testing.T) {
	// given
	outputFile := filepath.Join(t.TempDir(), "samples.json.gz")
	app, _ := newTestApp(&SampleCommand)
	args := utils.NewArgs("test").
		Arg(SampleCommand.Name).
		Flag(utils.WeightsFlag.Name, "1,2,3").
		Flag(utils.ShapeFlag.Name, "4,5").
		Flag(utils.DTypeFlag.Name, "uint8").
		Flag(utils.SeedFlag.Name, uint64(7)).
		Flag(utils.OutputFlag.Name, outputFile).
		Build()

	// when
	err := app.Run(args)

	// then
	require.NoError(t, err)
	file, err := recorder.ReadSamples(outputFile)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, file.Weights)
	assert.Equal(t, uint64(7), file.Seed)
	assert.Equal(t, "uint8", file.DType)
	assert.Equal(t, []int{4, 5}, file.Shape)

	samples, err := file.Flatten()
	require.NoError(t, err)
	require.Len(t, samples, 20)
	for _, s := range samples {
		assert.Contains(t, []float64{0, 1, 2}, s)
	}
}

func TestCmd_SampleScalarToStdout(t *testing.T) {
	// given
	app, out := newTestApp(&SampleCommand)
	args := utils.NewArgs("test").
		Arg(SampleCommand.Name).
		Flag(utils.WeightsFlag.Name, "0,1").
		Flag(utils.SeedFlag.Name, uint64(3)).
		Build()

	// when
	err := app.Run(args)

	// then
	require.NoError(t, err)
	var file recorder.SamplesJSON
	require.NoError(t, json.Unmarshal(out.Bytes(), &file))
	assert.Empty(t, file.Shape)
	assert.JSONEq(t, "1", string(file.Samples))
}

func TestCmd_SampleIsReproducibleAcrossWorkers(t *testing.T) {
	// given
	run := func(workers int) []float64 {
		outputFile := filepath.Join(t.TempDir(), "samples.json")
		app, _ := newTestApp(&SampleCommand)
		args := utils.NewArgs("test").
			Arg(SampleCommand.Name).
			Flag(utils.WeightsFlag.Name, "5,1,1,3").
			Flag(utils.ShapeFlag.Name, "300,300").
			Flag(utils.SeedFlag.Name, uint64(11)).
			Flag(utils.WorkersFlag.Name, workers).
			Flag(utils.OutputFlag.Name, outputFile).
			Build()
		require.NoError(t, app.Run(args))
		file, err := recorder.ReadSamples(outputFile)
		require.NoError(t, err)
		samples, err := file.Flatten()
		require.NoError(t, err)
		return samples
	}

	// when
	one := run(1)
	four := run(4)

	// then
	assert.Equal(t, one, four)
}

func TestCmd_SampleRejectsInvalidArguments(t *testing.T) {
	tests := map[string][]string{
		"no weights": utils.NewArgs("test").
			Arg(SampleCommand.Name).
			Build(),
		"negative weight": utils.NewArgs("test").
			Arg(SampleCommand.Name).
			Flag(utils.WeightsFlag.Name, "1,-1").
			Build(),
		"unknown dtype": utils.NewArgs("test").
			Arg(SampleCommand.Name).
			Flag(utils.WeightsFlag.Name, "1,1").
			Flag(utils.DTypeFlag.Name, "bool").
			Build(),
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			app, _ := newTestApp(&SampleCommand)
			err := app.Run(args)
			assert.True(t, errors.Is(err, statistics.ErrInvalidArgument), "unexpected error %v", err)
		})
	}
}

func TestCmd_SampleRejectsNarrowingCast(t *testing.T) {
	// given
	weights := make([]float64, 200)
	for i := range weights {
		weights[i] = 1
	}
	data, err := json.Marshal(weights)
	require.NoError(t, err)
	weightsFile := filepath.Join(t.TempDir(), "weights.json")
	require.NoError(t, writeFile(weightsFile, data))

	app, _ := newTestApp(&SampleCommand)
	args := utils.NewArgs("test").
		Arg(SampleCommand.Name).
		Flag(utils.WeightsFileFlag.Name, weightsFile).
		Flag(utils.DTypeFlag.Name, "int8").
		Flag(utils.ShapeFlag.Name, "3").
		Build()

	// when
	err = app.Run(args)

	// then
	assert.True(t, errors.Is(err, statistics.ErrInvalidArgument), "unexpected error %v", err)
}
