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
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/0xsoniclabs/categorical/stochastic/statistics"
	"github.com/0xsoniclabs/categorical/utils"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmd_VerifyDrawnSamples(t *testing.T) {
	// given
	dbFile := filepath.Join(t.TempDir(), "report.db")
	app, out := newTestApp(&VerifyCommand)
	args := utils.NewArgs("test").
		Arg(VerifyCommand.Name).
		Flag(utils.WeightsFlag.Name, "1,2,3,4,5").
		Flag(utils.SamplesFlag.Name, 20_000).
		Flag(utils.SeedFlag.Name, uint64(42)).
		Flag(utils.AlphaFlag.Name, 0.001).
		Flag(utils.DbFlag.Name, dbFile).
		Build()

	// when
	err := app.Run(args)

	// then
	require.NoError(t, err)
	assert.Contains(t, out.String(), "result: unbiased")

	db, err := sql.Open("sqlite3", dbFile)
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()
	var rows int
	var observed int64
	require.NoError(t, db.QueryRow("SELECT COUNT(*), SUM(observed) FROM verification WHERE seed = 42").Scan(&rows, &observed))
	assert.Equal(t, 5, rows)
	assert.Equal(t, int64(20_000), observed)
}

func TestCmd_VerifyDetectsBiasedSamplesFile(t *testing.T) {
	// given
	input := writeSamplesFile(t, []float64{1, 1}, "[0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1]")
	app, out := newTestApp(&VerifyCommand)
	args := utils.NewArgs("test").
		Arg(VerifyCommand.Name).
		Flag(utils.InputFlag.Name, input).
		Build()

	// when
	err := app.Run(args)

	// then
	assert.True(t, errors.Is(err, ErrBiased), "unexpected error %v", err)
	assert.Contains(t, out.String(), "result: biased")
}

func TestCmd_VerifyDetectsImpossibleOutcome(t *testing.T) {
	// given
	input := writeSamplesFile(t, []float64{1, 0, 1}, "[0, 2, 1, 0, 2]")
	app, _ := newTestApp(&VerifyCommand)
	args := utils.NewArgs("test").
		Arg(VerifyCommand.Name).
		Flag(utils.InputFlag.Name, input).
		Build()

	// when
	err := app.Run(args)

	// then
	assert.True(t, errors.Is(err, ErrBiased), "unexpected error %v", err)
}

func TestCmd_VerifyRequiresSamples(t *testing.T) {
	app, _ := newTestApp(&VerifyCommand)
	args := utils.NewArgs("test").
		Arg(VerifyCommand.Name).
		Flag(utils.WeightsFlag.Name, "1,1").
		Flag(utils.SamplesFlag.Name, 0).
		Build()

	err := app.Run(args)
	assert.True(t, errors.Is(err, statistics.ErrInvalidArgument), "unexpected error %v", err)
}
