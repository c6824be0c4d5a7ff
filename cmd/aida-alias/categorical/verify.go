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
	"strings"

	"github.com/0xsoniclabs/categorical/logger"
	"github.com/0xsoniclabs/categorical/stochastic/estimation"
	"github.com/0xsoniclabs/categorical/stochastic/statistics"
	"github.com/0xsoniclabs/categorical/utils"
	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

// ErrBiased is returned by the verify command if the samples deviate
// significantly from the distribution.
var ErrBiased = errors.New("samples deviate from the distribution")

const (
	createVerificationTable = `CREATE TABLE IF NOT EXISTS verification (
	seed INTEGER,
	outcome INTEGER,
	probability REAL,
	observed INTEGER,
	frequency REAL,
	chi_squared REAL,
	critical REAL,
	alpha REAL,
	biased INTEGER
)`
	insertVerification = `INSERT INTO verification
	(seed, outcome, probability, observed, frequency, chi_squared, critical, alpha, biased)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
)

// VerifyCommand tests samples against their distribution.
var VerifyCommand = cli.Command{
	Action: verifyAction,
	Name:   "verify",
	Usage:  "run a chi-squared goodness-of-fit test on samples",
	Flags: []cli.Flag{
		&utils.WeightsFlag,
		&utils.WeightsFileFlag,
		&utils.SeedFlag,
		&utils.WorkersFlag,
		&utils.SamplesFlag,
		&utils.AlphaFlag,
		&utils.InputFlag,
		&utils.OutputFlag,
		&utils.DbFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The verify command draws --samples outcomes of the distribution given by
--weights (or reads them from an --input samples file) and tests them against
the distribution at significance level --alpha. The report is printed, appended
to --output and inserted into the sqlite3 database --db if given. The command
fails if the samples are biased.`,
}

// verifyAction implements the verify command.
func verifyAction(ctx *cli.Context) (err error) {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "AliasVerify")

	obs, err := observe(cfg, log)
	if err != nil {
		return err
	}
	if obs.counts == nil {
		return statistics.InvalidArgumentf("verify: no samples to test; set --%v or --%v", utils.SamplesFlag.Name, utils.InputFlag.Name)
	}
	pmf := obs.dist.Probabilities()
	fit, err := estimation.GoodnessOfFit(obs.counts, pmf, cfg.Alpha)
	if err != nil {
		return err
	}
	summary, err := estimation.Summarize(obs.counts, pmf)
	if err != nil {
		return err
	}

	report := func() string { return formatVerification(obs, fit, summary) }
	printers := utils.NewPrinters().
		AddPrinterToWriter(ctx.App.Writer, report).
		AddPrinterToFile(cfg.Output, report)
	if _, err = printers.AddPrinterToSqlite3(cfg.Db, createVerificationTable, insertVerification, func() [][]any {
		return verificationRows(obs, fit)
	}); err != nil {
		return err
	}
	defer func() {
		err = errors.CombineErrors(err, printers.Close())
	}()
	if err = printers.Print(); err != nil {
		return err
	}

	if fit.Biased() {
		return errors.Wrapf(ErrBiased, "chi-squared %.4f exceeds critical value %.4f at alpha %v", fit.ChiSquared, fit.Critical, fit.Alpha)
	}
	log.Noticef("Samples follow the distribution (chi-squared %.4f, critical value %.4f)", fit.ChiSquared, fit.Critical)
	return nil
}

// formatVerification renders the outcome table and the test summary.
func formatVerification(obs *observation, fit estimation.Fit, summary estimation.Summary) string {
	pmf := obs.dist.Probabilities()
	freq := estimation.Frequencies(obs.counts)
	rows := make([]table.Row, len(pmf))
	for k := range rows {
		rows[k] = table.Row{k, pmf[k], obs.counts[k], freq[k]}
	}

	var b strings.Builder
	b.WriteString(utils.RenderTable("Goodness of Fit", table.Row{"Outcome", "Probability", "Observed", "Frequency"}, rows))
	b.WriteString("\n")
	fmt.Fprintf(&b, "chi-squared: %.4f, degrees of freedom: %v, critical value: %.4f, alpha: %v\n",
		fit.ChiSquared, fit.DegreesOfFreedom, fit.Critical, fit.Alpha)
	fmt.Fprintf(&b, "max deviation: %.6f\n", fit.MaxDeviation)
	fmt.Fprintf(&b, "mean: %.4f (expected %.4f), variance: %.4f (expected %.4f)\n",
		summary.Mean, summary.ExpectedMean, summary.Variance, summary.ExpectedVariance)
	if fit.Biased() {
		b.WriteString("result: biased")
	} else {
		b.WriteString("result: unbiased")
	}
	return b.String()
}

// verificationRows returns one database row per outcome.
func verificationRows(obs *observation, fit estimation.Fit) [][]any {
	pmf := obs.dist.Probabilities()
	freq := estimation.Frequencies(obs.counts)
	rows := make([][]any, len(pmf))
	for k := range rows {
		rows[k] = []any{
			int64(obs.seed), k, pmf[k], int64(obs.counts[k]), freq[k],
			fit.ChiSquared, fit.Critical, fit.Alpha, fit.Biased(),
		}
	}
	return rows
}
