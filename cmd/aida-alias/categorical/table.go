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
	"github.com/0xsoniclabs/categorical/stochastic/statistics/alias"
	"github.com/0xsoniclabs/categorical/utils"
	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

// TableCommand prints the alias table of a categorical distribution.
var TableCommand = cli.Command{
	Action: tableAction,
	Name:   "table",
	Usage:  "print the alias table of a categorical distribution",
	Flags: []cli.Flag{
		&utils.WeightsFlag,
		&utils.WeightsFileFlag,
		&utils.OutputFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The table command prints the probability, threshold and alias of every slot
of the alias table built for --weights (or --weights-file). The table is
appended to --output if given.`,
}

// tableAction implements the table command.
func tableAction(ctx *cli.Context) (err error) {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "AliasTable")

	d, err := alias.New(cfg.Weights)
	if err != nil {
		return err
	}
	log.Debugf("Built alias table with %v slots", d.K())

	report := func() string { return formatTable(d) }
	printers := utils.NewPrinters().
		AddPrinterToWriter(ctx.App.Writer, report).
		AddPrinterToFile(cfg.Output, report)
	defer func() {
		err = errors.CombineErrors(err, printers.Close())
	}()
	return printers.Print()
}

// formatTable renders the alias table of a distribution.
func formatTable(d *alias.Distribution) string {
	t := d.Table()
	weights := d.Weights()
	pmf := d.Probabilities()
	rows := make([]table.Row, d.K())
	for j := range rows {
		rows[j] = table.Row{j, weights[j], pmf[j], t.Threshold(j), t.Alias(j)}
	}
	return utils.RenderTable("Alias Table", table.Row{"Slot", "Weight", "Probability", "Threshold", "Alias"}, rows)
}
