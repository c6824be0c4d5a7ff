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

package main

import (
	"fmt"
	"os"

	"github.com/0xsoniclabs/categorical/cmd/aida-alias/categorical"
	"github.com/urfave/cli/v2"
)

// AliasApp data structure
var AliasApp = cli.App{
	Name:      "Aida Alias Sampler",
	HelpName:  "aida-alias",
	Usage:     "sample categorical distributions with the alias method",
	Copyright: "(c) 2025 Sonic Labs",
	Commands: []*cli.Command{
		&categorical.SampleCommand,
		&categorical.TableCommand,
		&categorical.VerifyCommand,
		&categorical.VisualizeCommand,
	},
}

// main implements aida-alias cli.
func main() {
	if err := AliasApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
