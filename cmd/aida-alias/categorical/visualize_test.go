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
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/0xsoniclabs/categorical/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmd_VisualizeToFile(t *testing.T) {
	// given
	outputFile := filepath.Join(t.TempDir(), "charts.html")
	app, _ := newTestApp(&VisualizeCommand)
	args := utils.NewArgs("test").
		Arg(VisualizeCommand.Name).
		Flag(utils.WeightsFlag.Name, "1,2,3").
		Flag(utils.SamplesFlag.Name, 1000).
		Flag(utils.SeedFlag.Name, uint64(1)).
		Flag(utils.OutputFlag.Name, outputFile).
		Build()

	// when
	err := app.Run(args)

	// then
	require.NoError(t, err)
	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "Categorical Distribution (3 outcomes)")
	assert.Contains(t, html, "Observed")
	assert.Contains(t, html, "Alias Table")
}

func TestCmd_VisualizeServesCharts(t *testing.T) {
	// given
	port := "18283"
	app, _ := newTestApp(&VisualizeCommand)
	args := utils.NewArgs("test").
		Arg(VisualizeCommand.Name).
		Flag(utils.WeightsFlag.Name, "1,2,3").
		Flag(utils.SamplesFlag.Name, 0).
		Flag(utils.PortFlag.Name, port).
		Build()

	errChan := make(chan error, 1)
	go func() {
		errChan <- app.Run(args)
	}()

	// when
	client := &http.Client{Timeout: 2 * time.Second}
	var resp *http.Response
	var err error
	for i := 0; i < 20; i++ {
		select {
		case err := <-errChan:
			t.Fatalf("server stopped: %v", err)
		default:
		}
		resp, err = client.Get(fmt.Sprintf("http://localhost:%s", port))
		if err == nil {
			break
		}
		time.Sleep(250 * time.Millisecond)
	}

	// then
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotEmpty(t, body)
}
