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

package visualizer

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, newTestView(t, []float64{0.2, 0.8})))
	out := buf.String()
	assert.Contains(t, out, "test distribution")
	assert.Contains(t, out, "Expected")
	assert.Contains(t, out, "Observed")
	assert.Contains(t, out, "Alias")
}

func TestRenderer_RenderWithoutObservations(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, newTestView(t, nil)))
	assert.NotContains(t, buf.String(), "Observed")
}

func TestRenderer_Handler(t *testing.T) {
	handler := NewHandler(newTestView(t, nil))
	for path, want := range map[string]string{
		"/":                  "Categorical Distribution",
		"/" + probabilityRef: "Expected",
		"/" + tableRef:       "Alias Table",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "path %v", path)
		assert.Contains(t, rec.Body.String(), want, "path %v", path)
	}
}
