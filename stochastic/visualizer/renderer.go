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
	"fmt"
	"io"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// HTML references for the rendered pages.
const probabilityRef = "probabilities"
const tableRef = "alias-table"

// MainHtml is the index page.
const MainHtml = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>Aida: Categorical Distribution</title>
  </head>
  <body>
    <h1>Aida: Categorical Distribution</h1>
    <ul>
    <li> <h3> <a href="/` + probabilityRef + `"> Probabilities </a> </h3> </li>
    <li> <h3> <a href="/` + tableRef + `"> Alias Table </a> </h3> </li>
    </ul>
</body>
</html>
`

// globalOptions are shared by all charts.
func globalOptions(title, subtitle string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeChalk,
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  opts.Bool(true),
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: opts.Bool(true),
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
	}
}

// convertBarData converts values to chart points.
func convertBarData(data []float64) []opts.BarData {
	items := make([]opts.BarData, 0, len(data))
	for _, v := range data {
		items = append(items, opts.BarData{Value: v})
	}
	return items
}

// newProbabilityChart creates a bar chart comparing expected and observed probabilities.
func newProbabilityChart(v *View) *charts.Bar {
	chart := charts.NewBar()
	chart.SetGlobalOptions(globalOptions(v.Title, "Probability Mass Function")...)
	chart.SetXAxis(v.labels()).AddSeries("Expected", convertBarData(v.Expected))
	if len(v.Observed) > 0 {
		chart.AddSeries("Observed", convertBarData(v.Observed))
	}
	return chart
}

// newTableChart creates a stacked bar chart of the alias table; each slot is
// split into the share kept by its own outcome and the share of its alias.
func newTableChart(v *View) *charts.Bar {
	own := make([]float64, len(v.Threshold))
	aliased := make([]opts.BarData, len(v.Threshold))
	for j, th := range v.Threshold {
		own[j] = th
		aliased[j] = opts.BarData{
			Name:  fmt.Sprintf("alias %d", v.Alias[j]),
			Value: 1.0 - th,
		}
	}
	chart := charts.NewBar()
	chart.SetGlobalOptions(globalOptions(v.Title, "Alias Table")...)
	chart.SetXAxis(v.labels()).
		AddSeries("Own", convertBarData(own), charts.WithBarChartOpts(opts.BarChart{Stack: "slot"})).
		AddSeries("Alias", aliased, charts.WithBarChartOpts(opts.BarChart{Stack: "slot"}))
	return chart
}

// Render writes an HTML page with all charts of a view.
func Render(w io.Writer, v *View) error {
	page := components.NewPage().SetPageTitle(v.Title)
	page.AddCharts(newProbabilityChart(v), newTableChart(v))
	return page.Render(w)
}

// NewHandler creates an HTTP handler serving the charts of a view.
func NewHandler(v *View) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, MainHtml)
	})
	mux.HandleFunc("/"+probabilityRef, func(w http.ResponseWriter, r *http.Request) {
		_ = newProbabilityChart(v).Render(w)
	})
	mux.HandleFunc("/"+tableRef, func(w http.ResponseWriter, r *http.Request) {
		_ = newTableChart(v).Render(w)
	})
	return mux
}

// FireUpWeb serves the charts of a view on the given port.
func FireUpWeb(v *View, port string) error {
	return http.ListenAndServe(":"+port, NewHandler(v))
}
