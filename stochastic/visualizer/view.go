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

	"github.com/0xsoniclabs/categorical/stochastic/statistics"
	"github.com/0xsoniclabs/categorical/stochastic/statistics/alias"
)

// View holds the data rendered for a categorical distribution.
type View struct {
	Title     string
	Expected  []float64 // probability mass function
	Observed  []float64 // empirical frequencies; may be empty
	Threshold []float64 // alias table thresholds
	Alias     []int     // alias table aliases
}

// NewView creates the view of a distribution together with the empirical
// frequencies of drawn samples.
func NewView(title string, d *alias.Distribution, observed []float64) (*View, error) {
	if len(observed) > 0 && len(observed) != d.K() {
		return nil, statistics.InvalidArgumentf("NewView: number of observed frequencies (%v) mismatches number of outcomes (%v)", len(observed), d.K())
	}
	table := d.Table()
	v := &View{
		Title:     title,
		Expected:  d.Probabilities(),
		Observed:  observed,
		Threshold: make([]float64, table.Len()),
		Alias:     make([]int, table.Len()),
	}
	for j := range table.Len() {
		v.Threshold[j] = table.Threshold(j)
		v.Alias[j] = table.Alias(j)
	}
	return v, nil
}

// labels returns the outcome labels of the x-axis.
func (v *View) labels() []string {
	l := make([]string, len(v.Expected))
	for i := range l {
		l[i] = fmt.Sprint(i)
	}
	return l
}
