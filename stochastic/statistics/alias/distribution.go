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

package alias

import (
	"github.com/0xsoniclabs/categorical/stochastic/statistics"
	"github.com/0xsoniclabs/categorical/stochastic/statistics/discrete"
)

// Distribution is a categorical distribution over K outcomes that is sampled
// in constant time with an alias table. All state is computed by New and is
// never modified afterwards, hence a Distribution may be read concurrently.
type Distribution struct {
	weights []float64 // relative weights as given by the caller
	pmf     []float64 // probability mass function
	table   *Table    // alias table
}

// New creates a categorical distribution from K >= 1 non-negative relative
// weights whose total is positive.
func New(weights []float64) (*Distribution, error) {
	pmf, mixture, err := discrete.Normalize(weights)
	if err != nil {
		return nil, err
	}
	if err := discrete.Check(pmf); err != nil {
		return nil, err
	}
	w := make([]float64, len(weights))
	copy(w, weights)
	return &Distribution{
		weights: w,
		pmf:     pmf,
		table:   Build(mixture),
	}, nil
}

// K returns the number of outcomes.
func (d *Distribution) K() int {
	return len(d.pmf)
}

// Probability returns the probability of outcome k.
func (d *Distribution) Probability(k int) (float64, error) {
	if k < 0 || k >= len(d.pmf) {
		return 0, statistics.IndexOutOfRangef("Probability: outcome (%v) is not in [0,%v)", k, len(d.pmf))
	}
	return d.pmf[k], nil
}

// Probabilities returns a copy of the probability mass function.
func (d *Distribution) Probabilities() []float64 {
	p := make([]float64, len(d.pmf))
	copy(p, d.pmf)
	return p
}

// Weights returns a copy of the relative weights the distribution was built from.
func (d *Distribution) Weights() []float64 {
	w := make([]float64, len(d.weights))
	copy(w, d.weights)
	return w
}

// Table returns the alias table of the distribution.
func (d *Distribution) Table() *Table {
	return d.table
}

// Sample draws an outcome in [0,K). It consumes exactly one integer and one
// float draw from the source.
func (d *Distribution) Sample(src Source) int {
	j := src.Intn(len(d.pmf))
	return d.table.pick(j, src.Float64())
}
