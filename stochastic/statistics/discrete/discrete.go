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

package discrete

import (
	"math"
	"math/rand"

	"github.com/0xsoniclabs/categorical/stochastic/statistics"
)

// Tolerance is the admissible deviation of a pmf total from one.
const Tolerance = 1e-9

// Check checks if the given probability mass function (pmf) of a
// a discrete finite random variable is valid.  A valid pmf has all
// probabilities in the range [0,1], and the sum of all probabilities
// must be 1.
func Check(f []float64) error {
	total := 0.0
	for i := range len(f) {
		x := f[i]
		if x < 0.0 || x > 1.0 || math.IsNaN(x) {
			return statistics.InvalidArgumentf("Check: invalid probability (%v) in the pmf", x)
		}
		total += x
	}
	if math.Abs(total-1.0) > Tolerance {
		return statistics.InvalidArgumentf("Check: total is not one (%v)", total)
	}
	return nil
}

// Normalize converts K non-negative relative weights into the probability mass
// function of the categorical distribution and into its mixture mass, i.e.,
// the pmf scaled by K so that the mean entry is one. The mixture mass is the
// working array consumed by the alias table construction.
//
// The weight vector must not be empty, all weights must be finite and
// non-negative, and their total must be strictly positive.
func Normalize(weights []float64) ([]float64, []float64, error) {
	n := len(weights)
	if n < 1 {
		return nil, nil, statistics.InvalidArgumentf("Normalize: weight vector is empty")
	}

	total := 0.0 // Kahn's summation algorithm for the weight total
	c := 0.0     // Compensation term of Kahn's algorithm
	for i, w := range weights {
		if w < 0.0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, nil, statistics.InvalidArgumentf("Normalize: invalid weight (%v) for outcome %v", w, i)
		}
		y := w - c
		t := total + y
		c = (t - total) - y
		total = t
	}
	if !(total > 0.0) || math.IsInf(total, 0) {
		return nil, nil, statistics.InvalidArgumentf("Normalize: total weight (%v) is not positive", total)
	}

	k := float64(n)
	pmf := make([]float64, n)
	mixture := make([]float64, n)
	for i, w := range weights {
		pmf[i] = w / total
		mixture[i] = k * w / total
	}
	return pmf, mixture, nil
}

// Quantile computes the quantile (inverse CDF) for a discrete finite random variable.
// The discrete finite random variable is given by probability mass functions (pmf).
// For a given probability u in the range [0,1], it returns the index i such that the cumulative
// probability up to and including i is at least u. If u is 0, it returns 0. If u is 1, it returns
// the last index with a positive probability. If all probabilities are zero, it returns 0.
func Quantile(f []float64, u float64) int {
	sum := 0.0 // Kahn's summation algorithm for probability sum
	c := 0.0   // Compensation term of Kahn's algorithm
	lastPositive := -1
	for i := range len(f) {
		p := f[i]
		y := p - c
		t := sum + y
		c = (t - sum) - y
		sum = t
		if u <= sum {
			return i
		}
		if f[i] > 0.0 {
			lastPositive = i
		}
	}
	if lastPositive != -1 {
		return lastPositive
	}
	return 0 // default position if all probabilities are zero
}

// Sample the discrete finite random variable defined by the given probability
// mass function (pmf) by inversion. It costs O(K) per draw and serves as the
// reference sampler for the alias method.
func Sample(rg *rand.Rand, f []float64) int {
	return Quantile(f, rg.Float64())
}
