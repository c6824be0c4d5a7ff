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
	"testing"

	"github.com/0xsoniclabs/categorical/stochastic/statistics"
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// TestDiscrete_Check checks if the given probability mass function (pmf) is valid.
func TestDiscrete_Check(t *testing.T) {
	pmf := []float64{0.2, 0.5, 0.3}
	if err := Check(pmf); err != nil {
		t.Fatalf("valid pmf: want nil, got %v", err)
	}
	pmf = []float64{0.0, 1.0, 0.0}
	if err := Check(pmf); err != nil {
		t.Fatalf("valid pmf with zeros: want nil, got %v", err)
	}
	pmf = []float64{0.0, 0.0, 0.0}
	if err := Check(pmf); err == nil {
		t.Fatalf("all zeros pmf: want error, got nil")
	}
	pmf = []float64{-1.0, 0.0, 0.0}
	if err := Check(pmf); err == nil {
		t.Fatalf("negative number in pmf: want error, got nil")
	}
	pmf = []float64{1.1, 0.0, 0.0}
	if err := Check(pmf); err == nil {
		t.Fatalf("probability greater than one: want error, got nil")
	}
	pmf = []float64{math.NaN(), 0.0, 0.0}
	if err := Check(pmf); !errors.Is(err, statistics.ErrInvalidArgument) {
		t.Fatalf("a probability as NaN: want invalid argument, got %v", err)
	}
}

// TestDiscrete_NormalizeBasic tests the normalization of relative weights.
func TestDiscrete_NormalizeBasic(t *testing.T) {
	weights := []float64{1, 2, 3, 4, 5}
	pmf, mixture, err := Normalize(weights)
	if err != nil {
		t.Fatalf("valid weights: want nil error, got %v", err)
	}
	if err := Check(pmf); err != nil {
		t.Fatalf("normalized weights are not a pmf: %v", err)
	}
	for i, w := range weights {
		if math.Abs(pmf[i]-w/15.0) > 1e-12 {
			t.Fatalf("pmf[%d]: want %g, got %g", i, w/15.0, pmf[i])
		}
		if math.Abs(mixture[i]-5.0*w/15.0) > 1e-12 {
			t.Fatalf("mixture[%d]: want %g, got %g", i, 5.0*w/15.0, mixture[i])
		}
	}
}

// TestDiscrete_NormalizeEqualWeightsGiveUnitMixture tests that equal weights
// produce a mixture mass of exactly one for each outcome.
func TestDiscrete_NormalizeEqualWeightsGiveUnitMixture(t *testing.T) {
	for _, w := range []float64{1.0, 0.1, 7.5, 1e-300} {
		_, mixture, err := Normalize([]float64{w, w, w, w, w})
		if err != nil {
			t.Fatalf("weight %g: unexpected error %v", w, err)
		}
		for i, m := range mixture {
			if m != 1.0 {
				t.Fatalf("weight %g: mixture[%d]: want exactly 1, got %v", w, i, m)
			}
		}
	}
}

// TestDiscrete_NormalizeDoesNotModifyWeights tests that the caller's slice stays intact.
func TestDiscrete_NormalizeDoesNotModifyWeights(t *testing.T) {
	weights := []float64{3, 1}
	if _, _, err := Normalize(weights); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if weights[0] != 3 || weights[1] != 1 {
		t.Fatalf("weights were modified: %v", weights)
	}
}

// TestDiscrete_NormalizeRejectsInvalidWeights tests the failure modes of Normalize.
func TestDiscrete_NormalizeRejectsInvalidWeights(t *testing.T) {
	tests := map[string][]float64{
		"empty":      {},
		"nil":        nil,
		"all zeros":  {0, 0, 0},
		"negative":   {1, -1, 2},
		"NaN":        {1, math.NaN()},
		"infinite":   {1, math.Inf(1)},
		"overflow":   {math.MaxFloat64, math.MaxFloat64},
		"neg. zeros": {math.Copysign(0, -1)},
	}
	for name, weights := range tests {
		t.Run(name, func(t *testing.T) {
			pmf, mixture, err := Normalize(weights)
			if !errors.Is(err, statistics.ErrInvalidArgument) {
				t.Fatalf("want invalid argument, got %v", err)
			}
			if pmf != nil || mixture != nil {
				t.Fatalf("want no output on error, got %v and %v", pmf, mixture)
			}
		})
	}
}

// TestDiscrete_QuantileBasic tests the Quantile function.
func TestDiscrete_QuantileBasic(t *testing.T) {
	pmf := []float64{0.2, 0.3, 0.5}
	if got := Quantile(pmf, 0.0); got != 0 {
		t.Fatalf("u=0.0: want 0, got %d", got)
	}
	if got := Quantile(pmf, 0.2); got != 0 {
		t.Fatalf("u=0.2 (boundary): want 0, got %d", got)
	}
	if got := Quantile(pmf, 0.4); got != 1 {
		t.Fatalf("u=0.4: want 1, got %d", got)
	}
	if got := Quantile(pmf, 0.8); got != 2 {
		t.Fatalf("u=0.8: want 2, got %d", got)
	}
}

// TestDiscrete_QuantileReturnsLastPositiveWhenUSurpassesTotal tests rounding at the upper end.
func TestDiscrete_QuantileReturnsLastPositiveWhenUSurpassesTotal(t *testing.T) {
	pmf := []float64{0.1, 0.0, 0.2}
	if got := Quantile(pmf, 0.999); got != 2 {
		t.Fatalf("u>sum: want last positive index 2, got %d", got)
	}
	pmf = []float64{0.0, 0.7, 0.0}
	if got := Quantile(pmf, 0.9); got != 1 {
		t.Fatalf("u>sum: want last positive index 1, got %d", got)
	}
}

// TestDiscrete_QuantileAllZerosAndEmpty tests the Quantile function with all-zero and empty pmfs.
func TestDiscrete_QuantileAllZerosAndEmpty(t *testing.T) {
	if got := Quantile([]float64{0.0, 0.0, 0.0}, 0.5); got != 0 {
		t.Fatalf("all zeros: want 0, got %d", got)
	}
	var pmfEmpty []float64
	if got := Quantile(pmfEmpty, 0.3); got != 0 {
		t.Fatalf("empty pmf: want 0, got %d", got)
	}
}

// testSample performs a chi-squared test on the Sample function.
func testSample(f []float64, t *testing.T) {
	// create random generator with fixed seed value
	rg := rand.New(rand.NewSource(999))

	if err := Check(f); err != nil {
		t.Fatalf("The PMF is not valid. Error: %v", err)
	}

	numSteps := 100000
	n := len(f)

	counts := make([]int64, n)
	for range numSteps {
		counts[Sample(rg, f)]++
	}

	// compute chi-squared value for observations; buckets with an expected
	// value of zero must stay empty
	chi2 := float64(0.0)
	df := -1.0
	for i, v := range counts {
		expected := float64(numSteps) * f[i]
		if expected == 0 {
			if v != 0 {
				t.Fatalf("bucket %d has zero probability but %d observations", i, v)
			}
			continue
		}
		err := expected - float64(v)
		chi2 += (err * err) / expected
		df++
	}
	if df < 1 {
		return
	}

	// Perform statistical test whether the sampling is unbiased
	// with an alpha of 0.001.
	alpha := 0.001
	chi2Critical := distuv.ChiSquared{K: df, Src: nil}.Quantile(1.0 - alpha)
	if chi2 > chi2Critical {
		t.Fatalf("The random index selection biased.")
	}
}

// TestSample_Statistical tests the Sample function with a statistical test.
func TestSample_Statistical(t *testing.T) {
	t.Run("PMF1", func(t *testing.T) {
		testSample([]float64{0.1, 0.2, 0.3, 0.4}, t)
	})
	t.Run("PMF2", func(t *testing.T) {
		testSample([]float64{0.0, 0.0, 1.0, 0.0, 0.0}, t)
	})
	t.Run("PMF3", func(t *testing.T) {
		pmf, _, err := Normalize([]float64{1, 2, 3, 4, 5})
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		testSample(pmf, t)
	})
}
