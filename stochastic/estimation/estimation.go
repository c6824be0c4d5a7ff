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

package estimation

import (
	"math"

	"github.com/0xsoniclabs/categorical/stochastic/statistics"
	"github.com/0xsoniclabs/categorical/stochastic/statistics/alias"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Counts tallies the outcomes of samples drawn from a distribution with k outcomes.
func Counts[T alias.Number](samples []T, k int) ([]uint64, error) {
	counts := make([]uint64, k)
	for i, s := range samples {
		x := float64(s)
		if x < 0 || x >= float64(k) || x != math.Trunc(x) {
			return nil, statistics.IndexOutOfRangef("Counts: sample %v (%v) is not an outcome in [0,%v)", i, s, k)
		}
		counts[int(x)]++
	}
	return counts, nil
}

// Frequencies converts counts into relative frequencies. All frequencies are
// zero if there are no observations.
func Frequencies(counts []uint64) []float64 {
	total := uint64(0)
	for _, c := range counts {
		total += c
	}
	f := make([]float64, len(counts))
	if total == 0 {
		return f
	}
	for i, c := range counts {
		f[i] = float64(c) / float64(total)
	}
	return f
}

// Fit is the result of a chi-squared goodness-of-fit test of observed counts
// against a probability mass function.
type Fit struct {
	ChiSquared       float64 // test statistic
	DegreesOfFreedom float64 // number of possible outcomes minus one
	Critical         float64 // critical value for the significance level
	Alpha            float64 // significance level
	MaxDeviation     float64 // largest absolute deviation of a frequency from its probability
}

// Biased reports whether the hypothesis that the counts follow the pmf is rejected.
func (f Fit) Biased() bool {
	if math.IsInf(f.ChiSquared, 1) {
		return true
	}
	return f.DegreesOfFreedom > 0 && f.ChiSquared > f.Critical
}

// GoodnessOfFit performs a chi-squared test of the observed counts against the
// given pmf with significance level alpha. Outcomes with zero probability do not
// contribute degrees of freedom; observing one makes the test fail.
func GoodnessOfFit(counts []uint64, pmf []float64, alpha float64) (Fit, error) {
	if len(counts) != len(pmf) {
		return Fit{}, statistics.InvalidArgumentf("GoodnessOfFit: number of counts (%v) mismatches number of outcomes (%v)", len(counts), len(pmf))
	}
	if !(alpha > 0 && alpha < 1) {
		return Fit{}, statistics.InvalidArgumentf("GoodnessOfFit: significance level (%v) is not in (0,1)", alpha)
	}
	total := uint64(0)
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return Fit{}, statistics.InvalidArgumentf("GoodnessOfFit: no observations")
	}

	fit := Fit{Alpha: alpha, DegreesOfFreedom: -1}
	freq := Frequencies(counts)
	for i, c := range counts {
		fit.MaxDeviation = math.Max(fit.MaxDeviation, math.Abs(freq[i]-pmf[i]))
		expected := float64(total) * pmf[i]
		if expected == 0 {
			if c > 0 {
				fit.ChiSquared = math.Inf(1)
			}
			continue
		}
		diff := expected - float64(c)
		fit.ChiSquared += diff * diff / expected
		fit.DegreesOfFreedom++
	}
	if fit.DegreesOfFreedom < 1 {
		fit.DegreesOfFreedom = 0
		return fit, nil
	}
	fit.Critical = distuv.ChiSquared{K: fit.DegreesOfFreedom}.Quantile(1.0 - alpha)
	return fit, nil
}

// Summary compares the moments of drawn outcomes with those of the pmf.
type Summary struct {
	Mean             float64
	Variance         float64
	ExpectedMean     float64
	ExpectedVariance float64
}

// Summarize computes the mean and variance of the outcomes given by counts
// and the mean and variance implied by the pmf. Both variances are population
// variances, so that equal relative counts and pmf yield equal moments.
func Summarize(counts []uint64, pmf []float64) (Summary, error) {
	if len(counts) != len(pmf) {
		return Summary{}, statistics.InvalidArgumentf("Summarize: number of counts (%v) mismatches number of outcomes (%v)", len(counts), len(pmf))
	}
	outcomes := make([]float64, len(pmf))
	weights := make([]float64, len(pmf))
	for i := range outcomes {
		outcomes[i] = float64(i)
		weights[i] = float64(counts[i])
	}
	var s Summary
	s.ExpectedMean, s.ExpectedVariance = stat.PopMeanVariance(outcomes, pmf)
	s.Mean, s.Variance = stat.PopMeanVariance(outcomes, weights)
	return s, nil
}
