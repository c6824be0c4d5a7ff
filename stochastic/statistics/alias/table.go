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

// Table is the alias table of a categorical distribution with K outcomes.
// Slot j is chosen uniformly; a uniform draw u in [0,1) then yields outcome j
// if u < Threshold(j) and outcome Alias(j) otherwise. A table is immutable
// after it has been built.
type Table struct {
	threshold []float64 // probability of keeping the slot's own outcome
	alias     []int     // outcome returned when the slot's own outcome is rejected
}

// worklist is an array-based stack of outcome indices.
type worklist []int

func (w *worklist) push(i int) {
	*w = append(*w, i)
}

func (w *worklist) pop() int {
	l := len(*w) - 1
	i := (*w)[l]
	*w = (*w)[:l]
	return i
}

// Build constructs an alias table with Vose's method from the mixture mass of
// a distribution, i.e., the probabilities scaled by K. The mixture slice is
// used as working memory and is overwritten.
func Build(mixture []float64) *Table {
	n := len(mixture)
	t := &Table{
		threshold: make([]float64, n),
		alias:     make([]int, n),
	}

	small := make(worklist, 0, n)
	large := make(worklist, 0, n)
	for i, m := range mixture {
		t.alias[i] = i
		if m < 1.0 {
			small.push(i)
		} else {
			large.push(i)
		}
	}

	// Fill each under-full slot s with mass loaned from an over-full outcome l.
	for len(small) > 0 && len(large) > 0 {
		s := small.pop()
		l := large.pop()
		t.threshold[s] = mixture[s]
		t.alias[s] = l
		mixture[l] -= 1.0 - mixture[s]
		if mixture[l] < 1.0 {
			small.push(l)
		} else {
			large.push(l)
		}
	}

	// Outcomes left over are full slots. Under exact arithmetic only the
	// large list can be non-empty here; the small list may retain entries
	// with a mass marginally below one due to rounding.
	for len(large) > 0 {
		l := large.pop()
		t.threshold[l] = 1.0
		t.alias[l] = l
	}
	for len(small) > 0 {
		s := small.pop()
		t.threshold[s] = 1.0
		t.alias[s] = s
	}
	return t
}

// Len returns the number of slots (and outcomes) of the table.
func (t *Table) Len() int {
	return len(t.threshold)
}

// Threshold returns the threshold of slot j.
func (t *Table) Threshold(j int) float64 {
	return t.threshold[j]
}

// Alias returns the alias outcome of slot j.
func (t *Table) Alias(j int) int {
	return t.alias[j]
}

// Marginals computes the probability of each outcome under the two-stage
// sampling process of the table. For a correctly built table the result
// equals the probability mass function the table was built from.
func (t *Table) Marginals() []float64 {
	n := len(t.threshold)
	p := make([]float64, n)
	if n == 0 {
		return p
	}
	slot := 1.0 / float64(n)
	for j := range n {
		p[j] += slot * t.threshold[j]
		p[t.alias[j]] += slot * (1.0 - t.threshold[j])
	}
	return p
}

// pick maps a slot and a uniform draw to an outcome.
func (t *Table) pick(j int, u float64) int {
	if u < t.threshold[j] {
		return j
	}
	return t.alias[j]
}
