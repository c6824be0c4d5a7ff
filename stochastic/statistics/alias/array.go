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
	"encoding/json"

	"github.com/0xsoniclabs/categorical/stochastic/statistics"
	"golang.org/x/exp/constraints"
)

// Number is the set of element types a batch of samples can be cast to.
type Number interface {
	constraints.Integer | constraints.Float
}

// NDArray is the type-erased view of an Array.
type NDArray interface {
	json.Marshaler
	Shape() []int
	Len() int
}

// Array is a dense N-dimensional array stored in row-major order. An array
// with an empty shape is zero-dimensional and holds a single scalar.
type Array[T Number] struct {
	shape []int
	data  []T
}

var _ NDArray = (*Array[int])(nil)

// Shape returns a copy of the extent of each dimension.
func (a *Array[T]) Shape() []int {
	s := make([]int, len(a.shape))
	copy(s, a.shape)
	return s
}

// Len returns the number of cells.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// Data returns the cells in row-major order. The slice is shared with the array.
func (a *Array[T]) Data() []T {
	return a.data
}

// Item returns the single cell of an array with exactly one cell, in
// particular the scalar held by a zero-dimensional array.
func (a *Array[T]) Item() (T, error) {
	if len(a.data) != 1 {
		return 0, statistics.InvalidArgumentf("Item: array with %v cells cannot be converted to a scalar", len(a.data))
	}
	return a.data[0], nil
}

// At returns the cell at the given multi-dimensional index.
func (a *Array[T]) At(index ...int) (T, error) {
	if len(index) != len(a.shape) {
		return 0, statistics.InvalidArgumentf("At: index has %v dimensions, array has %v", len(index), len(a.shape))
	}
	pos := 0
	for d, i := range index {
		if i < 0 || i >= a.shape[d] {
			return 0, statistics.IndexOutOfRangef("At: index (%v) of dimension %v is not in [0,%v)", i, d, a.shape[d])
		}
		pos = pos*a.shape[d] + i
	}
	return a.data[pos], nil
}

// MarshalJSON encodes the array as nested JSON lists; a zero-dimensional
// array is encoded as a bare number.
func (a *Array[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.nested(0, a.data))
}

// nested converts the cells of dimension d onwards into nested slices.
func (a *Array[T]) nested(d int, data []T) any {
	if d == len(a.shape) {
		return data[0]
	}
	if d == len(a.shape)-1 {
		// a []uint8 row would be encoded as a base64 string
		row := make([]any, a.shape[d])
		for i := range row {
			row[i] = data[i]
		}
		return row
	}
	stride := len(data)
	if a.shape[d] > 0 {
		stride /= a.shape[d]
	}
	rows := make([]any, a.shape[d])
	for i := range a.shape[d] {
		rows[i] = a.nested(d+1, data[i*stride:(i+1)*stride])
	}
	return rows
}
