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
	"strings"

	"github.com/0xsoniclabs/categorical/stochastic/statistics"
)

// DType selects the element type of a batch of samples at run time.
type DType string

const (
	Int8    DType = "int8"
	Int16   DType = "int16"
	Int32   DType = "int32"
	Int64   DType = "int64"
	Uint8   DType = "uint8"
	Uint16  DType = "uint16"
	Uint32  DType = "uint32"
	Uint64  DType = "uint64"
	Float32 DType = "float32"
	Float64 DType = "float64"
)

// DTypes lists all supported element types.
var DTypes = []DType{Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64, Float32, Float64}

// ParseDType parses the name of an element type; the empty name selects Int64.
func ParseDType(name string) (DType, error) {
	if name == "" {
		return Int64, nil
	}
	t := DType(strings.ToLower(name))
	for _, v := range DTypes {
		if v == t {
			return t, nil
		}
	}
	return "", statistics.InvalidArgumentf("ParseDType: unknown element type (%v)", name)
}

// SampleDType draws a batch of the given shape with the element type selected
// by t.
func SampleDType(d *Distribution, src Source, t DType, shape []int, opts ...BatchOption) (NDArray, error) {
	switch t {
	case Int8:
		return wrap(SampleAs[int8](d, src, shape, opts...))
	case Int16:
		return wrap(SampleAs[int16](d, src, shape, opts...))
	case Int32:
		return wrap(SampleAs[int32](d, src, shape, opts...))
	case Int64:
		return wrap(SampleAs[int64](d, src, shape, opts...))
	case Uint8:
		return wrap(SampleAs[uint8](d, src, shape, opts...))
	case Uint16:
		return wrap(SampleAs[uint16](d, src, shape, opts...))
	case Uint32:
		return wrap(SampleAs[uint32](d, src, shape, opts...))
	case Uint64:
		return wrap(SampleAs[uint64](d, src, shape, opts...))
	case Float32:
		return wrap(SampleAs[float32](d, src, shape, opts...))
	case Float64:
		return wrap(SampleAs[float64](d, src, shape, opts...))
	}
	return nil, statistics.InvalidArgumentf("SampleDType: unknown element type (%v)", t)
}

// wrap avoids returning a non-nil interface holding a nil array.
func wrap[T Number](a *Array[T], err error) (NDArray, error) {
	if err != nil {
		return nil, err
	}
	return a, nil
}
