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
	"math"
	"unsafe"

	"github.com/0xsoniclabs/categorical/stochastic/generator"
	"github.com/0xsoniclabs/categorical/stochastic/statistics"
	"golang.org/x/sync/errgroup"
)

// DefaultChunkSize is the number of cells sampled from one chunk generator.
const DefaultChunkSize = 1 << 16

// MaxArrayBytes bounds the memory of the data of a sampled array.
const MaxArrayBytes = 1 << 34

type batchConfig struct {
	workers   int // number of parallel workers; zero samples directly from the caller's source
	chunkSize int // cells per chunk generator
}

// BatchOption configures a batch sampling run.
type BatchOption func(*batchConfig)

// WithWorkers fills the batch in chunks on up to n goroutines. Each chunk is
// sampled from its own generator whose seed is drawn from the caller's source
// before any worker starts, hence the result for a given source state does
// not depend on n.
func WithWorkers(n int) BatchOption {
	return func(c *batchConfig) {
		c.workers = max(n, 1)
	}
}

// WithChunkSize sets the number of cells per chunk for WithWorkers.
func WithChunkSize(n int) BatchOption {
	return func(c *batchConfig) {
		if n > 0 {
			c.chunkSize = n
		}
	}
}

// SampleArray draws independent outcomes into an array of the given shape.
func SampleArray(d *Distribution, src Source, shape []int, opts ...BatchOption) (*Array[int], error) {
	return SampleAs[int](d, src, shape, opts...)
}

// SampleAs draws independent outcomes into an array of the given shape and
// element type. It fails if the largest outcome K-1 is not exactly
// representable in T.
func SampleAs[T Number](d *Distribution, src Source, shape []int, opts ...BatchOption) (*Array[T], error) {
	if err := checkCast[T](d.K()); err != nil {
		return nil, err
	}
	cells, err := cellCount(shape, int(unsafe.Sizeof(T(0))))
	if err != nil {
		return nil, err
	}
	cfg := batchConfig{chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &Array[T]{
		shape: make([]int, len(shape)),
		data:  make([]T, cells),
	}
	copy(a.shape, shape)

	if cfg.workers == 0 {
		fill(d, src, a.data)
		return a, nil
	}

	chunks := (cells + cfg.chunkSize - 1) / cfg.chunkSize
	seeds := make([]uint64, chunks)
	for i := range seeds {
		seeds[i] = src.Uint64()
	}
	var g errgroup.Group
	g.SetLimit(cfg.workers)
	for c := range chunks {
		g.Go(func() error {
			lo := c * cfg.chunkSize
			hi := min(lo+cfg.chunkSize, cells)
			fill(d, generator.NewSource(seeds[c]), a.data[lo:hi])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return a, nil
}

func fill[T Number](d *Distribution, src Source, data []T) {
	for i := range data {
		data[i] = T(d.Sample(src))
	}
}

// cellCount computes the number of cells of an array with the given shape
// whose data of elemSize bytes per cell fits into MaxArrayBytes.
func cellCount(shape []int, elemSize int) (int, error) {
	cells := 1
	for i, n := range shape {
		if n < 0 {
			return 0, statistics.InvalidArgumentf("SampleArray: negative extent (%v) of dimension %v", n, i)
		}
		if n != 0 && cells > math.MaxInt/n {
			return 0, statistics.InvalidArgumentf("SampleArray: shape %v has too many cells", shape)
		}
		cells *= n
	}
	if cells > MaxArrayBytes/elemSize {
		return 0, statistics.InvalidArgumentf("SampleArray: shape %v exceeds %v bytes of %v byte elements", shape, MaxArrayBytes, elemSize)
	}
	return cells, nil
}

// checkCast checks that all outcomes of a distribution with k outcomes are
// exactly representable in T.
func checkCast[T Number](k int) error {
	largest := k - 1
	if v := T(largest); int64(v) != int64(largest) {
		return statistics.InvalidArgumentf("SampleArray: outcome %v is not representable as %T", largest, v)
	}
	return nil
}
