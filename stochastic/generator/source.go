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

package generator

import (
	"sync"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext/prng"
)

// NewSource creates a random generator backed by a Mersenne Twister seeded
// with the given value. Generators with equal seeds produce equal streams.
// The generator is not safe for concurrent use.
func NewSource(seed uint64) *rand.Rand {
	// We don't use a cryptographically secure source of randomness here, as
	// there's no need to ensure a truly random sampling.
	src := prng.NewMT19937()
	src.Seed(seed)
	return rand.New(src)
}

// TimeSeed derives a non-zero seed from the current time.
func TimeSeed() uint64 {
	return max(uint64(time.Now().UnixNano()), 1)
}

// ResolveSeed returns seed, or a TimeSeed if seed is zero.
func ResolveSeed(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	return TimeSeed()
}

// LockedSource is a seeded random generator that may be shared between
// goroutines.
type LockedSource struct {
	lock sync.Mutex
	rg   *rand.Rand
}

// NewLockedSource creates a goroutine-safe random generator.
func NewLockedSource(seed uint64) *LockedSource {
	return &LockedSource{rg: NewSource(seed)}
}

// Intn returns a uniform integer in [0,n).
func (s *LockedSource) Intn(n int) int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.rg.Intn(n)
}

// Float64 returns a uniform float in [0,1).
func (s *LockedSource) Float64() float64 {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.rg.Float64()
}

// Uint64 returns a uniform 64-bit integer.
func (s *LockedSource) Uint64() uint64 {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.rg.Uint64()
}
