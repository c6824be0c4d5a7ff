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

// Source is the random source consumed by the samplers. It is satisfied by
// *math/rand.Rand and by *golang.org/x/exp/rand.Rand. A source is not required
// to be safe for concurrent use; callers sharing a distribution between
// goroutines use one source per goroutine or a locked source.
//
//go:generate mockgen -source source.go -destination source_mock.go -package alias
type Source interface {
	// Intn returns a uniform integer in [0,n).
	Intn(n int) int
	// Float64 returns a uniform float in [0,1).
	Float64() float64
	// Uint64 returns a uniform 64-bit integer.
	Uint64() uint64
}
