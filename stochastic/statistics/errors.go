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

package statistics

import (
	"github.com/cockroachdb/errors"
)

// Error kinds of the statistics packages. Concrete errors are marked with one
// of these kinds so callers can test for them with errors.Is.
var (
	// ErrInvalidArgument is raised for malformed input such as empty or
	// non-positive weight vectors, negative dimensions, or lossy output casts.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange is raised when an outcome index is not in [0,K).
	ErrIndexOutOfRange = errors.New("index out of range")
)

// InvalidArgumentf creates a new error of kind ErrInvalidArgument.
func InvalidArgumentf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidArgument)
}

// IndexOutOfRangef creates a new error of kind ErrIndexOutOfRange.
func IndexOutOfRangef(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrIndexOutOfRange)
}
