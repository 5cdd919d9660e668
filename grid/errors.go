// SPDX-License-Identifier: MIT
// Package grid: construction-time error set.
// Run-time accessors never return errors; they use the safe/fatal split
// documented on Grid instead. Callers match with errors.Is against the
// sentinels, or errors.As against the typed errors for the offending sizes.

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrDimension is matched by every *DimensionError: a zero or negative
	// width, height or input length, or an area that does not fit in int.
	ErrDimension = errors.New("grid: invalid dimension")

	// ErrDimensionMismatch is matched by every *DimensionMismatchError: the
	// adopted slice length is not a multiple of the requested width.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")
)

// DimensionError reports rejected dimensions at construction.
// FromSlice distinguishes the adopting constructors (InputLen is meaningful)
// from the filling ones (Height is meaningful).
type DimensionError struct {
	Width     int
	Height    int
	InputLen  int
	FromSlice bool
}

func (e *DimensionError) Error() string {
	if e.FromSlice {
		if e.Width <= 0 {
			return fmt.Sprintf("grid: width should be non-zero (width: %d, input_len: %d)", e.Width, e.InputLen)
		}
		return fmt.Sprintf("grid: input length should be non-zero (width: %d, input_len: %d)", e.Width, e.InputLen)
	}
	switch {
	case e.Width <= 0:
		return fmt.Sprintf("grid: width should be non-zero (width: %d, height: %d)", e.Width, e.Height)
	case e.Height <= 0:
		return fmt.Sprintf("grid: height should be non-zero (width: %d, height: %d)", e.Width, e.Height)
	default:
		return fmt.Sprintf("grid: area overflows int (width: %d, height: %d)", e.Width, e.Height)
	}
}

// Unwrap lets errors.Is(err, ErrDimension) succeed.
func (e *DimensionError) Unwrap() error { return ErrDimension }

// DimensionMismatchError reports an input length that cannot be split into
// rows of Width elements.
type DimensionMismatchError struct {
	Width    int
	InputLen int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("grid: input length is not divisible by width: %d %% %d = %d",
		e.InputLen, e.Width, e.InputLen%e.Width)
}

// Unwrap lets errors.Is(err, ErrDimensionMismatch) succeed.
func (e *DimensionMismatchError) Unwrap() error { return ErrDimensionMismatch }
