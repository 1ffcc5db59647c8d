// Package interval provides closed, inclusive ranges of uint64 values and an
// unordered set container for them.
//
// An Interval is identified by its start and length; the end is derived. Two
// intervals that touch or even share values are still distinct members of a
// Set: nothing in this package merges or coalesces intervals.
package interval

import (
	"fmt"
	"math"

	"github.com/arthur-debert/almanac/pkg/errors"
)

// Interval is the closed range [Start, End] with End = Start + Length - 1.
// The zero value is not a valid Interval; use New or MustNew.
type Interval struct {
	start  uint64
	length uint64
}

// New returns the interval of length values beginning at start.
func New(start, length uint64) (Interval, error) {
	if length == 0 {
		return Interval{}, errors.Newf(errors.ErrZeroLength,
			"interval starting at %d must have a positive length", start).
			WithDetail("start", start)
	}
	if length-1 > math.MaxUint64-start {
		return Interval{}, errors.Newf(errors.ErrOverflow,
			"interval [%d, +%d) does not fit in uint64", start, length).
			WithDetail("start", start).
			WithDetail("length", length)
	}
	return Interval{start: start, length: length}, nil
}

// MustNew is like New but panics if the interval is invalid.
func MustNew(start, length uint64) Interval {
	r, err := New(start, length)
	if err != nil {
		panic(err)
	}
	return r
}

// FromBounds returns the interval [start, end].
func FromBounds(start, end uint64) (Interval, error) {
	if end < start {
		return Interval{}, errors.Newf(errors.ErrZeroLength,
			"interval end %d is before start %d", end, start)
	}
	if start == 0 && end == math.MaxUint64 {
		return Interval{}, errors.New(errors.ErrOverflow,
			"interval covering every uint64 has no representable length")
	}
	return Interval{start: start, length: end - start + 1}, nil
}

// Start returns the first value in the interval.
func (r Interval) Start() uint64 { return r.start }

// Length returns the number of values in the interval.
func (r Interval) Length() uint64 { return r.length }

// End returns the last value in the interval.
func (r Interval) End() uint64 { return r.start + r.length - 1 }

// IsValid reports whether r was built by a constructor.
func (r Interval) IsValid() bool { return r.length > 0 }

// Contains reports whether v lies within r.
func (r Interval) Contains(v uint64) bool {
	return r.start <= v && v <= r.End()
}

// Overlaps reports whether r and o share at least one value.
func (r Interval) Overlaps(o Interval) bool {
	return r.start <= o.End() && o.start <= r.End()
}

// String renders r as [start..end].
func (r Interval) String() string {
	return fmt.Sprintf("[%d..%d]", r.start, r.End())
}
