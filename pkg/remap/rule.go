// Package remap implements piecewise-linear remapping of uint64 values and
// interval sets.
//
// A Rule shifts one source interval onto a destination base. A Stage groups
// rules with disjoint sources and passes every uncovered value through
// unchanged. A Pipeline chains stages so that the output of one is the input
// of the next.
//
// Range lookups operate on interval.Set values and never enumerate the
// members of an interval, so a seed range spanning billions of values costs
// the same as a range of one.
//
// All types are immutable after construction and safe for concurrent reads.
package remap

import (
	"fmt"
	"math"

	"github.com/arthur-debert/almanac/pkg/errors"
	"github.com/arthur-debert/almanac/pkg/interval"
)

// Rule maps every v in Source to v - Source.Start() + Destination.
type Rule struct {
	Destination uint64
	Source      interval.Interval
}

// NewRule builds the rule described by one almanac line:
// destination base, source base, range length.
func NewRule(destination, sourceStart, length uint64) (Rule, error) {
	src, err := interval.New(sourceStart, length)
	if err != nil {
		return Rule{}, err
	}
	if length-1 > math.MaxUint64-destination {
		return Rule{}, errors.Newf(errors.ErrOverflow,
			"destination range starting at %d with length %d does not fit in uint64", destination, length).
			WithDetail("destination", destination).
			WithDetail("length", length)
	}
	return Rule{Destination: destination, Source: src}, nil
}

// shift maps a value known to lie within the source interval.
func (r Rule) shift(v uint64) uint64 {
	return v - r.Source.Start() + r.Destination
}

// LookupPoint returns the mapped value if v lies in the rule's source.
func (r Rule) LookupPoint(v uint64) (uint64, bool) {
	if !r.Source.Contains(v) {
		return 0, false
	}
	return r.shift(v), true
}

// LookupRange splits query against the rule's source.
//
// If the two overlap, mapped is the shifted overlap and ok is true. leftover
// holds the parts of query strictly before and strictly after the overlap;
// either may be absent. Leftovers are not checked against r again.
// If they don't overlap, leftover is {query}.
func (r Rule) LookupRange(query interval.Interval) (mapped interval.Interval, ok bool, leftover interval.Set) {
	lo := max(r.Source.Start(), query.Start())
	hi := min(r.Source.End(), query.End())
	if hi < lo {
		return interval.Interval{}, false, interval.NewSet(query)
	}

	mapped = interval.MustNew(r.shift(lo), hi-lo+1)

	leftover = make(interval.Set, 2)
	if lo > query.Start() {
		leftover.Add(interval.MustNew(query.Start(), lo-query.Start()))
	}
	if hi < query.End() {
		leftover.Add(interval.MustNew(hi+1, query.End()-hi))
	}
	return mapped, true, leftover
}

// Target returns the interval the rule maps its source onto.
func (r Rule) Target() interval.Interval {
	return interval.MustNew(r.Destination, r.Source.Length())
}

func (r Rule) String() string {
	return fmt.Sprintf("%s -> %s", r.Source, r.Target())
}
