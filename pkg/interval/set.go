package interval

import (
	"math/bits"
	"sort"
)

// Set is an unordered collection of distinct intervals.
// Membership is by (start, length); adjacent or overlapping members are kept
// as they are.
type Set map[Interval]struct{}

// NewSet returns a set holding the given intervals.
func NewSet(items ...Interval) Set {
	s := make(Set, len(items))
	for _, r := range items {
		s.Add(r)
	}
	return s
}

// Add inserts r into the set.
func (s Set) Add(r Interval) {
	s[r] = struct{}{}
}

// AddAll inserts every member of o into the set.
func (s Set) AddAll(o Set) {
	for r := range o {
		s[r] = struct{}{}
	}
}

// Contains reports whether r is a member.
func (s Set) Contains(r Interval) bool {
	_, ok := s[r]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int { return len(s) }

// Equal reports whether both sets hold exactly the same intervals.
func (s Set) Equal(o Set) bool {
	if len(s) != len(o) {
		return false
	}
	for r := range s {
		if _, ok := o[r]; !ok {
			return false
		}
	}
	return true
}

// Sorted returns the members ordered by start, then length.
// The order is for presentation only; no computation depends on it.
func (s Set) Sorted() []Interval {
	out := make([]Interval, 0, len(s))
	for r := range s {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].start != out[j].start {
			return out[i].start < out[j].start
		}
		return out[i].length < out[j].length
	})
	return out
}

// MinStart returns the smallest start among the members.
// ok is false for an empty set.
func (s Set) MinStart() (lowest uint64, ok bool) {
	for r := range s {
		if !ok || r.start < lowest {
			lowest = r.start
			ok = true
		}
	}
	return lowest, ok
}

// TotalLength sums the lengths of all members.
// ok is false if the sum does not fit in a uint64.
func (s Set) TotalLength() (total uint64, ok bool) {
	var carry uint64
	for r := range s {
		total, carry = bits.Add64(total, r.length, 0)
		if carry != 0 {
			return 0, false
		}
	}
	return total, true
}
