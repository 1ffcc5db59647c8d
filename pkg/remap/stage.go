package remap

import (
	"sort"

	"github.com/arthur-debert/almanac/pkg/interval"
)

// Stage is one layer of a pipeline: a set of rules with disjoint sources.
// Values no rule covers map to themselves.
type Stage struct {
	name  string
	rules []Rule
}

// NewStage returns a stage over a copy of rules, ordered by source start.
// Rules are expected to have disjoint sources; see Overlap.
func NewStage(name string, rules ...Rule) *Stage {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Source.Start() < sorted[j].Source.Start()
	})
	return &Stage{name: name, rules: sorted}
}

// Name returns the label the stage was built with, e.g. "seed-to-soil".
func (s *Stage) Name() string { return s.name }

// Rules returns a copy of the stage's rules in source order.
func (s *Stage) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Len returns the number of rules.
func (s *Stage) Len() int { return len(s.rules) }

// LookupPoint maps v through the first rule covering it, or returns v.
func (s *Stage) LookupPoint(v uint64) uint64 {
	for _, r := range s.rules {
		if r.Source.Start() > v {
			break
		}
		if out, ok := r.LookupPoint(v); ok {
			return out
		}
	}
	return v
}

// LookupRanges maps every interval in queries through the stage.
//
// Each rule in turn splits the intervals not yet mapped; the mapped pieces
// are collected and the leftovers carried to the next rule. Whatever is left
// after the last rule passes through unchanged. For rules with disjoint
// sources the result does not depend on rule order.
func (s *Stage) LookupRanges(queries interval.Set) interval.Set {
	mapped := make(interval.Set, len(queries))
	remainder := make(interval.Set, len(queries))
	remainder.AddAll(queries)

	for _, r := range s.rules {
		if len(remainder) == 0 {
			break
		}
		next := make(interval.Set, len(remainder))
		for q := range remainder {
			out, ok, leftover := r.LookupRange(q)
			if ok {
				mapped.Add(out)
			}
			next.AddAll(leftover)
		}
		remainder = next
	}

	mapped.AddAll(remainder)
	return mapped
}

// Overlap reports the first pair of rules whose sources share a value.
// The stage never resolves such conflicts; callers decide whether to reject
// the input.
func (s *Stage) Overlap() (a, b Rule, ok bool) {
	for i := 1; i < len(s.rules); i++ {
		prev, cur := s.rules[i-1], s.rules[i]
		if prev.Source.Overlaps(cur.Source) {
			return prev, cur, true
		}
	}
	return Rule{}, Rule{}, false
}
