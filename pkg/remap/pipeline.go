package remap

import "github.com/arthur-debert/almanac/pkg/interval"

// Pipeline applies stages in order.
type Pipeline struct {
	stages []*Stage
}

// NewPipeline returns a pipeline over the given stages, first to last.
func NewPipeline(stages ...*Stage) *Pipeline {
	s := make([]*Stage, len(stages))
	copy(s, stages)
	return &Pipeline{stages: s}
}

// Stages returns the stages in application order.
func (p *Pipeline) Stages() []*Stage {
	out := make([]*Stage, len(p.stages))
	copy(out, p.stages)
	return out
}

// Len returns the number of stages.
func (p *Pipeline) Len() int { return len(p.stages) }

// RuleCount returns the number of rules across all stages.
func (p *Pipeline) RuleCount() int {
	n := 0
	for _, s := range p.stages {
		n += s.Len()
	}
	return n
}

// LookupPoint folds v through every stage.
func (p *Pipeline) LookupPoint(v uint64) uint64 {
	for _, s := range p.stages {
		v = s.LookupPoint(v)
	}
	return v
}

// Trace returns v after each stage; the last element equals LookupPoint(v).
func (p *Pipeline) Trace(v uint64) []uint64 {
	out := make([]uint64, 0, len(p.stages))
	for _, s := range p.stages {
		v = s.LookupPoint(v)
		out = append(out, v)
	}
	return out
}

// LookupRanges folds the whole query set through every stage.
func (p *Pipeline) LookupRanges(queries interval.Set) interval.Set {
	current := queries
	for _, s := range p.stages {
		current = s.LookupRanges(current)
	}
	if len(p.stages) == 0 {
		out := make(interval.Set, len(queries))
		out.AddAll(queries)
		return out
	}
	return current
}
