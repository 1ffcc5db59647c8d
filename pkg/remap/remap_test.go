package remap

import (
	"testing"

	"github.com/arthur-debert/almanac/pkg/errors"
	"github.com/arthur-debert/almanac/pkg/interval"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// iv is shorthand for interval.MustNew(start, length).
func iv(start, length uint64) interval.Interval {
	return interval.MustNew(start, length)
}

func rule(t *testing.T, destination, source, length uint64) Rule {
	t.Helper()
	r, err := NewRule(destination, source, length)
	require.NoError(t, err)
	return r
}

// assertSetEqual compares interval sets through their sorted form so failures
// print a readable diff.
func assertSetEqual(t *testing.T, want, got interval.Set) {
	t.Helper()
	if diff := cmp.Diff(want.Sorted(), got.Sorted(), cmp.AllowUnexported(interval.Interval{})); diff != "" {
		t.Errorf("interval set mismatch (-want +got):\n%s", diff)
	}
}

// worked example tables, seed-to-soil through humidity-to-location
var exampleTables = []struct {
	name  string
	rules [][3]uint64
}{
	{"seed-to-soil", [][3]uint64{{50, 98, 2}, {52, 50, 48}}},
	{"soil-to-fertilizer", [][3]uint64{{0, 15, 37}, {37, 52, 2}, {39, 0, 15}}},
	{"fertilizer-to-water", [][3]uint64{{49, 53, 8}, {0, 11, 42}, {42, 0, 7}, {57, 7, 4}}},
	{"water-to-light", [][3]uint64{{88, 18, 7}, {18, 25, 70}}},
	{"light-to-temperature", [][3]uint64{{45, 77, 23}, {81, 45, 19}, {68, 64, 13}}},
	{"temperature-to-humidity", [][3]uint64{{0, 69, 1}, {1, 0, 69}}},
	{"humidity-to-location", [][3]uint64{{60, 56, 37}, {56, 93, 4}}},
}

func examplePipeline(t *testing.T) *Pipeline {
	t.Helper()
	stages := make([]*Stage, 0, len(exampleTables))
	for _, table := range exampleTables {
		rules := make([]Rule, 0, len(table.rules))
		for _, r := range table.rules {
			rules = append(rules, rule(t, r[0], r[1], r[2]))
		}
		stages = append(stages, NewStage(table.name, rules...))
	}
	return NewPipeline(stages...)
}

func TestNewRule(t *testing.T) {
	r, err := NewRule(50, 98, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(50), r.Destination)
	assert.Equal(t, iv(98, 2), r.Source)
	assert.Equal(t, iv(50, 2), r.Target())
	assert.Equal(t, "[98..99] -> [50..51]", r.String())

	_, err = NewRule(50, 98, 0)
	assert.True(t, errors.IsErrorCode(err, errors.ErrZeroLength))

	_, err = NewRule(^uint64(0), 0, 2)
	assert.True(t, errors.IsErrorCode(err, errors.ErrOverflow))
}

func TestRuleLookupPoint(t *testing.T) {
	r := Rule{Destination: 50, Source: iv(3, 4)}

	tests := []struct {
		value  uint64
		want   uint64
		mapped bool
	}{
		{value: 2, mapped: false},
		{value: 3, want: 50, mapped: true},
		{value: 5, want: 52, mapped: true},
		{value: 6, want: 53, mapped: true},
		{value: 7, mapped: false},
	}
	for _, tt := range tests {
		got, ok := r.LookupPoint(tt.value)
		assert.Equal(t, tt.mapped, ok, "value %d", tt.value)
		if tt.mapped {
			assert.Equal(t, tt.want, got, "value %d", tt.value)
		}
	}
}

func TestRuleLookupRange(t *testing.T) {
	r := Rule{Destination: 50, Source: iv(3, 4)} // [3..6]

	tests := []struct {
		name         string
		query        interval.Interval
		wantMapped   interval.Interval
		wantOK       bool
		wantLeftover interval.Set
	}{
		{
			name:         "overlaps start",
			query:        iv(2, 3),
			wantMapped:   iv(50, 2),
			wantOK:       true,
			wantLeftover: interval.NewSet(iv(2, 1)),
		},
		{
			name:         "overlaps end",
			query:        iv(5, 4),
			wantMapped:   iv(52, 2),
			wantOK:       true,
			wantLeftover: interval.NewSet(iv(7, 2)),
		},
		{
			name:         "inside",
			query:        iv(5, 1),
			wantMapped:   iv(52, 1),
			wantOK:       true,
			wantLeftover: interval.NewSet(),
		},
		{
			name:         "covers source",
			query:        iv(1, 10),
			wantMapped:   iv(50, 4),
			wantOK:       true,
			wantLeftover: interval.NewSet(iv(1, 2), iv(7, 4)),
		},
		{
			name:         "exact match",
			query:        iv(3, 4),
			wantMapped:   iv(50, 4),
			wantOK:       true,
			wantLeftover: interval.NewSet(),
		},
		{
			name:         "aligned at start",
			query:        iv(3, 6),
			wantMapped:   iv(50, 4),
			wantOK:       true,
			wantLeftover: interval.NewSet(iv(7, 2)),
		},
		{
			name:         "aligned at end",
			query:        iv(0, 7),
			wantMapped:   iv(50, 4),
			wantOK:       true,
			wantLeftover: interval.NewSet(iv(0, 3)),
		},
		{
			name:         "before source",
			query:        iv(0, 3),
			wantLeftover: interval.NewSet(iv(0, 3)),
		},
		{
			name:         "after source",
			query:        iv(7, 100),
			wantLeftover: interval.NewSet(iv(7, 100)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped, ok, leftover := r.LookupRange(tt.query)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantMapped, mapped)
			}
			assertSetEqual(t, tt.wantLeftover, leftover)
		})
	}
}

func TestStageSortsRules(t *testing.T) {
	s := NewStage("s", rule(t, 1, 30, 5), rule(t, 2, 10, 5), rule(t, 3, 20, 5))
	starts := []uint64{}
	for _, r := range s.Rules() {
		starts = append(starts, r.Source.Start())
	}
	assert.Equal(t, []uint64{10, 20, 30}, starts)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "s", s.Name())
}

func TestStageLookupPoint(t *testing.T) {
	s := NewStage("seed-to-soil", rule(t, 50, 98, 2), rule(t, 52, 50, 48))

	tests := map[uint64]uint64{
		0:   0,
		49:  49,
		50:  52,
		53:  55,
		79:  81,
		97:  99,
		98:  50,
		99:  51,
		100: 100,
	}
	for in, want := range tests {
		assert.Equal(t, want, s.LookupPoint(in), "seed %d", in)
	}
}

func TestStageLookupRangesComposition(t *testing.T) {
	s := NewStage("s", rule(t, 10, 3, 2), rule(t, 50, 7, 3))

	got := s.LookupRanges(interval.NewSet(iv(1, 12)))

	want := interval.NewSet(iv(1, 2), iv(5, 2), iv(10, 3), iv(10, 2), iv(50, 3))
	assertSetEqual(t, want, got)

	total, ok := got.TotalLength()
	require.True(t, ok)
	assert.Equal(t, uint64(12), total)
}

func TestStageLookupRangesIdentity(t *testing.T) {
	s := NewStage("s", rule(t, 100, 50, 10))
	queries := interval.NewSet(iv(0, 10), iv(70, 5))

	assertSetEqual(t, queries, s.LookupRanges(queries))
	assertSetEqual(t, queries, NewStage("empty").LookupRanges(queries))
	assert.Equal(t, uint64(33), NewStage("empty").LookupPoint(33))
}

func TestStageLookupRangesDoesNotMutateInput(t *testing.T) {
	s := NewStage("s", rule(t, 100, 0, 10))
	queries := interval.NewSet(iv(0, 20))

	_ = s.LookupRanges(queries)
	assertSetEqual(t, interval.NewSet(iv(0, 20)), queries)
}

func TestStageLookupRangesIndependentOfRuleOrder(t *testing.T) {
	rules := []Rule{
		rule(t, 10, 3, 2),
		rule(t, 50, 7, 3),
		rule(t, 200, 12, 40),
		rule(t, 0, 60, 5),
	}
	queries := interval.NewSet(iv(1, 12), iv(40, 30), iv(100, 1))
	want := NewStage("sorted", rules...).LookupRanges(queries)

	for _, order := range permutations(len(rules)) {
		permuted := make([]Rule, len(rules))
		for i, idx := range order {
			permuted[i] = rules[idx]
		}
		// built directly so the rules keep the permuted order
		s := &Stage{name: "permuted", rules: permuted}
		assertSetEqual(t, want, s.LookupRanges(queries))
	}
}

func TestStageOverlap(t *testing.T) {
	_, _, ok := NewStage("disjoint", rule(t, 0, 0, 5), rule(t, 0, 5, 5)).Overlap()
	assert.False(t, ok)

	a, b, ok := NewStage("overlapping", rule(t, 0, 10, 5), rule(t, 0, 0, 5), rule(t, 0, 12, 1)).Overlap()
	require.True(t, ok)
	assert.Equal(t, iv(10, 5), a.Source)
	assert.Equal(t, iv(12, 1), b.Source)
}

func TestPipelineLookupPoint(t *testing.T) {
	p := examplePipeline(t)
	require.Equal(t, 7, p.Len())
	assert.Equal(t, 18, p.RuleCount())

	tests := map[uint64]uint64{79: 82, 14: 43, 55: 86, 13: 35}
	for seed, want := range tests {
		assert.Equal(t, want, p.LookupPoint(seed), "seed %d", seed)
	}
}

func TestPipelineTrace(t *testing.T) {
	p := examplePipeline(t)
	assert.Equal(t, []uint64{81, 81, 81, 74, 78, 78, 82}, p.Trace(79))
	assert.Empty(t, NewPipeline().Trace(5))
}

func TestPipelineLookupRanges(t *testing.T) {
	p := examplePipeline(t)

	for _, seed := range []interval.Interval{iv(79, 14), iv(55, 13)} {
		out := p.LookupRanges(interval.NewSet(seed))
		total, ok := out.TotalLength()
		require.True(t, ok)
		assert.Equal(t, seed.Length(), total, "length of %s must be conserved", seed)
	}

	out := p.LookupRanges(interval.NewSet(iv(79, 14), iv(55, 13)))
	lowest, ok := out.MinStart()
	require.True(t, ok)
	assert.Equal(t, uint64(46), lowest)
}

func TestPipelinePointRangeAgreement(t *testing.T) {
	p := examplePipeline(t)
	for v := uint64(0); v < 120; v++ {
		w := p.LookupPoint(v)
		got := p.LookupRanges(interval.NewSet(iv(v, 1)))
		assertSetEqual(t, interval.NewSet(iv(w, 1)), got)
	}
}

func TestPipelineWithoutStagesIsIdentity(t *testing.T) {
	p := NewPipeline()
	queries := interval.NewSet(iv(5, 5))
	assert.Equal(t, uint64(9), p.LookupPoint(9))
	assertSetEqual(t, queries, p.LookupRanges(queries))
}

func TestPipelineHandlesHugeRanges(t *testing.T) {
	p := examplePipeline(t)
	huge := iv(0, 1<<40)

	out := p.LookupRanges(interval.NewSet(huge))
	total, ok := out.TotalLength()
	require.True(t, ok)
	assert.Equal(t, huge.Length(), total)

	lowest, ok := out.MinStart()
	require.True(t, ok)
	assert.Equal(t, uint64(0), lowest)
}

// permutations returns every ordering of 0..n-1.
func permutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	var out [][]int
	for _, p := range permutations(n - 1) {
		for i := 0; i <= len(p); i++ {
			q := make([]int, 0, n)
			q = append(q, p[:i]...)
			q = append(q, n-1)
			q = append(q, p[i:]...)
			out = append(out, q)
		}
	}
	return out
}
