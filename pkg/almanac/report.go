package almanac

import (
	"context"
	"math"
	"math/bits"

	"github.com/arthur-debert/almanac/pkg/interval"
)

// Report is the outcome of a full solve.
type Report struct {
	// PointMinimum is the lowest location of any single seed value.
	PointMinimum uint64 `json:"pointMinimum" yaml:"pointMinimum"`
	// RangeMinimum is the lowest location of any value in the seed ranges.
	RangeMinimum uint64 `json:"rangeMinimum" yaml:"rangeMinimum"`

	Seeds      int `json:"seeds" yaml:"seeds"`
	SeedRanges int `json:"seedRanges" yaml:"seedRanges"`
	Stages     int `json:"stages" yaml:"stages"`
	Rules      int `json:"rules" yaml:"rules"`
	// Fragments counts the location intervals the seed ranges split into.
	Fragments int `json:"fragments" yaml:"fragments"`
	// Covered is the number of seed values the ranges span. It saturates at
	// math.MaxUint64.
	Covered uint64 `json:"covered" yaml:"covered"`
}

// Solve answers both queries.
func (a *Almanac) Solve(ctx context.Context, workers int) (*Report, error) {
	point, err := a.MinLocation()
	if err != nil {
		return nil, err
	}

	results, err := a.ResolveRanges(ctx, workers)
	if err != nil {
		return nil, err
	}

	report := &Report{
		PointMinimum: point,
		RangeMinimum: lowestOf(results),
		Seeds:        len(a.Seeds),
		SeedRanges:   len(results),
		Stages:       a.Pipeline.Len(),
		Rules:        a.Pipeline.RuleCount(),
	}
	for _, r := range results {
		report.Fragments += r.Locations.Len()
		report.Covered = addSaturating(report.Covered, r.Seed.Length())
	}
	return report, nil
}

// addSaturating returns a+b, or math.MaxUint64 when the sum does not fit.
func addSaturating(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

// StageValue is a value as it leaves one stage.
type StageValue struct {
	Stage string `json:"stage" yaml:"stage"`
	Value uint64 `json:"value" yaml:"value"`
}

// SeedTrace follows one seed value through every stage.
type SeedTrace struct {
	Seed     uint64       `json:"seed" yaml:"seed"`
	Steps    []StageValue `json:"steps" yaml:"steps"`
	Location uint64       `json:"location" yaml:"location"`
}

// Trace follows each seed through the pipeline. With no seeds given it traces
// the almanac's own seed list.
func (a *Almanac) Trace(seeds ...uint64) []SeedTrace {
	if len(seeds) == 0 {
		seeds = a.Seeds
	}
	stages := a.Pipeline.Stages()

	out := make([]SeedTrace, 0, len(seeds))
	for _, seed := range seeds {
		values := a.Pipeline.Trace(seed)
		t := SeedTrace{Seed: seed, Location: seed, Steps: make([]StageValue, len(values))}
		for i, v := range values {
			t.Steps[i] = StageValue{Stage: stages[i].Name(), Value: v}
			t.Location = v
		}
		out = append(out, t)
	}
	return out
}

// RangeSpan is one location interval in a RangeReport.
type RangeSpan struct {
	Start  uint64 `json:"start" yaml:"start"`
	End    uint64 `json:"end" yaml:"end"`
	Length uint64 `json:"length" yaml:"length"`
}

// SeedRangeReport lists the locations one seed range resolves to, ordered
// by start.
type SeedRangeReport struct {
	Seed      RangeSpan   `json:"seed" yaml:"seed"`
	Locations []RangeSpan `json:"locations" yaml:"locations"`
	Lowest    uint64      `json:"lowest" yaml:"lowest"`
	// Distinct is the summed length of Locations. Pieces that land on the
	// same interval are kept once, so it can be less than Seed.Length.
	Distinct uint64 `json:"distinct" yaml:"distinct"`
}

// RangeReport is the per-range breakdown behind RangeMinimum.
type RangeReport struct {
	Ranges []SeedRangeReport `json:"ranges" yaml:"ranges"`
	Lowest uint64            `json:"lowest" yaml:"lowest"`
	// Covered counts seed values, as in Report.
	Covered uint64 `json:"covered" yaml:"covered"`
	// Distinct sums the per-range Distinct lengths.
	Distinct uint64 `json:"distinct" yaml:"distinct"`
}

// Ranges resolves the seed ranges and returns their location intervals.
// Both totals saturate at math.MaxUint64.
func (a *Almanac) Ranges(ctx context.Context, workers int) (*RangeReport, error) {
	results, err := a.ResolveRanges(ctx, workers)
	if err != nil {
		return nil, err
	}

	report := &RangeReport{Lowest: lowestOf(results), Ranges: make([]SeedRangeReport, 0, len(results))}
	for _, r := range results {
		distinct, ok := r.Locations.TotalLength()
		if !ok {
			distinct = math.MaxUint64
		}
		report.Covered = addSaturating(report.Covered, r.Seed.Length())
		report.Distinct = addSaturating(report.Distinct, distinct)

		sr := SeedRangeReport{Seed: span(r.Seed), Lowest: r.Lowest, Distinct: distinct}
		for _, loc := range r.Locations.Sorted() {
			sr.Locations = append(sr.Locations, span(loc))
		}
		report.Ranges = append(report.Ranges, sr)
	}
	return report, nil
}

func span(r interval.Interval) RangeSpan {
	return RangeSpan{Start: r.Start(), End: r.End(), Length: r.Length()}
}

// StageSummary describes one stage for Check.
type StageSummary struct {
	Name  string `json:"name" yaml:"name"`
	Rules int    `json:"rules" yaml:"rules"`
	// Overlap names the first pair of overlapping rules, if any.
	Overlap string `json:"overlap,omitempty" yaml:"overlap,omitempty"`
}

// CheckReport summarises an almanac's structure.
type CheckReport struct {
	Seeds       int            `json:"seeds" yaml:"seeds"`
	PairedSeeds bool           `json:"pairedSeeds" yaml:"pairedSeeds"`
	Stages      []StageSummary `json:"stages" yaml:"stages"`
	Valid       bool           `json:"valid" yaml:"valid"`
}

// Check reports stage sizes and overlapping rules without running queries.
// Valid is false when any stage has overlapping rules or the seed list
// cannot be read as ranges.
func (a *Almanac) Check() *CheckReport {
	report := &CheckReport{
		Seeds:       len(a.Seeds),
		PairedSeeds: len(a.Seeds) > 0 && len(a.Seeds)%2 == 0,
		Valid:       true,
	}
	if _, err := a.SeedRanges(); err != nil {
		report.Valid = false
	}
	for _, s := range a.Pipeline.Stages() {
		summary := StageSummary{Name: s.Name(), Rules: s.Len()}
		if r1, r2, ok := s.Overlap(); ok {
			summary.Overlap = r1.String() + " overlaps " + r2.String()
			report.Valid = false
		}
		report.Stages = append(report.Stages, summary)
	}
	return report
}
