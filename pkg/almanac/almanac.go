// Package almanac parses seed almanacs and answers the two location queries
// over them: the lowest location of any seed value, and the lowest location
// of any value in the seed ranges.
//
// Range queries are answered with interval arithmetic through a
// remap.Pipeline, so seed ranges of any size resolve without enumerating
// their values. Independent seed ranges may be resolved concurrently; the
// pipeline is only ever read.
package almanac

import (
	"context"

	"github.com/arthur-debert/almanac/pkg/errors"
	"github.com/arthur-debert/almanac/pkg/interval"
	"github.com/arthur-debert/almanac/pkg/logging"
	"github.com/arthur-debert/almanac/pkg/remap"
	"golang.org/x/sync/errgroup"
)

// Almanac is a parsed input: the seed list and the stage pipeline.
type Almanac struct {
	Seeds    []uint64
	Pipeline *remap.Pipeline
}

// RangeResult holds the locations one seed range resolves to.
type RangeResult struct {
	Seed      interval.Interval
	Locations interval.Set
	// Lowest is the smallest location start.
	Lowest uint64
}

// MinLocation returns the lowest location reached by any seed value.
func (a *Almanac) MinLocation() (uint64, error) {
	if len(a.Seeds) == 0 {
		return 0, errors.New(errors.ErrEmptySeeds, "almanac has no seeds")
	}
	lowest := a.Pipeline.LookupPoint(a.Seeds[0])
	for _, seed := range a.Seeds[1:] {
		lowest = min(lowest, a.Pipeline.LookupPoint(seed))
	}
	return lowest, nil
}

// SeedRanges reads the seed list as (start, length) pairs.
// The list must have an even number of values and every length must be
// positive.
func (a *Almanac) SeedRanges() ([]interval.Interval, error) {
	if len(a.Seeds) == 0 {
		return nil, errors.New(errors.ErrEmptySeeds, "almanac has no seeds")
	}
	if len(a.Seeds)%2 != 0 {
		return nil, errors.Newf(errors.ErrOddSeeds,
			"seed ranges need start/length pairs but the seed list has %d values", len(a.Seeds)).
			WithDetail("seeds", len(a.Seeds))
	}

	ranges := make([]interval.Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		r, err := interval.New(a.Seeds[i], a.Seeds[i+1])
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "seed pair %d", i/2+1).
				WithDetail("pair", i/2+1)
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// Locations resolves one seed range through every stage.
func (a *Almanac) Locations(seed interval.Interval) interval.Set {
	return a.Pipeline.LookupRanges(interval.NewSet(seed))
}

// ResolveRanges resolves every seed range, in seed order.
//
// With workers > 1 up to that many ranges are resolved at once. Each range
// is traversed independently and writes only its own result.
func (a *Almanac) ResolveRanges(ctx context.Context, workers int) ([]RangeResult, error) {
	ranges, err := a.SeedRanges()
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("almanac.query")
	done := logging.LogOperationStart(logger, "resolve ranges")
	defer done()

	results := make([]RangeResult, len(ranges))
	resolve := func(ctx context.Context, i int) error {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, errors.ErrQueryCanceled, "range query canceled")
		}
		locations := a.Locations(ranges[i])
		lowest, ok := locations.MinStart()
		if !ok {
			return errors.Newf(errors.ErrInternal, "seed range %s resolved to no locations", ranges[i])
		}
		results[i] = RangeResult{Seed: ranges[i], Locations: locations, Lowest: lowest}
		logger.Trace().
			Stringer("seed", ranges[i]).
			Int("fragments", locations.Len()).
			Uint64("lowest", lowest).
			Msg("Resolved seed range")
		return nil
	}

	if workers <= 1 {
		for i := range ranges {
			if err := resolve(ctx, i); err != nil {
				return nil, err
			}
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range ranges {
		i := i
		g.Go(func() error { return resolve(gctx, i) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Debug().Int("workers", workers).Int("ranges", len(ranges)).Msg("Resolved seed ranges concurrently")
	return results, nil
}

// MinRangeLocation returns the lowest location reached by any value in any
// seed range.
func (a *Almanac) MinRangeLocation(ctx context.Context, workers int) (uint64, error) {
	results, err := a.ResolveRanges(ctx, workers)
	if err != nil {
		return 0, err
	}
	return lowestOf(results), nil
}

func lowestOf(results []RangeResult) uint64 {
	lowest := results[0].Lowest
	for _, r := range results[1:] {
		lowest = min(lowest, r.Lowest)
	}
	return lowest
}
