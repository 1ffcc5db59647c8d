package testutil

import "testing"

// SampleAlmanac is the worked example: seeds 79 14 55 13 reach locations
// 82 43 86 35, and the seed ranges [79,14] and [55,13] reach 46 at lowest.
const SampleAlmanac = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

// Expected answers for SampleAlmanac
const (
	SamplePointMinimum uint64 = 35
	SampleRangeMinimum uint64 = 46
)

// OverlappingAlmanac has one stage whose two rules share sources 5..9
const OverlappingAlmanac = `seeds: 1 2

a-to-b map:
0 0 10
100 5 10
`

// WriteSample writes SampleAlmanac into dir and returns its path
func WriteSample(t *testing.T, dir string) string {
	t.Helper()
	return CreateFile(t, dir, "sample.txt", SampleAlmanac)
}
