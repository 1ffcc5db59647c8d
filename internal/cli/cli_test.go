package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/almanac/pkg/errors"
	"github.com/arthur-debert/almanac/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	stdout string
	stderr string
	err    error
}

type fixture struct {
	env     *testutil.Env
	sample  string
	overlap string
	missing string
}

// setup isolates the environment and writes the input files
func setup(t *testing.T) *fixture {
	t.Helper()
	env := testutil.Isolate(t)
	t.Setenv("NO_COLOR", "1")
	return &fixture{
		env:     env,
		sample:  testutil.WriteSample(t, env.Root),
		overlap: testutil.CreateFile(t, env.Root, "overlap.txt", testutil.OverlappingAlmanac),
		missing: filepath.Join(env.Root, "missing.txt"),
	}
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.ExecuteContext(context.Background())
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func decodeJSON(t *testing.T, s string) map[string]interface{} {
	t.Helper()
	var v map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(s), &v), s)
	return v
}

func TestSolveText(t *testing.T) {
	f := setup(t)
	res := run(t, "", "solve", f.sample)
	require.NoError(t, res.err)
	assert.Regexp(t, `Lowest location \(seeds\):\s+35\n`, res.stdout)
	assert.Regexp(t, `Lowest location \(seed ranges\):\s+46\n`, res.stdout)
	assert.Regexp(t, `Rules:\s+18\n`, res.stdout)
	assert.Empty(t, res.stderr)
}

func TestSolveJSON(t *testing.T) {
	f := setup(t)
	for _, workers := range []string{"1", "4"} {
		res := run(t, "", "solve", "--format", "json", "--workers", workers, f.sample)
		require.NoError(t, res.err)

		got := decodeJSON(t, res.stdout)
		assert.Equal(t, float64(35), got["pointMinimum"], "workers=%s", workers)
		assert.Equal(t, float64(46), got["rangeMinimum"], "workers=%s", workers)
		assert.Equal(t, float64(7), got["stages"])
	}
}

func TestSolveFromStdin(t *testing.T) {
	setup(t)
	res := run(t, "seeds: 5 3\n\na-to-b map:\n100 0 10\n", "solve", "-f", "json", "-")
	require.NoError(t, res.err)

	got := decodeJSON(t, res.stdout)
	assert.Equal(t, float64(103), got["pointMinimum"])
	assert.Equal(t, float64(105), got["rangeMinimum"])
}

func TestSolveFormatFromEnvironment(t *testing.T) {
	f := setup(t)
	t.Setenv("ALMANAC_OUTPUT_FORMAT", "yaml")
	res := run(t, "", "solve", f.sample)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "pointMinimum: 35\n")
	assert.Contains(t, res.stdout, "rangeMinimum: 46\n")
}

func TestSolveStrictness(t *testing.T) {
	f := setup(t)
	res := run(t, "", "solve", f.overlap)
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrRuleOverlap), "got %v", res.err)

	res = run(t, "", "solve", "--strict=false", "-f", "json", f.overlap)
	require.NoError(t, res.err)
	assert.Equal(t, float64(1), decodeJSON(t, res.stdout)["pointMinimum"])
}

func TestSolveErrors(t *testing.T) {
	f := setup(t)
	tests := []struct {
		name     string
		args     []string
		wantCode errors.ErrorCode
	}{
		{"missing file", []string{"solve", f.missing}, errors.ErrFileNotFound},
		{"bad format", []string{"solve", "--format", "html", f.sample}, errors.ErrConfigValid},
		{"no workers", []string{"solve", "--workers", "0", f.sample}, errors.ErrConfigValid},
		{"missing config", []string{"solve", "--config", filepath.Join(f.env.Root, "none.toml"), f.sample}, errors.ErrConfigLoad},
		{"no command", []string{}, errors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, "", tt.args...)
			require.Error(t, res.err)
			assert.Equal(t, tt.wantCode, errors.GetErrorCode(res.err), "got %v", res.err)
		})
	}
}

func TestSolveOddSeeds(t *testing.T) {
	setup(t)
	res := run(t, "seeds: 1 2 3\n", "solve", "-")
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrOddSeeds))
}

func TestTrace(t *testing.T) {
	f := setup(t)
	res := run(t, "", "trace", "-f", "json", f.sample, "79", "13")
	require.NoError(t, res.err)

	var traces []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &traces))
	require.Len(t, traces, 2)
	assert.Equal(t, float64(82), traces[0]["location"])
	assert.Equal(t, float64(35), traces[1]["location"])
	assert.Len(t, traces[0]["steps"], 7)
}

func TestTraceDefaultsToAlmanacSeeds(t *testing.T) {
	f := setup(t)
	res := run(t, "", "trace", f.sample)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "seed 55")
	assert.Regexp(t, `humidity-to-location\s+86\n`, res.stdout)
}

func TestTraceRejectsBadSeed(t *testing.T) {
	f := setup(t)
	res := run(t, "", "trace", f.sample, "79", "3x")
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrSeedParse))
}

func TestRanges(t *testing.T) {
	f := setup(t)
	res := run(t, "", "ranges", "-f", "json", f.sample)
	require.NoError(t, res.err)

	got := decodeJSON(t, res.stdout)
	assert.Equal(t, float64(46), got["lowest"])
	assert.Equal(t, float64(27), got["covered"])
	assert.Len(t, got["ranges"], 2)
}

func TestRangesXML(t *testing.T) {
	f := setup(t)
	res := run(t, "", "ranges", "-f", "xml", f.sample)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `<almanac kind="ranges"`)
	assert.Contains(t, res.stdout, `<field name="lowest" highlight="true">46</field>`)
}

func TestCheck(t *testing.T) {
	f := setup(t)
	res := run(t, "", "check", "-f", "json", f.sample)
	require.NoError(t, res.err)
	assert.Equal(t, true, decodeJSON(t, res.stdout)["valid"])

	res = run(t, "", "check", "-f", "json", f.overlap)
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrInvalidInput))
	got := decodeJSON(t, res.stdout)
	assert.Equal(t, false, got["valid"])
}

func TestGenConfig(t *testing.T) {
	setup(t)
	res := run(t, "", "genconfig", "--workers", "3", "--no-color")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "workers = 3")
	assert.Contains(t, res.stdout, "color = false")

	res = run(t, "", "genconfig", "--defaults")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "# almanac configuration")
	assert.Contains(t, res.stdout, "strict = true")
}

func TestTopics(t *testing.T) {
	setup(t)
	res := run(t, "", "topics")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "input-format")
	assert.Contains(t, res.stdout, "range-algorithm")
	assert.Contains(t, res.stdout, "--workers")

	res = run(t, "", "help", "range-algorithm")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "split")
}

func TestCompletionAndMan(t *testing.T) {
	setup(t)
	res := run(t, "", "completion", "bash")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "almanac")

	res = run(t, "", "man")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "ALMANAC")
}

func TestExecuteRendersErrors(t *testing.T) {
	f := setup(t)

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetArgs([]string{"solve", "-f", "json", f.missing})
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	assert.Equal(t, 1, Execute(context.Background(), root))
	assert.Empty(t, stdout.String())
	got := decodeJSON(t, stderr.String())
	assert.Equal(t, "FILE_NOT_FOUND", got["code"])
}

func TestExecuteSucceeds(t *testing.T) {
	f := setup(t)

	var stdout bytes.Buffer
	root := NewRootCmd()
	root.SetArgs([]string{"solve", f.sample})
	root.SetOut(&stdout)

	assert.Equal(t, 0, Execute(context.Background(), root))
	assert.Contains(t, stdout.String(), "46")
}
