package almanac

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arthur-debert/almanac/pkg/errors"
	"github.com/arthur-debert/almanac/pkg/logging"
	"github.com/arthur-debert/almanac/pkg/remap"
)

const (
	seedsPrefix  = "seeds:"
	headerSuffix = "map:"
	ruleFields   = 3
)

// ParseOptions controls how strictly input is validated.
type ParseOptions struct {
	// Strict rejects stages whose rules have overlapping sources.
	Strict bool
}

// block is a run of non-blank lines; first is the 1-based line number of
// lines[0].
type block struct {
	first int
	lines []string
}

// ParseFile reads and parses the almanac at path.
func ParseFile(path string, opts ParseOptions) (*Almanac, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound, "almanac file %s does not exist", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot open almanac file %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	return Parse(f, opts)
}

// ParseString parses an almanac held in memory.
func ParseString(s string, opts ParseOptions) (*Almanac, error) {
	return Parse(strings.NewReader(s), opts)
}

// Parse reads a seeds line followed by blank-line separated map sections.
// Any malformed line aborts the parse; no partial almanac is returned.
func Parse(r io.Reader, opts ParseOptions) (*Almanac, error) {
	logger := logging.GetLogger("almanac.parse")
	done := logging.LogOperationStart(logger, "parse")
	defer done()

	blocks, err := splitBlocks(r)
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return nil, errors.New(errors.ErrSeedParse, "input is empty; expected a seeds line")
	}

	seeds, err := parseSeeds(blocks[0])
	if err != nil {
		return nil, err
	}

	stages := make([]*remap.Stage, 0, len(blocks)-1)
	for _, b := range blocks[1:] {
		stage, err := parseStage(b, opts)
		if err != nil {
			return nil, err
		}
		logger.Debug().
			Str("stage", stage.Name()).
			Int("rules", stage.Len()).
			Int("line", b.first).
			Msg("Parsed stage")
		stages = append(stages, stage)
	}

	logger.Info().
		Int("seeds", len(seeds)).
		Int("stages", len(stages)).
		Msg("Almanac parsed")

	return &Almanac{Seeds: seeds, Pipeline: remap.NewPipeline(stages...)}, nil
}

func splitBlocks(r io.Reader) ([]block, error) {
	var (
		blocks []block
		cur    *block
		lineNo int
	)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			cur = nil
			continue
		}
		if cur == nil {
			blocks = append(blocks, block{first: lineNo})
			cur = &blocks[len(blocks)-1]
		}
		cur.lines = append(cur.lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to read almanac input")
	}
	return blocks, nil
}

func parseSeeds(b block) ([]uint64, error) {
	line := b.lines[0]
	if !strings.HasPrefix(line, seedsPrefix) {
		return nil, errors.Newf(errors.ErrSeedParse, "line %d: expected %q, got %q", b.first, seedsPrefix, line).
			WithDetail("line", b.first)
	}
	if len(b.lines) > 1 {
		return nil, errors.Newf(errors.ErrSeedParse,
			"line %d: unexpected text after the seeds line; sections must be separated by a blank line", b.first+1).
			WithDetail("line", b.first+1)
	}

	fields := strings.Fields(strings.TrimPrefix(line, seedsPrefix))
	seeds := make([]uint64, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrSeedParse, "line %d: seed %d is not an unsigned integer", b.first, i+1).
				WithDetail("line", b.first).
				WithDetail("value", f)
		}
		seeds = append(seeds, v)
	}
	return seeds, nil
}

func parseStage(b block, opts ParseOptions) (*remap.Stage, error) {
	header := b.lines[0]
	if !strings.HasSuffix(header, headerSuffix) {
		return nil, errors.Newf(errors.ErrSectionParse, "line %d: expected a %q header, got %q", b.first, "<from>-to-<to> map:", header).
			WithDetail("line", b.first)
	}
	name := strings.TrimSpace(strings.TrimSuffix(header, headerSuffix))

	rules := make([]remap.Rule, 0, len(b.lines)-1)
	for i, line := range b.lines[1:] {
		lineNo := b.first + 1 + i
		r, perr := parseRule(line, lineNo)
		if perr != nil {
			return nil, perr.WithDetail("stage", name).WithDetail("line", lineNo)
		}
		rules = append(rules, r)
	}

	stage := remap.NewStage(name, rules...)
	if opts.Strict {
		if a, c, ok := stage.Overlap(); ok {
			return nil, errors.Newf(errors.ErrRuleOverlap, "stage %q: rule %s overlaps rule %s", name, a, c).
				WithDetail("stage", name).
				WithDetail("line", b.first)
		}
	}
	return stage, nil
}

func parseRule(line string, lineNo int) (remap.Rule, *errors.AlmanacError) {
	fields := strings.Fields(line)
	if len(fields) != ruleFields {
		return remap.Rule{}, errors.Newf(errors.ErrRuleParse, "line %d: expected %d fields, got %d", lineNo, ruleFields, len(fields))
	}

	var nums [ruleFields]uint64
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return remap.Rule{}, errors.Wrapf(err, errors.ErrRuleParse, "line %d: field %d is not an unsigned integer", lineNo, i+1)
		}
		nums[i] = v
	}

	r, err := remap.NewRule(nums[0], nums[1], nums[2])
	if err != nil {
		return remap.Rule{}, errors.Wrapf(err, errors.ErrRuleParse, "line %d: invalid rule", lineNo)
	}
	return r, nil
}
