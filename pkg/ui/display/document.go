// Package display turns almanac results into a format-neutral document of
// summary fields and tables. The text, terminal, table and xml renderers all
// draw from it; json and yaml encode results directly.
package display

import (
	"fmt"
	"strconv"

	"github.com/arthur-debert/almanac/pkg/almanac"
	"github.com/arthur-debert/almanac/pkg/errors"
)

// Document is a rendered result: a title, summary fields and tables
type Document struct {
	Kind   string
	Title  string
	Fields []Field
	Tables []Table
}

// Field is one labelled summary value
type Field struct {
	Key   string
	Label string
	Value string
	// Highlight marks a headline answer
	Highlight bool
}

// Table is a titled grid of cells
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// FromResult builds the document for a result value
func FromResult(result interface{}) (*Document, error) {
	switch v := result.(type) {
	case *almanac.Report:
		return fromReport(v), nil
	case []almanac.SeedTrace:
		return fromTraces(v), nil
	case *almanac.RangeReport:
		return fromRanges(v), nil
	case *almanac.CheckReport:
		return fromCheck(v), nil
	default:
		return nil, errors.Newf(errors.ErrInternal, "no display for %T", result)
	}
}

func u(v uint64) string { return strconv.FormatUint(v, 10) }

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func fromReport(r *almanac.Report) *Document {
	return &Document{
		Kind:  "solve",
		Title: "Almanac",
		Fields: []Field{
			{Key: "pointMinimum", Label: "Lowest location (seeds)", Value: u(r.PointMinimum), Highlight: true},
			{Key: "rangeMinimum", Label: "Lowest location (seed ranges)", Value: u(r.RangeMinimum), Highlight: true},
			{Key: "seeds", Label: "Seeds", Value: strconv.Itoa(r.Seeds)},
			{Key: "seedRanges", Label: "Seed ranges", Value: strconv.Itoa(r.SeedRanges)},
			{Key: "stages", Label: "Stages", Value: strconv.Itoa(r.Stages)},
			{Key: "rules", Label: "Rules", Value: strconv.Itoa(r.Rules)},
			{Key: "fragments", Label: "Location fragments", Value: strconv.Itoa(r.Fragments)},
			{Key: "covered", Label: "Values covered", Value: u(r.Covered)},
		},
	}
}

func fromTraces(traces []almanac.SeedTrace) *Document {
	doc := &Document{Kind: "trace", Title: "Seed traces"}
	for _, tr := range traces {
		doc.Fields = append(doc.Fields, Field{
			Key:   "seed-" + u(tr.Seed),
			Label: "Seed " + u(tr.Seed),
			Value: u(tr.Location),
		})

		t := Table{
			Title:   fmt.Sprintf("seed %d", tr.Seed),
			Headers: []string{"Stage", "Value"},
			Rows:    [][]string{{"seed", u(tr.Seed)}},
		}
		for _, step := range tr.Steps {
			t.Rows = append(t.Rows, []string{step.Stage, u(step.Value)})
		}
		doc.Tables = append(doc.Tables, t)
	}
	return doc
}

func fromRanges(r *almanac.RangeReport) *Document {
	doc := &Document{
		Kind:  "ranges",
		Title: "Seed range locations",
		Fields: []Field{
			{Key: "lowest", Label: "Lowest location", Value: u(r.Lowest), Highlight: true},
			{Key: "covered", Label: "Values covered", Value: u(r.Covered)},
			{Key: "distinct", Label: "Distinct locations", Value: u(r.Distinct)},
		},
	}
	for _, sr := range r.Ranges {
		t := Table{
			Title:   fmt.Sprintf("seeds [%d..%d] (%d values)", sr.Seed.Start, sr.Seed.End, sr.Seed.Length),
			Headers: []string{"Start", "End", "Length"},
		}
		for _, loc := range sr.Locations {
			t.Rows = append(t.Rows, []string{u(loc.Start), u(loc.End), u(loc.Length)})
		}
		doc.Tables = append(doc.Tables, t)
	}
	return doc
}

func fromCheck(r *almanac.CheckReport) *Document {
	doc := &Document{
		Kind:  "check",
		Title: "Almanac check",
		Fields: []Field{
			{Key: "valid", Label: "Valid", Value: yesNo(r.Valid), Highlight: true},
			{Key: "seeds", Label: "Seeds", Value: strconv.Itoa(r.Seeds)},
			{Key: "pairedSeeds", Label: "Seeds form ranges", Value: yesNo(r.PairedSeeds)},
		},
	}

	t := Table{Title: "Stages", Headers: []string{"Stage", "Rules", "Overlap"}}
	for _, s := range r.Stages {
		overlap := "-"
		if s.Overlap != "" {
			overlap = s.Overlap
		}
		t.Rows = append(t.Rows, []string{s.Name, strconv.Itoa(s.Rules), overlap})
	}
	doc.Tables = append(doc.Tables, t)
	return doc
}
