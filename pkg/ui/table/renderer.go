// Package table renders results as boxed pterm tables
package table

import (
	"fmt"
	"io"

	"github.com/arthur-debert/almanac/pkg/errors"
	"github.com/arthur-debert/almanac/pkg/ui/display"
	"github.com/pterm/pterm"
)

// Renderer draws the summary fields and every table of a result with pterm
type Renderer struct {
	output io.Writer
	color  bool
}

// New creates a new table renderer. With color false pterm styling is
// switched off while rendering.
func New(output io.Writer, color bool) (*Renderer, error) {
	return &Renderer{output: output, color: color}, nil
}

// RenderResult renders any result type as tables
func (r *Renderer) RenderResult(result interface{}) error {
	doc, err := display.FromResult(result)
	if err != nil {
		return err
	}

	if !r.color {
		pterm.DisableStyling()
		defer pterm.EnableStyling()
	}

	summary := pterm.TableData{{"", doc.Title}}
	for _, f := range doc.Fields {
		summary = append(summary, []string{f.Label, f.Value})
	}
	if err := r.renderData(summary); err != nil {
		return err
	}

	for _, t := range doc.Tables {
		if _, err := fmt.Fprintf(r.output, "\n%s\n", t.Title); err != nil {
			return err
		}
		data := pterm.TableData{t.Headers}
		data = append(data, t.Rows...)
		if err := r.renderData(data); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderData(data pterm.TableData) error {
	out, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to render table")
	}
	_, err = fmt.Fprintln(r.output, out)
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
