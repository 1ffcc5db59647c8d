// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/almanac/pkg/ui/display"
	"github.com/arthur-debert/almanac/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Renderer provides rich terminal output using lipgloss styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	doc, err := display.FromResult(result)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(styles.Render(styles.Title, doc.Title))
	b.WriteString("\n")

	for _, f := range doc.Fields {
		value := styles.Render(styles.Value, f.Value)
		if f.Highlight {
			value = styles.Render(styles.Highlight, f.Value)
		}
		b.WriteString(styles.Render(styles.Label, f.Label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	for _, t := range doc.Tables {
		b.WriteString(styles.Render(styles.Section, t.Title))
		b.WriteString("\n")
		b.WriteString(renderTable(t))
		b.WriteString("\n")
	}

	_, err = io.WriteString(r.output, b.String())
	return err
}

func renderTable(t display.Table) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.GetStyle(styles.Muted)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.GetStyle(styles.TableHeader)
			}
			return styles.GetStyle(styles.TableCell)
		}).
		Headers(t.Headers...).
		Rows(t.Rows...).
		String()
}

// RenderError renders an error with a styled prefix
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "%s %v\n", styles.Render(styles.Error, "Error:"), err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.Render(styles.Success, msg))
	return err
}
