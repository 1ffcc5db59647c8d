// Package ui provides a unified interface for rendering output in different formats.
// It supports terminal (rich), text (plain), JSON, YAML, XML and table output.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/almanac/pkg/errors"
	"github.com/arthur-debert/almanac/pkg/ui/json"
	"github.com/arthur-debert/almanac/pkg/ui/table"
	"github.com/arthur-debert/almanac/pkg/ui/terminal"
	"github.com/arthur-debert/almanac/pkg/ui/text"
	"github.com/arthur-debert/almanac/pkg/ui/xml"
	"github.com/arthur-debert/almanac/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders a solve report, traces, range report or check report
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// FormatAuto detects terminal capabilities when output is a file; with color
// off it always resolves to plain text.
func NewRenderer(format Format, output io.Writer, color bool) (Renderer, error) {
	switch format {
	case FormatAuto:
		if !color {
			return NewRenderer(FormatText, output, color)
		}
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output, color)
		}
		return NewRenderer(FormatText, output, color)
	case FormatTerminal:
		if !color {
			return text.New(output)
		}
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	case FormatYAML:
		return yaml.New(output)
	case FormatXML:
		return xml.New(output)
	case FormatTable:
		return table.New(output, color)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
