// Package yaml provides machine-readable YAML output
package yaml

import (
	"io"

	"github.com/arthur-debert/almanac/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Renderer writes each result as its own YAML document
type Renderer struct {
	output io.Writer
}

// New creates a new YAML renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

func (r *Renderer) encode(v interface{}) error {
	enc := yaml.NewEncoder(r.output)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode yaml")
	}
	return enc.Close()
}

// RenderResult renders any result type as YAML
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encode(result)
}

type errorObj struct {
	Error   string                 `yaml:"error"`
	Code    errors.ErrorCode       `yaml:"code"`
	Details map[string]interface{} `yaml:"details,omitempty"`
}

// RenderError renders an error as YAML
func (r *Renderer) RenderError(err error) error {
	return r.encode(errorObj{
		Error:   err.Error(),
		Code:    errors.GetErrorCode(err),
		Details: errors.GetErrorDetails(err),
	})
}

// RenderMessage renders a simple message as YAML
func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}
