package config

import (
	"runtime"
	"strings"

	"github.com/arthur-debert/almanac/pkg/errors"
)

// Output formats accepted by output.format
var Formats = []string{"auto", "term", "text", "json", "yaml", "xml", "table"}

// Config is the complete almanac configuration
type Config struct {
	Output Output `koanf:"output" toml:"output"`
	Query  Query  `koanf:"query" toml:"query"`
	Parse  Parse  `koanf:"parse" toml:"parse"`
}

// Output controls how results are rendered
type Output struct {
	Format string `koanf:"format" toml:"format"`
	Color  bool   `koanf:"color" toml:"color"`
}

// Query controls how range queries run
type Query struct {
	Workers int `koanf:"workers" toml:"workers"`
}

// Parse controls input validation
type Parse struct {
	Strict bool `koanf:"strict" toml:"strict"`
}

// Validate checks value ranges and normalizes the format name
func (c *Config) Validate() error {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = "auto"
	}
	if !isFormat(c.Output.Format) {
		return errors.Newf(errors.ErrConfigValid, "output.format %q is not one of %s",
			c.Output.Format, strings.Join(Formats, ", ")).
			WithDetail("key", "output.format")
	}

	if c.Query.Workers < 1 {
		return errors.Newf(errors.ErrConfigValid, "query.workers must be at least 1, got %d", c.Query.Workers).
			WithDetail("key", "query.workers")
	}
	if limit := 4 * runtime.NumCPU(); c.Query.Workers > limit {
		c.Query.Workers = limit
	}
	return nil
}

func isFormat(name string) bool {
	for _, f := range Formats {
		if f == name {
			return true
		}
	}
	return false
}
