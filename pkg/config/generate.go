package config

import (
	"bytes"

	"github.com/arthur-debert/almanac/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// Marshal renders cfg as a TOML document that Load reads back unchanged
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# almanac configuration\n\n")

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(false)
	if err := enc.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.Bytes(), nil
}
