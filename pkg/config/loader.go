package config

import (
	_ "embed"
	"errors"
	"os"
	"strings"

	almanacerrors "github.com/arthur-debert/almanac/pkg/errors"
	"github.com/arthur-debert/almanac/pkg/logging"
	"github.com/arthur-debert/almanac/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read into the config
const EnvPrefix = "ALMANAC_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Options selects the sources Load reads
type Options struct {
	// ConfigFile replaces the XDG config file; it must exist when set
	ConfigFile string

	// DotEnvFile is loaded into the environment if present; defaults to ".env"
	DotEnvFile string

	// Overrides are dotted keys set last, e.g. from explicitly set flags
	Overrides map[string]interface{}
}

// DefaultContent returns the embedded default configuration file
func DefaultContent() string {
	return string(defaultConfig)
}

// Load builds the configuration from every layer in opts
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, almanacerrors.Wrap(err, almanacerrors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	path, required := opts.ConfigFile, true
	if path == "" {
		path, required = paths.New().ConfigFile(), false
	}
	path = paths.ExpandHome(path)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, almanacerrors.Wrapf(err, almanacerrors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	} else if required {
		return nil, almanacerrors.Wrapf(err, almanacerrors.ErrConfigLoad, "config file %s is not readable", path).
			WithDetail("path", path)
	}

	// 3. .env file
	if err := LoadDotEnv(opts.DotEnvFile); err != nil {
		return nil, almanacerrors.Wrap(err, almanacerrors.ErrConfigLoad, "failed to load .env file")
	}

	// 4. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, almanacerrors.Wrap(err, almanacerrors.ErrConfigLoad, "failed to load env vars")
	}

	// 5. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, almanacerrors.Wrap(err, almanacerrors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, almanacerrors.Wrap(err, almanacerrors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("format", cfg.Output.Format).
		Int("workers", cfg.Query.Workers).
		Bool("strict", cfg.Parse.Strict).
		Msg("Configuration loaded")
	return &cfg, nil
}

// envKey maps ALMANAC_QUERY_WORKERS to query.workers. Only the first
// underscore separates section from key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// LoadDotEnv loads environment variables from a .env file.
// If path is empty, it loads from ".env" in the current directory.
// A missing file is not an error, and variables already set are kept.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	return godotenv.Load(path)
}
