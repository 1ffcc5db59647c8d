// Package config handles configuration management for almanac.
// It supports loading configuration from multiple sources including
// TOML files, .env files, environment variables, and command-line flags.
//
// Sources are layered, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file ($XDG_CONFIG_HOME/almanac/config.toml or --config)
//  3. a .env file in the working directory (never overriding the environment)
//  4. ALMANAC_* environment variables (ALMANAC_QUERY_WORKERS -> query.workers)
//  5. flags explicitly set on the command line
package config
