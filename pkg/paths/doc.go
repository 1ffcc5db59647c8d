// Package paths provides centralized path handling for almanac.
//
// It resolves the XDG Base Directory locations the CLI reads and writes:
//
//   - Config: $XDG_CONFIG_HOME/almanac (config.toml)
//   - State:  $XDG_STATE_HOME/almanac (almanac.log)
//
// # Environment Variables
//
//   - ALMANAC_CONFIG_DIR: Override the config directory
//   - ALMANAC_STATE_DIR: Override the state directory
//
// Both overrides accept a leading ~ for the home directory.
package paths
