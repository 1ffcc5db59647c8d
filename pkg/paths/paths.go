package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for almanac
	EnvConfigDir = "ALMANAC_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for almanac
	EnvStateDir = "ALMANAC_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name used under each XDG base directory
	AppDirName = "almanac"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "almanac.log"
)

// Paths resolves the directories almanac uses
type Paths interface {
	ConfigDir() string
	ConfigFile() string
	StateDir() string
	LogFilePath() string
}

type paths struct {
	xdgConfig string
	xdgState  string
}

// New resolves paths from the current environment.
// XDG variables are re-read on every call so changes made after process
// start are honoured.
func New() Paths {
	xdg.Reload()

	p := &paths{}
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.xdgConfig = expandHome(dir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.xdgState = expandHome(dir)
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, AppDirName)
	}
	return p
}

// ConfigDir returns the almanac config directory
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// ConfigFile returns the path of the user configuration file
func (p *paths) ConfigFile() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// StateDir returns the almanac state directory
func (p *paths) StateDir() string {
	return p.xdgState
}

// LogFilePath returns the path of the log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	return expandHome(path)
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to HOME env var
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	// Handle both ~/ and ~
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}
