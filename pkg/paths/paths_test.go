package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUsesXDGDirectories(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	t.Setenv(EnvConfigDir, "")
	t.Setenv(EnvStateDir, "")

	p := New()
	assert.Equal(t, filepath.Join(tmp, "config", "almanac"), p.ConfigDir())
	assert.Equal(t, filepath.Join(tmp, "config", "almanac", "config.toml"), p.ConfigFile())
	assert.Equal(t, filepath.Join(tmp, "state", "almanac"), p.StateDir())
	assert.Equal(t, filepath.Join(tmp, "state", "almanac", "almanac.log"), p.LogFilePath())
}

func TestNewHonoursOverrides(t *testing.T) {
	t.Setenv(EnvConfigDir, "/custom/config")
	t.Setenv(EnvStateDir, "/custom/state")

	p := New()
	assert.Equal(t, "/custom/config", p.ConfigDir())
	assert.Equal(t, "/custom/state/almanac.log", p.LogFilePath())
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/state", filepath.Join(home, "state")},
		{"~other/state", "~other/state"},
		{"/abs/path", "/abs/path"},
		{"relative", "relative"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpandHome(tt.in), "ExpandHome(%q)", tt.in)
	}
}
