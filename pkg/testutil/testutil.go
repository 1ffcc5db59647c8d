package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/almanac/pkg/paths"
)

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// Env is an isolated environment for one test
type Env struct {
	Root      string
	ConfigDir string
	StateDir  string
}

// ConfigFile is where the config loader looks for the user file
func (e *Env) ConfigFile() string {
	return filepath.Join(e.ConfigDir, paths.ConfigFileName)
}

// WriteConfig writes the user config file
func (e *Env) WriteConfig(t *testing.T, content string) string {
	t.Helper()
	return CreateFile(t, e.ConfigDir, paths.ConfigFileName, content)
}

// Isolate clears every ALMANAC_* variable and points the config and state
// directories at a fresh temp dir. Everything is restored when t ends.
func Isolate(t *testing.T) *Env {
	t.Helper()

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "ALMANAC_") {
			t.Setenv(key, "")
			if err := os.Unsetenv(key); err != nil {
				t.Fatalf("Failed to unset %s: %v", key, err)
			}
		}
	}

	root := t.TempDir()
	env := &Env{
		Root:      root,
		ConfigDir: filepath.Join(root, "config"),
		StateDir:  filepath.Join(root, "state"),
	}
	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv(paths.EnvStateDir, env.StateDir)
	return env
}
