package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// testSystem resolves env and home from fields and reads real files,
// so fixtures live under t.TempDir().
type testSystem struct {
	env     map[string]string
	home    string
	homeErr error
}

func (s *testSystem) Getenv(key string) string {
	return s.env[key]
}

func (s *testSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (s *testSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (s *testSystem) UserHomeDir() (string, error) {
	if s.homeErr != nil {
		return "", s.homeErr
	}
	if s.home == "" {
		return "", errors.New("no home")
	}
	return s.home, nil
}

// isolateGlobalConfig points the system-wide ansible.cfg at a path that never exists.
func isolateGlobalConfig(t *testing.T) {
	t.Helper()
	orig := globalAnsibleCfg
	globalAnsibleCfg = filepath.Join(t.TempDir(), "absent", "ansible.cfg")
	t.Cleanup(func() { globalAnsibleCfg = orig })
}
