package dispatch

import (
	"errors"
	"fmt"
)

// errNotMocked is returned when a testSystem method is called without a mock function set.
var errNotMocked = errors.New("testSystem: method not mocked")

// testSystem provides a mock System for unit tests.
//
// Fallback behavior:
//   - LookPath, RunCommand, ExecBinary: Return errNotMocked (fail-fast). Tests
//     must never resolve real tools or start real processes by accident.
//   - ReadFile, ReadDir, Stat: Fall back to RealSystem so fixtures can live in
//     t.TempDir().
//   - Getenv, Environ, UserHomeDir: Read from env and home so the host
//     environment never leaks into a test.
type testSystem struct {
	RealSystem

	env  map[string]string
	home string

	LookPathFunc   func(file string) (string, error)
	RunCommandFunc func(path string, args []string, env []string) error
	ExecBinaryFunc func(path string, args []string, env []string) error
	ReadFileFunc   func(name string) ([]byte, error)
}

func (s *testSystem) Getenv(key string) string {
	return s.env[key]
}

func (s *testSystem) Environ() []string {
	env := make([]string, 0, len(s.env))
	for key, value := range s.env {
		env = append(env, key+"="+value)
	}
	return env
}

func (s *testSystem) UserHomeDir() (string, error) {
	if s.home == "" {
		return "", errors.New("no home")
	}
	return s.home, nil
}

func (s *testSystem) ReadFile(name string) ([]byte, error) {
	if s.ReadFileFunc != nil {
		return s.ReadFileFunc(name)
	}
	return s.RealSystem.ReadFile(name)
}

func (s *testSystem) LookPath(file string) (string, error) {
	if s.LookPathFunc != nil {
		return s.LookPathFunc(file)
	}
	return "", fmt.Errorf("%w: LookPath", errNotMocked)
}

func (s *testSystem) RunCommand(path string, args []string, env []string) error {
	if s.RunCommandFunc != nil {
		return s.RunCommandFunc(path, args, env)
	}
	return fmt.Errorf("%w: RunCommand", errNotMocked)
}

func (s *testSystem) ExecBinary(path string, args []string, env []string) error {
	if s.ExecBinaryFunc != nil {
		return s.ExecBinaryFunc(path, args, env)
	}
	return fmt.Errorf("%w: ExecBinary", errNotMocked)
}
