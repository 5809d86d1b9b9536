// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) string {
	t.Helper()
	return WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// It returns the stub path.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

// WriteStubExpectArg writes an executable shell stub that succeeds only when expectedArg is present.
// It returns the stub path.
func WriteStubExpectArg(t *testing.T, dir string, name string, expectedArg string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf("#!/bin/sh\nfor arg in \"$@\"; do\n  if [ \"$arg\" = \"%s\" ]; then exit 0; fi\ndone\nexit 1\n", expectedArg))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteCollection records an installed collection under an ansible_collections root
// the way ansible-galaxy does: <root>/<name>-<version>.info/GALAXY.yml.
func WriteCollection(t *testing.T, root string, name string, version string) {
	t.Helper()
	marker := filepath.Join(root, fmt.Sprintf("%s-%s.info", name, version), "GALAXY.yml")
	WriteFile(t, marker, fmt.Sprintf("name: %s\nversion: %s\n", name, version))
}

// WriteRole records an installed role: <root>/<name>/meta/.galaxy_install_info.
func WriteRole(t *testing.T, root string, name string, version string) {
	t.Helper()
	marker := filepath.Join(root, name, "meta", ".galaxy_install_info")
	WriteFile(t, marker, fmt.Sprintf("install_date: 'Mon Jan  1 00:00:00 2024'\nversion: %s\n", version))
}

// WithWorkingDir runs fn with dir as the current working directory and restores the previous directory.
// t is the active test; dir is the temporary working directory for fn.
func WithWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	}()
	fn()
}
