package terminal

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestIsTerminal_NonFileWriter(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Fatal("expected buffer to not be a terminal")
	}
	if IsTerminal(nil) {
		t.Fatal("expected nil writer to not be a terminal")
	}
	var f *os.File
	if IsTerminal(f) {
		t.Fatal("expected nil file to not be a terminal")
	}
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "stderr.log"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	if IsTerminal(f) {
		t.Fatal("expected regular file to not be a terminal")
	}
}
