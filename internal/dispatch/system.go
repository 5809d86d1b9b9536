package dispatch

import (
	"io/fs"
	"os"
	"os/exec"

	"github.com/mitchellh/go-homedir"
)

// System abstracts OS operations needed by dispatch.
// It also satisfies config.System and galaxy.FileSystem so one seam serves the
// whole invocation in tests.
type System interface {
	Getenv(key string) string
	Environ() []string
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	Stat(name string) (fs.FileInfo, error)
	UserHomeDir() (string, error)
	LookPath(file string) (string, error)
	RunCommand(path string, args []string, env []string) error
	ExecBinary(path string, args []string, env []string) error
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// Getenv returns the value of the environment variable named by key.
func (RealSystem) Getenv(key string) string {
	return os.Getenv(key)
}

// Environ returns a copy of strings representing the environment.
func (RealSystem) Environ() []string {
	return os.Environ()
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// ReadDir lists the named directory.
func (RealSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

// Stat returns file info for name, following symlinks.
func (RealSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// UserHomeDir returns the current user's home directory.
func (RealSystem) UserHomeDir() (string, error) {
	return homedir.Dir()
}

// LookPath searches PATH for an executable named file.
func (RealSystem) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// RunCommand runs path with args (args[0] is the program name) and waits for it.
// The child shares the wrapper's stdin, stdout and stderr.
func (RealSystem) RunCommand(path string, args []string, env []string) error {
	cmd := exec.Command(path)
	cmd.Args = args
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// ExecBinary replaces the current process with the provided binary.
func (RealSystem) ExecBinary(path string, args []string, env []string) error {
	return execBinary(path, args, env)
}
