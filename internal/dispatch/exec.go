package dispatch

import "golang.org/x/sys/unix"

var unixExec = unix.Exec

// execBinary replaces the current process with the target binary.
func execBinary(path string, args []string, env []string) error {
	return unixExec(path, args, env)
}
