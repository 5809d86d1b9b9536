package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/conn-castle/ansible-wrapper/internal/dispatch"
	"github.com/conn-castle/ansible-wrapper/internal/logger"
	"github.com/conn-castle/ansible-wrapper/internal/messages"
)

var (
	getwd       = os.Getwd
	runFunc     = dispatch.Run
	executeFunc = execute
)

// Version, Commit, and BuildDate are overridden at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// execute runs the root command for args in cwd.
func execute(args []string, cwd string, stdout io.Writer, stderr io.Writer) error {
	cmd := newRootCmd(args, cwd)
	rest := []string{}
	if len(args) > 1 {
		rest = args[1:]
	}
	cmd.SetArgs(rest)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// runMain executes the wrapper and exits with the right code on failure.
// On success the process has already been replaced by Ansible.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	cwd, err := getwd()
	if err != nil {
		logger.New(stderr, false).Errorf("%v\n", err)
		exit(1)
		return
	}
	err = executeFunc(args, cwd, stdout, stderr)
	if err == nil || errors.Is(err, dispatch.ErrDispatched) {
		return
	}
	logger.New(stderr, false).Errorf("%v\n", err)
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code <= 0 {
			code = 1
		}
		exit(code)
		return
	}
	exit(1)
}

// versionString formats Version with optional commit and build date metadata.
func versionString() string {
	meta := []string{}
	if Commit != "" && Commit != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionCommitFmt, Commit))
	}
	if BuildDate != "" && BuildDate != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionBuildFmt, BuildDate))
	}
	if len(meta) == 0 {
		return Version
	}
	return fmt.Sprintf(messages.VersionFullFmt, Version, strings.Join(meta, ", "))
}
