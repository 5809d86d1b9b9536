// Package dispatch installs missing Galaxy content and hands the invocation
// over to Ansible running under uv.
package dispatch

import (
	"errors"
	"fmt"
	"io"

	"github.com/conn-castle/ansible-wrapper/internal/config"
	"github.com/conn-castle/ansible-wrapper/internal/invocation"
	"github.com/conn-castle/ansible-wrapper/internal/logger"
	"github.com/conn-castle/ansible-wrapper/internal/messages"
)

// ErrDispatched signals that execution has been handed off to another binary.
var ErrDispatched = errors.New(messages.DispatchErrDispatched)

// Run installs missing Galaxy requirements when needed and replaces the current
// process with Ansible. It only returns on failure, or ErrDispatched when the
// exec seam returns without error.
func Run(args []string, version string, cwd string, stderr io.Writer) error {
	return RunWithSystem(RealSystem{}, args, version, cwd, stderr)
}

// RunWithSystem is Run with an explicit System.
func RunWithSystem(sys System, args []string, version string, cwd string, stderr io.Writer) error {
	if sys == nil {
		return fmt.Errorf(messages.DispatchSystemRequired)
	}
	if len(args) == 0 {
		return fmt.Errorf(messages.DispatchMissingArgv0)
	}
	if cwd == "" {
		return fmt.Errorf(messages.DispatchWorkingDirRequired)
	}

	tools, err := lookupTools(sys)
	if err != nil {
		return err
	}

	cfg, warnings, err := config.Resolve(sys, cwd)
	if err != nil {
		return err
	}
	log := logger.New(stderr, cfg.Debug)
	for _, warning := range warnings {
		log.Warnf("%s\n", warning)
	}
	log.Debugf(messages.DebugWrapperVersionFmt, version)

	inv := invocation.Parse(args)
	launcher := selectLauncher(cfg, tools)
	log.Debugf(messages.DebugCommandFmt, inv.Command, inv.Args)
	log.Debugf(messages.DebugLauncherFmt, launcher.Prefix)

	if invocation.UsesGalaxyContent(inv, args) {
		if galaxyInstallRequired(sys, log, cfg) {
			if err := installRequirements(sys, launcher, cfg.RequirementsFile); err != nil {
				return err
			}
		}
	} else {
		log.Debugf(messages.DebugCheckSkipped)
	}

	argv := launcher.Argv(inv.Command, inv.Args...)
	if err := sys.ExecBinary(launcher.Path, argv, sys.Environ()); err != nil {
		return fmt.Errorf(messages.DispatchExecFmt, launcher.Path, err)
	}
	return ErrDispatched
}
