package dispatch

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/conn-castle/ansible-wrapper/internal/config"
	"github.com/conn-castle/ansible-wrapper/internal/galaxy"
	"github.com/conn-castle/ansible-wrapper/internal/logger"
	"github.com/conn-castle/ansible-wrapper/internal/messages"
)

const galaxyCommand = "ansible-galaxy"

// galaxyInstallRequired loads the manifest and checks collections, then roles.
// Any problem reading the manifest disables the check rather than failing the run.
func galaxyInstallRequired(sys System, log *logger.Logger, cfg *config.Config) bool {
	if cfg.RequirementsFile == "" {
		log.Debugf(messages.DebugNoRequirementsFile)
		return false
	}
	log.Debugf(messages.DebugRequirementsFileFmt, cfg.RequirementsFile)

	reqs, err := galaxy.LoadRequirements(sys, cfg.RequirementsFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debugf(messages.DebugRequirementsSkipFmt, cfg.RequirementsFile, err)
		} else {
			log.Warnf(messages.DispatchRequirementsSkipFmt, cfg.RequirementsFile, err)
		}
		return false
	}
	if reqs.Empty() {
		log.Debugf(messages.DebugRequirementsEmptyFmt, cfg.RequirementsFile)
		return false
	}

	required := false
	if len(reqs.Collections) > 0 {
		required = checkInstalled(log, "collections", reqs.Collections, cfg.CollectionsPaths, func(roots []string) (galaxy.Installed, []string) {
			return galaxy.ScanCollections(sys, roots)
		})
	}
	if !required && len(reqs.Roles) > 0 {
		required = checkInstalled(log, "roles", reqs.Roles, cfg.RolesPaths, func(roots []string) (galaxy.Installed, []string) {
			return galaxy.ScanRoles(sys, roots)
		})
	}
	return required
}

func checkInstalled(log *logger.Logger, kind string, reqs []galaxy.Requirement, roots []string, scan func([]string) (galaxy.Installed, []string)) bool {
	log.Debugf(messages.DebugScanRootsFmt, kind, roots)
	installed, warnings := scan(roots)
	for _, warning := range warnings {
		log.Debugf(messages.DebugScanWarningFmt, warning)
	}
	missing, required := galaxy.FirstUnsatisfied(installed, reqs)
	if required {
		log.Debugf(messages.DebugMissingRequirementFmt, missing.Name, missing.Version)
	}
	log.Debugf(messages.DebugInstallRequiredFmt, kind, required)
	return required
}

// installRequirements runs `ansible-galaxy install -r <file>` and waits for it.
func installRequirements(sys System, launcher Launcher, requirementsFile string) error {
	argv := launcher.Argv(galaxyCommand, "install", "-r", requirementsFile)
	if err := sys.RunCommand(launcher.Path, argv, sys.Environ()); err != nil {
		return fmt.Errorf(messages.DispatchGalaxyInstallFmt, requirementsFile, err)
	}
	return nil
}
