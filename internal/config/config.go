// Package config resolves the wrapper's configuration from the environment,
// ansible.cfg and pyproject.toml without touching process-global state.
package config

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/conn-castle/ansible-wrapper/internal/galaxy"
	"github.com/conn-castle/ansible-wrapper/internal/messages"
)

// Environment keys read during resolution.
const (
	EnvCollectionsPath  = "ANSIBLE_COLLECTIONS_PATH"
	EnvRolesPath        = "ANSIBLE_ROLES_PATH"
	EnvAnsibleHome      = "ANSIBLE_HOME"
	EnvAnsibleConfig    = "ANSIBLE_CONFIG"
	EnvAnsibleVersion   = "ANSIBLE_WRAPPER_ANSIBLE_VERSION"
	EnvDebug            = "ANSIBLE_WRAPPER_DEBUG"
	EnvRequirementsFile = galaxy.EnvRequirementsFile
)

// System is the OS access needed to resolve configuration.
type System interface {
	Getenv(key string) string
	ReadFile(name string) ([]byte, error)
	Stat(name string) (fs.FileInfo, error)
	UserHomeDir() (string, error)
}

// Config is the resolved wrapper configuration for one invocation.
type Config struct {
	// CollectionsPaths are ansible_collections directories to scan, in priority order.
	CollectionsPaths []string
	// RolesPaths are role directories to scan, in priority order.
	RolesPaths []string
	// RequirementsFile is the galaxy manifest, or "" when none was found.
	RequirementsFile string
	// AnsibleVersion pins ansible-core for uvx when non-empty.
	AnsibleVersion string
	// AnsibleManaged is true when pyproject.toml already declares Ansible.
	AnsibleManaged bool
	// Debug enables debug diagnostics.
	Debug bool
}

// Resolve builds the configuration for an invocation in cwd.
// Problems with optional files are returned as warnings, never as errors.
func Resolve(sys System, cwd string) (*Config, []string, error) {
	if sys == nil {
		return nil, nil, fmt.Errorf(messages.DispatchSystemRequired)
	}
	if cwd == "" {
		return nil, nil, fmt.Errorf(messages.DispatchWorkingDirRequired)
	}

	var warnings []string
	cfg := &Config{
		AnsibleVersion: strings.TrimSpace(sys.Getenv(EnvAnsibleVersion)),
	}

	if raw := strings.TrimSpace(sys.Getenv(EnvDebug)); raw != "" {
		debug, err := strconv.ParseBool(raw)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf(messages.ConfigInvalidDebugEnvFmt, EnvDebug, raw))
		}
		cfg.Debug = debug
	}

	home, homeErr := sys.UserHomeDir()
	if homeErr != nil {
		home = ""
	}

	ansibleCfg, warning := loadAnsibleCfg(sys, cwd, home)
	if warning != "" {
		warnings = append(warnings, warning)
	}
	cfg.CollectionsPaths = collectionsPaths(sys, ansibleCfg, home)
	cfg.RolesPaths = rolesPaths(sys, ansibleCfg, home)

	cfg.RequirementsFile = galaxy.FindRequirementsFile(
		strings.TrimSpace(sys.Getenv(EnvRequirementsFile)),
		cwd,
		func(path string) bool {
			_, err := sys.Stat(path)
			return err == nil
		},
	)

	managed, warning := ansibleManaged(sys, cwd)
	if warning != "" {
		warnings = append(warnings, warning)
	}
	cfg.AnsibleManaged = managed

	return cfg, warnings, nil
}
