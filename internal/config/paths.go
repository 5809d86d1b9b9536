package config

import (
	"os"
	"path/filepath"
	"strings"
)

const collectionsDirName = "ansible_collections"

// System-wide install roots Ansible searches when nothing overrides them.
var (
	systemCollectionsPaths = []string{"/usr/share/ansible/collections/ansible_collections"}
	systemRolesPaths       = []string{"/usr/share/ansible/roles", "/etc/ansible/roles"}
)

// collectionsPaths resolves the ansible_collections directories to scan.
// An override from the environment or ansible.cfg replaces the defaults entirely.
func collectionsPaths(sys System, cfg *ansibleCfg, home string) []string {
	override := strings.TrimSpace(sys.Getenv(EnvCollectionsPath))
	if override == "" {
		override = cfg.collectionsPath()
	}
	if override != "" {
		var paths []string
		for _, path := range splitPathList(override, home) {
			if filepath.Base(path) != collectionsDirName {
				path = filepath.Join(path, collectionsDirName)
			}
			paths = append(paths, path)
		}
		return paths
	}

	var paths []string
	if base := ansibleHome(sys, cfg, home); base != "" {
		paths = append(paths, filepath.Join(base, "collections", collectionsDirName))
	}
	return append(paths, systemCollectionsPaths...)
}

// rolesPaths resolves the role directories to scan.
func rolesPaths(sys System, cfg *ansibleCfg, home string) []string {
	override := strings.TrimSpace(sys.Getenv(EnvRolesPath))
	if override == "" {
		override = cfg.rolesPath()
	}
	if override != "" {
		return splitPathList(override, home)
	}

	var paths []string
	if base := ansibleHome(sys, cfg, home); base != "" {
		paths = append(paths, filepath.Join(base, "roles"))
	}
	return append(paths, systemRolesPaths...)
}

// ansibleHome returns $ANSIBLE_HOME, else home from ansible.cfg, else ~/.ansible.
// It returns "" when no home directory is known.
func ansibleHome(sys System, cfg *ansibleCfg, home string) string {
	if override := strings.TrimSpace(sys.Getenv(EnvAnsibleHome)); override != "" {
		return expandUser(override, home)
	}
	if configured := cfg.home(); configured != "" {
		return expandUser(configured, home)
	}
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".ansible")
}

// splitPathList splits a PATH-style list, dropping empty entries.
func splitPathList(value string, home string) []string {
	var paths []string
	for _, part := range strings.Split(value, string(os.PathListSeparator)) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		paths = append(paths, expandUser(part, home))
	}
	return paths
}

// expandUser replaces a leading "~" with home. Paths for other users ("~bob") are left alone.
func expandUser(path string, home string) string {
	if home == "" || !strings.HasPrefix(path, "~") {
		return path
	}
	if path == "~" {
		return home
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(home, path[2:])
	}
	return path
}
