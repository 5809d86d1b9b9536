package galaxy

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/conn-castle/ansible-wrapper/internal/messages"
)

// Marker locations written by ansible-galaxy on install.
const (
	collectionInfoSuffix = ".info"
	collectionMarker     = "GALAXY.yml"
	roleMarker           = "meta/.galaxy_install_info"
)

// FileSystem is the read-only filesystem access needed by the scanners.
type FileSystem interface {
	ReadDir(name string) ([]fs.DirEntry, error)
	ReadFile(name string) ([]byte, error)
}

type installInfo struct {
	Version string `yaml:"version"`
}

// ScanCollections lists collections installed under each root.
// Each root is an ansible_collections directory holding <namespace>.<name>-<version>.info entries.
// Unreadable roots and broken markers are skipped and reported as warnings.
func ScanCollections(fsys FileSystem, roots []string) (Installed, []string) {
	return scan(fsys, roots, func(entry fs.DirEntry) (string, bool) {
		if !strings.HasSuffix(entry.Name(), collectionInfoSuffix) {
			return "", false
		}
		return collectionMarker, true
	}, collectionName)
}

// ScanRoles lists roles installed under each roles root.
// Unreadable roots and broken markers are skipped and reported as warnings.
func ScanRoles(fsys FileSystem, roots []string) (Installed, []string) {
	return scan(fsys, roots, func(fs.DirEntry) (string, bool) {
		return filepath.FromSlash(roleMarker), true
	}, func(entryName string, _ string) string {
		return entryName
	})
}

// scan walks the immediate children of every root. marker selects which children
// carry install metadata; name derives the package name from the entry and version.
func scan(fsys FileSystem, roots []string, marker func(fs.DirEntry) (string, bool), name func(string, string) string) (Installed, []string) {
	installed := Installed{}
	var warnings []string
	for _, root := range roots {
		entries, err := fsys.ReadDir(root)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				warnings = append(warnings, fmt.Sprintf(messages.GalaxyListRootWarningFmt, root, err))
			}
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() && entry.Type()&fs.ModeSymlink == 0 {
				continue
			}
			rel, ok := marker(entry)
			if !ok {
				continue
			}
			version, warning, found := readInstallInfo(fsys, filepath.Join(root, entry.Name(), rel))
			if warning != "" {
				warnings = append(warnings, warning)
			}
			if !found {
				continue
			}
			installed.add(root, name(entry.Name(), version), version)
		}
	}
	return installed, warnings
}

// readInstallInfo returns the version recorded in a marker file.
// A missing marker is not a warning; an unreadable or unparsable one is.
func readInstallInfo(fsys FileSystem, path string) (string, string, bool) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", "", false
		}
		return "", fmt.Sprintf(messages.GalaxyReadMarkerWarningFmt, path, err), false
	}
	var info installInfo
	if err := yaml.Unmarshal(data, &info); err != nil {
		return "", fmt.Sprintf(messages.GalaxyParseMarkerWarningFmt, path, err), false
	}
	version := strings.TrimSpace(info.Version)
	if version == "" {
		return "", fmt.Sprintf(messages.GalaxyMarkerNoVersionWarnFmt, path), false
	}
	return version, "", true
}

// collectionName strips "-<version>.info" from an install entry name.
// Galaxy names never contain "-", so the first dash ends the name when the
// recorded version does not match the directory suffix.
func collectionName(entryName string, version string) string {
	if name, ok := strings.CutSuffix(entryName, "-"+version+collectionInfoSuffix); ok {
		return name
	}
	trimmed := strings.TrimSuffix(entryName, collectionInfoSuffix)
	name, _, _ := strings.Cut(trimmed, "-")
	return name
}
