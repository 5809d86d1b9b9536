package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/ansible-wrapper/internal/messages"
)

const pyprojectName = "pyproject.toml"

// managedPackagePrefix marks a dependency that brings Ansible into the project environment.
const managedPackagePrefix = "ansible"

// PyProject is the subset of pyproject.toml inspected by the wrapper.
type PyProject struct {
	Project struct {
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
	DependencyGroups map[string][]any `toml:"dependency-groups"`
	Tool             struct {
		UV struct {
			DevDependencies []string `toml:"dev-dependencies"`
		} `toml:"uv"`
	} `toml:"tool"`
}

// ParsePyProject parses pyproject.toml content without validation.
// source is used in error messages.
func ParsePyProject(data []byte, source string) (*PyProject, error) {
	var project PyProject
	if err := toml.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidPyprojectFmt, source, err)
	}
	return &project, nil
}

// Dependencies returns the requirements uv installs for `uv run` by default:
// project dependencies plus the dev group.
func (p *PyProject) Dependencies() []string {
	deps := append([]string{}, p.Project.Dependencies...)
	for _, entry := range p.DependencyGroups["dev"] {
		if dep, ok := entry.(string); ok {
			deps = append(deps, dep)
		}
	}
	return append(deps, p.Tool.UV.DevDependencies...)
}

// ManagesAnsible reports whether any dependency starts with "ansible".
func (p *PyProject) ManagesAnsible() bool {
	for _, dep := range p.Dependencies() {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(dep)), managedPackagePrefix) {
			return true
		}
	}
	return false
}

// ansibleManaged inspects <cwd>/pyproject.toml. A missing file is not managed;
// a malformed one is not managed and yields a warning.
func ansibleManaged(sys System, cwd string) (bool, string) {
	path := filepath.Join(cwd, pyprojectName)
	data, err := sys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, ""
		}
		return false, fmt.Sprintf(messages.ConfigPyprojectWarningFmt, fmt.Errorf(messages.ConfigReadPyprojectFmt, path, err))
	}
	project, err := ParsePyProject(data, path)
	if err != nil {
		return false, fmt.Sprintf(messages.ConfigPyprojectWarningFmt, err)
	}
	return project.ManagesAnsible(), ""
}
