package galaxy

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/conn-castle/ansible-wrapper/internal/messages"
)

// EnvRequirementsFile overrides the requirements manifest location.
const EnvRequirementsFile = "ANSIBLE_WRAPPER_ANSIBLE_GALAXY_REQUIREMENTS_FILE"

// DefaultRequirementsFiles are tried in order relative to the working directory.
var DefaultRequirementsFiles = []string{"requirements.yml", "requirements.yaml"}

// FindRequirementsFile returns the manifest path to use, or "" when there is none.
// A non-empty override is returned as-is, even if it does not exist.
func FindRequirementsFile(override string, cwd string, exists func(string) bool) string {
	if override != "" {
		return override
	}
	for _, name := range DefaultRequirementsFiles {
		path := filepath.Join(cwd, name)
		if exists(path) {
			return path
		}
	}
	return ""
}

// LoadRequirements reads and parses the manifest at path.
func LoadRequirements(fsys FileSystem, path string) (*Requirements, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.GalaxyReadRequirementsFmt, path, err)
	}
	return ParseRequirements(data, path)
}

// ParseRequirements parses manifest YAML. source is used in error messages.
// An empty document yields an empty manifest.
func ParseRequirements(data []byte, source string) (*Requirements, error) {
	var reqs Requirements
	if err := yaml.Unmarshal(data, &reqs); err != nil {
		return nil, fmt.Errorf(messages.GalaxyParseRequirementsFmt, source, err)
	}
	return &reqs, nil
}
