// Package galaxy reads Ansible Galaxy requirement manifests, scans installed
// collections and roles, and decides whether an install is required.
package galaxy

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/conn-castle/ansible-wrapper/internal/messages"
	"github.com/conn-castle/ansible-wrapper/internal/semver"
)

// Requirement is one declared collection or role with its version constraint.
type Requirement struct {
	Name    string
	Version string
}

// Requirements is the content of a requirements.yml manifest.
type Requirements struct {
	Collections []Requirement `yaml:"collections"`
	Roles       []Requirement `yaml:"roles"`
}

// Empty reports whether the manifest declares nothing.
func (r *Requirements) Empty() bool {
	return r == nil || (len(r.Collections) == 0 && len(r.Roles) == 0)
}

// Installed maps an install root to package names and the versions found there.
type Installed map[string]map[string][]string

// add records version for name under root, preserving scan order.
func (in Installed) add(root string, name string, version string) {
	byName, ok := in[root]
	if !ok {
		byName = make(map[string][]string)
		in[root] = byName
	}
	byName[name] = append(byName[name], version)
}

// requirementEntry is the mapping form of a manifest entry.
type requirementEntry struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Src     string `yaml:"src"`
}

// UnmarshalYAML accepts either a bare name or a {name, version, src} mapping.
// A missing version means any version.
func (r *Requirement) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		r.Name = strings.TrimSpace(value.Value)
		r.Version = semver.Wildcard
		return nil
	case yaml.MappingNode:
		var entry requirementEntry
		if err := value.Decode(&entry); err != nil {
			return err
		}
		r.Name = strings.TrimSpace(entry.Name)
		if r.Name == "" {
			r.Name = strings.TrimSpace(entry.Src)
		}
		r.Version = strings.TrimSpace(entry.Version)
		if r.Version == "" {
			r.Version = semver.Wildcard
		}
		return nil
	default:
		return fmt.Errorf(messages.GalaxyInvalidRequirementFmt, value.Line)
	}
}

// UnmarshalYAML accepts the collections/roles mapping and the legacy
// top-level list, which declares roles only.
func (r *Requirements) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var roles []Requirement
		if err := value.Decode(&roles); err != nil {
			return err
		}
		r.Roles = roles
		return nil
	}
	var doc struct {
		Collections []Requirement `yaml:"collections"`
		Roles       []Requirement `yaml:"roles"`
	}
	if err := value.Decode(&doc); err != nil {
		return err
	}
	r.Collections = doc.Collections
	r.Roles = doc.Roles
	return nil
}
