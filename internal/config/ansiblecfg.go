package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/conn-castle/ansible-wrapper/internal/messages"
)

const ansibleCfgName = "ansible.cfg"

// globalAnsibleCfg is the last entry of Ansible's config search order.
var globalAnsibleCfg = "/etc/ansible/ansible.cfg"

// ansibleCfg holds the [defaults] keys the wrapper cares about.
// A nil *ansibleCfg behaves like an empty file.
type ansibleCfg struct {
	dir      string
	defaults map[string]string
}

func (c *ansibleCfg) collectionsPath() string {
	if c == nil {
		return ""
	}
	if value := c.path("collections_path"); value != "" {
		return value
	}
	return c.path("collections_paths")
}

func (c *ansibleCfg) home() string {
	if c == nil {
		return ""
	}
	return c.path("home")
}

func (c *ansibleCfg) rolesPath() string {
	if c == nil {
		return ""
	}
	return c.path("roles_path")
}

// path returns a path-list value with relative entries anchored at the config file's directory.
func (c *ansibleCfg) path(key string) string {
	value := strings.TrimSpace(c.defaults[key])
	if value == "" {
		return ""
	}
	parts := strings.Split(value, string(os.PathListSeparator))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" && !filepath.IsAbs(part) && !strings.HasPrefix(part, "~") {
			part = filepath.Join(c.dir, part)
		}
		parts[i] = part
	}
	return strings.Join(parts, string(os.PathListSeparator))
}

// ansibleCfgCandidates returns config files in Ansible's search order.
func ansibleCfgCandidates(sys System, cwd string, home string) []string {
	var candidates []string
	if explicit := strings.TrimSpace(sys.Getenv(EnvAnsibleConfig)); explicit != "" {
		explicit = expandUser(explicit, home)
		if !filepath.IsAbs(explicit) {
			explicit = filepath.Join(cwd, explicit)
		}
		if info, err := sys.Stat(explicit); err == nil && info.IsDir() {
			explicit = filepath.Join(explicit, ansibleCfgName)
		}
		candidates = append(candidates, explicit)
	}
	candidates = append(candidates, filepath.Join(cwd, ansibleCfgName))
	if home != "" {
		candidates = append(candidates, filepath.Join(home, "."+ansibleCfgName))
	}
	return append(candidates, globalAnsibleCfg)
}

// loadAnsibleCfg reads the first readable ansible.cfg. A file that fails to parse
// stops the search and yields a warning, matching Ansible's first-file-wins rule.
func loadAnsibleCfg(sys System, cwd string, home string) (*ansibleCfg, string) {
	for _, path := range ansibleCfgCandidates(sys, cwd, home) {
		data, err := sys.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := parseAnsibleCfg(data, filepath.Dir(path))
		if err != nil {
			return nil, fmt.Sprintf(messages.ConfigReadAnsibleCfgFmt, path, err)
		}
		return cfg, ""
	}
	return nil, ""
}

// parseAnsibleCfg parses INI content. dir anchors relative paths.
func parseAnsibleCfg(data []byte, dir string) (*ansibleCfg, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		Insensitive:                true,
		AllowPythonMultilineValues: true,
		SpaceBeforeInlineComment:   true,
	}, data)
	if err != nil {
		return nil, err
	}
	defaults := make(map[string]string)
	if section, err := file.GetSection("defaults"); err == nil {
		for _, key := range section.Keys() {
			defaults[key.Name()] = key.String()
		}
	}
	return &ansibleCfg{dir: dir, defaults: defaults}, nil
}
