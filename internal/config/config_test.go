package config

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conn-castle/ansible-wrapper/internal/testutil"
)

func TestResolveRequiresSystemAndCwd(t *testing.T) {
	_, _, err := Resolve(nil, "/tmp")
	require.Error(t, err)

	_, _, err = Resolve(&testSystem{}, "")
	require.Error(t, err)
}

func TestResolveDefaults(t *testing.T) {
	isolateGlobalConfig(t)
	home := t.TempDir()
	cwd := t.TempDir()

	cfg, warnings, err := Resolve(&testSystem{home: home}, cwd)
	require.NoError(t, err)
	require.Empty(t, warnings)

	require.Equal(t, []string{
		filepath.Join(home, ".ansible", "collections", "ansible_collections"),
		"/usr/share/ansible/collections/ansible_collections",
	}, cfg.CollectionsPaths)
	require.Equal(t, []string{
		filepath.Join(home, ".ansible", "roles"),
		"/usr/share/ansible/roles",
		"/etc/ansible/roles",
	}, cfg.RolesPaths)
	require.Empty(t, cfg.RequirementsFile)
	require.Empty(t, cfg.AnsibleVersion)
	require.False(t, cfg.AnsibleManaged)
	require.False(t, cfg.Debug)
}

func TestResolveWithoutHomeDir(t *testing.T) {
	isolateGlobalConfig(t)
	cfg, _, err := Resolve(&testSystem{homeErr: errors.New("no home")}, t.TempDir())
	require.NoError(t, err)
	require.Equal(t, []string{"/usr/share/ansible/collections/ansible_collections"}, cfg.CollectionsPaths)
	require.Equal(t, []string{"/usr/share/ansible/roles", "/etc/ansible/roles"}, cfg.RolesPaths)
}

func TestResolveAnsibleHome(t *testing.T) {
	isolateGlobalConfig(t)
	sys := &testSystem{home: "/home/user", env: map[string]string{EnvAnsibleHome: "/opt/ansible"}}
	cfg, _, err := Resolve(sys, t.TempDir())
	require.NoError(t, err)
	require.Equal(t, "/opt/ansible/collections/ansible_collections", cfg.CollectionsPaths[0])
	require.Equal(t, "/opt/ansible/roles", cfg.RolesPaths[0])
}

func TestResolveEnvOverrides(t *testing.T) {
	isolateGlobalConfig(t)
	cwd := t.TempDir()
	testutil.WriteFile(t, filepath.Join(cwd, "ansible.cfg"), "[defaults]\ncollections_path = ./from-cfg\nroles_path = ./roles-from-cfg\n")
	sys := &testSystem{
		home: "/home/user",
		env: map[string]string{
			EnvCollectionsPath:  "~/collections:/srv/ansible_collections",
			EnvRolesPath:        "/srv/roles::~/roles",
			EnvAnsibleVersion:   " 2.17.1 ",
			EnvRequirementsFile: "custom/requirements.yml",
			EnvDebug:            "true",
		},
	}

	cfg, warnings, err := Resolve(sys, cwd)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, []string{
		"/home/user/collections/ansible_collections",
		"/srv/ansible_collections",
	}, cfg.CollectionsPaths)
	require.Equal(t, []string{"/srv/roles", "/home/user/roles"}, cfg.RolesPaths)
	require.Equal(t, "2.17.1", cfg.AnsibleVersion)
	require.Equal(t, "custom/requirements.yml", cfg.RequirementsFile)
	require.True(t, cfg.Debug)
}

func TestResolveAnsibleCfgInWorkingDir(t *testing.T) {
	isolateGlobalConfig(t)
	cwd := t.TempDir()
	testutil.WriteFile(t, filepath.Join(cwd, "ansible.cfg"), strings.Join([]string{
		"# project config",
		"[defaults]",
		"inventory = hosts.ini",
		"collections_path = ./collections",
		"roles_path = ./roles:/shared/roles",
		"",
	}, "\n"))

	cfg, warnings, err := Resolve(&testSystem{home: "/home/user"}, cwd)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, []string{filepath.Join(cwd, "collections", "ansible_collections")}, cfg.CollectionsPaths)
	require.Equal(t, []string{filepath.Join(cwd, "roles"), "/shared/roles"}, cfg.RolesPaths)
}

func TestResolveAnsibleCfgLegacyCollectionsPathsKey(t *testing.T) {
	isolateGlobalConfig(t)
	cwd := t.TempDir()
	testutil.WriteFile(t, filepath.Join(cwd, "ansible.cfg"), "[DEFAULTS]\nCOLLECTIONS_PATHS = /legacy\n")

	cfg, _, err := Resolve(&testSystem{home: "/home/user"}, cwd)
	require.NoError(t, err)
	require.Equal(t, []string{"/legacy/ansible_collections"}, cfg.CollectionsPaths)
}

func TestResolveAnsibleConfigEnvWins(t *testing.T) {
	isolateGlobalConfig(t)
	cwd := t.TempDir()
	other := t.TempDir()
	testutil.WriteFile(t, filepath.Join(cwd, "ansible.cfg"), "[defaults]\nroles_path = /from-cwd\n")
	testutil.WriteFile(t, filepath.Join(other, "ansible.cfg"), "[defaults]\nroles_path = /from-env\n")

	sys := &testSystem{home: "/home/user", env: map[string]string{EnvAnsibleConfig: other}}
	cfg, _, err := Resolve(sys, cwd)
	require.NoError(t, err)
	require.Equal(t, []string{"/from-env"}, cfg.RolesPaths)
}

func TestResolveHomeAnsibleCfg(t *testing.T) {
	isolateGlobalConfig(t)
	home := t.TempDir()
	testutil.WriteFile(t, filepath.Join(home, ".ansible.cfg"), "[defaults]\nhome = ~/custom-ansible\n")

	cfg, _, err := Resolve(&testSystem{home: home}, t.TempDir())
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "custom-ansible", "roles"), cfg.RolesPaths[0])
}

func TestResolveMalformedAnsibleCfgWarns(t *testing.T) {
	isolateGlobalConfig(t)
	cwd := t.TempDir()
	testutil.WriteFile(t, filepath.Join(cwd, "ansible.cfg"), "[defaults\nthis line is not ini\n")

	cfg, warnings, err := Resolve(&testSystem{home: "/home/user"}, cwd)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0], "ansible.cfg")
	require.Equal(t, "/home/user/.ansible/roles", cfg.RolesPaths[0])
}

func TestResolveRequirementsFileDefaults(t *testing.T) {
	isolateGlobalConfig(t)
	cwd := t.TempDir()
	testutil.WriteFile(t, filepath.Join(cwd, "requirements.yaml"), "collections: []\n")

	cfg, _, err := Resolve(&testSystem{home: "/home/user"}, cwd)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(cwd, "requirements.yaml"), cfg.RequirementsFile)
}

func TestResolveInvalidDebugWarns(t *testing.T) {
	isolateGlobalConfig(t)
	sys := &testSystem{home: "/home/user", env: map[string]string{EnvDebug: "loud"}}
	cfg, warnings, err := Resolve(sys, t.TempDir())
	require.NoError(t, err)
	require.False(t, cfg.Debug)
	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0], EnvDebug)
}

func TestResolveManagedByPyproject(t *testing.T) {
	isolateGlobalConfig(t)
	cwd := t.TempDir()
	testutil.WriteFile(t, filepath.Join(cwd, "pyproject.toml"), "[project]\nname = \"infra\"\ndependencies = [\"ansible-core>=2.16\"]\n")

	cfg, warnings, err := Resolve(&testSystem{home: "/home/user"}, cwd)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.True(t, cfg.AnsibleManaged)
}
