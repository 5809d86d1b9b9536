package dispatch

import (
	"fmt"

	"github.com/conn-castle/ansible-wrapper/internal/config"
	"github.com/conn-castle/ansible-wrapper/internal/messages"
)

// Executables the wrapper delegates through.
const (
	ToolUV  = "uv"
	ToolUVX = "uvx"
)

const ansibleCorePackage = "ansible-core"

// Launcher runs Ansible commands through uv or uvx.
type Launcher struct {
	// Path is the resolved launcher executable.
	Path string
	// Prefix is the argv preceding the Ansible command.
	Prefix []string
}

// Argv returns the full argv for running command with args through the launcher.
func (l Launcher) Argv(command string, args ...string) []string {
	argv := make([]string, 0, len(l.Prefix)+1+len(args))
	argv = append(argv, l.Prefix...)
	argv = append(argv, command)
	return append(argv, args...)
}

// toolPaths holds the resolved locations of uv and uvx.
type toolPaths struct {
	uv  string
	uvx string
}

// lookupTools verifies that uv and uvx are on PATH.
func lookupTools(sys System) (toolPaths, error) {
	uv, err := sys.LookPath(ToolUV)
	if err != nil {
		return toolPaths{}, fmt.Errorf(messages.DispatchToolMissingFmt, ToolUV, err)
	}
	uvx, err := sys.LookPath(ToolUVX)
	if err != nil {
		return toolPaths{}, fmt.Errorf(messages.DispatchToolMissingFmt, ToolUVX, err)
	}
	return toolPaths{uv: uv, uvx: uvx}, nil
}

// selectLauncher uses the project environment when pyproject.toml declares Ansible,
// and an isolated uvx environment otherwise.
func selectLauncher(cfg *config.Config, tools toolPaths) Launcher {
	if cfg.AnsibleManaged {
		return Launcher{Path: tools.uv, Prefix: []string{ToolUV, "run", "--"}}
	}
	return Launcher{Path: tools.uvx, Prefix: []string{ToolUVX, "--from", ansibleCoreSpec(cfg.AnsibleVersion)}}
}

// ansibleCoreSpec returns the uvx package spec, pinned when version is set.
func ansibleCoreSpec(version string) string {
	if version == "" {
		return ansibleCorePackage
	}
	return ansibleCorePackage + "==" + version
}
