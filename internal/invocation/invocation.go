// Package invocation works out which Ansible command the wrapper stands in for.
package invocation

import (
	"path/filepath"
	"slices"
)

// WrapperName is the wrapper's own executable name.
const WrapperName = "ansible-wrapper"

// DefaultCommand runs when the wrapper is invoked without a recognized subcommand.
const DefaultCommand = "ansible"

// Subcommands maps `ansible-wrapper <sub>` to `ansible-<sub>`.
var Subcommands = []string{"config", "console", "doc", "galaxy", "inventory", "playbook", "pull", "vault"}

// galaxyCommands execute automation content and may need Galaxy requirements.
var galaxyCommands = []string{"ansible-playbook", "ansible-console", "ansible-pull"}

// informationalFlags short-circuit Ansible before any content is loaded.
var informationalFlags = []string{"-h", "--help", "--version"}

// Invocation is the Ansible command to run and the arguments to forward.
type Invocation struct {
	Command string
	Args    []string
}

// Parse resolves the command from argv. When argv[0] is a symlink named after an
// Ansible command (ansible-playbook -> ansible-wrapper) that name is used. Otherwise
// argv[1] may select a subcommand, and everything else is forwarded to ansible.
func Parse(argv []string) Invocation {
	if len(argv) == 0 {
		return Invocation{Command: DefaultCommand}
	}
	name := filepath.Base(argv[0])
	if name != WrapperName {
		return Invocation{Command: name, Args: cloneArgs(argv[1:])}
	}
	if len(argv) > 1 && slices.Contains(Subcommands, argv[1]) {
		return Invocation{Command: "ansible-" + argv[1], Args: cloneArgs(argv[2:])}
	}
	return Invocation{Command: DefaultCommand, Args: cloneArgs(argv[1:])}
}

// UsesGalaxyContent reports whether the pre-flight requirements check applies.
// argv is the full original argument list; help and version requests anywhere skip it.
func UsesGalaxyContent(inv Invocation, argv []string) bool {
	for _, arg := range argv {
		if slices.Contains(informationalFlags, arg) {
			return false
		}
	}
	return slices.Contains(galaxyCommands, inv.Command)
}

func cloneArgs(args []string) []string {
	return append([]string{}, args...)
}
