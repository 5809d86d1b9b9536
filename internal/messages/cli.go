package messages

// CLI messages for the wrapper entry point.
const (
	// RootUse is the CLI command name.
	RootUse = "ansible-wrapper"
	// RootShort is the short description for the root command.
	RootShort = "Run Ansible through uv, installing Galaxy requirements first"
	RootLong  = "ansible-wrapper forwards every argument to Ansible. Invoke it as ansible-wrapper <config|console|doc|galaxy|inventory|playbook|pull|vault> or through a symlink named after the Ansible command."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"

	DebugWrapperVersionFmt = "ansible-wrapper %s\n"
)
