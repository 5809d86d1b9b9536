package messages

// System messages for dispatch, configuration and galaxy checks.
const (
	// DispatchErrDispatched indicates dispatch was executed.
	DispatchErrDispatched = "dispatch executed"

	// DispatchMissingArgv0 indicates argv[0] is missing.
	DispatchMissingArgv0        = "missing argv[0]"
	DispatchWorkingDirRequired  = "working directory is required"
	DispatchSystemRequired      = "dispatch system is required"
	DispatchToolMissingFmt      = "You must have '%s' installed on your system: %w"
	DispatchGalaxyInstallFmt    = "ansible-galaxy install -r %s was not successful: %w"
	DispatchExecFmt             = "exec %s: %w"
	DispatchRequirementsSkipFmt = "warning: ignoring galaxy requirements %s: %v\n"

	// DebugCommandFmt formats the resolved Ansible command.
	DebugCommandFmt            = "ansible command: %s %v\n"
	DebugLauncherFmt           = "launcher: %v\n"
	DebugRequirementsFileFmt   = "galaxy requirements file: %s\n"
	DebugNoRequirementsFile    = "no galaxy requirements file found; skipping dependency check\n"
	DebugCheckSkipped          = "command does not use galaxy content; skipping dependency check\n"
	DebugScanRootsFmt          = "scanning installed %s in %v\n"
	DebugScanWarningFmt        = "%s\n"
	DebugMissingRequirementFmt = "missing galaxy requirement %s %s\n"
	DebugInstallRequiredFmt    = "galaxy %s install required: %t\n"
	DebugRequirementsSkipFmt   = "galaxy requirements %s not loaded: %v; skipping dependency check\n"
	DebugRequirementsEmptyFmt  = "galaxy requirements %s declare nothing; skipping dependency check\n"

	// ConfigReadAnsibleCfgFmt formats ansible.cfg parse warnings.
	ConfigReadAnsibleCfgFmt   = "warning: ignoring %s: %v"
	ConfigReadPyprojectFmt    = "read %s: %w"
	ConfigInvalidPyprojectFmt = "invalid %s: %w"
	ConfigPyprojectWarningFmt = "warning: %v; assuming Ansible is not a project dependency"
	ConfigInvalidDebugEnvFmt  = "warning: ignoring %s=%q: not a boolean"

	// GalaxyReadRequirementsFmt formats requirements read errors.
	GalaxyReadRequirementsFmt    = "read %s: %w"
	GalaxyParseRequirementsFmt   = "parse %s: %w"
	GalaxyInvalidRequirementFmt  = "unsupported requirement entry at line %d"
	GalaxyListRootWarningFmt     = "warning: cannot list %s: %v; skipping"
	GalaxyReadMarkerWarningFmt   = "warning: cannot read %s: %v; skipping"
	GalaxyParseMarkerWarningFmt  = "warning: cannot parse %s: %v; skipping"
	GalaxyMarkerNoVersionWarnFmt = "warning: %s has no version; skipping"

	// SemverParseVersionFmt formats semver version parse errors.
	SemverParseVersionFmt         = "semver: parse version %q: %w"
	SemverParseConstraintFmt      = "semver: parse constraint %q: %w"
	SemverAlternativesUnsupported = "alternatives (||) are not supported"
)
