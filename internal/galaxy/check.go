package galaxy

import "github.com/conn-castle/ansible-wrapper/internal/semver"

// IsInstallRequired reports whether any requirement has no satisfying
// installed version under any root. An empty requirement list never does.
func IsInstallRequired(installed Installed, requirements []Requirement) bool {
	_, missing := FirstUnsatisfied(installed, requirements)
	return missing
}

// FirstUnsatisfied returns the first requirement that nothing installed satisfies.
func FirstUnsatisfied(installed Installed, requirements []Requirement) (Requirement, bool) {
	for _, requirement := range requirements {
		if !Satisfied(installed, requirement) {
			return requirement, true
		}
	}
	return Requirement{}, false
}

// Satisfied reports whether requirement is met by any installed version.
// An unparsable constraint is never met; unparsable installed versions are skipped.
func Satisfied(installed Installed, requirement Requirement) bool {
	if requirement.Version == semver.Wildcard {
		return true
	}
	constraint, err := semver.ParseConstraint(requirement.Version)
	if err != nil {
		return false
	}
	for _, byName := range installed {
		for _, raw := range byName[requirement.Name] {
			version, err := semver.ParseVersion(raw)
			if err != nil {
				continue
			}
			if semver.Satisfies(version, constraint) {
				return true
			}
		}
	}
	return false
}
