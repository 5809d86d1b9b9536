// Package semver matches Galaxy version constraints against installed versions.
//
// This is a thin wrapper around github.com/Masterminds/semver/v3.
package semver

import (
	"errors"
	"fmt"
	"strings"

	mm "github.com/Masterminds/semver/v3"

	"github.com/conn-castle/ansible-wrapper/internal/messages"
)

// Wildcard is the constraint that every version satisfies.
const Wildcard = "*"

var errAlternatives = errors.New(messages.SemverAlternativesUnsupported)

// Version is a parsed semantic version.
type Version struct {
	v *mm.Version
}

// Constraint is a parsed version range.
//
// Examples:
// - "==7.0.0"
// - "7.0.0" (same as "^7.0.0")
// - ">=1.2.0,<2.0.0"
// - "!=1.4.0"
type Constraint struct {
	c *mm.Constraints
}

// ParseVersion parses an installed version string.
// Only full MAJOR.MINOR.PATCH versions are accepted; "7" and "v7.0.0" are errors.
func ParseVersion(raw string) (Version, error) {
	v, err := mm.StrictNewVersion(strings.TrimSpace(raw))
	if err != nil {
		return Version{}, fmt.Errorf(messages.SemverParseVersionFmt, raw, err)
	}
	return Version{v: v}, nil
}

// ParseConstraint parses a Galaxy version constraint.
// Comparators are joined with commas. A comparator without an operator is a
// caret range, so "7.0.0" accepts any 7.x release. Alternatives ("||") are rejected.
func ParseConstraint(raw string) (Constraint, error) {
	normalized := NormalizeConstraint(raw)
	if strings.Contains(normalized, "||") {
		return Constraint{}, fmt.Errorf(messages.SemverParseConstraintFmt, raw, errAlternatives)
	}
	c, err := mm.NewConstraint(defaultCaret(normalized))
	if err != nil {
		return Constraint{}, fmt.Errorf(messages.SemverParseConstraintFmt, raw, err)
	}
	return Constraint{c: c}, nil
}

// NormalizeConstraint replaces every "==" with "=".
func NormalizeConstraint(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), "==", "=")
}

// defaultCaret prefixes "^" to every comparator that starts with a digit.
func defaultCaret(constraint string) string {
	parts := strings.Split(constraint, ",")
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" && part[0] >= '0' && part[0] <= '9' {
			part = "^" + part
		}
		parts[i] = part
	}
	return strings.Join(parts, ",")
}

// Satisfies reports whether v is within c. Zero values never satisfy.
func Satisfies(v Version, c Constraint) bool {
	if v.v == nil || c.c == nil {
		return false
	}
	return c.c.Check(v.v)
}
