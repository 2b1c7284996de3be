package entities

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	modsemver "golang.org/x/mod/semver"
)

// DefaultRequiredRange is used when neither the template nor the settings name one.
const DefaultRequiredRange = "~> 6.0.0"

var versionNumberPattern = regexp.MustCompile(`\d+(?:\.\d+){0,2}`)

// VersionRange is a required-version expression for the host framework.
// "~> X.Y.Z" accepts X.Y.Z and anything newer within major X. Other expressions use
// Masterminds constraint syntax.
type VersionRange struct {
	raw        string
	constraint *semver.Constraints
}

// ParseVersionRange parses expr.
func ParseVersionRange(expr string) (*VersionRange, error) {
	trimmed := strings.TrimSpace(expr)
	translated := trimmed
	if rest, ok := strings.CutPrefix(trimmed, "~>"); ok {
		translated = "^" + strings.TrimSpace(rest)
	}

	constraint, err := semver.NewConstraint(translated)
	if err != nil {
		return nil, fmt.Errorf("invalid version range %q: %w", expr, err)
	}
	return &VersionRange{raw: trimmed, constraint: constraint}, nil
}

// Satisfied reports whether actual (e.g. "Rails 6.1.4", "7.0.0.alpha2") lies in the range.
func (r *VersionRange) Satisfied(actual string) (bool, error) {
	canonical, err := NormalizeVersion(actual)
	if err != nil {
		return false, err
	}
	version, err := semver.NewVersion(canonical)
	if err != nil {
		return false, fmt.Errorf("invalid version %q: %w", actual, err)
	}
	return r.constraint.Check(version), nil
}

func (r *VersionRange) String() string {
	return r.raw
}

// NormalizeVersion extracts the numeric part of a version banner and pads it to
// MAJOR.MINOR.PATCH. Trailing pre-release segments such as ".alpha2" are dropped.
func NormalizeVersion(actual string) (string, error) {
	number := versionNumberPattern.FindString(actual)
	if number == "" {
		return "", fmt.Errorf("no version number in %q", actual)
	}

	canonical := modsemver.Canonical("v" + number)
	if canonical == "" {
		return "", fmt.Errorf("invalid version %q", actual)
	}
	return strings.TrimPrefix(canonical, "v"), nil
}
