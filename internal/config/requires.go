package config

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/processwire-skills/linkskills/internal/branding"
)

// DevVersion is the version string of builds without ldflags.
const DevVersion = "dev"

// CheckRequires verifies that current satisfies the semver constraint in
// c.Requires. Development builds and an empty constraint always pass.
func (c *Config) CheckRequires(current string) error {
	return CheckVersion(c.Requires, current)
}

// CheckVersion reports whether current satisfies constraint.
func CheckVersion(constraint, current string) error {
	if strings.TrimSpace(constraint) == "" || current == "" || current == DevVersion {
		return nil
	}

	cons, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing required version %q: %w", constraint, err)
	}
	v, err := parseSemver(current)
	if err != nil {
		return fmt.Errorf("parsing current version %q: %w", current, err)
	}

	if ok, errs := cons.Validate(v); !ok {
		reasons := make([]string, 0, len(errs))
		for _, e := range errs {
			reasons = append(reasons, e.Error())
		}
		return fmt.Errorf("%s %s does not satisfy required version %q: %s",
			branding.CLIName(), current, constraint, strings.Join(reasons, "; "))
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
