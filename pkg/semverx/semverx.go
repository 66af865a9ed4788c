// Package semverx extracts semantic versions from the noisy output of
// --version style commands ("git version 2.43.0", "v22.1.0").
package semverx

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// versionRegex matches version patterns like 1.2.3, v1.2, 18, etc.
var versionRegex = regexp.MustCompile(`v?\d+(?:\.\d+)?(?:\.\d+)?`)

// Extract finds the first version number in s and parses it. Missing
// minor and patch components are treated as zero.
func Extract(s string) (*semver.Version, error) {
	m := versionRegex.FindString(s)
	if m == "" {
		return nil, fmt.Errorf("no version found in %q", s)
	}
	v, err := semver.NewVersion(m)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", m, err)
	}
	return v, nil
}
