// Package tracker talks to the issue tracker a branch belongs to.
package tracker

import (
	"regexp"

	"github.com/pkg/errors"
)

const DefaultKeyPattern = `[A-Z][A-Z0-9]+-[0-9]+`

// KeyFromBranch extracts the issue key embedded in branch. When nothing
// matches, the branch name itself is the key.
func KeyFromBranch(pattern, branch string) (string, error) {
	if pattern == "" {
		pattern = DefaultKeyPattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", errors.Wrapf(err, "invalid issue key pattern %q", pattern)
	}

	if key := re.FindString(branch); key != "" {
		return key, nil
	}

	return branch, nil
}
