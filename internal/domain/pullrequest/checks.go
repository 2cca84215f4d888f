package pullrequest

import (
	"strings"

	"golang.org/x/exp/slices"
)

type CheckState string

const (
	CheckPending CheckState = "pending"
	CheckSuccess CheckState = "success"
	CheckFailure CheckState = "failure"
)

// ParseCheckState maps a remote status string onto a CheckState. Anything
// that is neither pending nor success counts as a failure.
func ParseCheckState(s string) CheckState {
	switch strings.ToLower(s) {
	case "pending", "queued", "in_progress", "expected":
		return CheckPending
	case "success":
		return CheckSuccess
	default:
		return CheckFailure
	}
}

type StatusCheck struct {
	Context string
	State   CheckState
}

type StatusCheckSet struct {
	SHA    string
	Checks []StatusCheck
}

func isState(s CheckState) func(StatusCheck) bool {
	return func(c StatusCheck) bool {
		return c.State == s
	}
}

// State aggregates the set: pending wins over failure, failure over success.
// An empty set is successful.
func (s StatusCheckSet) State() CheckState {
	if slices.IndexFunc(s.Checks, isState(CheckPending)) >= 0 {
		return CheckPending
	}
	if slices.IndexFunc(s.Checks, isState(CheckFailure)) >= 0 {
		return CheckFailure
	}

	return CheckSuccess
}

func (s StatusCheckSet) Failed() []string {
	var out []string
	for _, c := range s.Checks {
		if c.State == CheckFailure {
			out = append(out, c.Context)
		}
	}

	return out
}
