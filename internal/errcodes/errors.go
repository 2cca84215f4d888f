package errcodes

import (
	"context"
	"fmt"

	"yoho/internal/systemcodes"

	"github.com/pkg/errors"
)

var (
	ErrMissingOrigin        = errors.New("origin remote is not set or not in the form git@host:owner/name.git")
	ErrMissingUpstream      = errors.New("upstream remote is not set or not in the form git@host:owner/name.git")
	ErrMissingToken         = errors.New("github token is missing, set GITHUB_ACCESS_TOKEN")
	ErrMissingBranch        = errors.New("branch is missing")
	ErrMissingTitle         = errors.New("title is missing")
	ErrPullRequestNotFound  = errors.New("pull request not found")
	ErrCannotCreatePR       = errors.New("cannot create pull request")
	ErrPushFailed           = errors.New("push failed")
	ErrCannotListRemotes    = errors.New("cannot list git remotes")
	ErrCancelled            = errors.New("cancelled")
	ErrUnknownTrackerKind   = errors.New("issue tracker kind is unknown, expected (cli, github)")
	ErrInvalidIssueKey      = errors.New("issue key is invalid")
	ErrTrackerNotConfigured = errors.New("issue tracker command is not configured")
)

// TrackerError is returned when the issue tracker refuses an operation on a key.
type TrackerError struct {
	Key   string
	Cause error
}

func (e *TrackerError) Error() string {
	return fmt.Sprintf("issue tracker failed for %s: %v", e.Key, e.Cause)
}

func (e *TrackerError) Unwrap() error { return e.Cause }

// PollFailedError reports a poll that reached a terminal failure.
type PollFailedError struct {
	URL    string
	Reason string
}

func (e *PollFailedError) Error() string {
	return e.Reason
}

// PollTimeoutError reports a poll that gave up before the remote settled.
type PollTimeoutError struct {
	What     string
	URL      string
	Attempts int
}

func (e *PollTimeoutError) Error() string {
	return fmt.Sprintf("timed out waiting for %s after %d attempts: %s", e.What, e.Attempts, e.URL)
}

// Cancelled wraps err as ErrCancelled when it was caused by ctx being
// cancelled, and returns it unchanged otherwise.
func Cancelled(ctx context.Context, err error) error {
	if err == nil || ctx.Err() != context.Canceled {
		return err
	}

	return errors.Wrap(ErrCancelled, err.Error())
}

// ExitCode maps an error returned by a command to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return systemcodes.SuccessCode
	}

	var trackerErr *TrackerError
	var timeoutErr *PollTimeoutError

	switch {
	case errors.Is(err, ErrCancelled), errors.Is(err, context.Canceled):
		return systemcodes.ErrorCodeInterrupted
	case errors.Is(err, ErrPushFailed):
		return systemcodes.ErrorCodePush
	case errors.Is(err, ErrCannotListRemotes):
		return systemcodes.ErrorCodeRemotes
	case errors.As(err, &trackerErr):
		return systemcodes.ErrorCodeTracker
	case errors.As(err, &timeoutErr):
		return systemcodes.ErrorCodePollTimeout
	}

	return systemcodes.ErrorCodeGeneric
}
