package errcodes

import (
	"context"
	"fmt"
	"testing"

	"yoho/internal/systemcodes"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil is success", nil, systemcodes.SuccessCode},
		{"unknown error is generic", errors.New("boom"), systemcodes.ErrorCodeGeneric},
		{"missing upstream is generic", ErrMissingUpstream, systemcodes.ErrorCodeGeneric},
		{"wrapped push failure", errors.Wrap(ErrPushFailed, "origin"), systemcodes.ErrorCodePush},
		{"remotes failure", errors.Wrap(ErrCannotListRemotes, "io"), systemcodes.ErrorCodeRemotes},
		{"tracker failure", &TrackerError{Key: "ABC-1", Cause: errors.New("exit 1")}, systemcodes.ErrorCodeTracker},
		{"wrapped tracker failure", errors.Wrap(&TrackerError{Key: "ABC-1"}, "hou"), systemcodes.ErrorCodeTracker},
		{"poll failure is generic", &PollFailedError{Reason: "not mergeable"}, systemcodes.ErrorCodeGeneric},
		{"poll timeout", &PollTimeoutError{What: "checks"}, systemcodes.ErrorCodePollTimeout},
		{"cancelled", errors.Wrap(ErrCancelled, "ho"), systemcodes.ErrorCodeInterrupted},
		{"bare context cancellation", context.Canceled, systemcodes.ErrorCodeInterrupted},
		{"wrapped context cancellation", fmt.Errorf("Post \"/pulls\": %w", context.Canceled), systemcodes.ErrorCodeInterrupted},
		{"deadline is generic", context.DeadlineExceeded, systemcodes.ErrorCodeGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestTrackerError(t *testing.T) {
	t.Run("unwraps the cause", func(t *testing.T) {
		cause := errors.New("exit status 1")
		err := &TrackerError{Key: "ABC-1", Cause: cause}
		assert.True(t, errors.Is(err, cause))
		assert.EqualError(t, err, "issue tracker failed for ABC-1: exit status 1")
	})
}

func TestCancelled(t *testing.T) {
	t.Run("wraps errors of a cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := Cancelled(ctx, errors.New("exec: killed"))
		assert.True(t, errors.Is(err, ErrCancelled))
		assert.EqualError(t, err, "exec: killed: cancelled")
	})

	t.Run("keeps errors of a live context", func(t *testing.T) {
		vErr := errors.New("exit status 1")
		assert.Equal(t, vErr, Cancelled(context.Background(), vErr))
	})

	t.Run("keeps nil", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.NoError(t, Cancelled(ctx, nil))
	})
}
