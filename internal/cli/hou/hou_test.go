package hou

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"yoho/internal/cli/paramutils"
	"yoho/internal/config"
	"yoho/internal/domain/pullrequest"
	"yoho/internal/errcodes"
	"yoho/internal/workflow"
	"yoho/mocks"

	"github.com/stretchr/testify/assert"
)

const prURL = "https://github.com/org/proj/pull/7"

func newWorkflow(tr *mocks.Tracker, confirm workflow.Confirm) (*workflow.Workflow, *mocks.PullRequestRepository) {
	prs := &mocks.PullRequestRepository{
		Found: &pullrequest.Entity{Number: 7, Title: "Add login", URL: prURL, HeadSHA: "abc"},
	}

	return &workflow.Workflow{
		Git:          &mocks.Git{BranchValue: "ABC-12-login"},
		PullRequests: prs,
		Tracker:      tr,
		Settings:     &config.Settings{},
		Confirm:      confirm,
	}, prs
}

func Test_execute(t *testing.T) {
	t.Run("merges and cleans up an explicit branch without asking", func(t *testing.T) {
		asked := false
		tr := &mocks.Tracker{}
		w, prs := newWorkflow(tr, func(string) (bool, error) { asked = true; return false, nil })
		out := &bytes.Buffer{}

		err := execute(context.Background(), w, &paramutils.BranchArgs{Branch: "ABC-12-login", Explicit: true}, out)
		assert.NoError(t, err)
		assert.False(t, asked)
		assert.Equal(t, []string{"ABC-12-login"}, prs.Deleted)
		assert.Equal(t, []string{"ABC-12"}, tr.Deleted)
		assert.Equal(t, "merged "+prURL+"\n", out.String())
	})

	t.Run("keeps branch and issue when cleanup is declined", func(t *testing.T) {
		tr := &mocks.Tracker{}
		w, prs := newWorkflow(tr, func(string) (bool, error) { return false, nil })
		out := &bytes.Buffer{}

		err := execute(context.Background(), w, &paramutils.BranchArgs{}, out)
		assert.NoError(t, err)
		assert.Empty(t, prs.Deleted)
		assert.Empty(t, tr.Deleted)
		assert.Equal(t, "merged "+prURL+"\nbranch and issue kept\n", out.String())
	})

	t.Run("fails with tracker exit code after merging", func(t *testing.T) {
		tr := &mocks.Tracker{DeleteErr: &errcodes.TrackerError{Key: "ABC-12", Cause: errors.New("denied")}}
		w, _ := newWorkflow(tr, nil)
		out := &bytes.Buffer{}

		err := execute(context.Background(), w, &paramutils.BranchArgs{Branch: "ABC-12-login", Explicit: true}, out)
		assert.Equal(t, 3, errcodes.ExitCode(err))
		assert.Equal(t, "merged "+prURL+"\n", out.String())
	})
}

func Test_runCmd(t *testing.T) {
	t.Run("returns error if workflow cannot be built", func(t *testing.T) {
		retErr := errors.New("hou error")
		old := getWorkflow
		defer func() { getWorkflow = old }()
		getWorkflow = func(ctx context.Context, flags paramutils.FlagSet) (*workflow.Workflow, error) {
			return nil, retErr
		}

		err := runCmd(New(), []string{"ABC-12-login"})
		assert.Equal(t, retErr, err)
	})

	t.Run("registers the yes flag", func(t *testing.T) {
		assert.NotNil(t, New().Flags().ShorthandLookup("y"))
	})
}
