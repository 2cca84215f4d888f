package push

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"yoho/internal/config"
	"yoho/internal/errcodes"
	"yoho/internal/workflow"
	"yoho/mocks"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func Test_execute(t *testing.T) {
	t.Run("pushes the current branch to the configured remote", func(t *testing.T) {
		git := &mocks.Git{BranchValue: "feature"}
		out := &bytes.Buffer{}
		err := execute(context.Background(), &workflow.Workflow{Git: git, Settings: &config.Settings{Remote: "fork"}}, out)
		assert.NoError(t, err)
		assert.Equal(t, []string{"fork/feature"}, git.Pushed)
		assert.Equal(t, "pushed feature\n", out.String())
	})

	t.Run("fails with push exit code when push fails", func(t *testing.T) {
		git := &mocks.Git{BranchValue: "feature", PushErr: errcodes.ErrPushFailed}
		err := execute(context.Background(), &workflow.Workflow{Git: git, Settings: &config.Settings{}}, &bytes.Buffer{})
		assert.Equal(t, 2, errcodes.ExitCode(err))
	})
}

func Test_runCmd(t *testing.T) {
	t.Run("returns error if workflow cannot be built", func(t *testing.T) {
		retErr := errors.New("push error")
		old := getWorkflow
		defer func() { getWorkflow = old }()
		getWorkflow = func() (*workflow.Workflow, error) { return nil, retErr }

		err := runCmd(&cobra.Command{}, []string{})
		assert.Equal(t, retErr, err)
	})
}
