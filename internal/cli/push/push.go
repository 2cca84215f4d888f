package push

import (
	"context"
	"fmt"
	"io"

	"yoho/internal/cli/paramutils"
	"yoho/internal/cli/utils"
	"yoho/internal/workflow"

	"github.com/spf13/cobra"
)

var getWorkflow = paramutils.GetLocalWorkflow

func runCmd(cmd *cobra.Command, args []string) error {
	w, err := getWorkflow()
	if err != nil {
		return err
	}

	return execute(cmd.Context(), w, cmd.OutOrStdout())
}

func execute(ctx context.Context, w *workflow.Workflow, out io.Writer) error {
	branch, err := w.Push(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "pushed %s\n", branch)

	return nil
}

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Push current branch",
		Long:  `Pushes the current branch to the configured remote using the ssh agent`,
		Args:  cobra.NoArgs,
		Run:   utils.RunCommandWrapper(runCmd),
	}
}
