package yohohou

import (
	"context"
	"fmt"
	"io"

	"yoho/internal/cli/paramutils"
	"yoho/internal/cli/utils"
	"yoho/internal/workflow"

	"github.com/spf13/cobra"
)

var getWorkflow = paramutils.GetWorkflow

func runCmd(cmd *cobra.Command, args []string) error {
	w, err := getWorkflow(cmd.Context(), paramutils.NewFlagSet(cmd.Flags()))
	if err != nil {
		return err
	}

	return execute(cmd.Context(), w, cmd.OutOrStdout())
}

func execute(ctx context.Context, w *workflow.Workflow, out io.Writer) error {
	res, err := w.YoHoHou(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "merged %s\n", res.PullRequest.URL)

	return nil
}

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yohohou",
		Short: "Push, wait and merge in one go",
		Long:  `Runs yo, ho and hou on the current branch.`,
		Args:  cobra.NoArgs,
		Run:   utils.RunCommandWrapper(runCmd),
	}
	cmd.Flags().BoolP("yes", "y", false, "skip the cleanup confirmation")

	return cmd
}
