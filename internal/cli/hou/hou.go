package hou

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

	return execute(cmd.Context(), w, parseArgs(args), cmd.OutOrStdout())
}

func execute(ctx context.Context, w *workflow.Workflow, args *paramutils.BranchArgs, out io.Writer) error {
	res, err := w.Hou(ctx, args.Branch, args.Explicit)
	if res != nil && res.PullRequest != nil {
		fmt.Fprintf(out, "merged %s\n", res.PullRequest.URL)
	}
	if err != nil {
		return err
	}

	if !res.CleanedUp {
		fmt.Fprintln(out, "branch and issue kept")
	}

	return nil
}

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hou [branch]",
		Short: "Merge the pull request and clean up",
		Long: `Merges the pull request of the branch (squash unless workflow.merge_method
says otherwise), then deletes the remote branch
and the tracked issue. Without a branch argument the current branch is used and
the cleanup is confirmed first.`,
		Args: cobra.MaximumNArgs(1),
		Run:  utils.RunCommandWrapper(runCmd),
	}
	cmd.Flags().BoolP("yes", "y", false, "skip the cleanup confirmation")

	return cmd
}
