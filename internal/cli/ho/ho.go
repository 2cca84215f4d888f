package ho

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
	pr, err := w.Ho(ctx, args.Branch)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s is ready to merge\n", pr.URL)

	return nil
}

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "ho [branch]",
		Short: "Wait until the pull request can be merged",
		Long: `Waits for the pull request of the branch to become mergeable and for the
checks on its head commit to pass. Defaults to the current branch.`,
		Args: cobra.MaximumNArgs(1),
		Run:  utils.RunCommandWrapper(runCmd),
	}
}
