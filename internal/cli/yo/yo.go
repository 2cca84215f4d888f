package yo

import (
	"context"
	"fmt"
	"io"

	"yoho/internal/cli/paramutils"
	"yoho/internal/cli/utils"
	"yoho/internal/notify"
	"yoho/internal/workflow"

	"github.com/spf13/cobra"
)

var getWorkflow = paramutils.GetWorkflow

var openURL = func(url string) { notify.New(true).Open(url) }

func runCmd(cmd *cobra.Command, args []string) error {
	flags := paramutils.NewFlagSet(cmd.Flags())
	params := &cmdParams{}
	fillFlagYoCmdParams(flags, params)

	w, err := getWorkflow(cmd.Context(), flags)
	if err != nil {
		return err
	}

	return execute(cmd.Context(), w, params, cmd.OutOrStdout())
}

func execute(ctx context.Context, w *workflow.Workflow, params *cmdParams, out io.Writer) error {
	res, err := w.Yo(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, res.Branch)
	fmt.Fprintln(out, res.PullRequest.URL)
	if params.Open {
		openURL(res.PullRequest.URL)
	}

	return nil
}

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yo",
		Short: "Push and open a pull request",
		Long: `Pushes the current branch and opens a pull request against the base branch.
The pull request is titled after the head commit.`,
		Args: cobra.NoArgs,
		Run:  utils.RunCommandWrapper(runCmd),
	}
	cmd.Flags().Bool("open", false, "open the pull request in the browser")

	return cmd
}
