package yay

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
	open := flags.GetBoolOrDefault("open", false)

	w, err := getWorkflow(cmd.Context(), flags)
	if err != nil {
		return err
	}

	return execute(cmd.Context(), w, open, cmd.OutOrStdout())
}

func execute(ctx context.Context, w *workflow.Workflow, open bool, out io.Writer) error {
	res, err := w.Yay(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s: %s\n", res.PullRequest.Title, res.PullRequest.URL)
	if open {
		openURL(res.PullRequest.URL)
	}

	return nil
}

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yay",
		Short: "Push and open a pull request named after the tracked issue",
		Long: `Pushes the current branch, looks up the issue whose key is in the branch name
and opens a pull request titled "<KEY> <issue title>".`,
		Args: cobra.NoArgs,
		Run:  utils.RunCommandWrapper(runCmd),
	}
	cmd.Flags().Bool("open", false, "open the pull request in the browser")

	return cmd
}
