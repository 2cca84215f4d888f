package ls

import (
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

	return execute(w, cmd.OutOrStdout())
}

func execute(w *workflow.Workflow, out io.Writer) error {
	branch, err := w.Ls()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, branch)

	return nil
}

func New() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"branch"},
		Short:   "Print current branch",
		Args:    cobra.NoArgs,
		Run:     utils.RunCommandWrapper(runCmd),
	}
}
