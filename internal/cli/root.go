package cli

import (
	"context"
	"fmt"
	"os"

	hocmd "yoho/internal/cli/ho"
	houcmd "yoho/internal/cli/hou"
	lscmd "yoho/internal/cli/ls"
	pushcmd "yoho/internal/cli/push"
	"yoho/internal/cli/utils"
	yaycmd "yoho/internal/cli/yay"
	yocmd "yoho/internal/cli/yo"
	yohohoucmd "yoho/internal/cli/yohohou"
	"yoho/internal/configutils"
	"yoho/internal/pkg/fs"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const examples = `  # open a pull request for the current branch against dev
  yoho yo

  # wait for mergeability and checks, then merge and clean up
  yoho ho && yoho hou

  # merge another branch and delete its remote branch and issue without asking
  yoho hou ABC-12-login

  # everything at once, polling every 10 seconds for at most an hour
  yoho yohohou --interval 10s --timeout 1h --yes`

var getWorkingDir = os.Getwd

func loadConfig(cmd *cobra.Command) error {
	path := configutils.GetStringFlagOrDefault(cmd.Flags(), "config", "")

	wd, err := getWorkingDir()
	if err != nil {
		return err
	}

	v := viper.GetViper()
	err = configutils.Load(v, fs.OS{}, configutils.LoadOptions{
		Dir:   wd,
		File:  path,
		Flags: cmd.Flags(),
	})
	if err != nil {
		return err
	}

	utils.SetupLogging(v.GetString("log.level"))

	return nil
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yoho",
		Short: "yoho pushes, waits for and merges pull requests",
		Long: `Command-line utility chaining your git branch, its pull request and the issue
it tracks: yo opens the pull request, ho waits until it can be merged and hou
merges it and cleans up.`,
		Example:       examples,
		Version:       fmt.Sprintf("%v, commit %v, built at %v", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd)
		},
	}

	cmd.AddCommand(
		lscmd.New(),
		pushcmd.New(),
		yocmd.New(),
		hocmd.New(),
		houcmd.New(),
		yohohoucmd.New(),
		yaycmd.New(),
	)

	cmd.PersistentFlags().String("config", "", "config path")
	cmd.PersistentFlags().Bool("debug", false, "print debug logs")
	cmd.PersistentFlags().Duration("interval", 0, "poll interval, overrides poll.interval")
	cmd.PersistentFlags().Duration("timeout", 0, "poll timeout, overrides poll.timeout")
	cmd.PersistentFlags().String("base", "", "base branch of created pull requests")

	return cmd
}

// Execute runs the command line until ctx is cancelled.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
