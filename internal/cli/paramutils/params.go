package paramutils

import (
	"context"
	"os"

	"yoho/internal/cli/utils"
	"yoho/internal/clientutils"
	"yoho/internal/config"
	"yoho/internal/gitutils"
	"yoho/internal/notify"
	"yoho/internal/pkg/fs"
	"yoho/internal/workflow"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type FlagSet interface {
	GetStringOrDefault(flag, d string) string
	GetBoolOrDefault(flag string, d bool) bool
}

func NewFlagSet(flags *pflag.FlagSet) FlagSet {
	return &PFlagSetWrapper{Flags: flags}
}

type PFlagSetWrapper struct {
	Flags *pflag.FlagSet
}

func (fs *PFlagSetWrapper) GetStringOrDefault(flag, d string) string {
	s, err := fs.Flags.GetString(flag)
	if err != nil || s == "" {
		return d
	}

	return s
}

func (fs *PFlagSetWrapper) GetBoolOrDefault(flag string, d bool) bool {
	s, err := fs.Flags.GetBool(flag)
	if err != nil {
		return d
	}

	return s
}

// BranchArgs is the optional branch argument of ho and hou. Explicit is set
// when the user named the branch.
type BranchArgs struct {
	Branch   string
	Explicit bool
}

func ParseBranchArg(args []string) *BranchArgs {
	if len(args) > 0 && args[0] != "" {
		return &BranchArgs{Branch: args[0], Explicit: true}
	}

	return &BranchArgs{}
}

var openRepo = func() (*gitutils.GoGit, error) {
	return gitutils.Open(fs.OS{})
}

var getSettings = func() (*config.Settings, error) {
	return config.FromViper(viper.GetViper())
}

// GetLocalWorkflow is enough for commands that only touch the local
// repository.
func GetLocalWorkflow() (*workflow.Workflow, error) {
	settings, err := getSettings()
	if err != nil {
		return nil, err
	}

	git, err := openRepo()
	if err != nil {
		return nil, err
	}

	return &workflow.Workflow{Git: git, Settings: settings}, nil
}

// GetWorkflow wires the local repository, the remotes it points to and the
// issue tracker.
func GetWorkflow(ctx context.Context, flags FlagSet) (*workflow.Workflow, error) {
	settings, err := getSettings()
	if err != nil {
		return nil, err
	}

	git, err := openRepo()
	if err != nil {
		return nil, err
	}

	id, err := git.Identity()
	if err != nil {
		return nil, err
	}

	prs, err := clientutils.ClientFactory{}.DefaultPullRequestRepository(settings, id)
	if err != nil {
		return nil, err
	}

	tr, err := clientutils.ClientFactory{}.DefaultTracker(ctx, settings, id)
	if err != nil {
		return nil, err
	}

	confirm := utils.SurveyConfirm
	if flags.GetBoolOrDefault("yes", false) {
		confirm = utils.AlwaysConfirm
	}

	return &workflow.Workflow{
		Git:          git,
		PullRequests: prs,
		Tracker:      tr,
		Notifier:     notify.New(settings.NotifyEnabled),
		Identity:     id,
		Settings:     settings,
		Confirm:      confirm,
		Progress:     utils.NewTerminalProgress(os.Stdout),
	}, nil
}
