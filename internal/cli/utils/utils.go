package utils

import (
	"fmt"
	"io"
	"os"

	"yoho/internal/domain/pullrequest"
	"yoho/internal/errcodes"
	"yoho/internal/progress"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var exit = os.Exit

var stderr io.Writer = os.Stderr

type runCommandError func(*cobra.Command, []string) error
type runCommandNoError func(*cobra.Command, []string)

// RunCommandWrapper prints the error of fn and exits with the status code
// matching it.
func RunCommandWrapper(fn runCommandError) runCommandNoError {
	return func(cmd *cobra.Command, args []string) {
		err := fn(cmd, args)
		if err != nil {
			fmt.Fprintln(stderr, err)
			exit(errcodes.ExitCode(err))
		}
	}
}

// SetupLogging configures zerolog for the CLI and keeps logrus, used by the
// HTTP client, at the same level.
func SetupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}

	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	logrusLevel, err := logrus.ParseLevel(lvl.String())
	if err != nil {
		logrusLevel = logrus.WarnLevel
	}
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrusLevel)
}

var askOne = survey.AskOne

// SurveyConfirm asks question on the terminal, defaulting to no.
func SurveyConfirm(question string) (bool, error) {
	ok := false
	err := askOne(&survey.Confirm{
		Message: question,
		Default: false,
	}, &ok)
	if err != nil {
		return false, err
	}

	return ok, nil
}

// AlwaysConfirm is used when the user already agreed with --yes.
func AlwaysConfirm(string) (bool, error) {
	return true, nil
}

func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// TerminalProgress renders poll progress to Out, redrawing in place when Out
// is a terminal.
type TerminalProgress struct {
	Out  io.Writer
	Live bool
}

func NewTerminalProgress(f *os.File) *TerminalProgress {
	return &TerminalProgress{Out: f, Live: IsTerminal(f)}
}

func (p *TerminalProgress) Mergeability() progress.Reporter[*pullrequest.Entity] {
	return progress.New(p.Out, p.Live, "mergeability", progress.PullRequestTable, progress.PullRequestSummary)
}

func (p *TerminalProgress) Checks() progress.Reporter[*pullrequest.StatusCheckSet] {
	return progress.New(p.Out, p.Live, "checks", progress.ChecksTable, progress.ChecksSummary)
}
