package config

import (
	"time"

	"yoho/internal/domain/pullrequest"
	"yoho/internal/poller"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

const (
	TrackerKindCLI    = "cli"
	TrackerKindGitHub = "github"
)

type PollSettings struct {
	Interval       time.Duration
	Timeout        time.Duration
	MaxAttempts    int
	Backoff        float64
	MaxInterval    time.Duration
	MergeableGrace int
}

type TrackerSettings struct {
	Kind       string
	Command    string
	ViewArgs   []string
	DeleteArgs []string
	TitlePath  string
	KeyPattern string
}

type Settings struct {
	GitHubToken   string
	Base          string
	Remote        string
	MergeMethod   pullrequest.MergeMethod
	Poll          PollSettings
	Tracker       TrackerSettings
	NotifyEnabled bool
	LogLevel      string
}

// FromViper reads the typed settings out of a loaded viper instance.
func FromViper(v *viper.Viper) (*Settings, error) {
	s := &Settings{
		GitHubToken: v.GetString("github.token"),
		Base:        v.GetString("workflow.base"),
		Remote:      v.GetString("workflow.remote"),
		MergeMethod: pullrequest.MergeMethod(v.GetString("workflow.merge_method")),
		Poll: PollSettings{
			Interval:       v.GetDuration("poll.interval"),
			Timeout:        v.GetDuration("poll.timeout"),
			MaxAttempts:    v.GetInt("poll.max_attempts"),
			Backoff:        v.GetFloat64("poll.backoff"),
			MaxInterval:    v.GetDuration("poll.max_interval"),
			MergeableGrace: v.GetInt("poll.mergeable_grace"),
		},
		Tracker: TrackerSettings{
			Kind:       v.GetString("tracker.kind"),
			Command:    v.GetString("tracker.command"),
			ViewArgs:   v.GetStringSlice("tracker.view_args"),
			DeleteArgs: v.GetStringSlice("tracker.delete_args"),
			TitlePath:  v.GetString("tracker.title_path"),
			KeyPattern: v.GetString("tracker.key_pattern"),
		},
		NotifyEnabled: v.GetBool("notify.enabled"),
		LogLevel:      v.GetString("log.level"),
	}

	return s, s.Validate()
}

func (s *Settings) Validate() error {
	if s.Poll.Interval <= 0 {
		return errors.Errorf("poll.interval must be positive, got %s", s.Poll.Interval)
	}
	if s.Poll.Timeout < 0 {
		return errors.Errorf("poll.timeout must not be negative, got %s", s.Poll.Timeout)
	}
	if s.Poll.MaxAttempts < 0 || s.Poll.MergeableGrace < 0 {
		return errors.New("poll.max_attempts and poll.mergeable_grace must not be negative")
	}
	if s.Base == "" {
		return errors.New("workflow.base must not be empty")
	}
	if !slices.Contains(pullrequest.MergeMethods, s.MergeMethod) {
		return errors.Errorf("workflow.merge_method must be one of (squash, merge, rebase), got %q", s.MergeMethod)
	}
	if !slices.Contains([]string{TrackerKindCLI, TrackerKindGitHub}, s.Tracker.Kind) {
		return errors.Errorf("tracker.kind must be one of (cli, github), got %q", s.Tracker.Kind)
	}

	return nil
}

// PollOptions is the poller configuration for the CI wait.
func (s *Settings) PollOptions() poller.Options {
	return poller.Options{
		Interval:    s.Poll.Interval,
		Timeout:     s.Poll.Timeout,
		MaxAttempts: s.Poll.MaxAttempts,
		Backoff:     s.Poll.Backoff,
		MaxInterval: s.Poll.MaxInterval,
	}
}

// MergeablePollOptions is PollOptions plus the grace for a remote that briefly
// reports a pull request as unmergeable.
func (s *Settings) MergeablePollOptions() poller.Options {
	o := s.PollOptions()
	o.FailureGrace = s.Poll.MergeableGrace

	return o
}
