package clientutils

import (
	"context"

	"yoho/internal/config"
	"yoho/internal/domain/issue"
	"yoho/internal/domain/pullrequest"
	"yoho/internal/domain/repository"
	"yoho/internal/errcodes"
	"yoho/internal/pkg/execshell"
	"yoho/internal/pkg/github"
	"yoho/internal/pkg/tracker"

	"github.com/pkg/errors"
)

type ClientFactory struct{}

func (cf ClientFactory) DefaultPullRequestRepository(s *config.Settings, id repository.Identity) (pullrequest.Repository, error) {
	if s.GitHubToken == "" {
		return nil, errcodes.ErrMissingToken
	}

	return github.New(&github.ClientOptions{
		Repository: id,
		Token:      s.GitHubToken,
	}), nil
}

func (cf ClientFactory) DefaultTracker(ctx context.Context, s *config.Settings, id repository.Identity) (issue.Tracker, error) {
	switch s.Tracker.Kind {
	case config.TrackerKindCLI:
		return &tracker.CLITracker{
			Executor:   execshell.New(),
			Command:    s.Tracker.Command,
			ViewArgs:   s.Tracker.ViewArgs,
			DeleteArgs: s.Tracker.DeleteArgs,
			TitlePath:  s.Tracker.TitlePath,
		}, nil
	case config.TrackerKindGitHub:
		if s.GitHubToken == "" {
			return nil, errcodes.ErrMissingToken
		}

		return tracker.NewGitHubTracker(
			tracker.NewGitHubClient(ctx, s.GitHubToken),
			id.UpstreamOwner,
			id.Name,
		), nil
	}

	return nil, errors.Wrap(errcodes.ErrUnknownTrackerKind, s.Tracker.Kind)
}
