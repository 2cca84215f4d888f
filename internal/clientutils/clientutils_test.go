package clientutils

import (
	"context"
	"testing"

	"yoho/internal/config"
	"yoho/internal/domain/repository"
	"yoho/internal/errcodes"
	"yoho/internal/pkg/github"
	"yoho/internal/pkg/tracker"

	"github.com/stretchr/testify/assert"
)

var id = repository.Identity{OriginOwner: "alice", UpstreamOwner: "org", Name: "proj"}

func TestClientFactory_DefaultPullRequestRepository(t *testing.T) {
	t.Run("fails when token is missing", func(t *testing.T) {
		_, err := ClientFactory{}.DefaultPullRequestRepository(&config.Settings{}, id)
		assert.ErrorIs(t, err, errcodes.ErrMissingToken)
	})

	t.Run("returns a github client", func(t *testing.T) {
		c, err := ClientFactory{}.DefaultPullRequestRepository(&config.Settings{GitHubToken: "t"}, id)
		assert.NoError(t, err)
		assert.IsType(t, &github.GithubCloudClient{}, c)
	})
}

func TestClientFactory_DefaultTracker(t *testing.T) {
	t.Run("returns the cli tracker", func(t *testing.T) {
		s := &config.Settings{Tracker: config.TrackerSettings{Kind: config.TrackerKindCLI, Command: "jira"}}

		tr, err := ClientFactory{}.DefaultTracker(context.Background(), s, id)
		assert.NoError(t, err)
		assert.IsType(t, &tracker.CLITracker{}, tr)
	})

	t.Run("returns the github tracker", func(t *testing.T) {
		s := &config.Settings{GitHubToken: "t", Tracker: config.TrackerSettings{Kind: config.TrackerKindGitHub}}

		tr, err := ClientFactory{}.DefaultTracker(context.Background(), s, id)
		assert.NoError(t, err)
		assert.IsType(t, &tracker.GitHubTracker{}, tr)
	})

	t.Run("fails when github tracker has no token", func(t *testing.T) {
		s := &config.Settings{Tracker: config.TrackerSettings{Kind: config.TrackerKindGitHub}}

		_, err := ClientFactory{}.DefaultTracker(context.Background(), s, id)
		assert.ErrorIs(t, err, errcodes.ErrMissingToken)
	})

	t.Run("fails when kind is unknown", func(t *testing.T) {
		s := &config.Settings{Tracker: config.TrackerSettings{Kind: "trello"}}

		_, err := ClientFactory{}.DefaultTracker(context.Background(), s, id)
		assert.ErrorIs(t, err, errcodes.ErrUnknownTrackerKind)
	})
}
