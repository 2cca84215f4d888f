package tracker

import (
	"context"
	"strconv"
	"strings"

	"yoho/internal/domain/issue"
	"yoho/internal/errcodes"

	"github.com/google/go-github/v50/github"
	"golang.org/x/oauth2"
)

// GitHubTracker uses the issues of a GitHub repository. Keys are issue
// numbers, optionally prefixed with '#'.
type GitHubTracker struct {
	client *github.Client
	owner  string
	repo   string
}

func NewGitHubClient(ctx context.Context, token string) *github.Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)

	return github.NewClient(oauth2.NewClient(ctx, ts))
}

func NewGitHubTracker(client *github.Client, owner, repo string) *GitHubTracker {
	return &GitHubTracker{client: client, owner: owner, repo: repo}
}

func issueNumber(key string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(key), "#"))
	if err != nil || n <= 0 {
		return 0, &errcodes.TrackerError{Key: key, Cause: errcodes.ErrInvalidIssueKey}
	}

	return n, nil
}

func (t *GitHubTracker) Get(ctx context.Context, key string) (*issue.Entity, error) {
	n, err := issueNumber(key)
	if err != nil {
		return nil, err
	}

	gi, _, err := t.client.Issues.Get(ctx, t.owner, t.repo, n)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errcodes.Cancelled(ctx, err)
		}
		return nil, &errcodes.TrackerError{Key: key, Cause: err}
	}

	return &issue.Entity{Key: key, Title: gi.GetTitle()}, nil
}

// Delete closes the issue. The REST API has no way to delete one.
func (t *GitHubTracker) Delete(ctx context.Context, key string) error {
	n, err := issueNumber(key)
	if err != nil {
		return err
	}

	_, _, err = t.client.Issues.Edit(ctx, t.owner, t.repo, n, &github.IssueRequest{
		State: github.String("closed"),
	})
	if err != nil {
		if ctx.Err() != nil {
			return errcodes.Cancelled(ctx, err)
		}
		return &errcodes.TrackerError{Key: key, Cause: err}
	}

	return nil
}
