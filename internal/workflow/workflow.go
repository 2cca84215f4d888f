// Package workflow chains git, the code review remote and the issue tracker
// into the yo, ho and hou steps.
package workflow

import (
	"context"
	"fmt"

	"yoho/internal/config"
	"yoho/internal/domain/issue"
	"yoho/internal/domain/pullrequest"
	"yoho/internal/domain/repository"
	"yoho/internal/errcodes"
	"yoho/internal/notify"
	"yoho/internal/pkg/tracker"
	"yoho/internal/poller"
	"yoho/internal/progress"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Git interface {
	GetCurrentBranch() (string, error)
	GetCurrentCommitTitle() (string, error)
	Push(ctx context.Context, remote, branch string) error
}

// Confirm asks the user a yes/no question.
type Confirm func(question string) (bool, error)

type ProgressFactory interface {
	Mergeability() progress.Reporter[*pullrequest.Entity]
	Checks() progress.Reporter[*pullrequest.StatusCheckSet]
}

type Workflow struct {
	Git          Git
	PullRequests pullrequest.Repository
	Tracker      issue.Tracker
	Notifier     notify.Notifier
	Identity     repository.Identity
	Settings     *config.Settings
	Confirm      Confirm
	Progress     ProgressFactory
}

type YoResult struct {
	Branch      string
	PullRequest *pullrequest.Entity
}

type HouResult struct {
	PullRequest *pullrequest.Entity
	// CleanedUp is false when the user declined deleting the branch and issue.
	CleanedUp bool
}

func (w *Workflow) notify(title, message string) {
	if w.Notifier != nil {
		w.Notifier.Notify(title, message)
	}
}

func (w *Workflow) remote() string {
	if w.Settings.Remote == "" {
		return "origin"
	}

	return w.Settings.Remote
}

func (w *Workflow) branchOrCurrent(branch string) (string, error) {
	if branch != "" {
		return branch, nil
	}

	return w.Ls()
}

// Ls returns the checked out branch.
func (w *Workflow) Ls() (string, error) {
	b, err := w.Git.GetCurrentBranch()
	if err != nil {
		return "", errors.Wrap(err, "cannot get current branch")
	}

	return b, nil
}

// Push pushes the current branch and returns its name.
func (w *Workflow) Push(ctx context.Context) (string, error) {
	branch, err := w.Ls()
	if err != nil {
		return "", err
	}

	return branch, w.Git.Push(ctx, w.remote(), branch)
}

func (w *Workflow) create(ctx context.Context, branch, title string) (*pullrequest.Entity, error) {
	return pullrequest.NewCreateService(w.PullRequests).Create(ctx, &pullrequest.CreateOptions{
		Title:       title,
		Source:      w.Identity.Head(branch),
		Destination: w.Settings.Base,
	})
}

// Yo pushes the current branch and opens a pull request against the base
// branch titled after the head commit.
func (w *Workflow) Yo(ctx context.Context) (*YoResult, error) {
	branch, err := w.Push(ctx)
	if err != nil {
		return nil, err
	}

	title, err := w.Git.GetCurrentCommitTitle()
	if err != nil {
		return nil, err
	}

	pr, err := w.create(ctx, branch, title)
	if err != nil {
		return nil, err
	}
	log.Info().Str("url", pr.URL).Msg("pull request created")
	w.notify("yo", fmt.Sprintf("pull request created: %s", pr.URL))

	return &YoResult{Branch: branch, PullRequest: pr}, nil
}

// Yay is Yo with the pull request titled after the tracked issue.
func (w *Workflow) Yay(ctx context.Context) (*YoResult, error) {
	branch, err := w.Push(ctx)
	if err != nil {
		return nil, err
	}

	key, err := tracker.KeyFromBranch(w.Settings.Tracker.KeyPattern, branch)
	if err != nil {
		return nil, err
	}

	i, err := w.Tracker.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	pr, err := w.create(ctx, branch, fmt.Sprintf("%s %s", key, i.Title))
	if err != nil {
		return nil, err
	}
	w.notify("yay", fmt.Sprintf("pull request created: %s", pr.URL))

	return &YoResult{Branch: branch, PullRequest: pr}, nil
}

func settle[V any](out poller.Outcome[V], err error, what, url string) (V, error) {
	var zero V
	if err != nil {
		return zero, err
	}

	switch out.Kind {
	case poller.Resolved:
		return out.Value, nil
	case poller.Failed:
		return zero, &errcodes.PollFailedError{URL: url, Reason: out.Reason}
	default:
		return zero, &errcodes.PollTimeoutError{What: what, URL: url, Attempts: out.Attempts}
	}
}

func (w *Workflow) mergeabilityReporter() progress.Reporter[*pullrequest.Entity] {
	if w.Progress == nil {
		return progress.Discard[*pullrequest.Entity]{}
	}

	return w.Progress.Mergeability()
}

func (w *Workflow) checksReporter() progress.Reporter[*pullrequest.StatusCheckSet] {
	if w.Progress == nil {
		return progress.Discard[*pullrequest.StatusCheckSet]{}
	}

	return w.Progress.Checks()
}

// WaitMergeable polls pr until the remote decides whether it can be merged.
func (w *Workflow) WaitMergeable(ctx context.Context, pr *pullrequest.Entity) (*pullrequest.Entity, error) {
	r := w.mergeabilityReporter()
	out, err := poller.Poll(
		ctx,
		func(ctx context.Context) (*pullrequest.Entity, error) {
			return w.PullRequests.Get(ctx, pr.Number)
		},
		pullrequest.ClassifyMergeability,
		w.Settings.MergeablePollOptions(),
		r.OnTick,
	)
	r.Stop()

	return settle(out, err, "mergeability", pr.URL)
}

// WaitChecks polls the combined status of the head of pr until it is final.
func (w *Workflow) WaitChecks(ctx context.Context, pr *pullrequest.Entity) (*pullrequest.StatusCheckSet, error) {
	r := w.checksReporter()
	out, err := poller.Poll(
		ctx,
		func(ctx context.Context) (*pullrequest.StatusCheckSet, error) {
			return w.PullRequests.CombinedStatus(ctx, pr.HeadSHA)
		},
		pullrequest.ClassifyChecks(pr.URL),
		w.Settings.PollOptions(),
		r.OnTick,
	)
	r.Stop()

	return settle(out, err, "checks", pr.URL)
}

// Ho waits for the pull request of branch to become mergeable and for its
// checks to pass.
func (w *Workflow) Ho(ctx context.Context, branch string) (*pullrequest.Entity, error) {
	branch, err := w.branchOrCurrent(branch)
	if err != nil {
		return nil, err
	}

	pr, err := w.PullRequests.FindByBranch(ctx, branch)
	if err != nil {
		return nil, err
	}

	pr, err = w.WaitMergeable(ctx, pr)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("sha", pr.HeadSHA).Msg("pull request is mergeable")

	if _, err := w.WaitChecks(ctx, pr); err != nil {
		return nil, err
	}
	w.notify("ho", fmt.Sprintf("%s is ready to merge", pr.URL))

	return pr, nil
}

// Hou merges the pull request of branch and then removes the remote
// branch and the tracked issue. When the branch was not named explicitly the
// cleanup is confirmed first.
func (w *Workflow) Hou(ctx context.Context, branch string, explicit bool) (*HouResult, error) {
	branch, err := w.branchOrCurrent(branch)
	if err != nil {
		return nil, err
	}

	pr, err := w.PullRequests.FindByBranch(ctx, branch)
	if err != nil {
		return nil, err
	}

	if err := pullrequest.NewMergeService(w.PullRequests).Merge(ctx, pr, &pullrequest.MergeOptions{Method: w.Settings.MergeMethod}); err != nil {
		return nil, err
	}
	w.notify("hou", fmt.Sprintf("%s merged", pr.URL))
	res := &HouResult{PullRequest: pr}

	key, err := tracker.KeyFromBranch(w.Settings.Tracker.KeyPattern, branch)
	if err != nil {
		return res, err
	}

	if !explicit {
		ok, err := w.confirm(fmt.Sprintf("Delete remote branch %s and issue %s?", branch, key))
		if err != nil {
			return res, err
		}
		if !ok {
			log.Info().Str("branch", branch).Msg("cleanup skipped")
			return res, nil
		}
	}

	if err := w.PullRequests.DeleteBranch(ctx, branch); err != nil {
		log.Warn().Err(err).Str("branch", branch).Msg("cannot delete remote branch")
	}

	if err := w.Tracker.Delete(ctx, key); err != nil {
		return res, err
	}
	res.CleanedUp = true
	w.notify("hou", fmt.Sprintf("cleaned up %s", key))

	return res, nil
}

func (w *Workflow) confirm(question string) (bool, error) {
	if w.Confirm == nil {
		return false, nil
	}

	ok, err := w.Confirm(question)
	if err != nil {
		return false, errors.Wrap(errcodes.ErrCancelled, err.Error())
	}

	return ok, nil
}

// YoHoHou runs Yo, Ho and Hou on the current branch.
func (w *Workflow) YoHoHou(ctx context.Context) (*HouResult, error) {
	yo, err := w.Yo(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := w.Ho(ctx, yo.Branch); err != nil {
		return nil, err
	}

	return w.Hou(ctx, yo.Branch, false)
}
