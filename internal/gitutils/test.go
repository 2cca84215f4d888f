package gitutils

import (
	"context"

	"yoho/internal/domain/repository"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

type MockGoGitRepository struct {
	HeadValue    *plumbing.Reference
	Err          error
	PushErr      error
	RemotesValue []*git.Remote
	CommitValue  *object.Commit
	PushOptions  *git.PushOptions
}

func (r *MockGoGitRepository) Head() (*plumbing.Reference, error) {
	return r.HeadValue, r.Err
}

func (r *MockGoGitRepository) Remotes() ([]*git.Remote, error) {
	return r.RemotesValue, r.Err
}

func (r *MockGoGitRepository) CommitObject(plumbing.Hash) (*object.Commit, error) {
	return r.CommitValue, r.Err
}

func (r *MockGoGitRepository) PushContext(ctx context.Context, o *git.PushOptions) error {
	r.PushOptions = o
	return r.PushErr
}

type MockGitRepository struct {
	ErrorValue         error
	CurrentBranchValue string
	RemotesValue       []repository.Remote
	Commit             *object.Commit
	PushedRemote       string
	PushedBranch       string
}

func (r *MockGitRepository) CurrentBranch() (string, error) {
	return r.CurrentBranchValue, r.ErrorValue
}

func (r *MockGitRepository) CurrentCommit() (*object.Commit, error) {
	return r.Commit, r.ErrorValue
}

func (r *MockGitRepository) Remotes() ([]repository.Remote, error) {
	return r.RemotesValue, r.ErrorValue
}

func (r *MockGitRepository) Push(ctx context.Context, remote, branch string) error {
	r.PushedRemote = remote
	r.PushedBranch = branch
	return r.ErrorValue
}
