package pullrequest

import "context"

type Repository interface {
	Creator
	Merger
	Finder
	StatusReader
	BranchDeleter
}

type Finder interface {
	FindByBranch(ctx context.Context, branch string) (*Entity, error)
	Get(ctx context.Context, number int) (*Entity, error)
}

type StatusReader interface {
	CombinedStatus(ctx context.Context, sha string) (*StatusCheckSet, error)
}

type BranchDeleter interface {
	DeleteBranch(ctx context.Context, branch string) error
}

type CreateOptions struct {
	Title string
	// Source is qualified with the owner of the fork, e.g. "alice:feature".
	Source      string
	Destination string
	Body        string
}

type MergeMethod string

const (
	MergeSquash MergeMethod = "squash"
	MergeCommit MergeMethod = "merge"
	MergeRebase MergeMethod = "rebase"
)

var MergeMethods = []MergeMethod{MergeSquash, MergeCommit, MergeRebase}

type MergeOptions struct {
	Number      int
	CommitTitle string
	Method      MergeMethod
	SHA         string
}
