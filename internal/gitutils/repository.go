package gitutils

import (
	"context"
	"fmt"
	"path/filepath"

	"yoho/internal/domain/repository"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	gitssh "github.com/go-git/go-git/v5/plumbing/transport/ssh"
)

type goGitRepository interface {
	Head() (*plumbing.Reference, error)
	Remotes() ([]*git.Remote, error)
	CommitObject(plumbing.Hash) (*object.Commit, error)
	PushContext(context.Context, *git.PushOptions) error
}

type gitRepository interface {
	Remotes() ([]repository.Remote, error)
	CurrentBranch() (string, error)
	CurrentCommit() (*object.Commit, error)
	Push(ctx context.Context, remote, branch string) error
}

type localRepository struct {
	r goGitRepository
}

var openRepo = func(path string) (goGitRepository, error) {
	r, err := OpenRepoRecursively(path)
	if err != nil {
		return nil, err
	}

	return r, nil
}

var pushAuth = func() (transport.AuthMethod, error) {
	return gitssh.NewSSHAgentAuth("git")
}

// OpenRepoRecursively opens the repository containing input, walking up the
// directory tree until one is found.
func OpenRepoRecursively(input string) (*git.Repository, error) {
	dir := filepath.Clean(input)
	for {
		repo, err := git.PlainOpen(dir)
		if err == nil {
			return repo, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil, fmt.Errorf("could not find a git repository at or above %s", input)
}

func (r *localRepository) Remotes() ([]repository.Remote, error) {
	remotes, err := r.r.Remotes()
	if err != nil {
		return nil, err
	}

	var out []repository.Remote
	for _, re := range remotes {
		c := re.Config()
		out = append(out, repository.Remote{Name: c.Name, URLs: c.URLs})
	}

	return out, nil
}

func (r *localRepository) CurrentBranch() (string, error) {
	headRef, err := r.r.Head()
	if err != nil {
		return "", err
	}
	if !headRef.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is detached at %s", headRef.Hash())
	}

	return headRef.Name().Short(), nil
}

func (r *localRepository) CurrentCommit() (*object.Commit, error) {
	head, err := r.r.Head()
	if err != nil {
		return nil, err
	}

	return r.r.CommitObject(head.Hash())
}

func (r *localRepository) Push(ctx context.Context, remote, branch string) error {
	auth, err := pushAuth()
	if err != nil {
		return err
	}

	ref := plumbing.NewBranchReferenceName(branch)
	err = r.r.PushContext(ctx, &git.PushOptions{
		RemoteName: remote,
		RefSpecs:   []config.RefSpec{config.RefSpec(fmt.Sprintf("%s:%s", ref, ref))},
		Auth:       auth,
	})
	if err == git.NoErrAlreadyUpToDate {
		return nil
	}

	return err
}
