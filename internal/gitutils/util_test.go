package gitutils

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"yoho/internal/domain/repository"
	"yoho/internal/errcodes"
	"yoho/internal/pkg/fs"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCurrentBranch(t *testing.T) {
	t.Run("fails when cannot get branch", func(t *testing.T) {
		vErr := errors.New("branch err")
		r := &GoGit{Git: &MockGitRepository{ErrorValue: vErr}}

		_, err := r.GetCurrentBranch()
		assert.EqualError(t, err, vErr.Error())
	})

	t.Run("succeeds otherwise", func(t *testing.T) {
		v := "branch-name"
		git := &GoGit{Git: &MockGitRepository{CurrentBranchValue: v}}

		r, err := git.GetCurrentBranch()
		assert.Equal(t, v, r)
		assert.NoError(t, err)
	})
}

func TestGetCurrentCommitTitle(t *testing.T) {
	t.Run("fails when cannot get commit", func(t *testing.T) {
		vErr := errors.New("commit err")
		r := &GoGit{Git: &MockGitRepository{ErrorValue: vErr}}

		_, err := r.GetCurrentCommitTitle()
		assert.EqualError(t, err, vErr.Error())
	})

	t.Run("fails when message is blank", func(t *testing.T) {
		r := &GoGit{Git: &MockGitRepository{Commit: &object.Commit{Message: "\n  \n"}}}

		_, err := r.GetCurrentCommitTitle()
		assert.ErrorIs(t, err, errcodes.ErrMissingTitle)
	})

	t.Run("returns the first line", func(t *testing.T) {
		r := &GoGit{Git: &MockGitRepository{Commit: &object.Commit{Message: "\nAdd feature\n\nLonger body"}}}

		title, err := r.GetCurrentCommitTitle()
		assert.NoError(t, err)
		assert.Equal(t, "Add feature", title)
	})
}

func TestGoGit_Push(t *testing.T) {
	t.Run("fails with a push error", func(t *testing.T) {
		r := &GoGit{Git: &MockGitRepository{ErrorValue: errors.New("rejected")}}

		err := r.Push(context.Background(), "origin", "feature")
		assert.True(t, errors.Is(err, errcodes.ErrPushFailed))
		assert.Equal(t, 2, errcodes.ExitCode(err))
	})

	t.Run("reports an interrupted push as cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		r := &GoGit{Git: &MockGitRepository{ErrorValue: context.Canceled}}

		err := r.Push(ctx, "origin", "feature")
		assert.Equal(t, 130, errcodes.ExitCode(err))
	})

	t.Run("succeeds otherwise", func(t *testing.T) {
		m := &MockGitRepository{}
		r := &GoGit{Git: m}

		assert.NoError(t, r.Push(context.Background(), "origin", "feature"))
		assert.Equal(t, "origin", m.PushedRemote)
		assert.Equal(t, "feature", m.PushedBranch)
	})
}

func TestGoGit_GetRemotes(t *testing.T) {
	r := &GoGit{Git: &MockGitRepository{ErrorValue: errors.New("remotes err")}}

	_, err := r.GetRemotes()
	assert.True(t, errors.Is(err, errcodes.ErrCannotListRemotes))
	assert.Equal(t, 5, errcodes.ExitCode(err))
}

func Test_extractRepositoryTokens(t *testing.T) {
	t.Run("fails on empty string", func(t *testing.T) {
		_, err := extractRepositoryTokens("")
		assert.EqualError(t, err, ErrUnableToParseRemoteRepositoryURI.Error())
	})

	t.Run("fails on https URI", func(t *testing.T) {
		_, err := extractRepositoryTokens("https://github.com/org/proj")
		assert.Error(t, err)
	})

	t.Run("succeeds on SSH URI", func(t *testing.T) {
		v, err := extractRepositoryTokens("git@provider:owner/repo.git")
		assert.NoError(t, err)
		assert.Equal(t, []string{"provider", "owner", "repo"}, v)
	})
}

func TestParseRemoteURL(t *testing.T) {
	oldExtractRepositoryTokens := extractRepositoryTokens
	defer func() { extractRepositoryTokens = oldExtractRepositoryTokens }()

	t.Run("fails when cannot parse remote", func(t *testing.T) {
		vErr := errors.New("remote err")
		extractRepositoryTokens = func(uri string) ([]string, error) { return nil, vErr }

		_, err := ParseRemoteURL("u")
		assert.ErrorIs(t, err, vErr)
	})

	t.Run("succeeds otherwise", func(t *testing.T) {
		extractRepositoryTokens = oldExtractRepositoryTokens

		v, err := ParseRemoteURL("git@github.com:alice/proj.git")
		assert.NoError(t, err)
		assert.Equal(t, &RemoteInfo{Host: "github.com", Owner: "alice", Name: "proj"}, v)
	})
}

func TestResolveIdentity(t *testing.T) {
	origin := repository.Remote{Name: "origin", URLs: []string{"git@github.com:alice/proj.git"}}
	upstream := repository.Remote{Name: "upstream", URLs: []string{"git@github.com:org/proj.git"}}

	t.Run("resolves owners and name", func(t *testing.T) {
		id, err := ResolveIdentity([]repository.Remote{upstream, origin})
		assert.NoError(t, err)
		assert.Equal(t, repository.Identity{OriginOwner: "alice", UpstreamOwner: "org", Name: "proj"}, id)
	})

	t.Run("takes the name from upstream", func(t *testing.T) {
		fork := repository.Remote{Name: "origin", URLs: []string{"git@github.com:alice/proj-fork.git"}}

		id, err := ResolveIdentity([]repository.Remote{fork, upstream})
		assert.NoError(t, err)
		assert.Equal(t, "proj", id.Name)
	})

	t.Run("fails when upstream is missing", func(t *testing.T) {
		_, err := ResolveIdentity([]repository.Remote{origin})
		assert.ErrorIs(t, err, errcodes.ErrMissingUpstream)
		assert.Equal(t, 1, errcodes.ExitCode(err))
	})

	t.Run("fails when origin is missing", func(t *testing.T) {
		_, err := ResolveIdentity([]repository.Remote{upstream})
		assert.ErrorIs(t, err, errcodes.ErrMissingOrigin)
	})

	t.Run("fails when origin is not an ssh remote", func(t *testing.T) {
		https := repository.Remote{Name: "origin", URLs: []string{"https://github.com/alice/proj"}}

		_, err := ResolveIdentity([]repository.Remote{https, upstream})
		assert.ErrorIs(t, err, errcodes.ErrMissingOrigin)
	})
}

func TestOpen(t *testing.T) {
	t.Run("fails when cannot get working dir", func(t *testing.T) {
		vErr := errors.New("wd err")

		_, err := Open(fs.MockFS{Err: vErr})
		assert.ErrorIs(t, err, vErr)
	})
}

func initRepo(t *testing.T, remotes map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	for name, url := range remotes {
		_, err := repo.CreateRemote(&config.RemoteConfig{Name: name, URLs: []string{url}})
		require.NoError(t, err)
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("hi"), 0o644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("README")
	require.NoError(t, err)
	_, err = wt.Commit("Add readme\n\nFirst commit.", &git.CommitOptions{
		Author: &object.Signature{Name: "Alice", Email: "alice@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	return dir
}

func TestOpenAt(t *testing.T) {
	t.Run("resolves identity from a real repository", func(t *testing.T) {
		dir := initRepo(t, map[string]string{
			"origin":   "git@github.com:alice/proj.git",
			"upstream": "git@github.com:org/proj.git",
		})
		sub := filepath.Join(dir, "a", "b")
		require.NoError(t, os.MkdirAll(sub, 0o755))

		g, err := OpenAt(sub)
		require.NoError(t, err)

		id, err := g.Identity()
		assert.NoError(t, err)
		assert.Equal(t, repository.Identity{OriginOwner: "alice", UpstreamOwner: "org", Name: "proj"}, id)

		title, err := g.GetCurrentCommitTitle()
		assert.NoError(t, err)
		assert.Equal(t, "Add readme", title)

		branch, err := g.GetCurrentBranch()
		assert.NoError(t, err)
		assert.Equal(t, "master", branch)
	})

	t.Run("fails without upstream", func(t *testing.T) {
		dir := initRepo(t, map[string]string{"origin": "git@github.com:alice/proj.git"})

		g, err := OpenAt(dir)
		require.NoError(t, err)

		_, err = g.Identity()
		assert.ErrorIs(t, err, errcodes.ErrMissingUpstream)
	})

	t.Run("fails outside a repository", func(t *testing.T) {
		_, err := OpenAt(t.TempDir())
		assert.Contains(t, err.Error(), ErrCannotGetLocalRepository.Error())
	})
}
