package gitutils

import (
	"context"
	"regexp"
	"strings"

	"yoho/internal/domain/repository"
	"yoho/internal/errcodes"
	"yoho/internal/pkg/fs"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

var (
	ErrCannotGetLocalRepository         = errors.New("cannot get local repository")
	ErrUnableToParseRemoteRepositoryURI = errors.New("unable to parse remote repository URI")
)

const (
	OriginRemote   = "origin"
	UpstreamRemote = "upstream"
)

// RemoteInfo is what a remote URL says about the repository behind it.
type RemoteInfo struct {
	Host  string
	Owner string
	Name  string
}

// GoGit is the local repository as seen by the workflow.
type GoGit struct {
	Git gitRepository
}

var getWorkingDir = func(fs fs.Filesystem) (string, error) {
	return fs.Getwd()
}

// Open opens the repository containing the working directory.
func Open(fsys fs.Filesystem) (*GoGit, error) {
	wd, err := getWorkingDir(fsys)
	if err != nil {
		return nil, errors.Wrap(err, ErrCannotGetLocalRepository.Error())
	}

	return OpenAt(wd)
}

// OpenAt opens the repository containing path.
func OpenAt(path string) (*GoGit, error) {
	r, err := openRepo(path)
	if err != nil {
		return nil, errors.Wrap(err, ErrCannotGetLocalRepository.Error())
	}

	return &GoGit{Git: &localRepository{r: r}}, nil
}

func (g *GoGit) GetCurrentBranch() (string, error) {
	return g.Git.CurrentBranch()
}

func (g *GoGit) GetCurrentCommitMessage() (string, error) {
	c, err := g.Git.CurrentCommit()
	if err != nil {
		return "", err
	}

	return c.Message, nil
}

// GetCurrentCommitTitle is the first non-empty line of the head commit message.
func (g *GoGit) GetCurrentCommitTitle() (string, error) {
	msg, err := g.GetCurrentCommitMessage()
	if err != nil {
		return "", err
	}

	for _, line := range strings.Split(msg, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
	}

	return "", errcodes.ErrMissingTitle
}

func (g *GoGit) GetRemotes() ([]repository.Remote, error) {
	remotes, err := g.Git.Remotes()
	if err != nil {
		return nil, errors.Wrap(errcodes.ErrCannotListRemotes, err.Error())
	}

	return remotes, nil
}

// Push pushes branch to the remote under the same name. An up to date remote
// is not an error.
func (g *GoGit) Push(ctx context.Context, remote, branch string) error {
	log.Debug().Str("remote", remote).Str("branch", branch).Msg("pushing")
	if err := g.Git.Push(ctx, remote, branch); err != nil {
		if ctx.Err() != nil {
			return errors.Wrapf(errcodes.ErrCancelled, "push of %s", branch)
		}
		return errors.Wrapf(errcodes.ErrPushFailed, "%s to %s: %v", branch, remote, err)
	}

	return nil
}

// Identity resolves the origin and upstream remotes of the repository.
func (g *GoGit) Identity() (repository.Identity, error) {
	remotes, err := g.GetRemotes()
	if err != nil {
		return repository.Identity{}, err
	}

	return ResolveIdentity(remotes)
}

var extractRepositoryTokens = func(uri string) ([]string, error) {
	r := regexp.MustCompile(`git@(.*):(.*)/(.*)\.git`)
	m := r.FindStringSubmatch(uri)
	if len(m) != 4 {
		return nil, ErrUnableToParseRemoteRepositoryURI
	}

	return m[1:], nil
}

// ParseRemoteURL parses an SSH remote of the form git@host:owner/name.git.
func ParseRemoteURL(uri string) (*RemoteInfo, error) {
	m, err := extractRepositoryTokens(uri)
	if err != nil {
		return nil, errors.Wrap(err, uri)
	}

	return &RemoteInfo{Host: m[0], Owner: m[1], Name: m[2]}, nil
}

func findRemote(remotes []repository.Remote, name string) (*RemoteInfo, bool) {
	i := slices.IndexFunc(remotes, func(r repository.Remote) bool { return r.Name == name })
	if i < 0 {
		return nil, false
	}

	for _, url := range remotes[i].URLs {
		info, err := ParseRemoteURL(url)
		if err == nil {
			return info, true
		}
		log.Debug().Err(err).Str("remote", name).Msg("skipping remote url")
	}

	return nil, false
}

// ResolveIdentity builds the repository identity from the origin and upstream
// remotes. The repository name is taken from upstream.
func ResolveIdentity(remotes []repository.Remote) (repository.Identity, error) {
	origin, ok := findRemote(remotes, OriginRemote)
	if !ok {
		return repository.Identity{}, errcodes.ErrMissingOrigin
	}

	upstream, ok := findRemote(remotes, UpstreamRemote)
	if !ok {
		return repository.Identity{}, errcodes.ErrMissingUpstream
	}

	return repository.Identity{
		OriginOwner:   origin.Owner,
		UpstreamOwner: upstream.Owner,
		Name:          upstream.Name,
	}, nil
}
