package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"yoho/internal/domain/pullrequest"
	"yoho/internal/domain/repository"
	"yoho/internal/errcodes"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const (
	DefaultBaseURL = "https://api.github.com"
	acceptHeader   = "application/vnd.github.v3+json"
)

type GithubCloudClient struct {
	Repository repository.Identity
	Token      string
	BaseURL    string

	rc *resty.Client
}

type ClientOptions struct {
	Repository repository.Identity
	Token      string
	BaseURL    string
}

func New(o *ClientOptions) *GithubCloudClient {
	base := o.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	rc := resty.New().
		SetBaseURL(strings.TrimSuffix(base, "/")).
		SetAuthToken(o.Token).
		SetHeader("Accept", acceptHeader).
		SetError(&githubError{}).
		SetLogger(log.WithField("client", "github"))

	return &GithubCloudClient{
		Repository: o.Repository,
		Token:      o.Token,
		BaseURL:    base,
		rc:         rc,
	}
}

func (c *GithubCloudClient) request(ctx context.Context) *resty.Request {
	return c.rc.R().SetContext(ctx)
}

func checkResponse(r *resty.Response, err error) (*resty.Response, error) {
	if err != nil {
		if r != nil && r.Request != nil {
			return nil, errcodes.Cancelled(r.Request.Context(), err)
		}
		return nil, err
	}
	if r.IsError() {
		apiErr := &APIError{StatusCode: r.StatusCode(), Message: http.StatusText(r.StatusCode())}
		if e, ok := r.Error().(*githubError); ok && e.Message != "" {
			apiErr.Message = e.Message
			apiErr.DocumentationURL = e.DocumentationURL
		}

		return nil, apiErr
	}

	return r, nil
}

func parseMergeability(v gjson.Result) pullrequest.Mergeability {
	switch v.Type {
	case gjson.True:
		return pullrequest.Mergeable
	case gjson.False:
		return pullrequest.Conflicting
	default:
		return pullrequest.MergeabilityUnknown
	}
}

func parsePR(value gjson.Result) *pullrequest.Entity {
	return &pullrequest.Entity{
		Number:      int(value.Get("number").Int()),
		Title:       value.Get("title").String(),
		URL:         value.Get("html_url").String(),
		State:       pullrequest.State(value.Get("state").String()),
		Source:      value.Get("head.ref").String(),
		Destination: value.Get("base.ref").String(),
		HeadSHA:     value.Get("head.sha").String(),
		Mergeable:   parseMergeability(value.Get("mergeable")),
	}
}

func (c *GithubCloudClient) Create(ctx context.Context, o *pullrequest.CreateOptions) (*pullrequest.Entity, error) {
	r, err := checkResponse(c.request(ctx).
		SetBody(ghPROptions{
			Title:               o.Title,
			Head:                o.Source,
			Base:                o.Destination,
			Body:                o.Body,
			MaintainerCanModify: true,
		}).
		Post(fmt.Sprintf("/repos/%s/pulls", c.Repository.Upstream())))
	if err != nil {
		return nil, err
	}

	return parsePR(gjson.ParseBytes(r.Body())), nil
}

// FindByBranch returns the open pull request whose head is branch on the
// origin fork.
func (c *GithubCloudClient) FindByBranch(ctx context.Context, branch string) (*pullrequest.Entity, error) {
	r, err := checkResponse(c.request(ctx).
		SetQueryParams(map[string]string{
			"head":  c.Repository.Head(branch),
			"state": string(pullrequest.StateOpen),
		}).
		Get(fmt.Sprintf("/repos/%s/pulls", c.Repository.Upstream())))
	if err != nil {
		return nil, err
	}

	first := gjson.GetBytes(r.Body(), "0")
	if !first.Exists() {
		return nil, errors.Wrapf(errcodes.ErrPullRequestNotFound, "for branch %s", branch)
	}

	return parsePR(first), nil
}

func (c *GithubCloudClient) Get(ctx context.Context, number int) (*pullrequest.Entity, error) {
	r, err := checkResponse(c.request(ctx).
		Get(fmt.Sprintf("/repos/%s/pulls/%d", c.Repository.Upstream(), number)))
	if err != nil {
		return nil, err
	}

	return parsePR(gjson.ParseBytes(r.Body())), nil
}

func (c *GithubCloudClient) CombinedStatus(ctx context.Context, sha string) (*pullrequest.StatusCheckSet, error) {
	r, err := checkResponse(c.request(ctx).
		Get(fmt.Sprintf("/repos/%s/commits/%s/status", c.Repository.Upstream(), sha)))
	if err != nil {
		return nil, err
	}

	set := &pullrequest.StatusCheckSet{SHA: sha}
	gjson.GetBytes(r.Body(), "statuses").ForEach(func(_, value gjson.Result) bool {
		set.Checks = append(set.Checks, pullrequest.StatusCheck{
			Context: value.Get("context").String(),
			State:   pullrequest.ParseCheckState(value.Get("state").String()),
		})

		return true
	})

	return set, nil
}

func (c *GithubCloudClient) Merge(ctx context.Context, o *pullrequest.MergeOptions) error {
	r, err := checkResponse(c.request(ctx).
		SetBody(ghMergeOptions{
			CommitTitle: o.CommitTitle,
			MergeMethod: string(o.Method),
			SHA:         o.SHA,
		}).
		Put(fmt.Sprintf("/repos/%s/pulls/%d/merge", c.Repository.Upstream(), o.Number)))
	if err != nil {
		return err
	}

	log.WithField("sha", gjson.GetBytes(r.Body(), "sha").String()).Debug("pull request merged")

	return nil
}

// DeleteBranch removes branch from the origin fork.
func (c *GithubCloudClient) DeleteBranch(ctx context.Context, branch string) error {
	_, err := checkResponse(c.request(ctx).
		Delete(fmt.Sprintf("/repos/%s/git/refs/heads/%s", c.Repository.Origin(), branch)))

	return err
}
