package github

import "fmt"

type ghPROptions struct {
	Title               string `json:"title,omitempty"`
	Head                string `json:"head,omitempty"`
	Base                string `json:"base,omitempty"`
	Body                string `json:"body,omitempty"`
	MaintainerCanModify bool   `json:"maintainer_can_modify,omitempty"`
}

type ghMergeOptions struct {
	CommitTitle string `json:"commit_title,omitempty"`
	MergeMethod string `json:"merge_method,omitempty"`
	SHA         string `json:"sha,omitempty"`
}

type githubError struct {
	Message          string `json:"message"`
	DocumentationURL string `json:"documentation_url"`
}

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode       int
	Message          string
	DocumentationURL string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github responded %d: %s", e.StatusCode, e.Message)
}
