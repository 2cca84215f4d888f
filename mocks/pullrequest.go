package mocks

import (
	"context"
	"sync"

	"yoho/internal/domain/pullrequest"
)

// PullRequestRepository replays scripted snapshots. Get and CombinedStatus
// return the next snapshot on every call and repeat the last one when the
// script runs out.
type PullRequestRepository struct {
	mu sync.Mutex

	Found     *pullrequest.Entity
	Snapshots []*pullrequest.Entity
	Statuses  []*pullrequest.StatusCheckSet

	CreateErr error
	FindErr   error
	GetErr    error
	StatusErr error
	MergeErr  error
	DeleteErr error

	Created   *pullrequest.CreateOptions
	Merged    *pullrequest.MergeOptions
	Deleted   []string
	GetCalls  int
	StatCalls int
}

func (m *PullRequestRepository) Create(ctx context.Context, o *pullrequest.CreateOptions) (*pullrequest.Entity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Created = o
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}

	return &pullrequest.Entity{
		Number:      1,
		Title:       o.Title,
		Source:      o.Source,
		Destination: o.Destination,
		URL:         "https://github.com/org/proj/pull/1",
	}, nil
}

func (m *PullRequestRepository) FindByBranch(ctx context.Context, branch string) (*pullrequest.Entity, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}

	return m.Found, nil
}

func (m *PullRequestRepository) Get(ctx context.Context, number int) (*pullrequest.Entity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.GetCalls
	m.GetCalls++
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if i >= len(m.Snapshots) {
		i = len(m.Snapshots) - 1
	}

	return m.Snapshots[i], nil
}

func (m *PullRequestRepository) CombinedStatus(ctx context.Context, sha string) (*pullrequest.StatusCheckSet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.StatCalls
	m.StatCalls++
	if m.StatusErr != nil {
		return nil, m.StatusErr
	}
	if i >= len(m.Statuses) {
		i = len(m.Statuses) - 1
	}

	return m.Statuses[i], nil
}

func (m *PullRequestRepository) Merge(ctx context.Context, o *pullrequest.MergeOptions) error {
	m.Merged = o
	return m.MergeErr
}

func (m *PullRequestRepository) DeleteBranch(ctx context.Context, branch string) error {
	m.Deleted = append(m.Deleted, branch)
	return m.DeleteErr
}
