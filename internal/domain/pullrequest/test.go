package pullrequest

import "context"

type MockPullRequestCreator struct {
	ErrorValue error
	Options    *CreateOptions
}

func (m *MockPullRequestCreator) Create(ctx context.Context, o *CreateOptions) (*Entity, error) {
	m.Options = o
	if m.ErrorValue != nil {
		return nil, m.ErrorValue
	}

	return &Entity{Title: o.Title, Source: o.Source, Destination: o.Destination}, nil
}

type MockPullRequestMerger struct {
	ErrorValue error
	Options    *MergeOptions
}

func (m *MockPullRequestMerger) Merge(ctx context.Context, o *MergeOptions) error {
	m.Options = o
	return m.ErrorValue
}
