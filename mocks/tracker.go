package mocks

import (
	"context"

	"yoho/internal/domain/issue"
)

type Tracker struct {
	TitleValue string
	GetErr     error
	DeleteErr  error
	Fetched    []string
	Deleted    []string
}

func (t *Tracker) Get(ctx context.Context, key string) (*issue.Entity, error) {
	t.Fetched = append(t.Fetched, key)
	if t.GetErr != nil {
		return nil, t.GetErr
	}

	return &issue.Entity{Key: key, Title: t.TitleValue}, nil
}

func (t *Tracker) Delete(ctx context.Context, key string) error {
	t.Deleted = append(t.Deleted, key)
	return t.DeleteErr
}
