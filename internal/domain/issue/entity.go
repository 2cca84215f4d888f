package issue

import "context"

type Entity struct {
	Key   string
	Title string
}

// Tracker is an issue tracker the workflow reads titles from and cleans up
// after a merge.
type Tracker interface {
	Get(ctx context.Context, key string) (*Entity, error)
	Delete(ctx context.Context, key string) error
}
