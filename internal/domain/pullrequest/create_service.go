package pullrequest

import (
	"context"
	"strings"

	"yoho/internal/errcodes"

	"github.com/pkg/errors"
)

type Creator interface {
	Create(ctx context.Context, o *CreateOptions) (*Entity, error)
}

type Merger interface {
	Merge(ctx context.Context, o *MergeOptions) error
}

type CreateService struct {
	creator Creator
}

// Create validates the options before handing them to the remote.
func (cs *CreateService) Create(ctx context.Context, o *CreateOptions) (*Entity, error) {
	o.Title = strings.TrimSpace(o.Title)
	if o.Title == "" {
		return nil, errcodes.ErrMissingTitle
	}
	if o.Source == "" || o.Destination == "" {
		return nil, errcodes.ErrMissingBranch
	}

	pr, err := cs.creator.Create(ctx, o)
	if errors.Is(err, errcodes.ErrCancelled) {
		return nil, err
	}
	if err != nil {
		return nil, errors.Wrapf(errcodes.ErrCannotCreatePR, "%s -> %s: %v", o.Source, o.Destination, err)
	}

	return pr, nil
}

type MergeService struct {
	merger Merger
}

// Merge squash-merges pr using its own title as commit title unless the
// options say otherwise.
func (ms *MergeService) Merge(ctx context.Context, pr *Entity, o *MergeOptions) error {
	if o == nil {
		o = &MergeOptions{}
	}
	o.Number = pr.Number
	if o.CommitTitle == "" {
		o.CommitTitle = pr.Title
	}
	if o.Method == "" {
		o.Method = MergeSquash
	}
	if o.SHA == "" {
		o.SHA = pr.HeadSHA
	}

	return errors.Wrapf(ms.merger.Merge(ctx, o), "merge %s", pr.URL)
}

func NewCreateService(c Creator) *CreateService {
	return &CreateService{c}
}

func NewMergeService(m Merger) *MergeService {
	return &MergeService{m}
}
