package mocks

import "context"

type Git struct {
	BranchValue string
	TitleValue  string
	ErrorValue  error
	PushErr     error
	Pushed      []string
}

func (g *Git) GetCurrentBranch() (string, error) {
	return g.BranchValue, g.ErrorValue
}

func (g *Git) GetCurrentCommitTitle() (string, error) {
	return g.TitleValue, g.ErrorValue
}

func (g *Git) Push(ctx context.Context, remote, branch string) error {
	g.Pushed = append(g.Pushed, remote+"/"+branch)
	return g.PushErr
}
