// Package repository describes which remote repositories a local checkout
// talks to.
package repository

import "fmt"

// Identity is resolved once from the origin and upstream remotes and then
// handed to whoever needs it.
type Identity struct {
	OriginOwner   string
	UpstreamOwner string
	Name          string
}

// Head qualifies branch with the fork owner, the form pull request APIs expect
// for cross-repository heads.
func (i Identity) Head(branch string) string {
	return fmt.Sprintf("%s:%s", i.OriginOwner, branch)
}

func (i Identity) Upstream() string {
	return i.UpstreamOwner + "/" + i.Name
}

func (i Identity) Origin() string {
	return i.OriginOwner + "/" + i.Name
}

type Remote struct {
	Name string
	URLs []string
}
