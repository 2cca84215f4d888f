// Package fs is the slice of the filesystem config loading and repository
// lookup need, so both can be tested without touching disk.
package fs

import "os"

type Filesystem interface {
	Stat(string) (os.FileInfo, error)
	ReadFile(string) ([]byte, error)
	Getwd() (string, error)
}

type OS struct{}

func (OS) ReadFile(name string) ([]byte, error)  { return os.ReadFile(name) }
func (OS) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }
func (OS) Getwd() (string, error)                { return os.Getwd() }
