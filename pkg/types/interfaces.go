package types

import (
	"context"
	"io/fs"
)

// FS is the filesystem interface required for hearth operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error

	// Optional operations - implementations should check for support
	// For testing, Lstat can fall back to Stat
	Lstat(name string) (fs.FileInfo, error)
}

// Fetcher retrieves a remote source into a local directory
type Fetcher interface {
	Clone(ctx context.Context, link, dir string) error
}

// Prompter asks the invoking user a yes/no question
type Prompter interface {
	Confirm(question string) (bool, error)
}
