package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/hearth/pkg/filesystem"
	"github.com/arthur-debert/hearth/pkg/paths"
	"github.com/arthur-debert/hearth/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a home directory, a hearth home and the
// filesystem they live on.
type TestEnvironment struct {
	HomeDir    string
	HearthHome string

	FS    types.FS
	Paths paths.Paths

	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		t:    t,
		Type: envType,
	}

	switch envType {
	case EnvMemoryOnly:
		env.HomeDir = "/virtual/home"
		env.FS = filesystem.NewMemory()
	case EnvIsolated:
		env.HomeDir = filepath.Join(t.TempDir(), "home")
		env.FS = filesystem.NewOS()
	}
	env.HearthHome = filepath.Join(env.HomeDir, paths.HearthDirName)

	if err := env.FS.MkdirAll(env.HomeDir, 0755); err != nil {
		t.Fatalf("Failed to create home directory: %v", err)
	}

	t.Setenv(paths.EnvHome, env.HomeDir)
	t.Setenv(paths.EnvHearthHome, env.HearthHome)

	p, err := paths.New(env.HomeDir, env.HearthHome)
	if err != nil {
		t.Fatalf("Failed to create paths: %v", err)
	}
	env.Paths = p

	return env
}

// WithHomeFiles creates tree directly under the home directory
func (env *TestEnvironment) WithHomeFiles(tree FileTree) {
	env.t.Helper()
	CreateFileTree(env.t, env.FS, env.HomeDir, tree)
}

// WithSource creates tree as the content of the source directory name
// inside the hearth home and returns that directory.
func (env *TestEnvironment) WithSource(name string, tree FileTree) string {
	env.t.Helper()
	dir := env.Paths.SourceDir(name)
	if err := env.FS.MkdirAll(dir, 0755); err != nil {
		env.t.Fatalf("Failed to create source %s: %v", dir, err)
	}
	CreateFileTree(env.t, env.FS, dir, tree)
	return dir
}

// FileTree represents a directory structure for testing. String values are
// file contents; FileTree values are subdirectories.
type FileTree map[string]interface{}

// CreateFileTree recursively creates a file tree under basePath
func CreateFileTree(t *testing.T, fs types.FS, basePath string, tree FileTree) {
	t.Helper()

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := fs.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
				t.Fatalf("Failed to create directory for %s: %v", fullPath, err)
			}
			if err := fs.WriteFile(fullPath, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			if err := fs.MkdirAll(fullPath, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", fullPath, err)
			}
			CreateFileTree(t, fs, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}
