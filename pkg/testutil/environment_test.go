package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/hearth/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestEnvironment(t *testing.T) {
	for _, envType := range []EnvType{EnvMemoryOnly, EnvIsolated} {
		env := NewTestEnvironment(t, envType)

		assert.Equal(t, filepath.Join(env.HomeDir, ".hearth"), env.HearthHome)
		assert.Equal(t, env.HomeDir, env.Paths.HomeDir())
		assert.Equal(t, env.HearthHome, env.Paths.HearthHome())
		assert.Equal(t, env.HomeDir, os.Getenv("HOME"))
		AssertExists(t, env.FS, env.HomeDir)
	}
}

func TestWithSource(t *testing.T) {
	env := NewTestEnvironment(t, EnvMemoryOnly)

	dir := env.WithSource("alice_dots", FileTree{
		".bashrc": "export A=1",
		".config": FileTree{"app.conf": "x"},
	})

	assert.Equal(t, filepath.Join(env.HearthHome, "alice_dots"), dir)
	AssertFileContent(t, env.FS, filepath.Join(dir, ".bashrc"), "export A=1")
	AssertFileContent(t, env.FS, filepath.Join(dir, ".config", "app.conf"), "x")
}

func TestFakeFetcher(t *testing.T) {
	env := NewTestEnvironment(t, EnvMemoryOnly)
	fetcher := NewFakeFetcher(t, env.FS).
		WithRepo("github.com/alice/dots", FileTree{".vimrc": "set nu"}).
		WithFailure("github.com/bob/broken", nil)

	dir := filepath.Join(env.HearthHome, "alice_dots")
	require.NoError(t, fetcher.Clone(context.Background(), "github.com/alice/dots", dir))
	AssertFileContent(t, env.FS, filepath.Join(dir, ".vimrc"), "set nu")

	err := fetcher.Clone(context.Background(), "github.com/bob/broken", filepath.Join(env.HearthHome, "bob_broken"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrFetch))
	AssertNotExists(t, env.FS, filepath.Join(env.HearthHome, "bob_broken"))

	assert.Len(t, fetcher.Calls(), 2)
}

func TestScriptedPrompter(t *testing.T) {
	p := NewScriptedPrompter(true)

	yes, err := p.Confirm("first?")
	require.NoError(t, err)
	assert.True(t, yes)

	no, err := p.Confirm("second?")
	require.NoError(t, err)
	assert.False(t, no)

	assert.Equal(t, []string{"first?", "second?"}, p.Questions)
}
