package dotfiles

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/hearth/pkg/errors"
	"github.com/arthur-debert/hearth/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	dir := env.WithSource("alice_dots", testutil.FileTree{
		".bashrc":    "",
		".vimrc":     "",
		".git":       testutil.FileTree{"HEAD": "ref"},
		".gitignore": "",
		".config":    testutil.FileTree{"app": testutil.FileTree{"conf": ""}},
		"README.md":  "",
		"scripts":    testutil.FileTree{".hidden": ""},
	})

	names, err := List(env.FS, dir, []string{".git", ".gitignore"})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{".bashrc", ".vimrc", ".config"}, names)
}

func TestList_NoIgnores(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	dir := env.WithSource("alice_dots", testutil.FileTree{".git": testutil.FileTree{}, ".zshrc": ""})

	names, err := List(env.FS, dir, nil)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{".git", ".zshrc"}, names)
}

func TestList_IgnoreIsExactMatch(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	dir := env.WithSource("alice_dots", testutil.FileTree{".git": testutil.FileTree{}, ".gitconfig": ""})

	names, err := List(env.FS, dir, []string{".git"})
	require.NoError(t, err)

	assert.Equal(t, []string{".gitconfig"}, names)
}

func TestList_Empty(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	dir := env.WithSource("alice_dots", testutil.FileTree{"notes.txt": ""})

	names, err := List(env.FS, dir, nil)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestList_MissingDirectory(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	_, err := List(env.FS, filepath.Join(env.HearthHome, "missing"), nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestList_NotADirectory(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WithHomeFiles(testutil.FileTree{".bashrc": ""})

	_, err := List(env.FS, filepath.Join(env.HomeDir, ".bashrc"), nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
