package git

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/hearth/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone_MissingBinary(t *testing.T) {
	c := &Cloner{Binary: filepath.Join(t.TempDir(), "no-such-git")}

	err := c.Clone(context.Background(), "https://example.com/alice/dotfiles", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFetch), "got %v", err)
	assert.Equal(t, "https://example.com/alice/dotfiles", errors.GetErrorDetails(err)["link"])
}

func TestClone_LocalRepository(t *testing.T) {
	if _, err := exec.LookPath(DefaultBinary); err != nil {
		t.Skip("git not available")
	}

	origin := filepath.Join(t.TempDir(), "origin")
	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", args...)
		cmd.Dir = origin
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=hearth", "GIT_AUTHOR_EMAIL=hearth@example.com",
			"GIT_COMMITTER_NAME=hearth", "GIT_COMMITTER_EMAIL=hearth@example.com",
		)
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, string(out))
	}
	require.NoError(t, os.MkdirAll(origin, 0755))
	run("init", "-q")
	require.NoError(t, os.WriteFile(filepath.Join(origin, ".bashrc"), []byte("alias ll='ls -l'"), 0644))
	run("add", ".bashrc")
	run("commit", "-q", "-m", "initial")

	var stderr bytes.Buffer
	c := NewCloner(nil, &stderr)
	dst := filepath.Join(t.TempDir(), "alice_origin")

	require.NoError(t, c.Clone(context.Background(), origin, dst), stderr.String())
	got, err := os.ReadFile(filepath.Join(dst, ".bashrc"))
	require.NoError(t, err)
	assert.Equal(t, "alias ll='ls -l'", string(got))
}
