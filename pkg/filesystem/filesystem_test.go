package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := NewOS()
	assert.NotNil(t, fs)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, ".bashrc")
	testContent := []byte("export EDITOR=vim")

	require.NoError(t, fs.WriteFile(testFile, testContent, 0644))

	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, ".bashrc", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	require.NoError(t, fs.MkdirAll(filepath.Join(tmpDir, ".vim", "colors"), 0755))

	entries, err := fs.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	renamed := filepath.Join(tmpDir, ".bashrc.bak")
	require.NoError(t, fs.Rename(testFile, renamed))
	_, err = fs.Stat(testFile)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, fs.Remove(renamed))
	require.NoError(t, fs.RemoveAll(filepath.Join(tmpDir, ".vim")))
	entries, err = fs.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNewMemory(t *testing.T) {
	fs := NewMemory()

	require.NoError(t, fs.MkdirAll("/home/alice", 0755))
	require.NoError(t, fs.WriteFile("/home/alice/.zshrc", []byte("setopt autocd"), 0644))

	entries, err := fs.ReadDir("/home/alice")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".zshrc", entries[0].Name())
	assert.False(t, entries[0].IsDir())

	_, err = fs.ReadFile("/home/alice")
	assert.Error(t, err, "reading a directory should fail")

	info, err := fs.Lstat("/home/alice/.zshrc")
	require.NoError(t, err)
	assert.Equal(t, ".zshrc", info.Name())
}

func TestMemorySymlinkUnsupported(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.WriteFile("/target", []byte("x"), 0644))

	assert.Error(t, fs.Symlink("/target", "/link"))
	_, err := fs.Readlink("/link")
	assert.Error(t, err)
}
