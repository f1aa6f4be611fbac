package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporter_Announcements(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.BackedUp("/home/alice/.bashrc", "/home/alice/.hearth/local_backup/.bashrc")
	r.Copying("/src/.vimrc", "/home/alice/.vimrc")
	r.Deleting("/home/alice/.zshrc")
	r.Cloning("https://example.com/alice/dotfiles", "/home/alice/.hearth/alice_dotfiles")
	r.CouldNotCopy("/src/.vim", errors.New("destination exists"))

	out := buf.String()
	assert.Contains(t, out, "Backed up /home/alice/.bashrc to /home/alice/.hearth/local_backup/.bashrc")
	assert.Contains(t, out, "Copying /src/.vimrc to /home/alice/.vimrc")
	assert.Contains(t, out, "Deleting /home/alice/.zshrc")
	assert.Contains(t, out, "Cloning https://example.com/alice/dotfiles into /home/alice/.hearth/alice_dotfiles")
	assert.Contains(t, out, "Could not copy /src/.vim: destination exists")
}

func TestNewReporter_NilWriterDiscards(t *testing.T) {
	r := NewReporter(nil)
	assert.NotPanics(t, func() {
		r.Deleting("/tmp/.x")
	})
}
