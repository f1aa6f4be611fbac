// Package git runs the git executable on behalf of hearth.
package git

import (
	"context"
	"io"
	"os/exec"

	"github.com/arthur-debert/hearth/pkg/errors"
	"github.com/arthur-debert/hearth/pkg/logging"
)

// DefaultBinary is looked up on PATH.
const DefaultBinary = "git"

// Cloner implements types.Fetcher with `git clone`.
type Cloner struct {
	// Binary is the git executable; DefaultBinary when empty.
	Binary string
	// Stdout and Stderr receive the subprocess output. Nil discards it.
	Stdout io.Writer
	Stderr io.Writer
}

// NewCloner returns a Cloner that streams git's output to stdout and stderr.
func NewCloner(stdout, stderr io.Writer) *Cloner {
	return &Cloner{Binary: DefaultBinary, Stdout: stdout, Stderr: stderr}
}

// Clone runs `git clone link dir` and waits for it to exit. There is no
// timeout; cancelling ctx kills the subprocess.
func (c *Cloner) Clone(ctx context.Context, link, dir string) error {
	binary := c.Binary
	if binary == "" {
		binary = DefaultBinary
	}
	args := []string{"clone", link, dir}
	logging.LogCommand(binary, args)

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, errors.ErrFetch, "git clone %s failed", link).
			WithDetail("link", link).
			WithDetail("dir", dir)
	}
	return nil
}
