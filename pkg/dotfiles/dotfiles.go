// Package dotfiles enumerates the dotfile entries a source provides.
package dotfiles

import (
	"os"
	"strings"

	"github.com/arthur-debert/hearth/pkg/errors"
	"github.com/arthur-debert/hearth/pkg/logging"
	"github.com/arthur-debert/hearth/pkg/types"
)

// List returns the names of the immediate children of dir that start with
// "." and are not listed in ignores. Matching is exact on the name.
func List(fsys types.FS, dir string, ignores []string) ([]string, error) {
	logger := logging.GetLogger("dotfiles")
	logger.Trace().Str("dir", dir).Strs("ignores", ignores).Msg("Listing dotfiles")

	info, err := fsys.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrNotFound, "source directory does not exist").
				WithDetail("path", dir)
		}
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot access source directory").
			WithDetail("path", dir)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrInvalidInput, "source is not a directory").
			WithDetail("path", dir)
	}

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot read source directory").
			WithDetail("path", dir)
	}

	ignored := make(map[string]struct{}, len(ignores))
	for _, name := range ignores {
		ignored[name] = struct{}{}
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, ".") {
			continue
		}
		if _, skip := ignored[name]; skip {
			logger.Trace().Str("name", name).Msg("Skipping ignored entry")
			continue
		}
		names = append(names, name)
	}

	logger.Debug().Str("dir", dir).Int("count", len(names)).Msg("Found dotfiles")
	return names, nil
}
