// Package backup preserves home directory entries that a first install
// would otherwise overwrite.
package backup

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/hearth/pkg/errors"
	"github.com/arthur-debert/hearth/pkg/filesystem"
	"github.com/arthur-debert/hearth/pkg/logging"
	"github.com/arthur-debert/hearth/pkg/paths"
	"github.com/arthur-debert/hearth/pkg/types"
	"github.com/arthur-debert/hearth/pkg/ui/output"
	"github.com/rs/zerolog"
)

// Manager owns the backup area inside the hearth home
type Manager struct {
	fs       types.FS
	paths    paths.Paths
	reporter *output.Reporter
	logger   zerolog.Logger
}

// NewManager creates a Manager. A nil reporter discards announcements.
func NewManager(fs types.FS, p paths.Paths, reporter *output.Reporter) *Manager {
	if reporter == nil {
		reporter = output.NewReporter(nil)
	}
	return &Manager{
		fs:       fs,
		paths:    p,
		reporter: reporter,
		logger:   logging.GetLogger("backup"),
	}
}

// Dir is the backup area
func (m *Manager) Dir() string {
	return m.paths.BackupDir()
}

// EnsureInitialized creates the hearth home and the backup area as needed.
// It returns true only when this call created the backup area, which marks
// the first run: home entries must be saved before they are overwritten.
func (m *Manager) EnsureInitialized() (bool, error) {
	home := m.paths.HearthHome()
	if err := m.fs.MkdirAll(home, 0755); err != nil {
		return false, errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", home).
			WithDetail("path", home)
	}

	dir := m.Dir()
	if _, err := m.fs.Stat(dir); err == nil {
		m.logger.Debug().Str("dir", dir).Msg("Backup area present")
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, errors.Wrapf(err, errors.ErrDirCreate, "cannot access %s", dir).
			WithDetail("path", dir)
	}

	if err := m.fs.MkdirAll(dir, 0755); err != nil {
		return false, errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", dir).
			WithDetail("path", dir)
	}
	m.logger.Info().Str("dir", dir).Msg("Created backup area, first run")
	return true, nil
}

// BackupOne moves homePath into backupDir under the same name. A missing
// homePath is not an error and reports false.
func (m *Manager) BackupOne(homePath, backupDir string) (bool, error) {
	if _, err := m.fs.Lstat(homePath); err != nil {
		if os.IsNotExist(err) {
			m.logger.Trace().Str("path", homePath).Msg("Nothing to back up")
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrBackup, "cannot access %s", homePath).
			WithDetail("path", homePath)
	}

	dst := filepath.Join(backupDir, filepath.Base(homePath))
	if err := filesystem.Move(m.fs, homePath, dst); err != nil {
		return false, errors.Wrapf(err, errors.ErrBackup, "cannot move %s to %s", homePath, dst).
			WithDetail("path", homePath)
	}

	m.reporter.BackedUp(homePath, dst)
	m.logger.Info().Str("from", homePath).Str("to", dst).Msg("Backed up")
	return true, nil
}
