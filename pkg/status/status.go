// Package status inspects the hearth working directory and reports what is
// currently installed without changing anything.
package status

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/arthur-debert/hearth/pkg/config"
	"github.com/arthur-debert/hearth/pkg/dotfiles"
	"github.com/arthur-debert/hearth/pkg/filesystem"
	"github.com/arthur-debert/hearth/pkg/logging"
	"github.com/arthur-debert/hearth/pkg/paths"
	"github.com/arthur-debert/hearth/pkg/types"
)

// EntryState describes a source entry relative to its home counterpart
type EntryState string

const (
	// StateInstalled means the home entry matches the source
	StateInstalled EntryState = "installed"
	// StateModified means the home file differs from the source
	StateModified EntryState = "modified"
	// StateMissing means the entry is absent from home
	StateMissing EntryState = "missing"
)

// Entry is one dotfile of the active source
type Entry struct {
	Name  string
	State EntryState
}

// Report is a snapshot of the hearth state
type Report struct {
	HearthHome   string
	ConfigPath   string
	// LegacyConfig is set when only a legacy config exists; the next sync
	// imports it.
	LegacyConfig string
	Ignores      []string
	ActiveSource string
	// SourceExists is false when the recorded source directory is gone
	SourceExists bool
	Entries      []Entry
	BackupExists bool
	Backup       []string
}

// HasActiveSource reports whether a source is recorded as active
func (r *Report) HasActiveSource() bool {
	return r.ActiveSource != ""
}

// Inspect builds a Report. A missing config file is reported from the
// legacy config or the defaults and is not created.
func Inspect(fs types.FS, p paths.Paths) (*Report, error) {
	logger := logging.GetLogger("status")

	report := &Report{
		HearthHome: p.HearthHome(),
		ConfigPath: p.ConfigPath(),
	}

	cfg := config.Default()
	switch {
	case filesystem.Exists(fs, p.ConfigPath()):
		loaded, err := config.Load(fs, p.ConfigPath())
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case filesystem.Exists(fs, p.LegacyConfigPath()):
		legacy, err := config.LoadLegacy(p.LegacyConfigPath())
		if err != nil {
			return nil, err
		}
		cfg = legacy
		report.LegacyConfig = p.LegacyConfigPath()
	}
	report.Ignores = cfg.Ignores
	report.ActiveSource = cfg.ActiveSource

	if report.HasActiveSource() {
		names, err := dotfiles.List(fs, cfg.ActiveSource, cfg.Ignores)
		if err != nil {
			logger.Debug().Err(err).Str("source", cfg.ActiveSource).Msg("Active source unavailable")
		} else {
			report.SourceExists = true
			for _, name := range names {
				report.Entries = append(report.Entries, Entry{
					Name:  name,
					State: compare(fs, filepath.Join(cfg.ActiveSource, name), p.HomePath(name)),
				})
			}
		}
	}

	if filesystem.IsDir(fs, p.BackupDir()) {
		report.BackupExists = true
		names, err := dotfiles.List(fs, p.BackupDir(), nil)
		if err != nil {
			return nil, err
		}
		report.Backup = names
	}

	return report, nil
}

func compare(fs types.FS, src, dst string) EntryState {
	dstInfo, err := fs.Stat(dst)
	if err != nil {
		if os.IsNotExist(err) {
			return StateMissing
		}
		return StateModified
	}
	srcInfo, err := fs.Stat(src)
	if err != nil || srcInfo.IsDir() != dstInfo.IsDir() {
		return StateModified
	}
	if srcInfo.IsDir() {
		return StateInstalled
	}

	srcData, err := fs.ReadFile(src)
	if err != nil {
		return StateModified
	}
	dstData, err := fs.ReadFile(dst)
	if err != nil || !bytes.Equal(srcData, dstData) {
		return StateModified
	}
	return StateInstalled
}
