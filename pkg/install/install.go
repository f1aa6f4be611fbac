// Package install copies a source's dotfiles into the home directory and
// removes them again when another source takes over.
package install

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/hearth/pkg/backup"
	"github.com/arthur-debert/hearth/pkg/errors"
	"github.com/arthur-debert/hearth/pkg/filesystem"
	"github.com/arthur-debert/hearth/pkg/logging"
	"github.com/arthur-debert/hearth/pkg/paths"
	"github.com/arthur-debert/hearth/pkg/source"
	"github.com/arthur-debert/hearth/pkg/types"
	"github.com/arthur-debert/hearth/pkg/ui/output"
	"github.com/rs/zerolog"
)

// Options configures an Installer
type Options struct {
	FileSystem types.FS
	Paths      paths.Paths
	Resolver   *source.Resolver
	Backup     *backup.Manager
	Reporter   *output.Reporter
}

// Installer performs the file operations of a sync
type Installer struct {
	fs       types.FS
	paths    paths.Paths
	resolver *source.Resolver
	backup   *backup.Manager
	reporter *output.Reporter
	logger   zerolog.Logger
}

// New creates an Installer
func New(opts Options) *Installer {
	reporter := opts.Reporter
	if reporter == nil {
		reporter = output.NewReporter(nil)
	}
	return &Installer{
		fs:       opts.FileSystem,
		paths:    opts.Paths,
		resolver: opts.Resolver,
		backup:   opts.Backup,
		reporter: reporter,
		logger:   logging.GetLogger("install"),
	}
}

// InstallSubDependencies fetches the plugins listed in the source's bundle
// manifest, one remote link per line, into sibling directories of the
// manifest. Blank lines and lines starting with "#" are skipped, as are
// links a directory name cannot be derived from. A missing manifest means
// there is nothing to do. Fetched plugins are not searched for manifests.
func (i *Installer) InstallSubDependencies(ctx context.Context, srcDir string) ([]source.Source, error) {
	manifest := i.paths.ManifestPath(srcDir)
	data, err := i.fs.ReadFile(manifest)
	if err != nil {
		if os.IsNotExist(err) {
			i.logger.Debug().Str("manifest", manifest).Msg("No plugin manifest")
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrInternal, "cannot read %s", manifest).
			WithDetail("path", manifest)
	}

	bundleDir := i.paths.BundleDir(srcDir)
	var fetched []source.Source

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		link := strings.TrimSpace(scanner.Text())
		if link == "" || strings.HasPrefix(link, "#") {
			continue
		}

		name, err := source.DirName(link)
		if err != nil {
			i.logger.Warn().Err(err).Str("link", link).Msg("Skipping malformed plugin link")
			continue
		}

		dir := filepath.Join(bundleDir, name)
		if err := i.resolver.Fetch(ctx, link, dir); err != nil {
			return fetched, err
		}
		fetched = append(fetched, source.Source{Identifier: link, Dir: dir})
	}
	if err := scanner.Err(); err != nil {
		return fetched, errors.Wrapf(err, errors.ErrInternal, "cannot read %s", manifest).
			WithDetail("path", manifest)
	}

	i.logger.Info().Int("count", len(fetched)).Str("source", srcDir).Msg("Installed plugin dependencies")
	return fetched, nil
}

// Install copies each entry from srcDir into home. With backupTime set the
// existing home entry is first moved into the backup area. Directories are
// copied as whole trees and never merged into an existing non-empty
// directory; files overwrite their destination. A failing entry is
// recorded and the remaining entries are still installed.
func (i *Installer) Install(srcDir, home string, entries []string, backupTime bool) *Result {
	result := &Result{}

	for _, name := range entries {
		er := EntryResult{
			Name:        name,
			Source:      filepath.Join(srcDir, name),
			Destination: filepath.Join(home, name),
		}

		if backupTime && i.backup != nil {
			moved, err := i.backup.BackupOne(er.Destination, i.backup.Dir())
			if err != nil {
				er.BackupErr = err
				i.reporter.CouldNotBackup(er.Destination, err)
				i.logger.Warn().Err(err).Str("path", er.Destination).Msg("Backup failed")
			}
			er.BackedUp = moved
		}

		i.reporter.Copying(er.Source, er.Destination)
		if err := i.copyEntry(er.Source, er.Destination); err != nil {
			er.Err = errors.Wrapf(err, errors.ErrCopy, "cannot copy %s", er.Source).
				WithDetail("source", er.Source).
				WithDetail("destination", er.Destination)
			i.reporter.CouldNotCopy(er.Source, err)
			i.logger.Error().Err(err).Str("entry", name).Msg("Copy failed")
		}

		result.Entries = append(result.Entries, er)
	}

	i.logger.Info().
		Int("installed", len(result.Succeeded())).
		Int("failed", len(result.Failed())).
		Msg("Install finished")
	return result
}

func (i *Installer) copyEntry(src, dst string) error {
	info, err := i.fs.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return filesystem.CopyTree(i.fs, src, dst)
	}
	return filesystem.CopyFile(i.fs, src, dst)
}

// Uninstall deletes path; directories are removed recursively.
func (i *Installer) Uninstall(path string) error {
	info, err := i.fs.Lstat(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrDelete, "cannot delete %s", path).
			WithDetail("path", path)
	}

	i.reporter.Deleting(path)
	if info.IsDir() {
		err = i.fs.RemoveAll(path)
	} else {
		err = i.fs.Remove(path)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrDelete, "cannot delete %s", path).
			WithDetail("path", path)
	}
	return nil
}

// UninstallAll deletes each entry found under dir. Failures are recorded per
// entry and do not stop the loop.
func (i *Installer) UninstallAll(entries []string, dir string) *Result {
	result := &Result{}

	for _, name := range entries {
		path := filepath.Join(dir, name)
		er := EntryResult{Name: name, Destination: path}
		if err := i.Uninstall(path); err != nil {
			er.Err = err
			i.reporter.CouldNotDelete(path, err)
			i.logger.Warn().Err(err).Str("path", path).Msg("Delete failed")
		}
		result.Entries = append(result.Entries, er)
	}

	i.logger.Info().
		Int("deleted", len(result.Succeeded())).
		Int("failed", len(result.Failed())).
		Str("dir", dir).
		Msg("Uninstall finished")
	return result
}
