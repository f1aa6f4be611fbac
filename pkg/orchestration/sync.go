package orchestration

import (
	"context"
	"os"

	"github.com/arthur-debert/hearth/pkg/backup"
	"github.com/arthur-debert/hearth/pkg/config"
	"github.com/arthur-debert/hearth/pkg/dotfiles"
	"github.com/arthur-debert/hearth/pkg/errors"
	"github.com/arthur-debert/hearth/pkg/filesystem"
	"github.com/arthur-debert/hearth/pkg/git"
	"github.com/arthur-debert/hearth/pkg/install"
	"github.com/arthur-debert/hearth/pkg/logging"
	"github.com/arthur-debert/hearth/pkg/paths"
	"github.com/arthur-debert/hearth/pkg/source"
	"github.com/arthur-debert/hearth/pkg/types"
	"github.com/arthur-debert/hearth/pkg/ui/output"
	"github.com/rs/zerolog"
)

type syncer struct {
	fs        types.FS
	paths     paths.Paths
	backup    *backup.Manager
	resolver  *source.Resolver
	installer *install.Installer
	reporter  *output.Reporter
	logger    zerolog.Logger
	result    *Result
}

// Sync installs the source named by opts.Identifier into the home directory.
//
// A returned error is fatal: a missing identifier, an unusable working
// directory or config file, an unreadable source directory, or a clone
// failure under StrictFetch. Per-entry copy and delete failures are
// reported in the Result instead.
func Sync(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.GetLogger("orchestration")
	done := logging.LogOperationStart(logger, "sync")
	defer done()

	if opts.Identifier == "" {
		return nil, errors.New(errors.ErrMissingArgument, "no repo provided")
	}

	p, err := paths.New(opts.HomeDir, opts.HearthHome)
	if err != nil {
		return nil, err
	}
	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}
	reporter := output.NewReporter(opts.Output)
	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = git.NewCloner(opts.Output, os.Stderr)
	}

	backups := backup.NewManager(fs, p, reporter)
	resolver := source.NewResolver(source.Options{
		FileSystem:  fs,
		Paths:       p,
		Fetcher:     fetcher,
		Prompter:    opts.Prompter,
		Reporter:    reporter,
		StrictFetch: opts.StrictFetch,
	})
	s := &syncer{
		fs:       fs,
		paths:    p,
		backup:   backups,
		resolver: resolver,
		installer: install.New(install.Options{
			FileSystem: fs,
			Paths:      p,
			Resolver:   resolver,
			Backup:     backups,
			Reporter:   reporter,
		}),
		reporter: reporter,
		logger:   logger,
		result:   &Result{State: StateInit},
	}

	return s.run(ctx, opts.Identifier)
}

func (s *syncer) transition(to State) {
	s.logger.Debug().
		Str("from", s.result.State.String()).
		Str("to", to.String()).
		Msg("State transition")
	s.result.State = to
}

func (s *syncer) run(ctx context.Context, identifier string) (*Result, error) {
	firstRun, err := s.backup.EnsureInitialized()
	if err != nil {
		return nil, err
	}
	s.result.FirstRun = firstRun

	cfg, err := config.Load(s.fs, s.paths.ConfigPath())
	if err != nil {
		return nil, err
	}
	s.result.Previous = cfg.ActiveSource

	src, err := s.resolver.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}
	s.result.Source = src
	s.transition(StateSourceResolved)

	if cfg.HasActiveSource() {
		s.clearPrevious(cfg)
		s.transition(StatePreviousCleared)
	}

	subdeps, err := s.installer.InstallSubDependencies(ctx, src.Dir)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrFetch) {
			return nil, err
		}
		s.logger.Warn().Err(err).Str("source", src.Dir).Msg("Could not install plugin dependencies")
	}
	s.result.SubDependencies = subdeps
	s.transition(StateSubDepsInstalled)

	entries, err := dotfiles.List(s.fs, src.Dir, cfg.Ignores)
	if err != nil {
		return nil, err
	}
	s.result.Installed = s.installer.Install(src.Dir, s.paths.HomeDir(), entries, firstRun)
	s.transition(StateInstalled)

	if src.Local {
		s.consumeBackup()
		if cfg.HasActiveSource() {
			cfg.ClearActiveSource()
		}
	} else {
		cfg.SetActiveSource(src.Dir)
	}
	if err := config.Save(s.fs, s.paths.ConfigPath(), cfg); err != nil {
		return nil, err
	}
	s.transition(StatePersisted)

	return s.result, nil
}

// clearPrevious removes the previous source's entries from home. A recorded
// source whose directory is gone is skipped.
func (s *syncer) clearPrevious(cfg *config.Config) {
	prev := cfg.ActiveSource
	if !s.paths.IsInHearthHome(prev) {
		s.logger.Warn().Str("source", prev).Str("hearthHome", s.paths.HearthHome()).
			Msg("Previous source is outside the hearth home")
	}
	entries, err := dotfiles.List(s.fs, prev, cfg.Ignores)
	if err != nil {
		s.logger.Warn().Err(err).Str("source", prev).Msg("Previous source unavailable, not clearing its dotfiles")
		return
	}
	s.result.Cleared = s.installer.UninstallAll(entries, s.paths.HomeDir())
}

// consumeBackup removes the backup area once its entries are back in home.
// The next sync recreates it and backs up again.
func (s *syncer) consumeBackup() {
	if err := s.installer.Uninstall(s.backup.Dir()); err != nil {
		s.reporter.CouldNotDelete(s.backup.Dir(), err)
		s.logger.Warn().Err(err).Msg("Could not remove backup area")
		return
	}
	s.result.BackupConsumed = true
}
