// Package source resolves the identifier given on the command line into a
// local directory and fetches remote sources into it.
package source

import (
	"context"
	"os"
	"strings"

	"github.com/arthur-debert/hearth/pkg/errors"
	"github.com/arthur-debert/hearth/pkg/filesystem"
	"github.com/arthur-debert/hearth/pkg/git"
	"github.com/arthur-debert/hearth/pkg/logging"
	"github.com/arthur-debert/hearth/pkg/paths"
	"github.com/arthur-debert/hearth/pkg/types"
	"github.com/arthur-debert/hearth/pkg/ui/confirmations"
	"github.com/arthur-debert/hearth/pkg/ui/output"
	"github.com/rs/zerolog"
)

// LocalIdentifier selects the backup area as the source.
const LocalIdentifier = "local"

const gitSuffix = ".git"

// Source is a resolved dotfile source.
type Source struct {
	// Identifier is what the user passed: "local" or a remote link.
	Identifier string
	// Dir is the local directory holding the source's dotfiles.
	Dir string
	// Local is true when Dir is the backup area.
	Local bool
}

// DirName derives the checkout directory name "<owner>_<name>" from the last
// two segments of a remote link. Links with a scheme split on "/" only, so a
// host port stays part of the host. Scheme-less links also split on ":" so
// that scp-like links (git@host:owner/name.git) resolve like their URL form.
// A literal ".git" suffix is removed from the name.
func DirName(link string) (string, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(link), "/")
	hasScheme := strings.Contains(trimmed, "://")
	segments := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == '/' || (r == ':' && !hasScheme)
	})
	if len(segments) < 2 {
		return "", errors.Newf(errors.ErrInvalidInput, "cannot derive owner and name from %q", link).
			WithDetail("link", link)
	}

	owner := segments[len(segments)-2]
	name := strings.TrimSuffix(segments[len(segments)-1], gitSuffix)
	if name == "" {
		return "", errors.Newf(errors.ErrInvalidInput, "empty repository name in %q", link).
			WithDetail("link", link)
	}
	return owner + "_" + name, nil
}

// Options configures a Resolver.
type Options struct {
	FileSystem types.FS
	Paths      paths.Paths
	Fetcher    types.Fetcher
	Prompter   types.Prompter
	Reporter   *output.Reporter
	// StrictFetch makes a failed clone fatal instead of leaving the
	// directory as the clone left it.
	StrictFetch bool
}

// Resolver turns identifiers into Sources.
type Resolver struct {
	fs       types.FS
	paths    paths.Paths
	fetcher  types.Fetcher
	prompter types.Prompter
	reporter *output.Reporter
	strict   bool
	logger   zerolog.Logger
}

// NewResolver creates a Resolver. A nil FileSystem defaults to the OS and a
// nil Fetcher to git.
func NewResolver(opts Options) *Resolver {
	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}
	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = git.NewCloner(os.Stdout, os.Stderr)
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = output.NewReporter(nil)
	}
	return &Resolver{
		fs:       fs,
		paths:    opts.Paths,
		fetcher:  fetcher,
		prompter: opts.Prompter,
		reporter: reporter,
		strict:   opts.StrictFetch,
		logger:   logging.GetLogger("source"),
	}
}

// Resolve maps identifier to its local directory. "local" is the backup
// area and needs no network access; anything else is a remote link that is
// fetched into <hearth home>/<owner>_<name>.
func (r *Resolver) Resolve(ctx context.Context, identifier string) (Source, error) {
	if identifier == "" {
		return Source{}, errors.New(errors.ErrMissingArgument, "no repo provided")
	}

	if identifier == LocalIdentifier {
		src := Source{Identifier: identifier, Dir: r.paths.BackupDir(), Local: true}
		r.logger.Debug().Str("dir", src.Dir).Msg("Resolved local source")
		return src, nil
	}

	name, err := DirName(identifier)
	if err != nil {
		return Source{}, err
	}
	src := Source{Identifier: identifier, Dir: r.paths.SourceDir(name)}
	r.logger.Debug().Str("link", identifier).Str("dir", src.Dir).Msg("Resolved remote source")

	if err := r.Fetch(ctx, identifier, src.Dir); err != nil {
		return Source{}, err
	}
	return src, nil
}

// Fetch brings link into dir. An existing dir is only replaced when the user
// agrees to redownload; otherwise its content is kept as is.
//
// Clone failures are announced and logged, and dir is left as the clone left
// it, so the problem surfaces later as missing files. With StrictFetch the
// failure is returned instead.
func (r *Resolver) Fetch(ctx context.Context, link, dir string) error {
	if _, err := r.fs.Stat(dir); err == nil {
		redownload, err := r.confirmRedownload()
		if err != nil {
			return err
		}
		if !redownload {
			r.reporter.Keeping(dir)
			r.logger.Info().Str("dir", dir).Msg("Keeping existing checkout")
			return nil
		}
		r.reporter.Deleting(dir)
		if err := r.fs.RemoveAll(dir); err != nil {
			return r.fetchFailed(link, errors.Wrapf(err, errors.ErrDelete, "cannot remove %s", dir))
		}
	} else if !os.IsNotExist(err) {
		return r.fetchFailed(link, errors.Wrapf(err, errors.ErrFetch, "cannot stat %s", dir))
	}

	r.reporter.Cloning(link, dir)
	if err := r.fetcher.Clone(ctx, link, dir); err != nil {
		return r.fetchFailed(link, err)
	}
	return nil
}

func (r *Resolver) confirmRedownload() (bool, error) {
	if r.prompter == nil {
		return false, nil
	}
	return r.prompter.Confirm(confirmations.RedownloadQuestion)
}

func (r *Resolver) fetchFailed(link string, err error) error {
	r.reporter.FetchFailed(link, err)
	if r.strict {
		if errors.IsErrorCode(err, errors.ErrFetch) {
			return err
		}
		return errors.Wrapf(err, errors.ErrFetch, "cannot fetch %s", link)
	}
	r.logger.Warn().Err(err).Str("link", link).Msg("Fetch failed, continuing with directory as left")
	return nil
}
