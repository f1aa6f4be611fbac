// Package paths provides centralized path handling for hearth.
// Every location hearth reads or writes is derived from two roots: the
// user's home directory (the install destination) and the hearth working
// directory that holds fetched sources, the backup area and the config.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/hearth/pkg/errors"
)

// Environment variable names
const (
	// EnvHearthHome overrides the hearth working directory
	EnvHearthHome = "HEARTH_HOME"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed layout. These names are part of the on-disk contract shared with
// earlier releases and are not user-configurable.
const (
	// HearthDirName is the working directory name under the home directory
	HearthDirName = ".hearth"

	// BackupDirName holds home dotfiles saved on the first run
	BackupDirName = "local_backup"

	// ConfigFileName is the configuration file inside the working directory
	ConfigFileName = "hearth.toml"

	// LegacyConfigFileName is the INI configuration written by earlier releases
	LegacyConfigFileName = "hearth.cfg"

	// BundleDir is where plugin sub-dependencies live inside a source
	BundleDir = ".vim/bundle"

	// ManifestFileName lists plugin sub-dependencies, one link per line
	ManifestFileName = "packages"
)

// Paths provides centralized path management for hearth
type Paths interface {
	HomeDir() string
	HearthHome() string
	BackupDir() string
	ConfigPath() string
	LegacyConfigPath() string
	SourceDir(name string) string
	HomePath(entry string) string
	BundleDir(sourceDir string) string
	ManifestPath(sourceDir string) string
	IsInHearthHome(path string) bool
}

type paths struct {
	homeDir    string
	hearthHome string
}

// New creates a Paths instance. An empty homeDir is resolved from the
// environment; an empty hearthHome comes from HEARTH_HOME or defaults to
// ~/.hearth.
func New(homeDir, hearthHome string) (Paths, error) {
	if homeDir == "" {
		var err error
		homeDir, err = GetHomeDirectory()
		if err != nil {
			return nil, err
		}
	}
	if hearthHome == "" {
		hearthHome = os.Getenv(EnvHearthHome)
	}
	if hearthHome == "" {
		hearthHome = filepath.Join(homeDir, HearthDirName)
	}

	absHome, err := filepath.Abs(ExpandHome(homeDir))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for home directory")
	}
	absHearth, err := filepath.Abs(ExpandHome(hearthHome))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for hearth home")
	}

	return &paths{homeDir: absHome, hearthHome: absHearth}, nil
}

func (p *paths) HomeDir() string {
	return p.homeDir
}

func (p *paths) HearthHome() string {
	return p.hearthHome
}

func (p *paths) BackupDir() string {
	return filepath.Join(p.hearthHome, BackupDirName)
}

func (p *paths) ConfigPath() string {
	return filepath.Join(p.hearthHome, ConfigFileName)
}

func (p *paths) LegacyConfigPath() string {
	return filepath.Join(p.hearthHome, LegacyConfigFileName)
}

// SourceDir returns the checkout directory for a resolved source name such
// as "alice_dotfiles".
func (p *paths) SourceDir(name string) string {
	return filepath.Join(p.hearthHome, name)
}

// HomePath returns where a dotfile entry is installed.
func (p *paths) HomePath(entry string) string {
	return filepath.Join(p.homeDir, entry)
}

func (p *paths) BundleDir(sourceDir string) string {
	return filepath.Join(sourceDir, BundleDir)
}

func (p *paths) ManifestPath(sourceDir string) string {
	return filepath.Join(sourceDir, BundleDir, ManifestFileName)
}

// IsInHearthHome reports whether path lies strictly below the working directory.
func (p *paths) IsInHearthHome(path string) bool {
	rel, err := filepath.Rel(p.hearthHome, filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// GetHomeDirectory returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME environment variable.
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	if err == nil {
		return "", errors.New(errors.ErrNotFound, "failed to get home directory: HOME is empty")
	}
	return "", errors.Wrapf(err, errors.ErrNotFound, "failed to get home directory")
}

// ExpandHome expands a leading ~ to the home directory. The path is
// returned unchanged when the home directory cannot be determined.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	homeDir, err := GetHomeDirectory()
	if err != nil {
		return path
	}
	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
