// Package orchestration runs a sync: it resolves the requested source,
// clears what the previous source installed, installs the new source and
// records it as active.
package orchestration

import (
	"io"

	"github.com/arthur-debert/hearth/pkg/install"
	"github.com/arthur-debert/hearth/pkg/source"
	"github.com/arthur-debert/hearth/pkg/types"
)

// State is a step of a sync
type State int

const (
	StateInit State = iota
	StateSourceResolved
	StatePreviousCleared
	StateSubDepsInstalled
	StateInstalled
	StatePersisted
)

var stateNames = map[State]string{
	StateInit:             "INIT",
	StateSourceResolved:   "SOURCE_RESOLVED",
	StatePreviousCleared:  "PREVIOUS_CLEARED",
	StateSubDepsInstalled: "SUBDEPS_INSTALLED",
	StateInstalled:        "INSTALLED",
	StatePersisted:        "STATE_PERSISTED",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Options contains the inputs of a sync
type Options struct {
	// Identifier is "local" or a remote link
	Identifier string

	// HomeDir is the install destination (optional, defaults to $HOME)
	HomeDir string

	// HearthHome is the working directory (optional, defaults to
	// $HEARTH_HOME or ~/.hearth)
	HearthHome string

	// FileSystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS

	// Fetcher clones remote sources
	Fetcher types.Fetcher

	// Prompter asks whether to redownload an existing checkout
	Prompter types.Prompter

	// Output receives the announcements (optional, discarded when nil)
	Output io.Writer

	// StrictFetch makes clone failures fatal
	StrictFetch bool
}

// Result describes what a sync did
type Result struct {
	// State is the last state reached
	State State

	// Source is the resolved source
	Source source.Source

	// FirstRun is set when the backup area was created by this sync
	FirstRun bool

	// Previous is the active source before the sync, if any
	Previous string

	// Cleared holds the removal of the previous source's entries from home.
	// Nil when there was nothing to clear.
	Cleared *install.Result

	// SubDependencies lists the plugins fetched from the source's manifest
	SubDependencies []source.Source

	// Installed holds the per-entry copy outcomes
	Installed *install.Result

	// BackupConsumed is set when reverting to local removed the backup area
	BackupConsumed bool
}
