package hearth

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Sync your dotfiles from a git repository"
	MsgStatusShort     = "Show the active source and its dotfiles"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Sync summary
	MsgSyncedFormat     = "Installed %d of %d dotfiles from %s"
	MsgRevertedFormat   = "Restored %d of %d backed up dotfiles"
	MsgFailedEntry      = "  ✗ %s: %v"
	MsgClearedFormat    = "Removed %d dotfiles installed from %s"
	MsgPluginsFormat    = "Fetched %d plugins"
	MsgFirstRunNotice   = "First run: existing dotfiles were moved to %s"
	MsgFailedSummary    = "%d entries could not be installed"
	MsgVersionFormat    = "hearth %s (commit %s, built %s)\n"
	MsgStatusHeader     = "hearth home: %s"
	MsgStatusNoSource   = "No active source. Run hearth <repo> to install one."
	MsgStatusSource     = "Active source: %s"
	MsgStatusMissingSrc = "Active source %s no longer exists"
	MsgStatusEntry      = "  %-10s %s"
	MsgStatusNoBackup   = "No backup area"
	MsgStatusBackup     = "Backup area: %s"
	MsgStatusBackupItem = "  %s"
	MsgStatusIgnores    = "Ignored: %s"
	MsgStatusLegacy     = "Legacy config %s is imported on the next sync"

	// Error messages
	MsgErrNoRepo    = "No repo provided!"
	MsgErrInitPaths = "failed to initialize paths: %w"
	MsgErrStatus    = "failed to get status: %w"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagStrictFetch = "Abort when cloning a repository fails"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
