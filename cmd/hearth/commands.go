package hearth

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/hearth/internal/version"
	"github.com/arthur-debert/hearth/pkg/errors"
	"github.com/arthur-debert/hearth/pkg/filesystem"
	"github.com/arthur-debert/hearth/pkg/git"
	"github.com/arthur-debert/hearth/pkg/logging"
	"github.com/arthur-debert/hearth/pkg/orchestration"
	"github.com/arthur-debert/hearth/pkg/paths"
	"github.com/arthur-debert/hearth/pkg/status"
	"github.com/arthur-debert/hearth/pkg/ui/confirmations"
	"github.com/arthur-debert/hearth/pkg/ui/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity   int
		strictFetch bool
	)

	rootCmd := &cobra.Command{
		Use:     "hearth [repo]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New(errors.ErrMissingArgument, MsgErrNoRepo)
			}
			return runSync(cmd, args[0], strictFetch)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().BoolVar(&strictFetch, "strict-fetch", false, MsgFlagStrictFetch)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "COMMANDS:",
	})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func runSync(cmd *cobra.Command, identifier string, strictFetch bool) error {
	out := cmd.OutOrStdout()

	log.Info().
		Str("repo", identifier).
		Bool("strict_fetch", strictFetch).
		Msg("Syncing dotfiles")

	result, err := orchestration.Sync(cmd.Context(), orchestration.Options{
		Identifier:  identifier,
		Fetcher:     git.NewCloner(out, cmd.ErrOrStderr()),
		Prompter:    confirmations.NewConsolePrompter(cmd.InOrStdin(), out),
		Output:      out,
		StrictFetch: strictFetch,
	})
	if err != nil {
		return err
	}

	printSummary(output.NewReporter(out), result)
	return nil
}

func printSummary(r *output.Reporter, result *orchestration.Result) {
	if result.Cleared != nil {
		r.Printf("Muted", MsgClearedFormat, len(result.Cleared.Succeeded()), result.Previous)
	}
	if len(result.SubDependencies) > 0 {
		r.Printf("Muted", MsgPluginsFormat, len(result.SubDependencies))
	}
	if result.FirstRun && result.Installed.BackedUp() > 0 {
		r.Printf("Muted", MsgFirstRunNotice, result.Source.Dir)
	}

	total := len(result.Installed.Entries)
	done := len(result.Installed.Succeeded())
	if result.Source.Local {
		r.Printf("Success", MsgRevertedFormat, done, total)
	} else {
		r.Printf("Success", MsgSyncedFormat, done, total, result.Source.Identifier)
	}

	failed := result.Installed.Failed()
	if len(failed) == 0 {
		return
	}
	r.Printf("Warning", MsgFailedSummary, len(failed))
	for _, e := range failed {
		r.Printf("Error", MsgFailedEntry, e.Name, e.Err)
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.New("", "")
			if err != nil {
				return fmt.Errorf(MsgErrInitPaths, err)
			}

			report, err := status.Inspect(filesystem.NewOS(), p)
			if err != nil {
				return fmt.Errorf(MsgErrStatus, err)
			}

			printStatus(output.NewReporter(cmd.OutOrStdout()), report)
			return nil
		},
	}
}

func printStatus(r *output.Reporter, report *status.Report) {
	r.Printf("Header", MsgStatusHeader, report.HearthHome)
	if report.LegacyConfig != "" {
		r.Printf("Muted", MsgStatusLegacy, report.LegacyConfig)
	}

	switch {
	case !report.HasActiveSource():
		r.Printf("Muted", MsgStatusNoSource)
	case !report.SourceExists:
		r.Printf("Warning", MsgStatusMissingSrc, report.ActiveSource)
	default:
		r.Printf("FilePath", MsgStatusSource, report.ActiveSource)
		for _, e := range report.Entries {
			style := "Success"
			if e.State != status.StateInstalled {
				style = "Warning"
			}
			r.Printf(style, MsgStatusEntry, e.State, e.Name)
		}
	}

	if !report.BackupExists {
		r.Printf("Muted", MsgStatusNoBackup)
	} else {
		r.Printf("FilePath", MsgStatusBackup, strings.Join(report.Backup, ", "))
	}
	r.Printf("Muted", MsgStatusIgnores, strings.Join(report.Ignores, ", "))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

