package cmd

import (
	"fmt"
	"os"

	"prompt-library/core/promptdb"

	"github.com/spf13/cobra"
)

var (
	exportStdout   bool
	mergeDryRun    bool
	cleanupDays    int
	cleanupEnabled bool
	retentionDays  int
	maxThumbnails  int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show library statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()
		return printJSON(a.library.Statistics())
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the library to a timestamped file",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		if exportStdout {
			return a.library.ExportTo(os.Stdout)
		}
		path, err := a.library.Export()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var mergeCmd = &cobra.Command{
	Use:   "merge <file>",
	Short: "Merge another library file into this one",
	Long: `Records whose text already exists are combined: the higher rating wins,
usage counts are added and thumbnails and history are joined. Other records
are added with fresh ids.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		out, err := a.library.MergeFile(cmd.Context(), args[0], mergeDryRun)
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove old unrated prompts",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		removed, err := a.library.Cleanup(cleanupDays)
		if err != nil {
			return err
		}
		fmt.Printf("Removed %d prompts\n", removed)
		return nil
	},
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change library settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		var u promptdb.SettingsUpdate
		flags := cmd.Flags()
		if flags.Changed("cleanup-enabled") {
			u.AutoCleanupEnabled = &cleanupEnabled
		}
		if flags.Changed("cleanup-days") {
			u.AutoCleanupDays = &retentionDays
		}
		if flags.Changed("max-thumbnails") {
			u.MaxThumbnails = &maxThumbnails
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		if u == (promptdb.SettingsUpdate{}) {
			return printJSON(a.library.Settings())
		}
		settings, err := a.library.UpdateSettings(u)
		if err != nil {
			return err
		}
		return printJSON(settings)
	},
}

func init() {
	exportCmd.Flags().BoolVar(&exportStdout, "stdout", false, "Write to stdout instead of the export directory")
	mergeCmd.Flags().BoolVar(&mergeDryRun, "dry-run", false, "Only show the merge plan")
	cleanupCmd.Flags().IntVar(&cleanupDays, "days", 0, "Retention in days (default: library setting)")

	settingsCmd.Flags().BoolVar(&cleanupEnabled, "cleanup-enabled", true, "Enable automatic cleanup")
	settingsCmd.Flags().IntVar(&retentionDays, "cleanup-days", promptdb.DefaultCleanupDays, "Cleanup retention in days")
	settingsCmd.Flags().IntVar(&maxThumbnails, "max-thumbnails", promptdb.DefaultMaxThumbnails, "Thumbnails kept per prompt")

	RootCmd.AddCommand(statsCmd, exportCmd, mergeCmd, cleanupCmd, settingsCmd)
}
