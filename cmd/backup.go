package cmd

import (
	"github.com/spf13/cobra"
)

var restoreDryRun bool

// backupCmd groups the snapshot commands.
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Push and restore library snapshots in object storage",
}

var backupPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload a snapshot of the library",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		svc, err := a.backupService()
		if err != nil {
			return err
		}
		snap, err := svc.Push(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(snap)
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		svc, err := a.backupService()
		if err != nil {
			return err
		}
		snaps, err := svc.List(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(snaps)
	},
}

var backupPullCmd = &cobra.Command{
	Use:   "pull <name>",
	Short: "Merge a stored snapshot into the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		svc, err := a.backupService()
		if err != nil {
			return err
		}
		out, err := svc.Restore(cmd.Context(), args[0], restoreDryRun)
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

func init() {
	backupPullCmd.Flags().BoolVar(&restoreDryRun, "dry-run", false, "Only show the merge plan")
	backupCmd.AddCommand(backupPushCmd, backupListCmd, backupPullCmd)
	RootCmd.AddCommand(backupCmd)
}
