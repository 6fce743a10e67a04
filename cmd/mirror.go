package cmd

import (
	"fmt"

	"prompt-library/feature/mirror"

	"github.com/spf13/cobra"
)

// mirrorCmd groups the SQL mirror commands.
var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Copy the library into a SQL table",
}

func openMirror() (*app, *mirror.Service, error) {
	a, err := openApp()
	if err != nil {
		return nil, nil, err
	}
	db, err := a.database()
	if err != nil {
		a.close()
		return nil, nil, err
	}
	if db == nil {
		a.close()
		return nil, nil, fmt.Errorf("database driver is not configured")
	}
	return a, mirror.NewService(db, a.library, a.logger), nil
}

var mirrorSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Write every prompt into the mirror table",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, svc, err := openMirror()
		if err != nil {
			return err
		}
		defer a.close()

		report, err := svc.Sync(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(report)
	},
}

var mirrorCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Compare the mirror table with the library",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, svc, err := openMirror()
		if err != nil {
			return err
		}
		defer a.close()

		report, err := svc.Check(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(report)
	},
}

func init() {
	mirrorCmd.AddCommand(mirrorSyncCmd, mirrorCheckCmd)
	RootCmd.AddCommand(mirrorCmd)
}
