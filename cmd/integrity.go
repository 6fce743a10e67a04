package cmd

import (
	"context"
	"errors"
	"fmt"

	"prompt-library/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the library installation",
	Long:  `Checks the data directories, the stored library document and the snapshot bucket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd.Context(), true, true, true, "")
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the data directories",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false, "")
	},
}

// documentCmd represents the integrity document command
var documentCmd = &cobra.Command{
	Use:   "document [file]",
	Short: "Check a library document (default: the configured library)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		return runIntegrityChecks(cmd.Context(), false, true, false, path)
	},
}

// storageCmd represents the integrity storage command
var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and fix the snapshot bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, false, true, "")
	},
}

func init() {
	integrityCmd.PersistentFlags().BoolVar(&fixFlag, "fix", false, "Fix problems that can be fixed")
	integrityCmd.AddCommand(structureCmd, documentCmd, storageCmd)
	RootCmd.AddCommand(integrityCmd)
}

func runIntegrityChecks(ctx context.Context, structure, document, store bool, path string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()
	logg := a.logger

	client, err := a.storageClient()
	if err != nil {
		logg.Warn("Storage client unavailable", zap.Error(err))
	}
	svc := integrity.NewService(client, a.integrityOptions(), logg)
	failed := false

	if structure {
		logg.Info("Checking data directories...")
		missing, err := svc.CheckStructure()
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}
		switch {
		case len(missing) == 0:
			logg.Info("Structure is intact.")
		case fixFlag:
			if err := svc.FixStructure(missing); err != nil {
				return fmt.Errorf("failed to fix structure: %w", err)
			}
			logg.Info("Structure fixed successfully.")
		default:
			logg.Warn("Missing directories detected", zap.Strings("missing", missing))
			logg.Info("Run with --fix to create missing directories.")
			failed = true
		}
	}

	if document {
		logg.Info("Checking library document...")
		issues, err := svc.CheckDocument(path)
		if err != nil {
			logg.Error("Document check failed", zap.Error(err))
			failed = true
		} else if len(issues) == 0 {
			logg.Info("Library document is consistent.")
		} else {
			for _, issue := range issues {
				logg.Warn("Document issue",
					zap.String("kind", issue.Kind),
					zap.Int64("prompt", issue.PromptID),
					zap.String("detail", issue.Detail))
			}
			failed = true
		}
	}

	if store {
		logg.Info("Checking snapshot storage...")
		report, err := svc.CheckStorage(ctx)
		switch {
		case errors.Is(err, integrity.ErrStorageDisabled):
			logg.Info("Storage is not configured, skipping.")
		case err != nil:
			logg.Error("Storage check failed", zap.Error(err))
			failed = true
		case !report.BucketExists && fixFlag:
			if err := svc.FixStorage(ctx); err != nil {
				return fmt.Errorf("failed to create bucket: %w", err)
			}
			logg.Info("Snapshot bucket created.", zap.String("bucket", report.Bucket))
		case !report.BucketExists:
			logg.Warn("Snapshot bucket is missing", zap.String("bucket", report.Bucket))
			failed = true
		default:
			logg.Info("Snapshot storage is reachable.",
				zap.Int("snapshots", report.Snapshots),
				zap.Int("foreign_objects", report.Foreign))
		}
	}

	if failed {
		return errors.New("integrity checks reported problems")
	}
	return nil
}
