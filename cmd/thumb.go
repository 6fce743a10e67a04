package cmd

import (
	"fmt"

	"prompt-library/core/utils"

	"github.com/spf13/cobra"
)

// thumbCmd groups the thumbnail commands.
var thumbCmd = &cobra.Command{
	Use:   "thumb",
	Short: "Manage prompt thumbnails",
}

var thumbAddCmd = &cobra.Command{
	Use:   "add <id> <image>",
	Short: "Add an image as thumbnail",
	Long:  `Replaces the first unlocked thumbnail, or adds a slot when all are locked.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := utils.ParseID(args[0])
		if err != nil {
			return err
		}
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.library.AddThumbnail(id, args[1]); err != nil {
			return err
		}
		fmt.Printf("Added thumbnail to prompt %d\n", id)
		return nil
	},
}

func thumbLockCommand(use, short string, locked bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id> <index>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := utils.ParseID(args[0])
			if err != nil {
				return err
			}
			index, err := utils.ParseIndex(args[1])
			if err != nil {
				return err
			}
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()

			return a.library.SetThumbnailLock(id, index, locked)
		},
	}
}

var thumbExtractCmd = &cobra.Command{
	Use:   "extract <id> <index> <dest>",
	Short: "Write a thumbnail to a JPEG file",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := utils.ParseID(args[0])
		if err != nil {
			return err
		}
		index, err := utils.ParseIndex(args[1])
		if err != nil {
			return err
		}
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.library.ExtractThumbnail(id, index, args[2]); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", args[2])
		return nil
	},
}

func init() {
	thumbCmd.AddCommand(
		thumbAddCmd,
		thumbLockCommand("lock", "Protect a thumbnail from replacement", true),
		thumbLockCommand("unlock", "Allow a thumbnail to be replaced", false),
		thumbExtractCmd,
	)
	RootCmd.AddCommand(thumbCmd)
}
