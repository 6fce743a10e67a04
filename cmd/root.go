package cmd

import (
	"fmt"
	"os"

	"prompt-library/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configDir is where .env and config.yaml are looked up.
var configDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "prompt-library",
	Short: "Prompt Library",
	Long: `Prompt Library stores image-generation prompts with ratings, tags,
thumbnails and generation history in a single JSON document.
It can be used from the command line or served over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory holding .env and config.yaml")
}
