package cmd

import (
	"fmt"
	"os"

	"ink-and-realm/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "ink-and-realm",
	Short: "Ink & Realm map service",
	Long: `Ink & Realm is the backend for a collaborative fantasy map builder.
It serves map, feature and relationship edits over HTTP and persists them
to a relational store.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// CLI errors read best on the console encoder with full timestamps.
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
