package cmd

import (
	"context"
	"log"

	"ink-and-realm/core/config"
	"ink-and-realm/core/database"
	"ink-and-realm/core/logger"
	"ink-and-realm/feature/auth"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// sessionsCmd groups session maintenance commands
var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Session maintenance",
}

// sessionsPurgeCmd deletes expired sessions
var sessionsPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete expired sessions",
	Long:  `Removes every session row past its expiry. Safe to run while the server is up.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}

		svc := auth.NewService(db, logg, cfg.Auth)
		removed, err := svc.PurgeExpired(context.Background())
		if err != nil {
			return err
		}

		logg.Info("Expired sessions purged", zap.Int64("removed", removed))
		return nil
	},
}

func init() {
	sessionsCmd.AddCommand(sessionsPurgeCmd)
	RootCmd.AddCommand(sessionsCmd)
}
