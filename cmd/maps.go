package cmd

import (
	"context"
	"log"

	"ink-and-realm/core/config"
	"ink-and-realm/core/database"
	"ink-and-realm/core/logger"
	"ink-and-realm/feature/worldmap"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var mapsListUserID int

// mapsCmd groups map maintenance commands
var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "Map maintenance",
}

// mapsListCmd lists a user's maps
var mapsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a user's maps",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: "console"})
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}

		store := worldmap.NewStore(db)
		maps, err := store.ListMaps(context.Background(), mapsListUserID)
		if err != nil {
			return err
		}

		logg.Info("Maps", zap.Int("user_id", mapsListUserID), zap.Int("count", len(maps)))
		for _, m := range maps {
			logg.Info("Map", zap.Int("id", m.ID), zap.String("name", m.Name))
		}
		return nil
	},
}

func init() {
	mapsListCmd.Flags().IntVar(&mapsListUserID, "user", 0, "user id to list maps for")
	mapsCmd.AddCommand(mapsListCmd)
	RootCmd.AddCommand(mapsCmd)
}
