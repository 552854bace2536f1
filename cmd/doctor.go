package cmd

import (
	"log"

	"ink-and-realm/core/config"
	"ink-and-realm/core/database"
	"ink-and-realm/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// expectedTables maps each table to columns the application relies on.
var expectedTables = map[string][]string{
	"users":                 {"id", "username", "username_normalized", "password_hash"},
	"sessions":              {"id", "user_id", "token", "expires_utc"},
	"maps":                  {"id", "user_id", "name", "width", "height"},
	"features":              {"id", "map_id", "feature_type", "z_index"},
	"feature_points":        {"id", "feature_id", "x", "y", "sort_order"},
	"feature_relationships": {"id", "source_character_id", "target_feature_id", "relationship_type"},
	"map_layers":            {"id", "map_id", "layer_key", "layer_index"},
	"town_structures":       {"id", "town_feature_id", "town_structure_type"},
	"map_shares":            {"id", "map_id", "share_code", "is_open", "expires_utc"},
}

// doctorCmd checks the database schema against what the application expects
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the database schema",
	Long:  `Verifies that every table and column the application relies on exists.`,
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

		problems := 0
		for table, wanted := range expectedTables {
			if !database.HasTable(db, table) {
				logg.Warn("Missing table", zap.String("table", table))
				problems++
				continue
			}

			columns, err := database.GetTableColumns(db, table)
			if err != nil {
				return err
			}

			present := make(map[string]bool, len(columns))
			for _, col := range columns {
				present[col.Field] = true
			}
			for _, want := range wanted {
				if !present[want] {
					logg.Warn("Missing column",
						zap.String("table", table),
						zap.String("column", want))
					problems++
				}
			}
		}

		if problems > 0 {
			logg.Warn("Schema check finished with problems", zap.Int("problems", problems))
			return nil
		}
		logg.Info("Schema check passed")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(doctorCmd)
}
