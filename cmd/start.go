package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ink-and-realm/core/config"
	"ink-and-realm/core/database"
	"ink-and-realm/core/loader"
	"ink-and-realm/core/logger"
	"ink-and-realm/core/middleware/rayid"
	"ink-and-realm/core/storage"

	"ink-and-realm/feature/auth"
	authmodels "ink-and-realm/feature/auth/models"
	"ink-and-realm/feature/share"
	"ink-and-realm/feature/worldmap"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "ink-and-realm/docs/swagger"
)

// @title Ink & Realm API
// @version 1.0
// @description API for building and sharing fantasy maps.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the map server",
	Long:  `Starts the HTTP server, runs migrations and loads all features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := db.AutoMigrate(&authmodels.User{}, &authmodels.Session{}); err != nil {
			logg.Fatal("Failed to migrate auth tables", zap.Error(err))
		}

		// 4. Initialize Snapshot Archive (Optional)
		var archive *worldmap.Archive
		if cfg.Storage.Enabled {
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			archive = worldmap.NewArchive(client, cfg.Storage, logg)

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := archive.EnsureBucket(ctx); err != nil {
				logg.Warn("Snapshot archive unavailable", zap.Error(err))
				archive = nil
			}
			cancel()
		}

		// 5. Build Features
		authFeature := auth.NewFeature(db, logg, cfg.Auth)
		mapFeature := worldmap.NewFeature(db, authFeature.Service(), archive, logg)
		if err := mapFeature.Migrate(); err != nil {
			logg.Fatal("Failed to migrate map tables", zap.Error(err))
		}
		shareFeature := share.NewFeature(db, mapFeature.Service(), logg, cfg.Share)
		if err := shareFeature.Migrate(); err != nil {
			logg.Fatal("Failed to migrate share tables", zap.Error(err))
		}

		mgr := loader.NewManager()
		mgr.Register(authFeature)
		mgr.Register(mapFeature)
		mgr.Register(shareFeature)

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimitBytes(),
		})

		// RayID first so every log line carries the request id.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		if cfg.Server.AllowOrigins != "" {
			app.Use(cors.New(cors.Config{
				AllowOrigins: cfg.Server.AllowOrigins,
				AllowHeaders: "Origin, Content-Type, Accept",
			}))
		}

		app.Get("/swagger/*", swagger.HandlerDefault)

		// 7. Load Features under /api
		api := app.Group("/api")
		if err := mgr.LoadAll(api); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
