package share

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the share feature.
func NewFeature(db *gorm.DB, maps MapProvider, logger *zap.Logger, cfg Config) *Feature {
	svc := NewService(db, maps, logger, cfg)
	h := NewHandler(svc, logger)
	return &Feature{service: svc, handler: h}
}

// Migrate creates or updates the share table.
func (f *Feature) Migrate() error {
	return f.service.Migrate()
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "share"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
