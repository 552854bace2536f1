package worldmap

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	store   *Store
}

// NewFeature creates the worldmap feature. archive may be nil.
func NewFeature(db *gorm.DB, identity IdentityResolver, archive *Archive, logger *zap.Logger) *Feature {
	store := NewStore(db)
	svc := NewService(store, identity, archive, logger)
	h := NewHandler(svc, logger)
	return &Feature{service: svc, handler: h, store: store}
}

// Service exposes the underlying service for features that render map
// snapshots, such as sharing.
func (f *Feature) Service() *Service {
	return f.service
}

// Migrate creates or updates the map tables.
func (f *Feature) Migrate() error {
	return f.store.Migrate()
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "worldmap"
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
