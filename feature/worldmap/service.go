package worldmap

import (
	"context"

	"go.uber.org/zap"

	"ink-and-realm/core/geometry"
	"ink-and-realm/feature/worldmap/models"
	"ink-and-realm/feature/worldmap/reconcile"
)

// Default dimensions for maps created without explicit size.
const (
	DefaultMapWidth  = 2000.0
	DefaultMapHeight = 2000.0
	mapNameMaxLen    = 128
)

// IdentityResolver turns a session token or raw user id into a verified
// user id. Satisfied by the auth service.
type IdentityResolver interface {
	Resolve(ctx context.Context, sessionToken string, userID int) (int, error)
}

// Service implements map CRUD and the edit batch pipeline. Every
// operation resolves the caller's identity before touching a map.
type Service struct {
	store    *Store
	identity IdentityResolver
	archive  *Archive
	logger   *zap.Logger
}

// NewService creates a new map service. archive may be nil when the
// snapshot archive is disabled.
func NewService(store *Store, identity IdentityResolver, archive *Archive, logger *zap.Logger) *Service {
	return &Service{
		store:    store,
		identity: identity,
		archive:  archive,
		logger:   logger,
	}
}

// ListMaps returns the caller's map summaries.
func (s *Service) ListMaps(ctx context.Context, sessionToken string, userID int) ([]models.MapSummary, error) {
	uid, err := s.identity.Resolve(ctx, sessionToken, userID)
	if err != nil {
		return nil, err
	}
	return s.store.ListMaps(ctx, uid)
}

// CreateMap creates an empty map for the caller and returns its snapshot.
func (s *Service) CreateMap(ctx context.Context, req *models.CreateMapRequest) (*models.MapSnapshot, error) {
	uid, err := s.identity.Resolve(ctx, req.SessionToken, req.UserID)
	if err != nil {
		return nil, err
	}

	name := geometry.CleanTextDefault(req.Name, mapNameMaxLen, "New Map")
	width, height := req.Width, req.Height
	if width <= 0 {
		width = DefaultMapWidth
	}
	if height <= 0 {
		height = DefaultMapHeight
	}

	m, err := s.store.CreateMap(ctx, uid, name, width, height)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Map created",
		zap.Int("map_id", m.ID),
		zap.Int("user_id", uid),
		zap.String("name", m.Name))
	return BuildSnapshot(m), nil
}

// GetMap returns the full snapshot of one of the caller's maps.
func (s *Service) GetMap(ctx context.Context, sessionToken string, userID, mapID int) (*models.MapSnapshot, error) {
	uid, err := s.identity.Resolve(ctx, sessionToken, userID)
	if err != nil {
		return nil, err
	}
	m, err := s.store.LoadMap(ctx, mapID, uid)
	if err != nil {
		return nil, err
	}
	return BuildSnapshot(m), nil
}

// DeleteMap removes one of the caller's maps with everything on it.
func (s *Service) DeleteMap(ctx context.Context, sessionToken string, userID, mapID int) error {
	uid, err := s.identity.Resolve(ctx, sessionToken, userID)
	if err != nil {
		return err
	}
	if err := s.store.DeleteMap(ctx, mapID, uid); err != nil {
		return err
	}
	s.logger.Info("Map deleted", zap.Int("map_id", mapID), zap.Int("user_id", uid))
	return nil
}

// ApplyEdits runs one edit batch: resolve identity, load the map, apply
// the batch in memory, persist atomically if anything changed, and return
// the reconstructed snapshot.
func (s *Service) ApplyEdits(ctx context.Context, req *models.MapEditsRequest) (*models.MapSnapshot, error) {
	uid, err := s.identity.Resolve(ctx, req.SessionToken, req.UserID)
	if err != nil {
		return nil, err
	}

	m, err := s.store.LoadMap(ctx, req.MapID, uid)
	if err != nil {
		return nil, err
	}

	changes := reconcile.ApplyEdits(m, req)
	if changes.Dirty() {
		if err := s.store.SaveEdits(ctx, m, changes); err != nil {
			return nil, err
		}
		s.logger.Info("Map edits applied",
			zap.Int("map_id", m.ID),
			zap.Int("user_id", uid),
			zap.Int("added_features", len(changes.AddedFeatures)),
			zap.Int("updated_features", len(changes.UpdatedFeatureIDs)),
			zap.Int("deleted_features", len(changes.DeletedFeatureIDs)))
	}

	snap := BuildSnapshot(m)
	if s.archive != nil && changes.Dirty() {
		s.archive.Store(ctx, snap)
	}
	return snap, nil
}

// AddTree places a single tree through the regular edit pipeline.
func (s *Service) AddTree(ctx context.Context, req *models.AddTreeRequest) (*models.MapSnapshot, error) {
	return s.ApplyEdits(ctx, &models.MapEditsRequest{
		UserID:       req.UserID,
		SessionToken: req.SessionToken,
		MapID:        req.MapID,
		AddedTrees:   []models.TreeDTO{req.Tree},
	})
}

// AddHouse places a single house through the regular edit pipeline.
func (s *Service) AddHouse(ctx context.Context, req *models.AddHouseRequest) (*models.MapSnapshot, error) {
	return s.ApplyEdits(ctx, &models.MapEditsRequest{
		UserID:       req.UserID,
		SessionToken: req.SessionToken,
		MapID:        req.MapID,
		AddedHouses:  []models.HouseDTO{req.House},
	})
}

// Snapshot loads a map without an ownership check. Used by the share
// feature after it has validated a share code.
func (s *Service) Snapshot(ctx context.Context, mapID int) (*models.MapSnapshot, error) {
	m, err := s.store.LoadMapAny(ctx, mapID)
	if err != nil {
		return nil, err
	}
	return BuildSnapshot(m), nil
}
