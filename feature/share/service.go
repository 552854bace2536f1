package share

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ink-and-realm/feature/share/models"
	wmmodels "ink-and-realm/feature/worldmap/models"
)

// ErrShareNotFound is returned when a share code does not resolve to an
// open, unexpired share.
var ErrShareNotFound = errors.New("share not found")

// MapProvider is the slice of the worldmap service the share feature
// needs: an ownership-checked load and an unchecked snapshot for
// resolved share codes.
type MapProvider interface {
	GetMap(ctx context.Context, sessionToken string, userID, mapID int) (*wmmodels.MapSnapshot, error)
	Snapshot(ctx context.Context, mapID int) (*wmmodels.MapSnapshot, error)
}

// Service creates, refreshes and resolves map share links.
type Service struct {
	db        *gorm.DB
	maps      MapProvider
	logger    *zap.Logger
	shareDays int
}

// NewService creates a new share service.
func NewService(db *gorm.DB, maps MapProvider, logger *zap.Logger, cfg Config) *Service {
	return &Service{
		db:        db,
		maps:      maps,
		logger:    logger,
		shareDays: cfg.ShareDaysOrDefault(),
	}
}

// Migrate creates or updates the share table.
func (s *Service) Migrate() error {
	return s.db.AutoMigrate(&models.MapShare{})
}

// CreateShare opens a share for one of the caller's maps. An existing
// share is refreshed with a new code and expiry instead of duplicated.
func (s *Service) CreateShare(ctx context.Context, sessionToken string, userID, mapID int) (*models.ShareResponse, error) {
	// ownership check rides on the regular map load
	if _, err := s.maps.GetMap(ctx, sessionToken, userID, mapID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	code := strings.ReplaceAll(uuid.NewString(), "-", "")
	expires := now.AddDate(0, 0, s.shareDays)

	var existing models.MapShare
	err := s.db.WithContext(ctx).Where("map_id = ?", mapID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		share := models.MapShare{
			MapID:      mapID,
			ShareCode:  code,
			IsOpen:     true,
			CreatedUTC: now,
			UpdatedUTC: now,
			ExpiresUTC: expires,
		}
		if err := s.db.WithContext(ctx).Create(&share).Error; err != nil {
			return nil, fmt.Errorf("failed to create share: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to look up share: %w", err)
	default:
		existing.ShareCode = code
		existing.IsOpen = true
		existing.UpdatedUTC = now
		existing.ExpiresUTC = expires
		if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return nil, fmt.Errorf("failed to refresh share: %w", err)
		}
	}

	s.logger.Info("Map shared", zap.Int("map_id", mapID))
	return &models.ShareResponse{MapID: mapID, ShareCode: code, ExpiresUTC: expires}, nil
}

// CloseShare revokes the share for one of the caller's maps. Closing a
// map that was never shared is not an error.
func (s *Service) CloseShare(ctx context.Context, sessionToken string, userID, mapID int) error {
	if _, err := s.maps.GetMap(ctx, sessionToken, userID, mapID); err != nil {
		return err
	}

	res := s.db.WithContext(ctx).Model(&models.MapShare{}).
		Where("map_id = ?", mapID).
		Updates(map[string]interface{}{
			"is_open":     false,
			"updated_utc": time.Now().UTC(),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to close share: %w", res.Error)
	}
	return nil
}

// ResolveShare returns the snapshot of the map behind an open, unexpired
// share code. Closed and expired shares are indistinguishable from
// unknown codes.
func (s *Service) ResolveShare(ctx context.Context, code string) (*wmmodels.MapSnapshot, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrShareNotFound
	}

	var share models.MapShare
	err := s.db.WithContext(ctx).Where("share_code = ?", code).First(&share).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrShareNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up share: %w", err)
	}

	if !share.IsOpen || share.Expired(time.Now().UTC()) {
		return nil, ErrShareNotFound
	}

	return s.maps.Snapshot(ctx, share.MapID)
}
