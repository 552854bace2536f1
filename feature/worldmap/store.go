package worldmap

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ink-and-realm/feature/worldmap/models"
	"ink-and-realm/feature/worldmap/reconcile"
)

// ErrMapNotFound is returned when a map id does not resolve for the
// requesting user.
var ErrMapNotFound = errors.New("map not found")

// Store persists maps and their feature collections. Every edit batch is
// written in a single transaction.
type Store struct {
	db *gorm.DB
}

// NewStore creates a map store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the map tables.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(
		&models.MapRow{},
		&models.FeatureRow{},
		&models.FeaturePointRow{},
		&models.RelationshipRow{},
		&models.MapLayerRow{},
		&models.TownStructureRow{},
	)
}

// ListMaps returns the summaries of all maps owned by the user.
func (s *Store) ListMaps(ctx context.Context, userID int) ([]models.MapSummary, error) {
	var rows []models.MapRow
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list maps: %w", err)
	}

	summaries := make([]models.MapSummary, 0, len(rows))
	for _, r := range rows {
		summaries = append(summaries, models.MapSummary{ID: r.ID, Name: r.Name})
	}
	return summaries, nil
}

// CreateMap inserts a new empty map for the user.
func (s *Store) CreateMap(ctx context.Context, userID int, name string, width, height float64) (*models.Map, error) {
	row := models.MapRow{
		Name:   name,
		Width:  width,
		Height: height,
	}
	if userID > 0 {
		row.UserID = &userID
	}
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to create map: %w", err)
	}
	return row.ToDomain(), nil
}

// LoadMap loads a map with all related collections, scoped to the user.
// Maps without an owner are readable by anyone.
func (s *Store) LoadMap(ctx context.Context, mapID, userID int) (*models.Map, error) {
	var row models.MapRow
	err := s.db.WithContext(ctx).
		Preload("Features.Points").
		Preload("Features.Structures").
		Preload("Features.Relationships").
		Preload("Layers").
		Where("id = ? AND (user_id = ? OR user_id IS NULL)", mapID, userID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMapNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load map: %w", err)
	}
	return row.ToDomain(), nil
}

// LoadMapAny loads a map with all related collections regardless of
// ownership. Callers must have authorized access some other way, e.g. a
// share code.
func (s *Store) LoadMapAny(ctx context.Context, mapID int) (*models.Map, error) {
	var row models.MapRow
	err := s.db.WithContext(ctx).
		Preload("Features.Points").
		Preload("Features.Structures").
		Preload("Features.Relationships").
		Preload("Layers").
		First(&row, mapID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMapNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load map: %w", err)
	}
	return row.ToDomain(), nil
}

// DeleteMap removes a map and every dependent row.
func (s *Store) DeleteMap(ctx context.Context, mapID, userID int) error {
	m, err := s.LoadMap(ctx, mapID, userID)
	if err != nil {
		return err
	}

	ids := make([]int, 0, len(m.Features))
	for _, f := range m.Features {
		ids = append(ids, f.ID)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(ids) > 0 {
			if err := deleteFeatureRows(tx, ids); err != nil {
				return err
			}
		}
		if err := tx.Where("map_id = ?", mapID).Delete(&models.MapLayerRow{}).Error; err != nil {
			return fmt.Errorf("failed to delete layers: %w", err)
		}
		if err := tx.Delete(&models.MapRow{}, mapID).Error; err != nil {
			return fmt.Errorf("failed to delete map: %w", err)
		}
		return nil
	})
}

// SaveEdits persists one applied edit batch atomically. New feature and
// relationship ids are written back into the domain objects so the
// response snapshot carries them.
func (s *Store) SaveEdits(ctx context.Context, m *models.Map, changes *reconcile.Changes) error {
	if !changes.Dirty() {
		return nil
	}

	byID := make(map[int]*models.Feature, len(m.Features))
	for _, f := range m.Features {
		if f.ID > 0 {
			byID[f.ID] = f
		}
	}
	relByID := make(map[int]*models.Relationship, len(m.Relationships))
	for _, rel := range m.Relationships {
		if rel.ID > 0 {
			relByID[rel.ID] = rel
		}
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if changes.LayersReplaced {
			if err := tx.Where("map_id = ?", m.ID).Delete(&models.MapLayerRow{}).Error; err != nil {
				return fmt.Errorf("failed to clear layers: %w", err)
			}
			for _, l := range m.Layers {
				row := models.MapLayerRow{
					MapID:       m.ID,
					LayerKey:    l.LayerKey,
					LayerIndex:  l.LayerIndex,
					FeatureType: l.FeatureType,
				}
				if err := tx.Create(&row).Error; err != nil {
					return fmt.Errorf("failed to insert layer: %w", err)
				}
			}
		}

		if len(changes.DeletedRelationshipIDs) > 0 {
			if err := tx.Delete(&models.RelationshipRow{}, changes.DeletedRelationshipIDs).Error; err != nil {
				return fmt.Errorf("failed to delete relationships: %w", err)
			}
		}

		if len(changes.DeletedFeatureIDs) > 0 {
			if err := deleteFeatureRows(tx, changes.DeletedFeatureIDs); err != nil {
				return err
			}
		}

		for _, id := range changes.UpdatedFeatureIDs {
			f, ok := byID[id]
			if !ok {
				continue
			}
			row := f.ToRow(m.ID)
			if err := tx.Omit(clause.Associations).Save(&row).Error; err != nil {
				return fmt.Errorf("failed to update feature %d: %w", id, err)
			}
			if err := tx.Where("feature_id = ?", id).Delete(&models.FeaturePointRow{}).Error; err != nil {
				return fmt.Errorf("failed to clear feature points: %w", err)
			}
			if err := insertPoints(tx, id, f); err != nil {
				return err
			}
		}

		for _, f := range changes.AddedFeatures {
			row := f.ToRow(m.ID)
			row.Points = nil
			row.Structures = nil
			if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
				return fmt.Errorf("failed to insert feature: %w", err)
			}
			f.ID = row.ID
			if err := insertPoints(tx, f.ID, f); err != nil {
				return err
			}
			if f.Kind == models.KindTown && f.Town != nil {
				for i := range f.Town.Structures {
					srow := models.TownStructureRow{
						TownFeatureID:     f.ID,
						TownStructureType: f.Town.Structures[i].TownStructureType,
						RelativeX:         f.Town.Structures[i].RelativeX,
						RelativeY:         f.Town.Structures[i].RelativeY,
						TextureKey:        f.Town.Structures[i].TextureKey,
					}
					if err := tx.Create(&srow).Error; err != nil {
						return fmt.Errorf("failed to insert town structure: %w", err)
					}
					f.Town.Structures[i].ID = srow.ID
				}
			}
		}

		for _, rel := range changes.AddedRelationships {
			row := rel.ToRow()
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to insert relationship: %w", err)
			}
			rel.ID = row.ID
		}

		for _, id := range changes.UpdatedRelationshipIDs {
			rel, ok := relByID[id]
			if !ok {
				continue
			}
			row := rel.ToRow()
			if err := tx.Save(&row).Error; err != nil {
				return fmt.Errorf("failed to update relationship %d: %w", id, err)
			}
		}

		return nil
	})
}

// deleteFeatureRows removes features and their dependent rows. Points,
// structures and outgoing relationships are deleted explicitly so the
// behavior does not depend on database-level cascade rules.
func deleteFeatureRows(tx *gorm.DB, ids []int) error {
	if err := tx.Where("feature_id IN ?", ids).Delete(&models.FeaturePointRow{}).Error; err != nil {
		return fmt.Errorf("failed to delete feature points: %w", err)
	}
	if err := tx.Where("town_feature_id IN ?", ids).Delete(&models.TownStructureRow{}).Error; err != nil {
		return fmt.Errorf("failed to delete town structures: %w", err)
	}
	if err := tx.Where("source_character_id IN ?", ids).Delete(&models.RelationshipRow{}).Error; err != nil {
		return fmt.Errorf("failed to delete outgoing relationships: %w", err)
	}
	if err := tx.Delete(&models.FeatureRow{}, ids).Error; err != nil {
		return fmt.Errorf("failed to delete features: %w", err)
	}
	return nil
}

func insertPoints(tx *gorm.DB, featureID int, f *models.Feature) error {
	for i, p := range f.Points {
		row := models.FeaturePointRow{
			FeatureID: featureID,
			X:         p.X,
			Y:         p.Y,
			SortOrder: i,
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to insert feature point: %w", err)
		}
	}
	return nil
}
