package worldmap

import (
	"ink-and-realm/core/geometry"
	"ink-and-realm/feature/worldmap/models"
)

// BuildSnapshot reconstructs the full wire view of a loaded map: features
// grouped by kind, characters carrying their outgoing relationships, and
// titles with resolved anchors.
func BuildSnapshot(m *models.Map) *models.MapSnapshot {
	snap := &models.MapSnapshot{
		ID:            m.ID,
		Name:          m.Name,
		Width:         m.Width,
		Height:        m.Height,
		Trees:         []models.TreeDTO{},
		Houses:        []models.HouseDTO{},
		Characters:    []models.CharacterDTO{},
		Titles:        []models.TitleDTO{},
		WaterPolygons: []models.AreaPolygonDTO{},
		LandPolygons:  []models.AreaPolygonDTO{},
		Bridges:       []models.AreaPolygonDTO{},
		Towns:         []models.TownDTO{},
		AreaLayers:    []models.AreaLayerDTO{},
	}

	byID := make(map[int]*models.Feature, len(m.Features))
	for _, f := range m.Features {
		if f.ID > 0 {
			byID[f.ID] = f
		}
	}

	relsBySource := make(map[int][]models.RelationshipDTO)
	for _, rel := range m.Relationships {
		dto := models.RelationshipDTO{
			ID:                rel.ID,
			SourceCharacterID: rel.SourceCharacterID,
			TargetFeatureID:   rel.TargetFeatureID,
			Types:             rel.Types,
			Description:       rel.Description,
		}
		if target, ok := byID[rel.TargetFeatureID]; ok {
			dto.TargetFeatureType = string(target.Kind)
		}
		relsBySource[rel.SourceCharacterID] = append(relsBySource[rel.SourceCharacterID], dto)
	}

	for _, f := range m.Features {
		switch f.Kind {
		case models.KindTree:
			p := firstPoint(f)
			snap.Trees = append(snap.Trees, models.TreeDTO{
				ID: f.ID, X: p.X, Y: p.Y,
				TreeType: f.Tree.TreeType,
				Size:     f.Tree.Size,
			})
		case models.KindHouse:
			p := firstPoint(f)
			snap.Houses = append(snap.Houses, models.HouseDTO{
				ID: f.ID, X: p.X, Y: p.Y,
				HouseType: f.House.HouseType,
				Size:      f.House.Size,
			})
		case models.KindCharacter:
			p := firstPoint(f)
			snap.Characters = append(snap.Characters, models.CharacterDTO{
				ID: f.ID, X: p.X, Y: p.Y,
				CharacterType: f.Character.CharacterType,
				Name:          f.Character.Name,
				Background:    f.Character.Background,
				Occupation:    f.Character.Occupation,
				Personality:   f.Character.Personality,
				Size:          f.Character.Size,
				Relationships: relsBySource[f.ID],
			})
		case models.KindTitle:
			snap.Titles = append(snap.Titles, titleDTO(f, byID))
		case models.KindWater:
			snap.WaterPolygons = append(snap.WaterPolygons, models.AreaPolygonDTO{
				ID:          f.ID,
				FeatureType: f.Water.WaterType,
				LayerIndex:  f.ZIndex,
				Points:      pointsToDTO(f.Points),
			})
		case models.KindLand:
			snap.LandPolygons = append(snap.LandPolygons, models.AreaPolygonDTO{
				ID:          f.ID,
				FeatureType: f.Land.LandType,
				Elevation:   f.Land.ElevationType,
				LayerIndex:  f.ZIndex,
				Points:      pointsToDTO(f.Points),
			})
		case models.KindBridge:
			snap.Bridges = append(snap.Bridges, models.AreaPolygonDTO{
				ID:          f.ID,
				FeatureType: f.Bridge.BridgeType,
				LayerIndex:  f.ZIndex,
				Points:      pointsToDTO(f.Points),
			})
		case models.KindTown:
			structures := make([]models.TownStructureDTO, 0, len(f.Town.Structures))
			for _, s := range f.Town.Structures {
				structures = append(structures, models.TownStructureDTO{
					ID:                s.ID,
					TownStructureType: s.TownStructureType,
					RelativeX:         s.RelativeX,
					RelativeY:         s.RelativeY,
					TextureKey:        s.TextureKey,
				})
			}
			snap.Towns = append(snap.Towns, models.TownDTO{
				ID:         f.ID,
				TownType:   f.Town.TownType,
				LayerIndex: f.ZIndex,
				Points:     pointsToDTO(f.Points),
				Structures: structures,
			})
		}
	}

	for _, l := range m.Layers {
		snap.AreaLayers = append(snap.AreaLayers, models.AreaLayerDTO{
			LayerKey:    l.LayerKey,
			LayerIndex:  l.LayerIndex,
			FeatureType: l.FeatureType,
		})
	}

	return snap
}

// titleDTO resolves the anchor: the target feature's own anchor when the
// target still exists, otherwise the title's stored points.
func titleDTO(f *models.Feature, byID map[int]*models.Feature) models.TitleDTO {
	dto := models.TitleDTO{
		ID:              f.ID,
		Name:            f.Title.Name,
		Description:     f.Title.Description,
		Size:            f.Title.Size,
		TargetFeatureID: f.Title.TargetFeatureID,
		Points:          pointsToDTO(f.Points),
	}

	if target, ok := byID[f.Title.TargetFeatureID]; ok {
		if p, ok := target.AnchorPoint(); ok {
			dto.AnchorX, dto.AnchorY, dto.HasAnchor = p.X, p.Y, true
			return dto
		}
	}
	if p, ok := f.AnchorPoint(); ok {
		dto.AnchorX, dto.AnchorY, dto.HasAnchor = p.X, p.Y, true
	}
	return dto
}

func firstPoint(f *models.Feature) geometry.Point {
	if len(f.Points) == 0 {
		return geometry.Point{}
	}
	return f.Points[0]
}

func pointsToDTO(points []geometry.Point) []models.PointDTO {
	out := make([]models.PointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, models.PointDTO{X: p.X, Y: p.Y})
	}
	return out
}
