package models

import (
	"sort"

	"ink-and-realm/core/geometry"
)

// MapRow is the maps table. UserID is nullable: legacy maps predate
// accounts.
type MapRow struct {
	ID       int           `gorm:"column:id;primaryKey"`
	UserID   *int          `gorm:"column:user_id;index"`
	Name     string        `gorm:"column:name"`
	Width    float64       `gorm:"column:width"`
	Height   float64       `gorm:"column:height"`
	Features []FeatureRow  `gorm:"foreignKey:MapID"`
	Layers   []MapLayerRow `gorm:"foreignKey:MapID"`
}

// TableName overrides the table name.
func (MapRow) TableName() string {
	return "maps"
}

// FeatureRow is the single-table feature store: a kind discriminator plus
// nullable kind-specific columns.
type FeatureRow struct {
	ID                  int      `gorm:"column:id;primaryKey"`
	MapID               int      `gorm:"column:map_id;index"`
	FeatureType         string   `gorm:"column:feature_type;size:16"`
	AllowPointPlacement bool     `gorm:"column:allow_point_placement"`
	ZIndex              int      `gorm:"column:z_index"`
	Size                *float64 `gorm:"column:size"`

	TreeType        *string `gorm:"column:tree_type"`
	HouseType       *string `gorm:"column:house_type"`
	CharacterType   *string `gorm:"column:character_type"`
	CharacterName   *string `gorm:"column:character_name"`
	Background      *string `gorm:"column:background"`
	Occupation      *string `gorm:"column:occupation"`
	Personality     *string `gorm:"column:personality"`
	TitleName       *string `gorm:"column:title_name"`
	Description     *string `gorm:"column:description"`
	TargetFeatureID *int    `gorm:"column:target_feature_id"`
	WaterType       *string `gorm:"column:water_type"`
	LandType        *string `gorm:"column:land_type"`
	ElevationType   *string `gorm:"column:elevation_type"`
	BridgeType      *string `gorm:"column:bridge_type"`
	TownType        *string `gorm:"column:town_type"`

	Points        []FeaturePointRow  `gorm:"foreignKey:FeatureID"`
	Structures    []TownStructureRow `gorm:"foreignKey:TownFeatureID"`
	Relationships []RelationshipRow  `gorm:"foreignKey:SourceCharacterID"`
}

// TableName overrides the table name.
func (FeatureRow) TableName() string {
	return "features"
}

// FeaturePointRow is one ordered vertex of a feature.
type FeaturePointRow struct {
	ID        int     `gorm:"column:id;primaryKey"`
	FeatureID int     `gorm:"column:feature_id;index"`
	X         float64 `gorm:"column:x"`
	Y         float64 `gorm:"column:y"`
	SortOrder int     `gorm:"column:sort_order"`
}

// TableName overrides the table name.
func (FeaturePointRow) TableName() string {
	return "feature_points"
}

// RelationshipRow is a directed relationship edge. RelationshipType holds
// the serialized tag list (JSON array, legacy rows a plain string).
type RelationshipRow struct {
	ID                int    `gorm:"column:id;primaryKey"`
	SourceCharacterID int    `gorm:"column:source_character_id;index"`
	TargetFeatureID   int    `gorm:"column:target_feature_id;index"`
	RelationshipType  string `gorm:"column:relationship_type"`
	Description       string `gorm:"column:description"`
}

// TableName overrides the table name.
func (RelationshipRow) TableName() string {
	return "feature_relationships"
}

// MapLayerRow is one display layer, unique per (map, index).
type MapLayerRow struct {
	ID          int    `gorm:"column:id;primaryKey"`
	MapID       int    `gorm:"column:map_id;uniqueIndex:idx_map_layer_index"`
	LayerKey    string `gorm:"column:layer_key"`
	LayerIndex  int    `gorm:"column:layer_index;uniqueIndex:idx_map_layer_index"`
	FeatureType string `gorm:"column:feature_type"`
}

// TableName overrides the table name.
func (MapLayerRow) TableName() string {
	return "map_layers"
}

// TownStructureRow is a building belonging to a Town feature.
type TownStructureRow struct {
	ID                int     `gorm:"column:id;primaryKey"`
	TownFeatureID     int     `gorm:"column:town_feature_id;index"`
	TownStructureType string  `gorm:"column:town_structure_type"`
	RelativeX         float64 `gorm:"column:relative_x"`
	RelativeY         float64 `gorm:"column:relative_y"`
	TextureKey        string  `gorm:"column:texture_key"`
}

// TableName overrides the table name.
func (TownStructureRow) TableName() string {
	return "town_structures"
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func floatVal(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

func intVal(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// ToDomain converts a feature row (with its preloaded points and
// structures) into the tagged-union domain form.
func (r *FeatureRow) ToDomain() *Feature {
	points := make([]geometry.Point, 0, len(r.Points))
	ordered := make([]FeaturePointRow, len(r.Points))
	copy(ordered, r.Points)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SortOrder < ordered[j].SortOrder
	})
	for _, p := range ordered {
		points = append(points, geometry.Point{X: p.X, Y: p.Y})
	}

	f := &Feature{
		ID:                  r.ID,
		Kind:                FeatureKind(r.FeatureType),
		ZIndex:              r.ZIndex,
		AllowPointPlacement: r.AllowPointPlacement,
		Points:              points,
	}

	switch f.Kind {
	case KindTree:
		f.Tree = &TreeDetail{
			TreeType: NormalizeTreeType(strVal(r.TreeType)),
			Size:     geometry.PointSize(floatVal(r.Size, 1.0)),
		}
	case KindHouse:
		f.House = &HouseDetail{
			HouseType: NormalizeHouseType(strVal(r.HouseType)),
			Size:      geometry.PointSize(floatVal(r.Size, 1.0)),
		}
	case KindCharacter:
		f.Character = &CharacterDetail{
			CharacterType: NormalizeCharacterType(strVal(r.CharacterType)),
			Name:          strVal(r.CharacterName),
			Background:    strVal(r.Background),
			Occupation:    strVal(r.Occupation),
			Personality:   strVal(r.Personality),
			Size:          geometry.PointSize(floatVal(r.Size, 1.0)),
		}
	case KindTitle:
		f.Title = &TitleDetail{
			Name:            strVal(r.TitleName),
			Description:     strVal(r.Description),
			Size:            geometry.ClampSize(floatVal(r.Size, 1.0), TitleSizeMin, TitleSizeMax),
			TargetFeatureID: intVal(r.TargetFeatureID),
		}
	case KindWater:
		f.Water = &WaterDetail{WaterType: NormalizeWaterType(strVal(r.WaterType))}
	case KindLand:
		f.Land = &LandDetail{
			LandType:      NormalizeLandType(strVal(r.LandType)),
			ElevationType: NormalizeElevationType(strVal(r.ElevationType)),
		}
	case KindBridge:
		f.Bridge = &BridgeDetail{BridgeType: NormalizeBridgeType(strVal(r.BridgeType))}
	case KindTown:
		structures := make([]TownStructure, 0, len(r.Structures))
		for _, s := range r.Structures {
			structures = append(structures, TownStructure{
				ID:                s.ID,
				TownStructureType: NormalizeTownStructureType(s.TownStructureType),
				RelativeX:         s.RelativeX,
				RelativeY:         s.RelativeY,
				TextureKey:        s.TextureKey,
			})
		}
		f.Town = &TownDetail{
			TownType:   NormalizeTownType(strVal(r.TownType)),
			Structures: structures,
		}
	}

	return f
}

// ToRow converts a domain feature back into its row form for the given
// map. Points carry their insertion order as sort_order.
func (f *Feature) ToRow(mapID int) FeatureRow {
	row := FeatureRow{
		ID:                  f.ID,
		MapID:               mapID,
		FeatureType:         string(f.Kind),
		AllowPointPlacement: f.AllowPointPlacement,
		ZIndex:              f.ZIndex,
	}

	for i, p := range f.Points {
		row.Points = append(row.Points, FeaturePointRow{
			FeatureID: f.ID,
			X:         p.X,
			Y:         p.Y,
			SortOrder: i,
		})
	}

	switch f.Kind {
	case KindTree:
		row.TreeType = strPtr(f.Tree.TreeType)
		row.Size = floatPtr(f.Tree.Size)
	case KindHouse:
		row.HouseType = strPtr(f.House.HouseType)
		row.Size = floatPtr(f.House.Size)
	case KindCharacter:
		row.CharacterType = strPtr(f.Character.CharacterType)
		row.CharacterName = strPtr(f.Character.Name)
		row.Background = strPtr(f.Character.Background)
		row.Occupation = strPtr(f.Character.Occupation)
		row.Personality = strPtr(f.Character.Personality)
		row.Size = floatPtr(f.Character.Size)
	case KindTitle:
		row.TitleName = strPtr(f.Title.Name)
		row.Description = strPtr(f.Title.Description)
		row.Size = floatPtr(f.Title.Size)
		if f.Title.TargetFeatureID > 0 {
			row.TargetFeatureID = intPtr(f.Title.TargetFeatureID)
		}
	case KindWater:
		row.WaterType = strPtr(f.Water.WaterType)
	case KindLand:
		row.LandType = strPtr(f.Land.LandType)
		row.ElevationType = strPtr(f.Land.ElevationType)
	case KindBridge:
		row.BridgeType = strPtr(f.Bridge.BridgeType)
	case KindTown:
		row.TownType = strPtr(f.Town.TownType)
		for _, s := range f.Town.Structures {
			row.Structures = append(row.Structures, TownStructureRow{
				ID:                s.ID,
				TownFeatureID:     f.ID,
				TownStructureType: s.TownStructureType,
				RelativeX:         s.RelativeX,
				RelativeY:         s.RelativeY,
				TextureKey:        s.TextureKey,
			})
		}
	}

	return row
}

// ToDomain converts a relationship row, deserializing the tag list.
func (r *RelationshipRow) ToDomain() *Relationship {
	return &Relationship{
		ID:                r.ID,
		SourceCharacterID: r.SourceCharacterID,
		TargetFeatureID:   r.TargetFeatureID,
		Types:             DecodeTypes(r.RelationshipType),
		Description:       r.Description,
	}
}

// ToRow converts a domain relationship, serializing the tag list.
func (rel *Relationship) ToRow() RelationshipRow {
	return RelationshipRow{
		ID:                rel.ID,
		SourceCharacterID: rel.SourceCharacterID,
		TargetFeatureID:   rel.TargetFeatureID,
		RelationshipType:  EncodeTypes(rel.Types),
		Description:       rel.Description,
	}
}

// ToDomain converts a map row and its preloaded collections. Relationship
// rows ride on their source character's association.
func (r *MapRow) ToDomain() *Map {
	m := &Map{
		ID:     r.ID,
		UserID: intVal(r.UserID),
		Name:   r.Name,
		Width:  r.Width,
		Height: r.Height,
	}

	for i := range r.Features {
		row := &r.Features[i]
		m.Features = append(m.Features, row.ToDomain())
		for j := range row.Relationships {
			m.Relationships = append(m.Relationships, row.Relationships[j].ToDomain())
		}
	}

	layers := make([]MapLayerRow, len(r.Layers))
	copy(layers, r.Layers)
	sort.SliceStable(layers, func(i, j int) bool {
		return layers[i].LayerIndex < layers[j].LayerIndex
	})
	for _, l := range layers {
		m.Layers = append(m.Layers, Layer{
			LayerKey:    l.LayerKey,
			LayerIndex:  l.LayerIndex,
			FeatureType: l.FeatureType,
		})
	}

	return m
}
