package models

import "ink-and-realm/core/geometry"

// Text field limits applied by normalization.
const (
	TitleNameMaxLen     = 128
	CharacterTextMaxLen = 512
	TitleNameDefault    = "Untitled"
	TitleSizeMin        = 0.5
	TitleSizeMax        = 3.0
)

// Map is one user's map with its full feature collection loaded.
// UserID 0 marks a legacy/anonymous map.
type Map struct {
	ID            int
	UserID        int
	Name          string
	Width         float64
	Height        float64
	Features      []*Feature
	Layers        []Layer
	Relationships []*Relationship
}

// Feature is the tagged union over all placeable map elements. Exactly
// one of the kind payload pointers is non-nil, matching Kind.
type Feature struct {
	ID                  int
	Kind                FeatureKind
	ZIndex              int
	AllowPointPlacement bool
	Points              []geometry.Point

	Tree      *TreeDetail
	House     *HouseDetail
	Character *CharacterDetail
	Title     *TitleDetail
	Water     *WaterDetail
	Land      *LandDetail
	Bridge    *BridgeDetail
	Town      *TownDetail
}

// TreeDetail is the payload of a Tree feature.
type TreeDetail struct {
	TreeType string
	Size     float64
}

// HouseDetail is the payload of a House feature.
type HouseDetail struct {
	HouseType string
	Size      float64
}

// CharacterDetail is the payload of a Character feature.
type CharacterDetail struct {
	CharacterType string
	Name          string
	Background    string
	Occupation    string
	Personality   string
	Size          float64
}

// TitleDetail is the payload of a Title feature. When TargetFeatureID is
// set the title anchors to that feature and its own points are unused.
type TitleDetail struct {
	Name            string
	Description     string
	Size            float64
	TargetFeatureID int
}

// WaterDetail is the payload of a Water polygon.
type WaterDetail struct {
	WaterType string
}

// LandDetail is the payload of a Land polygon.
type LandDetail struct {
	LandType      string
	ElevationType string
}

// BridgeDetail is the payload of a Bridge polygon.
type BridgeDetail struct {
	BridgeType string
}

// TownDetail is the payload of a Town polygon.
type TownDetail struct {
	TownType   string
	Structures []TownStructure
}

// TownStructure is a building placed inside a Town at a relative offset.
type TownStructure struct {
	ID                int
	TownStructureType string
	RelativeX         float64
	RelativeY         float64
	TextureKey        string
}

// Relationship is a directed, typed edge from a Character feature to any
// non-Title feature in the same map. At most one edge persists per
// (source, target) pair.
type Relationship struct {
	ID                int
	SourceCharacterID int
	TargetFeatureID   int
	Types             []string
	Description       string
}

// Layer is display/grouping metadata for area features, unique per
// (map, index).
type Layer struct {
	LayerKey    string
	LayerIndex  int
	FeatureType string
}

// AnchorPoint returns the feature's own anchor: its single point for
// point kinds, the polygon centroid for area kinds.
func (f *Feature) AnchorPoint() (geometry.Point, bool) {
	if len(f.Points) == 1 {
		return f.Points[0], true
	}
	return geometry.PolygonCentroid(f.Points)
}
