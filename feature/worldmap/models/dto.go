package models

// PointDTO is a 2D coordinate on the wire.
type PointDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MapSummary lists a map in the user's collection.
type MapSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MapSnapshot is the full reconstructed map returned after every read or
// edit batch. Titles carry resolved anchors.
type MapSnapshot struct {
	ID            int              `json:"id"`
	Name          string           `json:"name"`
	Width         float64          `json:"width"`
	Height        float64          `json:"height"`
	Trees         []TreeDTO        `json:"trees"`
	Houses        []HouseDTO       `json:"houses"`
	Characters    []CharacterDTO   `json:"characters"`
	Titles        []TitleDTO       `json:"titles"`
	WaterPolygons []AreaPolygonDTO `json:"waterPolygons"`
	LandPolygons  []AreaPolygonDTO `json:"landPolygons"`
	Bridges       []AreaPolygonDTO `json:"bridges"`
	Towns         []TownDTO        `json:"towns"`
	AreaLayers    []AreaLayerDTO   `json:"areaLayers"`
}

// TreeDTO is a tree point feature on the wire.
type TreeDTO struct {
	ID       int     `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	TreeType string  `json:"treeType"`
	Size     float64 `json:"size"`
}

// HouseDTO is a house point feature on the wire.
type HouseDTO struct {
	ID        int     `json:"id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	HouseType string  `json:"houseType"`
	Size      float64 `json:"size"`
}

// CharacterDTO is a character point feature on the wire. Relationships is
// populated only in snapshots, never read from edit requests.
type CharacterDTO struct {
	ID            int               `json:"id"`
	X             float64           `json:"x"`
	Y             float64           `json:"y"`
	CharacterType string            `json:"characterType"`
	Name          string            `json:"name"`
	Background    string            `json:"background"`
	Occupation    string            `json:"occupation"`
	Personality   string            `json:"personality"`
	Size          float64           `json:"size"`
	Relationships []RelationshipDTO `json:"relationships,omitempty"`
}

// RelationshipDTO is a relationship edge in a snapshot.
type RelationshipDTO struct {
	ID                int      `json:"id"`
	SourceCharacterID int      `json:"sourceCharacterId"`
	TargetFeatureID   int      `json:"targetFeatureId"`
	TargetFeatureType string   `json:"targetFeatureType"`
	Types             []string `json:"types"`
	Description       string   `json:"description"`
}

// TitleDTO is a title feature on the wire. AnchorX/AnchorY/HasAnchor are
// resolved at read time and ignored on edit requests.
type TitleDTO struct {
	ID              int        `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Size            float64    `json:"size"`
	TargetFeatureID int        `json:"targetFeatureId"`
	Points          []PointDTO `json:"points"`
	AnchorX         float64    `json:"anchorX"`
	AnchorY         float64    `json:"anchorY"`
	HasAnchor       bool       `json:"hasAnchor"`
}

// AreaPolygonDTO is a water/land/bridge polygon on the wire. FeatureType
// carries the kind-specific subtype (e.g. "Lake", "Forest", "Stone");
// Elevation applies to land polygons only.
type AreaPolygonDTO struct {
	ID          int        `json:"id"`
	FeatureType string     `json:"featureType"`
	Elevation   string     `json:"elevation,omitempty"`
	LayerIndex  int        `json:"layerIndex"`
	Points      []PointDTO `json:"points"`
}

// TownDTO is a town polygon with its structures.
type TownDTO struct {
	ID         int                `json:"id"`
	TownType   string             `json:"townType"`
	LayerIndex int                `json:"layerIndex"`
	Points     []PointDTO         `json:"points"`
	Structures []TownStructureDTO `json:"structures"`
}

// TownStructureDTO is one building inside a town.
type TownStructureDTO struct {
	ID                int     `json:"id"`
	TownStructureType string  `json:"townStructureType"`
	RelativeX         float64 `json:"relativeX"`
	RelativeY         float64 `json:"relativeY"`
	TextureKey        string  `json:"textureKey"`
}

// AreaLayerDTO is one ordered display layer.
type AreaLayerDTO struct {
	LayerKey    string `json:"layerKey"`
	LayerIndex  int    `json:"layerIndex"`
	FeatureType string `json:"featureType"`
}

// RelationshipEdit is one relationship addition or update in an edit
// batch. The reciprocal fields apply to additions only.
type RelationshipEdit struct {
	ID                    int      `json:"id"`
	SourceCharacterID     int      `json:"sourceCharacterId"`
	TargetFeatureID       int      `json:"targetFeatureId"`
	Types                 []string `json:"types"`
	Description           string   `json:"description"`
	CreateReciprocal      bool     `json:"createReciprocal"`
	ReciprocalTypes       []string `json:"reciprocalTypes"`
	ReciprocalDescription string   `json:"reciprocalDescription"`
}

// MapEditsRequest is one client edit batch. Id lists use 0/negative for
// "not applicable"; a nil AreaLayers slice means the request carries no
// layer metadata.
type MapEditsRequest struct {
	UserID       int    `json:"userId"`
	SessionToken string `json:"sessionToken"`
	MapID        int    `json:"mapId"`

	AddedTrees         []TreeDTO        `json:"addedTrees"`
	AddedHouses        []HouseDTO       `json:"addedHouses"`
	AddedCharacters    []CharacterDTO   `json:"addedCharacters"`
	AddedTitles        []TitleDTO       `json:"addedTitles"`
	AddedWaterPolygons []AreaPolygonDTO `json:"addedWaterPolygons"`
	AddedLandPolygons  []AreaPolygonDTO `json:"addedLandPolygons"`

	UpdatedTrees         []TreeDTO        `json:"updatedTrees"`
	UpdatedHouses        []HouseDTO       `json:"updatedHouses"`
	UpdatedCharacters    []CharacterDTO   `json:"updatedCharacters"`
	UpdatedTitles        []TitleDTO       `json:"updatedTitles"`
	UpdatedWaterPolygons []AreaPolygonDTO `json:"updatedWaterPolygons"`
	UpdatedLandPolygons  []AreaPolygonDTO `json:"updatedLandPolygons"`

	DeletedTreeIDs         []int `json:"deletedTreeIds"`
	DeletedHouseIDs        []int `json:"deletedHouseIds"`
	DeletedCharacterIDs    []int `json:"deletedCharacterIds"`
	DeletedTitleIDs        []int `json:"deletedTitleIds"`
	DeletedWaterPolygonIDs []int `json:"deletedWaterPolygonIds"`
	DeletedLandPolygonIDs  []int `json:"deletedLandPolygonIds"`

	AddedRelationships     []RelationshipEdit `json:"addedRelationships"`
	UpdatedRelationships   []RelationshipEdit `json:"updatedRelationships"`
	DeletedRelationshipIDs []int              `json:"deletedRelationshipIds"`

	AreaLayers []AreaLayerDTO `json:"areaLayers"`
}

// CreateMapRequest creates a new empty map for the resolved user.
type CreateMapRequest struct {
	UserID       int     `json:"userId"`
	SessionToken string  `json:"sessionToken"`
	Name         string  `json:"name"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
}

// AddTreeRequest is the single-feature convenience endpoint payload.
type AddTreeRequest struct {
	UserID       int     `json:"userId"`
	SessionToken string  `json:"sessionToken"`
	MapID        int     `json:"mapId"`
	Tree         TreeDTO `json:"tree"`
}

// AddHouseRequest is the single-feature convenience endpoint payload.
type AddHouseRequest struct {
	UserID       int      `json:"userId"`
	SessionToken string   `json:"sessionToken"`
	MapID        int      `json:"mapId"`
	House        HouseDTO `json:"house"`
}
