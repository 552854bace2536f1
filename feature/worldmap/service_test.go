package worldmap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ink-and-realm/core/database"
	"ink-and-realm/feature/auth"
	"ink-and-realm/feature/worldmap/models"
)

type staticIdentity struct {
	userID int
	err    error
}

func (s staticIdentity) Resolve(_ context.Context, _ string, _ int) (int, error) {
	return s.userID, s.err
}

func setupDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, NewStore(db).Migrate())
	return db
}

func newTestService(t *testing.T) *Service {
	return NewService(NewStore(setupDB(t)), staticIdentity{userID: 1}, nil, zap.NewNop())
}

func createMap(t *testing.T, svc *Service) *models.MapSnapshot {
	snap, err := svc.CreateMap(context.Background(), &models.CreateMapRequest{
		Name:   "Test Realm",
		Width:  1000,
		Height: 800,
	})
	require.NoError(t, err)
	require.Greater(t, snap.ID, 0)
	return snap
}

func TestService_CreateAndListMaps(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	snap := createMap(t, svc)
	assert.Equal(t, "Test Realm", snap.Name)
	assert.Equal(t, 1000.0, snap.Width)
	assert.Empty(t, snap.Trees)

	maps, err := svc.ListMaps(ctx, "", 1)
	require.NoError(t, err)
	require.Len(t, maps, 1)
	assert.Equal(t, snap.ID, maps[0].ID)
}

func TestService_CreateMapDefaults(t *testing.T) {
	svc := newTestService(t)

	snap, err := svc.CreateMap(context.Background(), &models.CreateMapRequest{Name: "   "})
	require.NoError(t, err)
	assert.Equal(t, "New Map", snap.Name)
	assert.Equal(t, DefaultMapWidth, snap.Width)
	assert.Equal(t, DefaultMapHeight, snap.Height)
}

func TestService_Unauthorized(t *testing.T) {
	db := setupDB(t)
	svc := NewService(NewStore(db), staticIdentity{err: auth.ErrUnauthorized}, nil, zap.NewNop())

	_, err := svc.ListMaps(context.Background(), "", 0)
	assert.ErrorIs(t, err, auth.ErrUnauthorized)

	_, err = svc.ApplyEdits(context.Background(), &models.MapEditsRequest{MapID: 1})
	assert.ErrorIs(t, err, auth.ErrUnauthorized)
}

func TestService_GetMapNotFound(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.GetMap(context.Background(), "", 1, 999)
	assert.ErrorIs(t, err, ErrMapNotFound)
}

func TestService_TreeCharacterRelationshipScenario(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	m := createMap(t, svc)

	// Each batch persists before the next references its ids.
	snap, err := svc.ApplyEdits(ctx, &models.MapEditsRequest{
		MapID:      m.ID,
		AddedTrees: []models.TreeDTO{{X: 5, Y: 5, TreeType: "Oak"}},
	})
	require.NoError(t, err)
	require.Len(t, snap.Trees, 1)
	treeID := snap.Trees[0].ID
	require.Greater(t, treeID, 0)

	snap, err = svc.ApplyEdits(ctx, &models.MapEditsRequest{
		MapID:           m.ID,
		AddedCharacters: []models.CharacterDTO{{X: 1, Y: 1, Name: "Bob"}},
	})
	require.NoError(t, err)
	require.Len(t, snap.Characters, 1)
	bobID := snap.Characters[0].ID

	snap, err = svc.ApplyEdits(ctx, &models.MapEditsRequest{
		MapID: m.ID,
		AddedRelationships: []models.RelationshipEdit{
			{SourceCharacterID: bobID, TargetFeatureID: treeID, Types: []string{"owns"}},
		},
	})
	require.NoError(t, err)

	require.Len(t, snap.Trees, 1)
	require.Len(t, snap.Characters, 1)
	rels := snap.Characters[0].Relationships
	require.Len(t, rels, 1)
	assert.Equal(t, "Tree", rels[0].TargetFeatureType)
	assert.Equal(t, []string{"owns"}, rels[0].Types)
	assert.Greater(t, rels[0].ID, 0)

	// deleting the tree cascades the relationship away
	snap, err = svc.ApplyEdits(ctx, &models.MapEditsRequest{
		MapID:          m.ID,
		DeletedTreeIDs: []int{treeID},
	})
	require.NoError(t, err)
	assert.Empty(t, snap.Trees)
	require.Len(t, snap.Characters, 1)
	assert.Empty(t, snap.Characters[0].Relationships)

	// and the cascade survives a reload
	snap, err = svc.GetMap(ctx, "", 1, m.ID)
	require.NoError(t, err)
	assert.Empty(t, snap.Characters[0].Relationships)
}

func TestService_MismatchedRelationshipUpdateIsNoOp(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	m := createMap(t, svc)

	snap, err := svc.ApplyEdits(ctx, &models.MapEditsRequest{
		MapID:           m.ID,
		AddedTrees:      []models.TreeDTO{{X: 5, Y: 5}, {X: 6, Y: 6}},
		AddedCharacters: []models.CharacterDTO{{X: 1, Y: 1, Name: "Bob"}},
	})
	require.NoError(t, err)
	bobID := snap.Characters[0].ID
	treeA, treeB := snap.Trees[0].ID, snap.Trees[1].ID

	snap, err = svc.ApplyEdits(ctx, &models.MapEditsRequest{
		MapID: m.ID,
		AddedRelationships: []models.RelationshipEdit{
			{SourceCharacterID: bobID, TargetFeatureID: treeA, Types: []string{"owns"}},
		},
	})
	require.NoError(t, err)
	relID := snap.Characters[0].Relationships[0].ID

	_, err = svc.ApplyEdits(ctx, &models.MapEditsRequest{
		MapID: m.ID,
		UpdatedRelationships: []models.RelationshipEdit{
			{ID: relID, SourceCharacterID: bobID, TargetFeatureID: treeB, Types: []string{"tends"}},
		},
	})
	require.NoError(t, err)

	snap, err = svc.GetMap(ctx, "", 1, m.ID)
	require.NoError(t, err)
	rels := snap.Characters[0].Relationships
	require.Len(t, rels, 1)
	assert.Equal(t, treeA, rels[0].TargetFeatureID, "re-pointing an edge is rejected")
	assert.Equal(t, []string{"owns"}, rels[0].Types)
}

func TestService_TitleAnchorFollowsTarget(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	m := createMap(t, svc)

	snap, err := svc.ApplyEdits(ctx, &models.MapEditsRequest{
		MapID:      m.ID,
		AddedTrees: []models.TreeDTO{{X: 10, Y: 20, TreeType: "Oak"}},
	})
	require.NoError(t, err)
	treeID := snap.Trees[0].ID

	snap, err = svc.ApplyEdits(ctx, &models.MapEditsRequest{
		MapID: m.ID,
		AddedTitles: []models.TitleDTO{{
			Name:            "The Old Oak",
			TargetFeatureID: treeID,
			Points:          []models.PointDTO{{X: 500, Y: 500}},
		}},
	})
	require.NoError(t, err)

	require.Len(t, snap.Titles, 1)
	title := snap.Titles[0]
	assert.True(t, title.HasAnchor)
	assert.Equal(t, 10.0, title.AnchorX, "anchor follows the target, not the stored points")
	assert.Equal(t, 20.0, title.AnchorY)
}

func TestService_TitleAnchorFallsBackToOwnPoints(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	m := createMap(t, svc)

	snap, err := svc.ApplyEdits(ctx, &models.MapEditsRequest{
		MapID: m.ID,
		AddedTitles: []models.TitleDTO{{
			Name:   "Free Label",
			Points: []models.PointDTO{{X: 42, Y: 43}},
		}},
	})
	require.NoError(t, err)

	require.Len(t, snap.Titles, 1)
	assert.True(t, snap.Titles[0].HasAnchor)
	assert.Equal(t, 42.0, snap.Titles[0].AnchorX)
	assert.Equal(t, 43.0, snap.Titles[0].AnchorY)
}

func TestService_AreaPolygonsAndLayers(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	m := createMap(t, svc)

	square := []models.PointDTO{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	snap, err := svc.ApplyEdits(ctx, &models.MapEditsRequest{
		MapID: m.ID,
		AddedWaterPolygons: []models.AreaPolygonDTO{
			{FeatureType: "River", LayerIndex: 1, Points: square},
		},
		AddedLandPolygons: []models.AreaPolygonDTO{
			{FeatureType: "Forest", Elevation: "High", LayerIndex: 0, Points: square},
		},
		AreaLayers: []models.AreaLayerDTO{
			{LayerKey: "land-0", LayerIndex: 0, FeatureType: "Land"},
			{LayerKey: "water-1", LayerIndex: 1, FeatureType: "Water"},
		},
	})
	require.NoError(t, err)

	require.Len(t, snap.WaterPolygons, 1)
	assert.Equal(t, "River", snap.WaterPolygons[0].FeatureType)
	require.Len(t, snap.LandPolygons, 1)
	assert.Equal(t, "High", snap.LandPolygons[0].Elevation)
	require.Len(t, snap.AreaLayers, 2)

	// reload preserves point order
	snap, err = svc.GetMap(ctx, "", 1, m.ID)
	require.NoError(t, err)
	require.Len(t, snap.WaterPolygons[0].Points, 4)
	assert.Equal(t, models.PointDTO{X: 10, Y: 0}, snap.WaterPolygons[0].Points[1])
}

func TestService_AddTreeConvenience(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	m := createMap(t, svc)

	snap, err := svc.AddTree(ctx, &models.AddTreeRequest{
		MapID: m.ID,
		Tree:  models.TreeDTO{X: 3, Y: 4, TreeType: "Palm", Size: 2},
	})
	require.NoError(t, err)
	require.Len(t, snap.Trees, 1)
	assert.Equal(t, "Palm", snap.Trees[0].TreeType)

	snap, err = svc.AddHouse(ctx, &models.AddHouseRequest{
		MapID: m.ID,
		House: models.HouseDTO{X: 8, Y: 8, HouseType: "Cabin"},
	})
	require.NoError(t, err)
	require.Len(t, snap.Houses, 1)
	assert.Equal(t, "Cabin", snap.Houses[0].HouseType)
}

func TestService_DeleteMap(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	m := createMap(t, svc)

	_, err := svc.ApplyEdits(ctx, &models.MapEditsRequest{
		MapID:      m.ID,
		AddedTrees: []models.TreeDTO{{X: 1, Y: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMap(ctx, "", 1, m.ID))

	_, err = svc.GetMap(ctx, "", 1, m.ID)
	assert.ErrorIs(t, err, ErrMapNotFound)

	maps, err := svc.ListMaps(ctx, "", 1)
	require.NoError(t, err)
	assert.Empty(t, maps)
}

func TestService_OwnershipScoping(t *testing.T) {
	db := setupDB(t)
	owner := NewService(NewStore(db), staticIdentity{userID: 1}, nil, zap.NewNop())
	stranger := NewService(NewStore(db), staticIdentity{userID: 2}, nil, zap.NewNop())

	m := createMap(t, owner)

	_, err := stranger.GetMap(context.Background(), "", 2, m.ID)
	assert.ErrorIs(t, err, ErrMapNotFound)

	maps, err := stranger.ListMaps(context.Background(), "", 2)
	require.NoError(t, err)
	assert.Empty(t, maps)
}
