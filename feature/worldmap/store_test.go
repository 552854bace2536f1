package worldmap

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"ink-and-realm/feature/worldmap/models"
	"ink-and-realm/feature/worldmap/reconcile"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestStore_ListMapsSQL(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "width", "height"}).
		AddRow(1, 4, "Westmarch", 1000.0, 800.0).
		AddRow(2, 4, "The Reach", 500.0, 500.0)
	mock.ExpectQuery("SELECT \\* FROM `maps` WHERE user_id = \\?").
		WithArgs(4).
		WillReturnRows(rows)

	maps, err := store.ListMaps(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, maps, 2)
	assert.Equal(t, "Westmarch", maps[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_SaveEditsCleanBatchWritesNothing(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	m := &models.Map{ID: 1}
	err := store.SaveEdits(context.Background(), m, &reconcile.Changes{})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet(), "no SQL issued for a clean batch")
}

func TestStore_SaveEditsRoundTrip(t *testing.T) {
	db := setupDB(t)
	store := NewStore(db)
	ctx := context.Background()

	m, err := store.CreateMap(ctx, 1, "Round Trip", 100, 100)
	require.NoError(t, err)

	req := &models.MapEditsRequest{
		MapID:      m.ID,
		AddedTrees: []models.TreeDTO{{X: 1, Y: 2, TreeType: "Oak"}},
		AreaLayers: []models.AreaLayerDTO{{LayerKey: "base", LayerIndex: 0, FeatureType: "Land"}},
	}
	changes := reconcile.ApplyEdits(m, req)
	require.NoError(t, store.SaveEdits(ctx, m, changes))

	treeID := changes.AddedFeatures[0].ID
	require.Greater(t, treeID, 0, "insert backfills the id")

	loaded, err := store.LoadMap(ctx, m.ID, 1)
	require.NoError(t, err)
	require.Len(t, loaded.Features, 1)
	assert.Equal(t, treeID, loaded.Features[0].ID)
	require.Len(t, loaded.Layers, 1)
	assert.Equal(t, "base", loaded.Layers[0].LayerKey)

	// update replaces points wholesale
	changes = reconcile.ApplyEdits(loaded, &models.MapEditsRequest{
		MapID:        m.ID,
		UpdatedTrees: []models.TreeDTO{{ID: treeID, X: 9, Y: 9, TreeType: "Birch", Size: 2}},
	})
	require.NoError(t, store.SaveEdits(ctx, loaded, changes))

	reloaded, err := store.LoadMap(ctx, m.ID, 1)
	require.NoError(t, err)
	require.Len(t, reloaded.Features, 1)
	assert.Equal(t, "Birch", reloaded.Features[0].Tree.TreeType)
	require.Len(t, reloaded.Features[0].Points, 1)
	assert.Equal(t, 9.0, reloaded.Features[0].Points[0].X)
}

func TestStore_SaveEditsDeletesDependentRows(t *testing.T) {
	db := setupDB(t)
	store := NewStore(db)
	ctx := context.Background()

	m, err := store.CreateMap(ctx, 1, "Cascade", 100, 100)
	require.NoError(t, err)

	changes := reconcile.ApplyEdits(m, &models.MapEditsRequest{
		MapID:           m.ID,
		AddedTrees:      []models.TreeDTO{{X: 1, Y: 1}},
		AddedCharacters: []models.CharacterDTO{{X: 2, Y: 2, Name: "Bob"}},
	})
	require.NoError(t, store.SaveEdits(ctx, m, changes))

	loaded, err := store.LoadMap(ctx, m.ID, 1)
	require.NoError(t, err)
	var treeID, bobID int
	for _, f := range loaded.Features {
		switch f.Kind {
		case models.KindTree:
			treeID = f.ID
		case models.KindCharacter:
			bobID = f.ID
		}
	}

	changes = reconcile.ApplyEdits(loaded, &models.MapEditsRequest{
		MapID: m.ID,
		AddedRelationships: []models.RelationshipEdit{
			{SourceCharacterID: bobID, TargetFeatureID: treeID, Types: []string{"owns"}},
		},
	})
	require.NoError(t, store.SaveEdits(ctx, loaded, changes))

	// deleting the character removes its outgoing relationship rows
	loaded, err = store.LoadMap(ctx, m.ID, 1)
	require.NoError(t, err)
	changes = reconcile.ApplyEdits(loaded, &models.MapEditsRequest{
		MapID:               m.ID,
		DeletedCharacterIDs: []int{bobID},
	})
	require.NoError(t, store.SaveEdits(ctx, loaded, changes))

	final, err := store.LoadMap(ctx, m.ID, 1)
	require.NoError(t, err)
	require.Len(t, final.Features, 1)
	assert.Empty(t, final.Relationships)

	var pointCount int64
	require.NoError(t, db.Model(&models.FeaturePointRow{}).Count(&pointCount).Error)
	assert.Equal(t, int64(1), pointCount, "only the surviving tree's point remains")
}
