package share

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ink-and-realm/core/database"
	"ink-and-realm/feature/share/models"
	"ink-and-realm/feature/worldmap"
	wmmodels "ink-and-realm/feature/worldmap/models"
)

type staticIdentity struct{ userID int }

func (s staticIdentity) Resolve(_ context.Context, _ string, _ int) (int, error) {
	return s.userID, nil
}

func setupShare(t *testing.T) (*Service, *gorm.DB, *wmmodels.MapSnapshot) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	maps := worldmap.NewFeature(db, staticIdentity{userID: 1}, nil, zap.NewNop())
	require.NoError(t, maps.Migrate())

	snap, err := maps.Service().CreateMap(context.Background(), &wmmodels.CreateMapRequest{Name: "Shared Realm"})
	require.NoError(t, err)

	svc := NewService(db, maps.Service(), zap.NewNop(), Config{ShareDays: 30})
	require.NoError(t, svc.Migrate())
	return svc, db, snap
}

func TestCreateAndResolveShare(t *testing.T) {
	svc, _, m := setupShare(t)
	ctx := context.Background()

	resp, err := svc.CreateShare(ctx, "", 1, m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.ID, resp.MapID)
	assert.Len(t, resp.ShareCode, 32)

	snap, err := svc.ResolveShare(ctx, resp.ShareCode)
	require.NoError(t, err)
	assert.Equal(t, "Shared Realm", snap.Name)
}

func TestCreateShareRefreshesExistingRow(t *testing.T) {
	svc, db, m := setupShare(t)
	ctx := context.Background()

	first, err := svc.CreateShare(ctx, "", 1, m.ID)
	require.NoError(t, err)
	second, err := svc.CreateShare(ctx, "", 1, m.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.ShareCode, second.ShareCode)

	var count int64
	require.NoError(t, db.Model(&models.MapShare{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "one share row per map")

	// the old code stops resolving
	_, err = svc.ResolveShare(ctx, first.ShareCode)
	assert.ErrorIs(t, err, ErrShareNotFound)
}

func TestCreateShareUnknownMap(t *testing.T) {
	svc, _, _ := setupShare(t)
	_, err := svc.CreateShare(context.Background(), "", 1, 999)
	assert.ErrorIs(t, err, worldmap.ErrMapNotFound)
}

func TestResolveShareRejectsClosedAndExpired(t *testing.T) {
	svc, db, m := setupShare(t)
	ctx := context.Background()

	resp, err := svc.CreateShare(ctx, "", 1, m.ID)
	require.NoError(t, err)

	require.NoError(t, svc.CloseShare(ctx, "", 1, m.ID))
	_, err = svc.ResolveShare(ctx, resp.ShareCode)
	assert.ErrorIs(t, err, ErrShareNotFound)

	// reopen, then force the expiry into the past
	resp, err = svc.CreateShare(ctx, "", 1, m.ID)
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.MapShare{}).
		Where("map_id = ?", m.ID).
		Update("expires_utc", time.Now().UTC().Add(-time.Hour)).Error)

	_, err = svc.ResolveShare(ctx, resp.ShareCode)
	assert.ErrorIs(t, err, ErrShareNotFound)
}

func TestResolveShareBlankCode(t *testing.T) {
	svc, _, _ := setupShare(t)
	_, err := svc.ResolveShare(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrShareNotFound)
}
