package worldmap_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ink-and-realm/core/database"
	"ink-and-realm/feature/auth"
	"ink-and-realm/feature/worldmap"
	"ink-and-realm/feature/worldmap/models"
)

type allowIdentity struct{}

func (allowIdentity) Resolve(_ context.Context, _ string, _ int) (int, error) {
	return 1, nil
}

type denyIdentity struct{}

func (denyIdentity) Resolve(_ context.Context, _ string, _ int) (int, error) {
	return 0, auth.ErrUnauthorized
}

func setupApp(t *testing.T, identity worldmap.IdentityResolver) *fiber.App {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	f := worldmap.NewFeature(db, identity, nil, zap.NewNop())
	require.NoError(t, f.Migrate())

	app := fiber.New()
	require.NoError(t, f.Load(app))
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (int, []byte) {
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, buf.Bytes()
}

func TestHandleCreateAndGetMap(t *testing.T) {
	app := setupApp(t, allowIdentity{})

	status, body := postJSON(t, app, "/maps/", models.CreateMapRequest{Name: "Westmarch", Width: 100, Height: 100})
	require.Equal(t, 200, status)

	var snap models.MapSnapshot
	require.NoError(t, json.Unmarshal(body, &snap))
	assert.Equal(t, "Westmarch", snap.Name)
	require.Greater(t, snap.ID, 0)

	req := httptest.NewRequest("GET", fmt.Sprintf("/maps/%d", snap.ID), nil)
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	req = httptest.NewRequest("GET", "/maps/999", nil)
	resp, err = app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleApplyEdits(t *testing.T) {
	app := setupApp(t, allowIdentity{})

	status, body := postJSON(t, app, "/maps/", models.CreateMapRequest{Name: "Edit Target"})
	require.Equal(t, 200, status)
	var created models.MapSnapshot
	require.NoError(t, json.Unmarshal(body, &created))

	status, body = postJSON(t, app, "/maps/edits", models.MapEditsRequest{
		MapID:      created.ID,
		AddedTrees: []models.TreeDTO{{X: 5, Y: 5, TreeType: "Oak"}},
	})
	require.Equal(t, 200, status)

	var snap models.MapSnapshot
	require.NoError(t, json.Unmarshal(body, &snap))
	require.Len(t, snap.Trees, 1)
	assert.Equal(t, "Oak", snap.Trees[0].TreeType)

	status, _ = postJSON(t, app, "/maps/edits", models.MapEditsRequest{MapID: 999})
	assert.Equal(t, 404, status)
}

func TestHandleAddTree(t *testing.T) {
	app := setupApp(t, allowIdentity{})

	status, body := postJSON(t, app, "/maps/", models.CreateMapRequest{Name: "Trees"})
	require.Equal(t, 200, status)
	var created models.MapSnapshot
	require.NoError(t, json.Unmarshal(body, &created))

	status, body = postJSON(t, app, "/maps/tree", models.AddTreeRequest{
		MapID: created.ID,
		Tree:  models.TreeDTO{X: 1, Y: 2, TreeType: "Pine"},
	})
	require.Equal(t, 200, status)

	var snap models.MapSnapshot
	require.NoError(t, json.Unmarshal(body, &snap))
	require.Len(t, snap.Trees, 1)
	assert.Equal(t, "Pine", snap.Trees[0].TreeType)
}

func TestHandlersRejectUnauthenticated(t *testing.T) {
	app := setupApp(t, denyIdentity{})

	req := httptest.NewRequest("GET", "/maps/", nil)
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	status, _ := postJSON(t, app, "/maps/", models.CreateMapRequest{Name: "Nope"})
	assert.Equal(t, 401, status)

	status, _ = postJSON(t, app, "/maps/edits", models.MapEditsRequest{MapID: 1})
	assert.Equal(t, 401, status)
}

func TestHandleInvalidBody(t *testing.T) {
	app := setupApp(t, allowIdentity{})

	req := httptest.NewRequest("POST", "/maps/edits", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
