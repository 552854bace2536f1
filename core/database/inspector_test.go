package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTableColumns(t *testing.T) {
	cfg := Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, db)

	err = db.Exec("CREATE TABLE maps (id INTEGER PRIMARY KEY, user_id INTEGER, name TEXT)").Error
	assert.NoError(t, err)

	columns, err := GetTableColumns(db, "maps")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}

	assert.Equal(t, "integer", colMap["id"])
	assert.Equal(t, "integer", colMap["user_id"])
	assert.Equal(t, "text", colMap["name"])

	assert.True(t, HasTable(db, "maps"))
	assert.False(t, HasTable(db, "features"))

	// PRAGMA table_info returns an empty result for a missing table:
	// no error, no columns.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}
