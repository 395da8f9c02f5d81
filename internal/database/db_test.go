package database

import (
	"path/filepath"
	"testing"

	"foodshare-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCreatesFileAndTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db", "food_wastage.db")

	db, err := Open(path)
	require.NoError(t, err)

	for _, model := range []any{
		&models.Provider{},
		&models.Receiver{},
		&models.FoodListing{},
		&models.Claim{},
	} {
		assert.True(t, db.Migrator().HasTable(model))
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "food_wastage.db")

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Provider{Name: "Annapurna Kitchen"}).Error)

	// Reopening migrates again without touching existing rows.
	db2, err := Open(path)
	require.NoError(t, err)

	var count int64
	db2.Model(&models.Provider{}).Count(&count)
	assert.EqualValues(t, 1, count)
}
