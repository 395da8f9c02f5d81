package provider

import (
	"testing"

	"foodshare-backend/internal/database"
	"foodshare-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	return db
}

func TestUpsertAssignsIncreasingIDs(t *testing.T) {
	db := testDB(t)

	var ids []uint
	for _, name := range []string{"Annapurna Kitchen", "Green Grocers", "City Bakery"} {
		p := models.Provider{Name: name, City: "Chennai"}
		require.NoError(t, Upsert(db, &p))
		ids = append(ids, p.ID)
	}

	assert.Less(t, ids[0], ids[1])
	assert.Less(t, ids[1], ids[2])

	// Explicit high id bumps the sequence for later auto-assigns.
	p := models.Provider{ID: 100, Name: "Sunrise Hotel"}
	require.NoError(t, Upsert(db, &p))

	next := models.Provider{Name: "Corner Cafe"}
	require.NoError(t, Upsert(db, &next))
	assert.Greater(t, next.ID, uint(100))
}

func TestUpsertRequiresName(t *testing.T) {
	db := testDB(t)

	err := Upsert(db, &models.Provider{Name: "   "})
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))

	var count int64
	db.Model(&models.Provider{}).Count(&count)
	assert.Zero(t, count)
}

func TestUpsertOverwritesExistingRow(t *testing.T) {
	db := testDB(t)

	p := models.Provider{Name: "Annapurna Kitchen", Type: "Restaurant", City: "Chennai", Contact: "044-1234"}
	require.NoError(t, Upsert(db, &p))

	// Full-row replace: unset fields overwrite too.
	update := models.Provider{ID: p.ID, Name: "Annapurna Kitchens", City: "Madurai"}
	require.NoError(t, Upsert(db, &update))

	var got models.Provider
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.Equal(t, "Annapurna Kitchens", got.Name)
	assert.Equal(t, "Madurai", got.City)
	assert.Empty(t, got.Type)
	assert.Empty(t, got.Contact)

	var count int64
	db.Model(&models.Provider{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUpsertIsIdempotentForSameID(t *testing.T) {
	db := testDB(t)

	p := models.Provider{ID: 7, Name: "Green Grocers", Type: "Grocery Store", City: "Pune"}
	require.NoError(t, Upsert(db, &p))
	require.NoError(t, Upsert(db, &models.Provider{ID: 7, Name: "Green Grocers", Type: "Grocery Store", City: "Pune"}))

	var got []models.Provider
	require.NoError(t, db.Find(&got).Error)
	require.Len(t, got, 1)
	assert.Equal(t, "Green Grocers", got[0].Name)
	assert.Equal(t, "Pune", got[0].City)
}

func TestDeleteAbsentIDIsNoOp(t *testing.T) {
	db := testDB(t)

	p := models.Provider{Name: "City Bakery"}
	require.NoError(t, Upsert(db, &p))

	require.NoError(t, Delete(db, 9999))

	var count int64
	db.Model(&models.Provider{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestListSearchMatchesNameCityType(t *testing.T) {
	db := testDB(t)

	for _, p := range []models.Provider{
		{Name: "Annapurna Kitchen", Type: "Restaurant", City: "Chennai"},
		{Name: "Green Grocers", Type: "Grocery Store", City: "Pune"},
		{Name: "City Bakery", Type: "Bakery", City: "Greenfield"},
	} {
		cp := p
		require.NoError(t, Upsert(db, &cp))
	}

	all, err := List(db, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Case-insensitive substring over name, city and type.
	got, err := List(db, "GREEN")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Green Grocers", got[0].Name)
	assert.Equal(t, "City Bakery", got[1].Name)

	got, err = List(db, "restaurant")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Annapurna Kitchen", got[0].Name)
}
