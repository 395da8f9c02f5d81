package listing

import (
	"testing"
	"time"

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

func datePtr(t time.Time) *time.Time { return &t }

func TestUpsertRejectsNegativeQuantity(t *testing.T) {
	db := testDB(t)

	err := Upsert(db, &models.FoodListing{Name: "Rice", Quantity: -1})
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))

	// Zero is a valid quantity.
	l := models.FoodListing{Name: "Rice", Quantity: 0}
	require.NoError(t, Upsert(db, &l))
	assert.NotZero(t, l.ID)
}

func TestUpsertToleratesDanglingProvider(t *testing.T) {
	db := testDB(t)

	missing := uint(424242)
	l := models.FoodListing{Name: "Bread", Quantity: 5, ProviderID: &missing}
	require.NoError(t, Upsert(db, &l))

	var got models.FoodListing
	require.NoError(t, db.First(&got, l.ID).Error)
	require.NotNil(t, got.ProviderID)
	assert.Equal(t, missing, *got.ProviderID)
}

func TestListSearchMatchesListingColumns(t *testing.T) {
	db := testDB(t)

	for _, l := range []models.FoodListing{
		{Name: "Veg Biryani", Quantity: 10, Location: "Chennai", FoodType: "Veg", MealType: "Lunch"},
		{Name: "Chicken Curry", Quantity: 4, Location: "Mumbai", FoodType: "Non-Veg", MealType: "Dinner"},
		{Name: "Fruit Bowl", Quantity: 7, Location: "Vegas Nagar", FoodType: "Vegan", MealType: "Snacks"},
	} {
		cl := l
		require.NoError(t, Upsert(db, &cl))
	}

	// "veg" hits name, location and food type across all three rows.
	got, err := List(db, "veg")
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = List(db, "dinner")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Chicken Curry", got[0].Name)
}

func TestDaysToExpiryIgnoresClockTime(t *testing.T) {
	today := time.Date(2026, 8, 28, 23, 30, 0, 0, time.Local)
	expiry := time.Date(2026, 8, 31, 0, 5, 0, 0, time.UTC)

	assert.Equal(t, 3, DaysToExpiry(expiry, today))
	assert.Equal(t, -2, DaysToExpiry(today.AddDate(0, 0, -2), today))
	assert.Equal(t, 0, DaysToExpiry(today, today))
}

func TestExpiringSoonBoundary(t *testing.T) {
	db := testDB(t)
	today := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	in3 := models.FoodListing{Name: "Soon", Quantity: 1, ExpiryDate: datePtr(today.AddDate(0, 0, 3))}
	in4 := models.FoodListing{Name: "Later", Quantity: 1, ExpiryDate: datePtr(today.AddDate(0, 0, 4))}
	expired := models.FoodListing{Name: "Expired", Quantity: 1, ExpiryDate: datePtr(today.AddDate(0, 0, -1))}
	noDate := models.FoodListing{Name: "No date", Quantity: 1}
	for _, l := range []*models.FoodListing{&in3, &in4, &expired, &noDate} {
		require.NoError(t, Upsert(db, l))
	}

	alerts, err := ExpiringSoon(db, today)
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	// Ascending by days to expiry: already expired items come first.
	assert.Equal(t, "Expired", alerts[0].Name)
	assert.Equal(t, -1, alerts[0].DaysToExpiry)
	assert.Equal(t, "Soon", alerts[1].Name)
	assert.Equal(t, 3, alerts[1].DaysToExpiry)
}

func TestExpiringSoonEmptyStore(t *testing.T) {
	db := testDB(t)

	alerts, err := ExpiringSoon(db, time.Now())
	require.NoError(t, err)
	assert.Empty(t, alerts)
}
