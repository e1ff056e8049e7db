package models

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&Manufacturer{}, &Tag{}, &Car{}, &CarDetail{}, &User{}))
	return db
}

func floatPtr(v float64) *float64 { return &v }

func TestPublishedScopeFollowsStatus(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&Car{Title: "Camry", Slug: "camry", IsPublished: StatusPublished}).Error)
	require.NoError(t, db.Create(&Car{Title: "Vesta", Slug: "vesta", IsPublished: StatusDraft}).Error)

	var published []Car
	require.NoError(t, db.Scopes(Published).Find(&published).Error)
	require.Len(t, published, 1)
	assert.Equal(t, "camry", published[0].Slug)

	// Publishing the draft makes it visible on the next read.
	require.NoError(t, db.Model(&Car{}).Where("slug = ?", "vesta").Update("is_published", StatusPublished).Error)
	require.NoError(t, db.Scopes(Published).Find(&published).Error)
	assert.Len(t, published, 2)

	// And unpublishing hides it again.
	require.NoError(t, db.Model(&Car{}).Where("slug = ?", "camry").Update("is_published", StatusDraft).Error)
	require.NoError(t, db.Scopes(Published).Find(&published).Error)
	require.Len(t, published, 1)
	assert.Equal(t, "vesta", published[0].Slug)
}

func TestSlugUniqueness(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&Car{Title: "Accord", Slug: "honda-accord"}).Error)

	err := db.Create(&Car{Title: "Another Accord", Slug: "honda-accord"}).Error
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&Car{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestTagNameUniqueness(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&Tag{Name: "sedan"}).Error)
	require.Error(t, db.Create(&Tag{Name: "sedan"}).Error)
}

func TestFilterPriceRange(t *testing.T) {
	db := setupTestDB(t)

	cars := []Car{
		{Title: "Cheap", Slug: "cheap", Price: floatPtr(10000)},
		{Title: "Lower Mid", Slug: "lower-mid", Price: floatPtr(20000)},
		{Title: "Upper Mid", Slug: "upper-mid", Price: floatPtr(50000)},
		{Title: "Pricey", Slug: "pricey", Price: floatPtr(60000)},
	}
	for i := range cars {
		require.NoError(t, db.Create(&cars[i]).Error)
	}

	var got []Car
	require.NoError(t, db.Scopes(FilterPriceRange("low")).Find(&got).Error)
	require.Len(t, got, 1)
	assert.Equal(t, "cheap", got[0].Slug)

	require.NoError(t, db.Scopes(FilterPriceRange("medium")).Find(&got).Error)
	assert.Len(t, got, 2)

	require.NoError(t, db.Scopes(FilterPriceRange("high")).Find(&got).Error)
	require.Len(t, got, 1)
	assert.Equal(t, "pricey", got[0].Slug)

	// Unknown value leaves the query unfiltered.
	require.NoError(t, db.Scopes(FilterPriceRange("")).Find(&got).Error)
	assert.Len(t, got, 4)
}

func TestFiltersCompose(t *testing.T) {
	db := setupTestDB(t)

	toyota := Manufacturer{Name: "Toyota", Country: "Japan"}
	require.NoError(t, db.Create(&toyota).Error)

	cars := []Car{
		{Title: "Camry", Slug: "camry", Price: floatPtr(25000), IsPublished: StatusPublished, ManufacturerID: &toyota.ID},
		{Title: "Supra", Slug: "supra", Price: floatPtr(55000), IsPublished: StatusPublished, ManufacturerID: &toyota.ID},
		{Title: "Vesta", Slug: "vesta", Price: floatPtr(25000), IsPublished: StatusDraft},
	}
	for i := range cars {
		require.NoError(t, db.Create(&cars[i]).Error)
	}

	var got []Car
	require.NoError(t, db.Model(&Car{}).Scopes(
		FilterStatus("published"),
		FilterPriceRange("medium"),
		SearchTitleOrManufacturer("toyota"),
	).Find(&got).Error)
	require.Len(t, got, 1)
	assert.Equal(t, "camry", got[0].Slug)
}

func TestSearchTitleOrManufacturer(t *testing.T) {
	db := setupTestDB(t)

	toyota := Manufacturer{Name: "Toyota", Country: "Japan"}
	require.NoError(t, db.Create(&toyota).Error)

	require.NoError(t, db.Create(&Car{Title: "Camry", Slug: "camry", ManufacturerID: &toyota.ID}).Error)
	require.NoError(t, db.Create(&Car{Title: "Vesta", Slug: "vesta"}).Error)

	var got []Car
	require.NoError(t, db.Model(&Car{}).Scopes(SearchTitleOrManufacturer("TOY")).Find(&got).Error)
	require.Len(t, got, 1)
	assert.Equal(t, "camry", got[0].Slug)

	require.NoError(t, db.Model(&Car{}).Scopes(SearchTitleOrManufacturer("vest")).Find(&got).Error)
	require.Len(t, got, 1)
	assert.Equal(t, "vesta", got[0].Slug)

	require.NoError(t, db.Model(&Car{}).Scopes(SearchTitleOrManufacturer("zzz")).Find(&got).Error)
	assert.Empty(t, got)
}

func TestDefaultOrder(t *testing.T) {
	db := setupTestDB(t)

	older := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	cars := []Car{
		{Title: "Zed", Slug: "zed", TimeCreate: older},
		{Title: "Beta", Slug: "beta", TimeCreate: newer},
		{Title: "Alpha", Slug: "alpha", TimeCreate: newer},
	}
	for i := range cars {
		require.NoError(t, db.Create(&cars[i]).Error)
	}

	var got []Car
	require.NoError(t, db.Scopes(DefaultOrder).Find(&got).Error)
	require.Len(t, got, 3)
	// Newest first, ties broken alphabetically.
	assert.Equal(t, "alpha", got[0].Slug)
	assert.Equal(t, "beta", got[1].Slug)
	assert.Equal(t, "zed", got[2].Slug)
}

func TestTimeUpdateRefreshesOnSave(t *testing.T) {
	db := setupTestDB(t)

	car := Car{Title: "Camry", Slug: "camry"}
	require.NoError(t, db.Create(&car).Error)
	created := car.TimeUpdate

	time.Sleep(10 * time.Millisecond)
	car.Description = "updated"
	require.NoError(t, db.Save(&car).Error)

	assert.True(t, !car.TimeUpdate.Before(created))
	assert.True(t, !car.TimeUpdate.Before(car.TimeCreate))
}
