package controllers

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vmaslov/mycars-backend/config"
	"github.com/vmaslov/mycars-backend/models"
)

// setupTestDB points the global config.DB at a fresh in-memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Manufacturer{},
		&models.Tag{},
		&models.Car{},
		&models.CarDetail{},
		&models.User{},
	))

	config.DB = db
	return db
}

// newTestRouter registers the handlers under test without the auth chain.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/api/cars", GetPublishedCars)
	r.POST("/api/cars", CreateCar)
	r.POST("/api/cars/quick", QuickAddCar)
	r.GET("/api/cars/:slug", GetCarBySlug)
	r.PUT("/api/cars/:slug", UpdateCar)
	r.DELETE("/api/cars/:slug", DeleteCar)

	r.GET("/api/admin/cars", GetCarsAdmin)
	r.POST("/api/admin/cars/publish", PublishCars)
	r.POST("/api/admin/cars/unpublish", UnpublishCars)
	r.PATCH("/api/admin/cars/:id/publish-status", SetPublishStatus)
	r.DELETE("/api/admin/manufacturers/:id", DeleteManufacturer)
	r.POST("/api/admin/tags", CreateTag)
	r.POST("/api/admin/car-details", CreateCarDetail)

	return r
}

func multipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func floatPtr(v float64) *float64 { return &v }
