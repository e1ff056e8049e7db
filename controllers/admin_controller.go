package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vmaslov/mycars-backend/config"
	"github.com/vmaslov/mycars-backend/models"
)

type carRow struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Manufacturer string    `json:"manufacturer"`
	TimeCreate   time.Time `json:"time_create"`
	IsPublished  int       `json:"is_published"`
	BriefInfo    string    `json:"brief_info"`
	PriceWithTax string    `json:"price_with_tax"`
	ImageURL     string    `json:"image_url"`
}

// GET /api/admin/cars
//
// The primary admin listing: composable status/price-range/manufacturer
// filters, free-text search over title or manufacturer name, and the two
// computed columns.
func GetCarsAdmin(c *gin.Context) {
	query := config.DB.Model(&models.Car{}).Scopes(
		models.FilterStatus(c.Query("pub_status")),
		models.FilterPriceRange(c.Query("price_range")),
		models.SearchTitleOrManufacturer(c.Query("search")),
	)

	if raw := c.Query("manufacturer_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid manufacturer_id"})
			return
		}
		query = query.Where("cars.manufacturer_id = ?", id)
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(carsPerPage)))
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = carsPerPage
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not count cars"})
		return
	}

	var cars []models.Car
	if err := query.
		Scopes(models.DefaultOrder).
		Preload("Manufacturer").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&cars).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load cars"})
		return
	}

	rows := make([]carRow, 0, len(cars))
	for _, car := range cars {
		manufacturerName := ""
		if car.Manufacturer != nil {
			manufacturerName = car.Manufacturer.Name
		}
		rows = append(rows, carRow{
			ID:           car.ID,
			Title:        car.Title,
			Manufacturer: manufacturerName,
			TimeCreate:   car.TimeCreate,
			IsPublished:  car.IsPublished,
			BriefInfo:    car.BriefInfo(),
			PriceWithTax: car.PriceWithTax(),
			ImageURL:     carImageURL(&car),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  rows,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

type bulkActionInput struct {
	IDs []uint `json:"ids" binding:"required"`
}

// POST /api/admin/cars/publish
func PublishCars(c *gin.Context) {
	bulkSetStatus(c, models.StatusPublished)
}

// POST /api/admin/cars/unpublish
func UnpublishCars(c *gin.Context) {
	bulkSetStatus(c, models.StatusDraft)
}

func bulkSetStatus(c *gin.Context, status int) {
	var input bulkActionInput
	if err := c.ShouldBindJSON(&input); err != nil || len(input.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids are required"})
		return
	}

	// One statement, so concurrent admin edits never observe a partial batch.
	res := config.DB.Model(&models.Car{}).
		Where("id IN ?", input.IDs).
		Update("is_published", status)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update publication status"})
		return
	}

	severity := "success"
	message := fmt.Sprintf("%d cars published", res.RowsAffected)
	if status == models.StatusDraft {
		severity = "warning"
		message = fmt.Sprintf("%d cars unpublished", res.RowsAffected)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  message,
		"count":    res.RowsAffected,
		"severity": severity,
	})
}

type publishStatusInput struct {
	IsPublished *int `json:"is_published" binding:"required"`
}

// PATCH /api/admin/cars/:id/publish-status
//
// Inline status edit for a single row of the admin listing.
func SetPublishStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var input publishStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "is_published is required"})
		return
	}
	if *input.IsPublished != models.StatusDraft && *input.IsPublished != models.StatusPublished {
		c.JSON(http.StatusBadRequest, gin.H{"error": "is_published must be 0 or 1"})
		return
	}

	var car models.Car
	if err := config.DB.First(&car, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "car not found"})
		return
	}

	if err := config.DB.Model(&car).Update("is_published", *input.IsPublished).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update publication status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "status updated", "car": car})
}
