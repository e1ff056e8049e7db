package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vmaslov/mycars-backend/config"
	"github.com/vmaslov/mycars-backend/models"
)

type carDetailInput struct {
	CarID        uint   `json:"car_id" binding:"required"`
	Engine       string `json:"engine" binding:"required"`
	Transmission string `json:"transmission" binding:"required"`
	Mileage      *uint  `json:"mileage"`
}

// POST /api/admin/car-details
func CreateCarDetail(c *gin.Context) {
	var input carDetailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "car_id, engine and transmission are required"})
		return
	}

	var car models.Car
	if err := config.DB.First(&car, input.CarID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "car not found"})
		return
	}

	// One detail record per car.
	var count int64
	config.DB.Model(&models.CarDetail{}).Where("car_id = ?", input.CarID).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "this car already has a detail record"})
		return
	}

	detail := models.CarDetail{
		CarID:        input.CarID,
		Engine:       input.Engine,
		Transmission: input.Transmission,
		Mileage:      input.Mileage,
	}
	if err := config.DB.Create(&detail).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "this car already has a detail record"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "car detail created", "detail": detail})
}

// GET /api/admin/car-details
func GetCarDetails(c *gin.Context) {
	query := config.DB.Model(&models.CarDetail{}).Preload("Car")

	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.
			Joins("JOIN cars ON cars.id = car_details.car_id").
			Where("LOWER(cars.title) LIKE LOWER(?) OR LOWER(engine) LIKE LOWER(?) OR LOWER(transmission) LIKE LOWER(?)",
				pattern, pattern, pattern)
	}

	var details []models.CarDetail
	if err := query.Order("car_details.id ASC").Find(&details).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load car details"})
		return
	}

	c.JSON(http.StatusOK, details)
}

// GET /api/admin/car-details/:id
func GetCarDetailByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var detail models.CarDetail
	if err := config.DB.Preload("Car").First(&detail, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "car detail not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": detail})
}

type carDetailUpdateInput struct {
	Engine       string `json:"engine" binding:"required"`
	Transmission string `json:"transmission" binding:"required"`
	Mileage      *uint  `json:"mileage"`
}

// PUT /api/admin/car-details/:id
func UpdateCarDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var detail models.CarDetail
	if err := config.DB.First(&detail, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "car detail not found"})
		return
	}

	var input carDetailUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "engine and transmission are required"})
		return
	}

	detail.Engine = input.Engine
	detail.Transmission = input.Transmission
	detail.Mileage = input.Mileage
	if err := config.DB.Save(&detail).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update car detail"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "car detail updated", "detail": detail})
}

// DELETE /api/admin/car-details/:id
func DeleteCarDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var detail models.CarDetail
	if err := config.DB.First(&detail, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "car detail not found"})
		return
	}

	if err := config.DB.Delete(&detail).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete car detail"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "car detail deleted"})
}
