package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vmaslov/mycars-backend/config"
	"github.com/vmaslov/mycars-backend/models"
)

type manufacturerInput struct {
	Name    string `json:"name" binding:"required"`
	Country string `json:"country"`
}

// POST /api/admin/manufacturers
func CreateManufacturer(c *gin.Context) {
	var input manufacturerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	manufacturer := models.Manufacturer{Name: input.Name, Country: input.Country}
	if err := config.DB.Create(&manufacturer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create manufacturer"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "manufacturer created", "manufacturer": manufacturer})
}

// GET /api/admin/manufacturers
func GetManufacturers(c *gin.Context) {
	query := config.DB.Model(&models.Manufacturer{})

	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(country) LIKE LOWER(?)", pattern, pattern)
	}

	var manufacturers []models.Manufacturer
	if err := query.Order("name ASC").Find(&manufacturers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load manufacturers"})
		return
	}

	c.JSON(http.StatusOK, manufacturers)
}

// GET /api/admin/manufacturers/:id
func GetManufacturerDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var manufacturer models.Manufacturer
	if err := config.DB.Preload("Cars").First(&manufacturer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "manufacturer not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"manufacturer": manufacturer})
}

// PUT /api/admin/manufacturers/:id
func UpdateManufacturer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var manufacturer models.Manufacturer
	if err := config.DB.First(&manufacturer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "manufacturer not found"})
		return
	}

	var input manufacturerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	manufacturer.Name = input.Name
	manufacturer.Country = input.Country
	if err := config.DB.Save(&manufacturer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update manufacturer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "manufacturer updated", "manufacturer": manufacturer})
}

// DELETE /api/admin/manufacturers/:id
//
// Deleting a manufacturer deletes its cars as well. Each car goes through the
// usual cleanup so tags survive with their links cleared.
func DeleteManufacturer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var manufacturer models.Manufacturer
	if err := config.DB.First(&manufacturer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "manufacturer not found"})
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var cars []models.Car
		if err := tx.Where("manufacturer_id = ?", manufacturer.ID).Find(&cars).Error; err != nil {
			return err
		}
		for i := range cars {
			if err := deleteCarTx(tx, &cars[i]); err != nil {
				return err
			}
		}
		return tx.Delete(&manufacturer).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete manufacturer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "manufacturer and its cars deleted"})
}
