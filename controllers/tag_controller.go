package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vmaslov/mycars-backend/config"
	"github.com/vmaslov/mycars-backend/models"
)

// GET /api/admin/tags
func GetTags(c *gin.Context) {
	var tags []models.Tag

	query := config.DB.Model(&models.Tag{})
	if name := c.Query("name"); name != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%")
	}

	if err := query.Order("name ASC").Find(&tags).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load tags"})
		return
	}

	c.JSON(http.StatusOK, tags)
}

type tagInput struct {
	Name string `json:"name" binding:"required"`
}

// POST /api/admin/tags
func CreateTag(c *gin.Context) {
	var input tagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	var count int64
	config.DB.Model(&models.Tag{}).Where("LOWER(name) = LOWER(?)", input.Name).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "a tag with this name already exists"})
		return
	}

	tag := models.Tag{Name: input.Name}
	if err := config.DB.Create(&tag).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "a tag with this name already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "tag created", "tag": tag})
}

// DELETE /api/admin/tags/:id
func DeleteTag(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var tag models.Tag
	if err := config.DB.First(&tag, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "tag not found"})
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&tag).Association("Cars").Clear(); err != nil {
			return err
		}
		return tx.Delete(&tag).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete tag"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "tag deleted"})
}
