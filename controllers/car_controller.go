package controllers

import (
	"math"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/vmaslov/mycars-backend/config"
	"github.com/vmaslov/mycars-backend/models"
	"github.com/vmaslov/mycars-backend/services"
	"github.com/vmaslov/mycars-backend/utils"
)

const carsPerPage = 5

// GET /api/cars
func GetPublishedCars(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	query := config.DB.Model(&models.Car{}).Scopes(models.Published)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not count cars"})
		return
	}

	var cars []models.Car
	if err := query.
		Scopes(models.DefaultOrder).
		Preload("Manufacturer").
		Preload("Tags").
		Limit(carsPerPage).
		Offset((page - 1) * carsPerPage).
		Find(&cars).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load cars"})
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(carsPerPage)))
	c.JSON(http.StatusOK, gin.H{
		"title": "Home",
		"menu":  utils.Menu,
		"cars":  cars,
		"pagination": gin.H{
			"page":       page,
			"limit":      carsPerPage,
			"total":      total,
			"pages":      totalPages,
			"page_range": utils.PageWindow(page, totalPages, 2),
		},
	})
}

// GET /api/cars/:slug
func GetCarBySlug(c *gin.Context) {
	var car models.Car
	if err := config.DB.
		Preload("Manufacturer").
		Preload("Tags").
		Preload("Detail").
		Where("slug = ?", c.Param("slug")).
		First(&car).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "car not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"title":     car.Title,
		"menu":      utils.Menu,
		"car":       car,
		"image_url": carImageURL(&car),
	})
}

// GET /api/about
func AboutPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title": "About",
		"menu":  utils.Menu,
	})
}

// POST /api/cars/quick
//
// The quick submission flow: title, description, price and an optional image.
// Only the digit check runs on the title, the slug is derived from the title
// and the car always starts as a draft.
func QuickAddCar(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	if verrs := services.ValidateQuickTitle(title); len(verrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": verrs})
		return
	}

	price, verr := services.ValidatePrice(c.PostForm("price"))
	if verr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []*services.ValidationError{verr}})
		return
	}

	car := models.Car{
		Title:       title,
		Slug:        models.MakeQuickSlug(title),
		Description: c.PostForm("description"),
		Price:       &price,
		IsPublished: models.StatusDraft,
	}

	taken, err := slugTaken(car.Slug, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not check slug"})
		return
	}
	if taken {
		c.JSON(http.StatusConflict, gin.H{"error": "a car with this slug already exists"})
		return
	}

	if fileHeader, err := c.FormFile("image"); err == nil {
		objectPath, ok := storeCarImage(c, fileHeader)
		if !ok {
			return
		}
		car.Image = &objectPath
	}

	if err := config.DB.Create(&car).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "a car with this slug already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "car submitted", "car": car})
}

// POST /api/cars
//
// The full submission flow: every car field, both title checks, an explicit
// (or generated) slug and optional manufacturer/tags/publication status.
func CreateCar(c *gin.Context) {
	car, ok := bindCarForm(c, 0)
	if !ok {
		return
	}

	if fileHeader, err := c.FormFile("image"); err == nil {
		objectPath, stored := storeCarImage(c, fileHeader)
		if !stored {
			return
		}
		car.Image = &objectPath
	}

	if err := config.DB.Create(car).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "a car with this slug already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "car created", "car": car})
}

// PUT /api/cars/:slug
func UpdateCar(c *gin.Context) {
	var existing models.Car
	if err := config.DB.Preload("Tags").Where("slug = ?", c.Param("slug")).First(&existing).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "car not found"})
		return
	}

	updated, ok := bindCarForm(c, existing.ID)
	if !ok {
		return
	}

	oldImage := ""
	if fileHeader, err := c.FormFile("image"); err == nil {
		objectPath, stored := storeCarImage(c, fileHeader)
		if !stored {
			return
		}
		if existing.Image != nil {
			oldImage = *existing.Image
		}
		existing.Image = &objectPath
	}

	existing.Title = updated.Title
	existing.Slug = updated.Slug
	existing.Description = updated.Description
	existing.Price = updated.Price
	existing.IsPublished = updated.IsPublished
	existing.ManufacturerID = updated.ManufacturerID

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&existing).Association("Tags").Replace(&updated.Tags); err != nil {
			return err
		}
		return tx.Save(&existing).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update car"})
		return
	}

	if oldImage != "" {
		_ = utils.DeleteObject(oldImage)
	}

	c.JSON(http.StatusOK, gin.H{"message": "car updated", "car": existing})
}

// DELETE /api/cars/:slug
func DeleteCar(c *gin.Context) {
	var car models.Car
	if err := config.DB.Where("slug = ?", c.Param("slug")).First(&car).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "car not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		return deleteCarTx(tx, &car)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete car"})
		return
	}

	if car.Image != nil {
		_ = utils.DeleteObject(*car.Image)
	}

	c.JSON(http.StatusOK, gin.H{"message": "car deleted"})
}

// bindCarForm validates the full-flow multipart fields and assembles a Car.
// excludeID is the record being updated, zero on create.
func bindCarForm(c *gin.Context, excludeID uint) (*models.Car, bool) {
	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return nil, false
	}
	if verrs := services.ValidateModelTitle(title); len(verrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": verrs})
		return nil, false
	}

	price, verr := services.ValidatePrice(c.PostForm("price"))
	if verr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []*services.ValidationError{verr}})
		return nil, false
	}

	slugValue := strings.TrimSpace(c.PostForm("slug"))
	if slugValue == "" {
		slugValue = slug.Make(title)
	}
	taken, err := slugTaken(slugValue, excludeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not check slug"})
		return nil, false
	}
	if taken {
		c.JSON(http.StatusConflict, gin.H{"error": "a car with this slug already exists"})
		return nil, false
	}

	car := &models.Car{
		Title:       title,
		Slug:        slugValue,
		Description: c.PostForm("description"),
		Price:       &price,
		IsPublished: models.StatusDraft,
	}
	if c.PostForm("is_published") == strconv.Itoa(models.StatusPublished) {
		car.IsPublished = models.StatusPublished
	}

	if raw := c.PostForm("manufacturer_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid manufacturer_id"})
			return nil, false
		}
		var manufacturer models.Manufacturer
		if err := config.DB.First(&manufacturer, id).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "manufacturer not found"})
			return nil, false
		}
		car.ManufacturerID = &manufacturer.ID
	}

	if rawIDs := c.PostFormArray("tag_ids"); len(rawIDs) > 0 {
		ids := make([]uint, 0, len(rawIDs))
		for _, raw := range rawIDs {
			id, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tag id"})
				return nil, false
			}
			ids = append(ids, uint(id))
		}
		var tags []models.Tag
		if err := config.DB.Find(&tags, ids).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load tags"})
			return nil, false
		}
		if len(tags) != len(ids) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown tag id"})
			return nil, false
		}
		car.Tags = tags
	}

	return car, true
}

// storeCarImage validates the upload as an image and stores it under a fresh
// random name. Responds on the context and returns false on failure.
func storeCarImage(c *gin.Context, fileHeader *multipart.FileHeader) (string, bool) {
	if verr := services.ValidateImageContent(fileHeader.Header.Get("Content-Type")); verr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []*services.ValidationError{verr}})
		return "", false
	}
	objectPath, _, err := utils.UploadCarImage(fileHeader)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store image"})
		return "", false
	}
	return objectPath, true
}

func slugTaken(slugValue string, excludeID uint) (bool, error) {
	var count int64
	err := config.DB.Model(&models.Car{}).
		Where("slug = ? AND id <> ?", slugValue, excludeID).
		Count(&count).Error
	return count > 0, err
}

// deleteCarTx removes the car, its detail and its tag links. Tags and the
// manufacturer survive.
func deleteCarTx(tx *gorm.DB, car *models.Car) error {
	if err := tx.Where("car_id = ?", car.ID).Delete(&models.CarDetail{}).Error; err != nil {
		return err
	}
	if err := tx.Model(car).Association("Tags").Clear(); err != nil {
		return err
	}
	return tx.Delete(car).Error
}

func carImageURL(car *models.Car) string {
	if car.Image == nil {
		return ""
	}
	return utils.PublicURL(*car.Image)
}
