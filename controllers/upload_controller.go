package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vmaslov/mycars-backend/services"
	"github.com/vmaslov/mycars-backend/utils"
)

// POST /api/upload
//
// The generic upload flow: any file type, hard 10 MiB cap, stored under a
// fresh random name so concurrent uploads never collide.
func UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	if verr := services.ValidateUploadSize(fileHeader.Size); verr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []*services.ValidationError{verr}})
		return
	}

	objectPath, publicURL, err := utils.UploadGenericFile(fileHeader)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "file uploaded",
		"path":    objectPath,
		"url":     publicURL,
	})
}
