package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doctors-portal/doctors-portal-api/internal/models"
)

// GetDoctors lists every doctor profile for the UI.
func (h *Handler) GetDoctors(c *gin.Context) {
	doctors, err := h.Store.Doctors(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve doctors"})
		return
	}

	c.JSON(http.StatusOK, doctors)
}

// CreateDoctor registers a doctor from a multipart form carrying name, email
// and an image file. The image bytes are stored exactly as uploaded.
func (h *Handler) CreateDoctor(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	if name == "" || email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and email are required"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
		return
	}

	doctor := models.Doctor{
		Name:  name,
		Email: email,
		Image: image,
	}
	if err := h.Store.CreateDoctor(c.Request.Context(), &doctor); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create doctor"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": doctor.ID})
}
