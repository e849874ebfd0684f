package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/doctors-portal/doctors-portal-api/internal/middleware"
	"github.com/doctors-portal/doctors-portal-api/internal/models"
)

// GetAdminStatus reports whether the account for an email has the admin role.
func (h *Handler) GetAdminStatus(c *gin.Context) {
	email := c.Param("email")

	user, err := h.Store.UserByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": user.IsAdmin()})
}

// CreateUser saves a new account record.
func (h *Handler) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.Store.CreateUser(c.Request.Context(), &user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// UpsertUser creates or updates an account keyed by email. Sign-in flows use
// this so that repeat sign-ins never duplicate a record.
func (h *Handler) UpsertUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if user.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	result, err := h.Store.UpsertUserByEmail(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// MakeAdmin grants the admin role to a target account. Only a verified
// requester whose own stored record is already admin may do this; every other
// caller gets an explicit denial and the target is left untouched.
func (h *Handler) MakeAdmin(c *gin.Context) {
	requester, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "You do not have access to make an admin"})
		return
	}

	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	account, err := h.Store.UserByEmail(c.Request.Context(), requester)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve requester account"})
		return
	}
	if !account.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"message": "You do not have access to make an admin"})
		return
	}

	result, err := h.Store.GrantAdmin(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, result)
}
