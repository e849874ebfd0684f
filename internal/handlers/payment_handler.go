package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreatePaymentIntent asks Stripe for a charge intent covering the given
// price and relays the client secret the frontend completes payment with.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	clientSecret, err := h.Payments.CreateIntent(req.Price)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}
