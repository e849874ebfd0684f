package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/doctors-portal/doctors-portal-api/internal/middleware"
	"github.com/doctors-portal/doctors-portal-api/internal/models"
)

// GetAppointments lists a patient's appointments for one date. Only the owner
// may list: the verified principal's email must equal the email query exactly.
func (h *Handler) GetAppointments(c *gin.Context) {
	email := c.Query("email")

	principal, ok := middleware.Principal(c)
	if !ok || principal != email {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "You are not authorized"})
		return
	}

	date := c.Query("date")
	appointments, err := h.Store.AppointmentsByOwner(c.Request.Context(), email, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve appointments"})
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// GetAppointment fetches a single appointment by id, used by the payment page.
// A missing record serializes as null rather than an error status.
func (h *Handler) GetAppointment(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		return
	}

	apt, err := h.Store.AppointmentByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve appointment"})
		return
	}

	c.JSON(http.StatusOK, apt)
}

// CreateAppointment books a slot.
func (h *Handler) CreateAppointment(c *gin.Context) {
	var apt models.Appointment
	if err := c.ShouldBindJSON(&apt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.Store.CreateAppointment(c.Request.Context(), &apt); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create appointment"})
		return
	}

	c.JSON(http.StatusCreated, apt)
}

// AttachPayment records payment info on an appointment after a successful
// charge.
func (h *Handler) AttachPayment(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		return
	}

	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.Store.AttachPayment(c.Request.Context(), id, payment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update appointment"})
		return
	}

	c.JSON(http.StatusOK, result)
}
