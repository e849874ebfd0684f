package handlers

import (
	"github.com/doctors-portal/doctors-portal-api/internal/services"
	"github.com/doctors-portal/doctors-portal-api/internal/store"
)

// Handler carries the dependencies every endpoint needs: the document store,
// the payment bridge and the signing secret for issued tokens.
type Handler struct {
	Store     *store.Store
	Payments  *services.PaymentService
	JWTSecret string
}

func NewHandler(st *store.Store, payments *services.PaymentService, jwtSecret string) *Handler {
	return &Handler{
		Store:     st,
		Payments:  payments,
		JWTSecret: jwtSecret,
	}
}
