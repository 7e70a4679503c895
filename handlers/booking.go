package handlers

import (
	"net/http"

	"fleetbook/services/booking"
	"fleetbook/services/payment"
	"fleetbook/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the customer-facing booking endpoints.
type BookingHandler struct {
	Svc      booking.BookingService
	Payments payment.PaymentService
}

func NewBookingHandler(svc booking.BookingService, payments payment.PaymentService) *BookingHandler {
	return &BookingHandler{Svc: svc, Payments: payments}
}

// CreateHandler books a vehicle for the authenticated customer.
func (h *BookingHandler) CreateHandler(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var in booking.CreateBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input: " + err.Error()})
		return
	}
	b, err := h.Svc.Create(c.Request.Context(), actor, in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respond(c, http.StatusCreated, b)
}

// ListMineHandler returns the actor's bookings, newest first.
func (h *BookingHandler) ListMineHandler(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	bookings, err := h.Svc.ListForUser(c.Request.Context(), actor.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respond(c, http.StatusOK, bookings)
}

// TrackHandler looks a booking up by its public reference. No auth: the
// reference itself is the capability.
func (h *BookingHandler) TrackHandler(c *gin.Context) {
	b, err := h.Svc.TrackByRef(c.Request.Context(), c.Param("ref"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respond(c, http.StatusOK, b)
}

// PaymentIntentHandler creates a Stripe PaymentIntent for the booking's
// outstanding balance and returns its client secret.
func (h *BookingHandler) PaymentIntentHandler(c *gin.Context) {
	if _, ok := actorFrom(c); !ok {
		return
	}
	clientSecret, err := h.Payments.CreateStripeIntent(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"clientSecret": clientSecret})
}
