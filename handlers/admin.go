package handlers

import (
	"net/http"
	"strconv"

	bookingRepo "fleetbook/database/repository/booking"
	"fleetbook/services/booking"
	"fleetbook/services/invoice"
	"fleetbook/services/payment"
	"fleetbook/services/report"
	"fleetbook/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the dashboard's booking, payment, invoice and report
// endpoints.
type AdminHandler struct {
	Bookings booking.BookingService
	Payments payment.PaymentService
	Invoices invoice.InvoiceService
	Reports  report.ReportService
}

func NewAdminHandler(bookings booking.BookingService, payments payment.PaymentService, invoices invoice.InvoiceService, reports report.ReportService) *AdminHandler {
	return &AdminHandler{Bookings: bookings, Payments: payments, Invoices: invoices, Reports: reports}
}

// CreateBookingHandler creates a booking on behalf of a customer.
func (h *AdminHandler) CreateBookingHandler(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var in booking.CreateBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input: " + err.Error()})
		return
	}
	b, err := h.Bookings.AdminCreate(c.Request.Context(), actor, in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respond(c, http.StatusCreated, b)
}

// ListBookingsHandler lists bookings with optional status, vehicle and user
// filters plus limit/offset paging.
func (h *AdminHandler) ListBookingsHandler(c *gin.Context) {
	filter := bookingRepo.ListFilter{
		Status:    c.Query("status"),
		VehicleID: c.Query("vehicleId"),
		UserID:    c.Query("userId"),
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.Offset = n
		}
	}
	bookings, err := h.Bookings.AdminList(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respond(c, http.StatusOK, bookings)
}

// GetBookingHandler returns a single booking by ID.
func (h *AdminHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Bookings.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respond(c, http.StatusOK, b)
}

// UpdateBookingHandler edits a booking's vehicle or window and reprices it.
func (h *AdminHandler) UpdateBookingHandler(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var in booking.UpdateBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input: " + err.Error()})
		return
	}
	b, err := h.Bookings.AdminUpdate(c.Request.Context(), actor, c.Param("id"), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respond(c, http.StatusOK, b)
}

// UpdateStatusHandler moves a booking through its lifecycle.
func (h *AdminHandler) UpdateStatusHandler(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var in struct {
		Status string `json:"status" binding:"required"`
		Note   string `json:"note,omitempty"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input: " + err.Error()})
		return
	}
	b, err := h.Bookings.UpdateStatus(c.Request.Context(), actor, c.Param("id"), in.Status, in.Note)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respond(c, http.StatusOK, b)
}

// DeleteBookingHandler removes a booking entirely.
func (h *AdminHandler) DeleteBookingHandler(c *gin.Context) {
	if err := h.Bookings.AdminDelete(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"deleted": true})
}

// RecordPaymentHandler appends a payment to the booking's ledger and
// settles the booking from the new total.
func (h *AdminHandler) RecordPaymentHandler(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var in payment.RecordPaymentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input: " + err.Error()})
		return
	}
	res, err := h.Payments.Record(c.Request.Context(), actor, c.Param("id"), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respond(c, http.StatusCreated, res)
}

// ListPaymentsHandler returns the booking's payment ledger and its sum.
func (h *AdminHandler) ListPaymentsHandler(c *gin.Context) {
	view, err := h.Payments.ListForBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respond(c, http.StatusOK, view)
}

// SyncInvoiceHandler recomputes an invoice's paid state from its booking's
// ledger.
func (h *AdminHandler) SyncInvoiceHandler(c *gin.Context) {
	inv, err := h.Invoices.SyncPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respond(c, http.StatusOK, inv)
}

// InvoiceSnapshotHandler returns the invoice together with its booking,
// payments, customer and vehicle, ready for rendering.
func (h *AdminHandler) InvoiceSnapshotHandler(c *gin.Context) {
	snap, err := h.Invoices.Snapshot(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respond(c, http.StatusOK, snap)
}

// DashboardHandler returns aggregate statistics for the admin dashboard.
func (h *AdminHandler) DashboardHandler(c *gin.Context) {
	stats, err := h.Reports.Dashboard(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respond(c, http.StatusOK, stats)
}
