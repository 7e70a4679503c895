package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration takes a single argument.
type HandlerBundle struct {
	// User endpoints.
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	UserProfileHandler      gin.HandlerFunc

	// Vehicle catalogue endpoints.
	ListVehiclesHandler gin.HandlerFunc
	GetVehicleHandler   gin.HandlerFunc

	// Customer booking endpoints.
	CreateBookingHandler  gin.HandlerFunc
	ListMyBookingsHandler gin.HandlerFunc
	TrackBookingHandler   gin.HandlerFunc
	PaymentIntentHandler  gin.HandlerFunc

	// Admin fleet endpoints.
	AdminCreateVehicleHandler  gin.HandlerFunc
	AdminListVehiclesHandler   gin.HandlerFunc
	AdminUpdateVehicleHandler  gin.HandlerFunc
	AdminDeleteVehicleHandler  gin.HandlerFunc
	AdminUploadImageHandler    gin.HandlerFunc
	AdminRecomputeAvailability gin.HandlerFunc

	// Admin booking endpoints.
	AdminCreateBookingHandler gin.HandlerFunc
	AdminListBookingsHandler  gin.HandlerFunc
	AdminGetBookingHandler    gin.HandlerFunc
	AdminUpdateBookingHandler gin.HandlerFunc
	AdminUpdateStatusHandler  gin.HandlerFunc
	AdminDeleteBookingHandler gin.HandlerFunc

	// Admin payment and invoice endpoints.
	AdminRecordPaymentHandler   gin.HandlerFunc
	AdminListPaymentsHandler    gin.HandlerFunc
	AdminSyncInvoiceHandler     gin.HandlerFunc
	AdminInvoiceSnapshotHandler gin.HandlerFunc

	// Reports.
	AdminDashboardHandler gin.HandlerFunc
}
