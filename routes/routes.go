package routes

import (
	"net/http"
	"time"

	"fleetbook/handlers"
	"fleetbook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers registration, login and profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle, jwtSecret []byte) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (require authentication).
		api.Use(middleware.JWTAuthMiddleware(jwtSecret))
		api.GET("/me", hb.UserProfileHandler)
	}
}

// RegisterVehicleRoutes registers the public vehicle catalogue.
func RegisterVehicleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/vehicles")
	{
		api.GET("", hb.ListVehiclesHandler)
		api.GET("/:id", hb.GetVehicleHandler)
	}
}

// RegisterBookingRoutes registers the customer booking endpoints. Tracking
// by reference stays public; the reference itself is the capability.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle, jwtSecret []byte) {
	api := r.Group("/api/bookings")
	{
		api.GET("/track/:ref", hb.TrackBookingHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(jwtSecret))
		protected.POST("", hb.CreateBookingHandler)
		protected.GET("/mine", hb.ListMyBookingsHandler)
		protected.POST("/:id/payment-intent", hb.PaymentIntentHandler)
	}
}

// RegisterAdminRoutes registers the dashboard endpoints. Everything here
// requires the admin role.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle, jwtSecret []byte) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.JWTAuthMiddleware(jwtSecret), middleware.RequireAdmin())
	{
		admin.POST("/vehicles", hb.AdminCreateVehicleHandler)
		admin.GET("/vehicles", hb.AdminListVehiclesHandler)
		admin.PUT("/vehicles/:id", hb.AdminUpdateVehicleHandler)
		admin.DELETE("/vehicles/:id", hb.AdminDeleteVehicleHandler)
		admin.POST("/vehicles/:id/images", hb.AdminUploadImageHandler)
		admin.POST("/vehicles/:id/recompute-availability", hb.AdminRecomputeAvailability)

		admin.POST("/bookings", hb.AdminCreateBookingHandler)
		admin.GET("/bookings", hb.AdminListBookingsHandler)
		admin.GET("/bookings/:id", hb.AdminGetBookingHandler)
		admin.PUT("/bookings/:id", hb.AdminUpdateBookingHandler)
		admin.PATCH("/bookings/:id/status", hb.AdminUpdateStatusHandler)
		admin.DELETE("/bookings/:id", hb.AdminDeleteBookingHandler)

		admin.POST("/bookings/:id/payments", hb.AdminRecordPaymentHandler)
		admin.GET("/bookings/:id/payments", hb.AdminListPaymentsHandler)
		admin.GET("/bookings/:id/invoice", hb.AdminInvoiceSnapshotHandler)
		admin.POST("/invoices/:id/sync", hb.AdminSyncInvoiceHandler)

		admin.GET("/reports/dashboard", hb.AdminDashboardHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Fleetbook"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, jwtSecret []byte) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb, jwtSecret)
	RegisterVehicleRoutes(r, hb)
	RegisterBookingRoutes(r, hb, jwtSecret)
	RegisterAdminRoutes(r, hb, jwtSecret)
	RegisterHealthRoute(r)
}
