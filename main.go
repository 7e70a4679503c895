package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fleetbook/config"
	"fleetbook/database"
	bookingRepoPkg "fleetbook/database/repository/booking"
	counterRepoPkg "fleetbook/database/repository/counter"
	invoiceRepoPkg "fleetbook/database/repository/invoice"
	paymentRepoPkg "fleetbook/database/repository/payment"
	userRepoPkg "fleetbook/database/repository/user"
	vehicleRepoPkg "fleetbook/database/repository/vehicle"
	"fleetbook/handlers"
	"fleetbook/middleware"
	"fleetbook/routes"
	"fleetbook/services/booking"
	"fleetbook/services/invoice"
	"fleetbook/services/notification"
	"fleetbook/services/payment"
	"fleetbook/services/report"
	"fleetbook/services/storage"
	"fleetbook/services/user"
	"fleetbook/services/vehicle"
	"fleetbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/sendgrid/sendgrid-go"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := utils.GetLogger()

	ctx := context.Background()
	client, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to mongo: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Sugar().Errorf("main: mongo disconnect: %v", err)
		}
	}()
	db := client.Database(cfg.DatabaseName)

	cacheClient, err := utils.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisCacheDB)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to redis cache: %v", err)
	}
	lockClient, err := utils.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisLockDB)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to redis lock store: %v", err)
	}

	stripe.Key = cfg.StripeKey

	// Optional integrations. The server runs without them; the features
	// they back return errors or are skipped.
	notifier := &notification.DefaultNotificationService{
		FromEmail: cfg.EmailFrom,
		FromName:  cfg.EmailFromName,
	}
	if cfg.FirebaseCredentialsFile != "" {
		fcm, err := utils.FirebaseMessaging(ctx, cfg.FirebaseCredentialsFile)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize firebase messaging: %v", err)
		}
		notifier.FCM = fcm
	}
	if cfg.SendGridAPIKey != "" {
		notifier.SendGrid = sendgrid.NewSendClient(cfg.SendGridAPIKey)
	}

	var storageService storage.StorageService
	if cfg.CloudinaryCloudName != "" {
		storageService, err = storage.NewCloudinaryStorage(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize cloudinary storage: %v", err)
		}
	}

	// Create the Gin router.
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	// Repositories.
	vehicleRepo := vehicleRepoPkg.NewMongoVehicleRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo(db)
	invoiceRepo := invoiceRepoPkg.NewMongoInvoiceRepo(db)
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	counterRepo := counterRepoPkg.NewMongoCounterRepo(db)

	// Services.
	userService := &user.DefaultUserService{
		Repo:      userRepo,
		JWTSecret: []byte(cfg.JWTSecret),
	}
	invoiceService := &invoice.DefaultInvoiceService{
		Repo:        invoiceRepo,
		BookingRepo: bookingRepo,
		PaymentRepo: paymentRepo,
		UserRepo:    userRepo,
		VehicleRepo: vehicleRepo,
		Counter:     counterRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:        bookingRepo,
		VehicleRepo: vehicleRepo,
		UserRepo:    userRepo,
		Counter:     counterRepo,
		Invoices:    invoiceService,
		Lock:        utils.NewRedisVehicleLock(lockClient),
		Cache:       cacheClient,
		Notifier:    notifier,
	}
	paymentService := &payment.DefaultPaymentService{
		Repo:           paymentRepo,
		BookingRepo:    bookingRepo,
		Invoices:       invoiceService,
		StripeCurrency: cfg.StripeCurrency,
	}
	vehicleService := &vehicle.DefaultVehicleService{
		Repo:        vehicleRepo,
		BookingRepo: bookingRepo,
	}
	reportService := &report.DefaultReportService{
		BookingRepo: bookingRepo,
		PaymentRepo: paymentRepo,
	}

	// Handlers.
	userHandler := handlers.NewUserHandler(userService)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService, storageService)
	bookingHandler := handlers.NewBookingHandler(bookingService, paymentService)
	adminHandler := handlers.NewAdminHandler(bookingService, paymentService, invoiceService, reportService)

	handlerBundle := &handlers.HandlerBundle{
		// User endpoints.
		RegisterUserHandler:     userHandler.RegisterHandler,
		AuthenticateUserHandler: userHandler.AuthenticateHandler,
		UserProfileHandler:      userHandler.ProfileHandler,

		// Vehicle catalogue endpoints.
		ListVehiclesHandler: vehicleHandler.ListHandler,
		GetVehicleHandler:   vehicleHandler.GetHandler,

		// Customer booking endpoints.
		CreateBookingHandler:  bookingHandler.CreateHandler,
		ListMyBookingsHandler: bookingHandler.ListMineHandler,
		TrackBookingHandler:   bookingHandler.TrackHandler,
		PaymentIntentHandler:  bookingHandler.PaymentIntentHandler,

		// Admin fleet endpoints.
		AdminCreateVehicleHandler:  vehicleHandler.CreateHandler,
		AdminListVehiclesHandler:   vehicleHandler.ListHandler,
		AdminUpdateVehicleHandler:  vehicleHandler.UpdateHandler,
		AdminDeleteVehicleHandler:  vehicleHandler.DeleteHandler,
		AdminUploadImageHandler:    vehicleHandler.UploadImageHandler,
		AdminRecomputeAvailability: vehicleHandler.RecomputeAvailabilityHandler,

		// Admin booking endpoints.
		AdminCreateBookingHandler: adminHandler.CreateBookingHandler,
		AdminListBookingsHandler:  adminHandler.ListBookingsHandler,
		AdminGetBookingHandler:    adminHandler.GetBookingHandler,
		AdminUpdateBookingHandler: adminHandler.UpdateBookingHandler,
		AdminUpdateStatusHandler:  adminHandler.UpdateStatusHandler,
		AdminDeleteBookingHandler: adminHandler.DeleteBookingHandler,

		// Admin payment and invoice endpoints.
		AdminRecordPaymentHandler:   adminHandler.RecordPaymentHandler,
		AdminListPaymentsHandler:    adminHandler.ListPaymentsHandler,
		AdminSyncInvoiceHandler:     adminHandler.SyncInvoiceHandler,
		AdminInvoiceSnapshotHandler: adminHandler.InvoiceSnapshotHandler,

		// Reports.
		AdminDashboardHandler: adminHandler.DashboardHandler,
	}

	routes.RegisterRoutes(router, handlerBundle, []byte(cfg.JWTSecret))

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Wait for an interrupt, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: forced shutdown: %v", err)
	}
	logger.Info("Server exited cleanly")
}
