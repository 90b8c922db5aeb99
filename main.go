package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelms/config"
	"hotelms/cron"
	"hotelms/database"
	bookingRepoPkg "hotelms/database/repository/booking"
	catalogRepoPkg "hotelms/database/repository/catalog"
	reviewRepoPkg "hotelms/database/repository/review"
	userRepoPkg "hotelms/database/repository/user"
	"hotelms/handlers"
	"hotelms/routes"
	"hotelms/services/booking"
	"hotelms/services/catalog"
	"hotelms/services/review"
	"hotelms/services/user"
	"hotelms/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	stripe.Key = config.AppConfig.StripeKey

	// Cloudinary is optional; without credentials image uploads 503.
	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: cloudinary storage disabled: %v", err)
		storageService = nil
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	serviceRepo := catalogRepoPkg.NewMongoServiceRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	catalogService := &catalog.DefaultCatalogService{
		Repo:    serviceRepo,
		Storage: storageService,
	}
	reviewService := &review.DefaultReviewService{
		Repo:        reviewRepo,
		ServiceRepo: serviceRepo,
		UserRepo:    userRepo,
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	var payments booking.PaymentHandler
	if config.AppConfig.StripeKey != "" {
		payments = booking.NewStripePaymentHandler(logger)
	} else {
		logger.Sugar().Warn("main: stripe key not set, card payments disabled")
	}

	engine := booking.NewDefaultBookingEngine(
		bookingRepo,
		serviceRepo,
		userRepo,
		payments,
		booking.NewAsynqReminderScheduler(asynqClient),
		utils.GetCacheClient(),
	)

	cron.InitReminderWorker(userRepo)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Auth:    &handlers.AuthHandler{Users: userService},
		Users:   &handlers.UserHandler{Users: userService},
		Catalog: &handlers.CatalogHandler{Catalog: catalogService, Engine: engine},
		Booking: &handlers.BookingHandler{Engine: engine},
		Reviews: &handlers.ReviewHandler{Reviews: reviewService},
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
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
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
