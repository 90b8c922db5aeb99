package routes

import (
	"time"

	"hotelms/handlers"
	"hotelms/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the endpoint handlers wired in main.
type HandlerBundle struct {
	Auth    *handlers.AuthHandler
	Users   *handlers.UserHandler
	Catalog *handlers.CatalogHandler
	Booking *handlers.BookingHandler
	Reviews *handlers.ReviewHandler
}

// RegisterAuthRoutes registers registration and login.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)
	}
}

// RegisterUserRoutes registers account endpoints. Listing, updating and
// deleting accounts is admin-only; /me serves the caller's own profile.
func RegisterUserRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/users")
	api.Use(middleware.RequireAuth())
	{
		api.GET("/me", hb.Users.MeHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireAdmin())
		admin.GET("", hb.Users.GetAllUsersHandler)
		admin.GET("/:id", hb.Users.GetUserByIDHandler)
		admin.PUT("/:id", hb.Users.UpdateUserHandler)
		admin.DELETE("/:id", hb.Users.DeleteUserHandler)
	}
}

// RegisterServiceRoutes registers the catalog endpoints. Reads are
// public; mutations require an elevated role.
func RegisterServiceRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Catalog.GetAllServicesHandler)
		api.GET("/:id", hb.Catalog.GetServiceByIDHandler)
		api.GET("/:id/availability", hb.Catalog.AvailabilityHandler)
		api.GET("/:id/reviews", hb.Reviews.ListReviewsHandler)

		api.POST("/:id/reviews", middleware.RequireAuth(), hb.Reviews.AddReviewHandler)

		elevated := api.Group("")
		elevated.Use(middleware.RequireAuth(), middleware.RequireElevated())
		elevated.POST("", hb.Catalog.CreateServiceHandler)
		elevated.PUT("/:id", hb.Catalog.UpdateServiceHandler)
		elevated.DELETE("/:id", hb.Catalog.DeleteServiceHandler)
		elevated.POST("/:id/images", hb.Catalog.UploadImageHandler)
	}
}

// RegisterBookingRoutes registers the reservation endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	api.Use(middleware.RequireAuth())
	{
		api.POST("", hb.Booking.CreateBookingHandler)
		api.GET("/mine", hb.Booking.MyBookingsHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)

		elevated := api.Group("")
		elevated.Use(middleware.RequireElevated())
		elevated.GET("", hb.Booking.ListAllBookingsHandler)
		elevated.PUT("/:id", hb.Booking.UpdateBookingHandler)
		elevated.DELETE("/:id", hb.Booking.DeleteBookingHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireAdmin())
		admin.GET("/stats", hb.Booking.RevenueStatsHandler)
	}
}

// RegisterHealthRoute registers the health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
