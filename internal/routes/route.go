package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/luxstay/internal/container"
	"github.com/joshua-takyi/luxstay/internal/handlers"
	"github.com/joshua-takyi/luxstay/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	// Set Gin mode for production
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     container.Config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	authRequired := middleware.AuthMiddleware(container.UserService, container.Config.JWTSecret, container.Logger)
	adminRequired := middleware.AdminOnly()

	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "luxstay-api",
			})
		})
	}

	userRoutes := api.Group("/users")
	{
		// public
		userRoutes.POST("/register", handlers.RegisterUser(container.UserService))
		userRoutes.POST("/login", handlers.LoginUser(container.UserService))

		// authenticated self-service
		userRoutes.POST("/logout", authRequired, handlers.LogoutUser(container.UserService))
		userRoutes.GET("/profile", authRequired, handlers.GetProfile(container.UserService))
		userRoutes.PATCH("/profile", authRequired, handlers.UpdateProfile(container.UserService))

		// admin user management
		userRoutes.POST("/", authRequired, adminRequired, handlers.CreateUser(container.UserService))
		userRoutes.GET("/", authRequired, adminRequired, handlers.ListUsers(container.UserService))
		userRoutes.PUT("/:id", authRequired, adminRequired, handlers.UpdateUser(container.UserService))
		userRoutes.DELETE("/:id", authRequired, adminRequired, handlers.DeleteUser(container.UserService))
	}

	bookingRoutes := api.Group("/bookings", authRequired)
	{
		bookingRoutes.GET("/", handlers.ListBookings(container.BookingService))
		bookingRoutes.POST("/", handlers.CreateBooking(container.BookingService))
		bookingRoutes.PATCH("/:id", handlers.UpdateBooking(container.BookingService))
		bookingRoutes.DELETE("/:id", handlers.CancelBooking(container.BookingService))
	}

	eventRoutes := api.Group("/events")
	{
		eventRoutes.GET("/", handlers.ListEvents(container.EventService))
		eventRoutes.GET("/category/:category", handlers.ListEvents(container.EventService))
		eventRoutes.POST("/", authRequired, adminRequired, handlers.CreateEvent(container.EventService))
		eventRoutes.PATCH("/:id", authRequired, adminRequired, handlers.UpdateEvent(container.EventService))
		eventRoutes.DELETE("/:id", authRequired, adminRequired, handlers.DeleteEvent(container.EventService))
	}

	tvShowRoutes := api.Group("/tv-shows")
	{
		tvShowRoutes.GET("/", handlers.ListTVShows(container.TVShowService))
		tvShowRoutes.GET("/category/:category", handlers.ListTVShows(container.TVShowService))
		tvShowRoutes.POST("/", authRequired, adminRequired, handlers.CreateTVShow(container.TVShowService))
		tvShowRoutes.PATCH("/:id", authRequired, adminRequired, handlers.UpdateTVShow(container.TVShowService))
		tvShowRoutes.DELETE("/:id", authRequired, adminRequired, handlers.DeleteTVShow(container.TVShowService))
	}

	dashboardRoutes := api.Group("/dashboard", authRequired, adminRequired)
	{
		dashboardRoutes.GET("/stats", handlers.GetDashboardStats(container.DashboardService))
		dashboardRoutes.GET("/booking-trends/:period", handlers.GetBookingTrends(container.DashboardService))
		dashboardRoutes.GET("/revenue/:period", handlers.GetRevenue(container.DashboardService))
		dashboardRoutes.GET("/recent-activities", handlers.GetRecentActivities(container.DashboardService))
	}

	return r
}
