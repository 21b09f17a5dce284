package container

import (
	"log/slog"

	"github.com/joshua-takyi/luxstay/internal/config"
	"github.com/joshua-takyi/luxstay/internal/models"
	"github.com/joshua-takyi/luxstay/internal/services"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger *slog.Logger
	Config *config.Config
	// Database clients
	MongoDBClient    *mongo.Client
	RedisClient      *redis.Client
	UserService      *services.UserService
	BookingService   *services.BookingService
	EventService     *services.EventService
	TVShowService    *services.TVShowService
	DashboardService *services.DashboardService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cfg *config.Config,
	mongoDBClient *mongo.Client,
	redisClient *redis.Client,
) *Container {
	// Initialize repositories
	repo := models.MongodbNewRepo(mongoDBClient, cfg.MongoDBName)
	userService := services.NewUserService(repo, cfg.JWTSecret)
	bookingService := services.NewBookingService(repo)
	eventService := services.NewEventService(repo)
	tvShowService := services.NewTVShowService(repo)
	dashboardService := services.NewDashboardService(repo, redisClient)

	return &Container{
		Logger:           logger,
		Config:           cfg,
		MongoDBClient:    mongoDBClient,
		RedisClient:      redisClient,
		UserService:      userService,
		BookingService:   bookingService,
		EventService:     eventService,
		TVShowService:    tvShowService,
		DashboardService: dashboardService,
	}
}
