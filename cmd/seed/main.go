package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/joshua-takyi/luxstay/internal/config"
	"github.com/joshua-takyi/luxstay/internal/connect"
	"github.com/joshua-takyi/luxstay/internal/models"
	"github.com/joshua-takyi/luxstay/internal/services"
)

// Seeds demo events and live TV channels when their collections are empty,
// and makes sure at least one admin account exists.
func main() {
	_ = godotenv.Load(".env.local")

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	mongoClient, err := connect.MongoDBConnect(cfg.MongoDBURI)
	if err != nil {
		logger.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := connect.MongoDBDisconnect(); err != nil {
			logger.Error("Error disconnecting from MongoDB", "error", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo := models.MongodbNewRepo(mongoClient, cfg.MongoDBName)

	if err := ensureAdmin(ctx, repo, cfg, logger); err != nil {
		logger.Error("Failed to ensure admin account", "error", err)
		os.Exit(1)
	}
	if err := seedEvents(ctx, repo, logger); err != nil {
		logger.Error("Failed to seed events", "error", err)
		os.Exit(1)
	}
	if err := seedTVShows(ctx, repo, logger); err != nil {
		logger.Error("Failed to seed tv shows", "error", err)
		os.Exit(1)
	}

	logger.Info("Seeding complete")
}

func ensureAdmin(ctx context.Context, repo *models.MongoRepo, cfg *config.Config, logger *slog.Logger) error {
	admins, err := repo.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if admins > 0 {
		logger.Info("Admin account already present", "count", admins)
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@luxstay.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
		logger.Warn("ADMIN_PASSWORD not set, using default credentials")
	}

	userService := services.NewUserService(repo, cfg.JWTSecret)
	admin, err := userService.CreateUser(ctx, &models.User{
		Username: "admin",
		Email:    email,
		Password: password,
		Role:     models.RoleAdmin,
	})
	if err != nil {
		return err
	}

	logger.Info("Created bootstrap admin", "email", admin.Email)
	return nil
}

func seedEvents(ctx context.Context, repo *models.MongoRepo, logger *slog.Logger) error {
	existing, err := repo.ListEvents(ctx, "")
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Info("Events already present, skipping", "count", len(existing))
		return nil
	}

	day := func(offset int) time.Time {
		return time.Now().AddDate(0, 0, offset).Truncate(24 * time.Hour)
	}

	events := []*models.Event{
		{
			Title:       "Wine Tasting Evening",
			Date:        day(1),
			Time:        "19:00",
			Location:    "Wine Cellar",
			Description: "Experience our finest wine selection with our sommelier.",
			Category:    "Culinary",
			Spots:       12,
		},
		{
			Title:       "Live Jazz Performance",
			Date:        day(1),
			Time:        "20:30",
			Location:    "Lobby Lounge",
			Description: "Enjoy an evening of smooth jazz with our resident band.",
			Category:    "Entertainment",
			Spots:       50,
		},
		{
			Title:       "Gourmet Cooking Class",
			Date:        day(2),
			Time:        "11:00",
			Location:    "Main Kitchen",
			Description: "Learn to cook signature dishes with our executive chef.",
			Category:    "Culinary",
			Spots:       8,
		},
		{
			Title:       "Yoga by the Pool",
			Date:        day(2),
			Time:        "07:00",
			Location:    "Pool Deck",
			Description: "Start your day with a rejuvenating yoga session.",
			Category:    "Wellness",
			Spots:       15,
		},
	}

	for _, event := range events {
		event.SpotsRemaining = event.Spots
		event.CreatedAt = time.Now()
		if _, err := repo.CreateEvent(ctx, event); err != nil {
			return err
		}
	}

	logger.Info("Seeded events", "count", len(events))
	return nil
}

func seedTVShows(ctx context.Context, repo *models.MongoRepo, logger *slog.Logger) error {
	existing, err := repo.ListTVShows(ctx, "")
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Info("TV shows already present, skipping", "count", len(existing))
		return nil
	}

	shows := []*models.TVShow{
		{
			Name:        "Essaida TV",
			Category:    "Entertainment",
			URL:         "https://essaidatv.dextream.com/hls/stream/index.m3u8",
			Description: "Entertainment channel featuring local content",
			IsLive:      true,
		},
		{
			Name:        "Jawhara TV",
			Category:    "Entertainment",
			URL:         "https://streaming.toutech.net/live/jtv/index.m3u8",
			Description: "Live entertainment and cultural programming",
			IsLive:      true,
		},
		{
			Name:        "Mosaique FM",
			Category:    "News",
			URL:         "https://webcam.mosaiquefm.net:1936/mosatv/studio/playlist.m3u8",
			Description: "News and current affairs",
			IsLive:      true,
		},
		{
			Name:        "Nessma",
			Category:    "General",
			URL:         "https://shls-live-ak.akamaized.net/out/v1/119ae95bbc91462093918a7c6ba11415/index.m3u8",
			Description: "General entertainment and news channel",
			IsLive:      true,
		},
	}

	for _, show := range shows {
		show.CreatedAt = time.Now()
		if _, err := repo.CreateTVShow(ctx, show); err != nil {
			return err
		}
	}

	logger.Info("Seeded tv shows", "count", len(shows))
	return nil
}
