package services

import (
	"context"
	"time"

	"github.com/joshua-takyi/luxstay/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TVShowService struct {
	tvShowRepo models.TVShowRepo
}

func NewTVShowService(tvShowRepo models.TVShowRepo) *TVShowService {
	return &TVShowService{
		tvShowRepo: tvShowRepo,
	}
}

func (ts *TVShowService) CreateTVShow(ctx context.Context, show *models.TVShow) (*models.TVShow, error) {
	show.CreatedAt = time.Now()

	if err := models.Validate.Struct(show); err != nil {
		return nil, err
	}

	return ts.tvShowRepo.CreateTVShow(ctx, show)
}

func (ts *TVShowService) ListTVShows(ctx context.Context, category string) ([]*models.TVShow, error) {
	return ts.tvShowRepo.ListTVShows(ctx, category)
}

func (ts *TVShowService) UpdateTVShow(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.TVShow, error) {
	delete(fields, "_id")
	delete(fields, "id")
	delete(fields, "createdAt")
	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	return ts.tvShowRepo.UpdateTVShow(ctx, id, fields)
}

func (ts *TVShowService) DeleteTVShow(ctx context.Context, id primitive.ObjectID) error {
	return ts.tvShowRepo.DeleteTVShow(ctx, id)
}
