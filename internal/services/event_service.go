package services

import (
	"context"
	"time"

	"github.com/joshua-takyi/luxstay/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventService struct {
	eventRepo models.EventRepo
}

func NewEventService(eventRepo models.EventRepo) *EventService {
	return &EventService{
		eventRepo: eventRepo,
	}
}

func (es *EventService) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	// a new event starts fully available
	event.SpotsRemaining = event.Spots
	event.CreatedAt = time.Now()

	if err := models.Validate.Struct(event); err != nil {
		return nil, err
	}

	return es.eventRepo.CreateEvent(ctx, event)
}

func (es *EventService) ListEvents(ctx context.Context, category string) ([]*models.Event, error) {
	return es.eventRepo.ListEvents(ctx, category)
}

// UpdateEvent patches whichever fields the caller sent, wholesale. Identity
// and creation time are never patchable.
func (es *EventService) UpdateEvent(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.Event, error) {
	delete(fields, "_id")
	delete(fields, "id")
	delete(fields, "createdAt")
	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	return es.eventRepo.UpdateEvent(ctx, id, fields)
}

func (es *EventService) DeleteEvent(ctx context.Context, id primitive.ObjectID) error {
	return es.eventRepo.DeleteEvent(ctx, id)
}
