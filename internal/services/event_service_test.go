package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/joshua-takyi/luxstay/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockEventRepo struct {
	events []*models.Event
}

func (m *MockEventRepo) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	event.ID = primitive.NewObjectID()
	m.events = append(m.events, event)
	return event, nil
}

func (m *MockEventRepo) ListEvents(ctx context.Context, category string) ([]*models.Event, error) {
	if category == "" {
		return m.events, nil
	}
	var out []*models.Event
	for _, e := range m.events {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MockEventRepo) FindEventByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	for _, e := range m.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, fmt.Errorf("event: %w", models.ErrNotFound)
}

func (m *MockEventRepo) UpdateEvent(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.Event, error) {
	event, err := m.FindEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if title, ok := fields["title"]; ok {
		event.Title = title.(string)
	}
	if spots, ok := fields["spotsRemaining"]; ok {
		event.SpotsRemaining = spots.(int)
	}
	return event, nil
}

func (m *MockEventRepo) DeleteEvent(ctx context.Context, id primitive.ObjectID) error {
	for i, e := range m.events {
		if e.ID == id {
			m.events = append(m.events[:i], m.events[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("event: %w", models.ErrNotFound)
}

func validEvent(category string) *models.Event {
	return &models.Event{
		Title:    "Wine Tasting",
		Date:     time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
		Time:     "19:00",
		Location: "Wine Cellar",
		Category: category,
		Spots:    12,
	}
}

func TestCreateEventStartsFullyAvailable(t *testing.T) {
	es := NewEventService(&MockEventRepo{})

	event := validEvent("Culinary")
	event.SpotsRemaining = 3 // caller-supplied value is overwritten

	created, err := es.CreateEvent(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, 12, created.SpotsRemaining)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateEventValidation(t *testing.T) {
	es := NewEventService(&MockEventRepo{})

	event := validEvent("")
	_, err := es.CreateEvent(context.Background(), event)
	assert.Error(t, err)
}

func TestListEventsByCategory(t *testing.T) {
	repo := &MockEventRepo{}
	es := NewEventService(repo)

	_, err := es.CreateEvent(context.Background(), validEvent("Culinary"))
	require.NoError(t, err)
	_, err = es.CreateEvent(context.Background(), validEvent("Wellness"))
	require.NoError(t, err)

	all, err := es.ListEvents(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	culinary, err := es.ListEvents(context.Background(), "Culinary")
	require.NoError(t, err)
	require.Len(t, culinary, 1)
	assert.Equal(t, "Culinary", culinary[0].Category)
}

func TestUpdateEventStripsImmutableFields(t *testing.T) {
	repo := &MockEventRepo{}
	es := NewEventService(repo)

	created, err := es.CreateEvent(context.Background(), validEvent("Culinary"))
	require.NoError(t, err)

	updated, err := es.UpdateEvent(context.Background(), created.ID, map[string]interface{}{
		"title":     "Champagne Tasting",
		"_id":       "ignored",
		"createdAt": "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, "Champagne Tasting", updated.Title)

	// only immutable keys left means nothing to do
	_, err = es.UpdateEvent(context.Background(), created.ID, map[string]interface{}{"id": "x"})
	assert.ErrorIs(t, err, ErrNoFields)
}

func TestDeleteEvent(t *testing.T) {
	repo := &MockEventRepo{}
	es := NewEventService(repo)

	created, err := es.CreateEvent(context.Background(), validEvent("Culinary"))
	require.NoError(t, err)

	require.NoError(t, es.DeleteEvent(context.Background(), created.ID))
	assert.ErrorIs(t, es.DeleteEvent(context.Background(), created.ID), models.ErrNotFound)
}
