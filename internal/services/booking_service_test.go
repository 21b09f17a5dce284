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

type MockBookingRepo struct {
	bookings []*models.Booking
}

func (m *MockBookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	booking.ID = primitive.NewObjectID()
	m.bookings = append(m.bookings, booking)
	return booking, nil
}

func (m *MockBookingRepo) ListBookings(ctx context.Context, userID string) ([]*models.Booking, error) {
	if userID == "" {
		return m.bookings, nil
	}
	var out []*models.Booking
	for _, b := range m.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *MockBookingRepo) FindBookingByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	for _, b := range m.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, fmt.Errorf("booking: %w", models.ErrNotFound)
}

func (m *MockBookingRepo) UpdateBooking(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.Booking, error) {
	booking, err := m.FindBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if status, ok := fields["status"]; ok {
		booking.Status = status.(string)
	}
	if requests, ok := fields["specialRequests"]; ok {
		booking.SpecialRequests = requests.(string)
	}
	return booking, nil
}

func validBooking() *models.Booking {
	return &models.Booking{
		Service: "Spa Treatment",
		Date:    time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		Time:    "14:00",
		UserID:  primitive.NewObjectID().Hex(),
	}
}

func TestCreateBookingDefaultsToPending(t *testing.T) {
	repo := &MockBookingRepo{}
	bs := NewBookingService(repo)

	created, err := bs.CreateBooking(context.Background(), validBooking())
	require.NoError(t, err)

	assert.Equal(t, models.BookingPending, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.ID.IsZero())
}

func TestCreateBookingKeepsExplicitStatus(t *testing.T) {
	bs := NewBookingService(&MockBookingRepo{})

	booking := validBooking()
	booking.Status = models.BookingConfirmed

	created, err := bs.CreateBooking(context.Background(), booking)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, created.Status)
}

func TestCreateBookingValidation(t *testing.T) {
	bs := NewBookingService(&MockBookingRepo{})

	missing := validBooking()
	missing.Service = ""
	_, err := bs.CreateBooking(context.Background(), missing)
	assert.Error(t, err)

	bad := validBooking()
	bad.Status = "maybe"
	_, err = bs.CreateBooking(context.Background(), bad)
	assert.Error(t, err)
}

func TestListBookingsFiltersByUser(t *testing.T) {
	repo := &MockBookingRepo{}
	bs := NewBookingService(repo)

	mine := validBooking()
	_, err := bs.CreateBooking(context.Background(), mine)
	require.NoError(t, err)
	_, err = bs.CreateBooking(context.Background(), validBooking())
	require.NoError(t, err)

	all, err := bs.ListBookings(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := bs.ListBookings(context.Background(), mine.UserID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, mine.ID, filtered[0].ID)
}

func TestUpdateBooking(t *testing.T) {
	repo := &MockBookingRepo{}
	bs := NewBookingService(repo)

	created, err := bs.CreateBooking(context.Background(), validBooking())
	require.NoError(t, err)

	updated, err := bs.UpdateBooking(context.Background(), created.ID, models.BookingConfirmed, "late checkout")
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, updated.Status)
	assert.Equal(t, "late checkout", updated.SpecialRequests)

	_, err = bs.UpdateBooking(context.Background(), created.ID, "maybe", "")
	assert.Error(t, err)

	_, err = bs.UpdateBooking(context.Background(), created.ID, "", "")
	assert.ErrorIs(t, err, ErrNoFields)

	_, err = bs.UpdateBooking(context.Background(), primitive.NewObjectID(), models.BookingConfirmed, "")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCancelBookingFlipsStatus(t *testing.T) {
	repo := &MockBookingRepo{}
	bs := NewBookingService(repo)

	created, err := bs.CreateBooking(context.Background(), validBooking())
	require.NoError(t, err)

	require.NoError(t, bs.CancelBooking(context.Background(), created.ID))

	stored, err := repo.FindBookingByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, stored.Status)
	assert.Len(t, repo.bookings, 1, "cancelling must not remove the document")
}
