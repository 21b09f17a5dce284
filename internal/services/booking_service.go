package services

import (
	"context"
	"fmt"
	"time"

	"github.com/joshua-takyi/luxstay/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingService struct {
	bookingRepo models.BookingRepo
}

func NewBookingService(bookingRepo models.BookingRepo) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
	}
}

func (bs *BookingService) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if booking.Status == "" {
		booking.Status = models.BookingPending
	}
	booking.CreatedAt = time.Now()

	if err := models.Validate.Struct(booking); err != nil {
		return nil, err
	}

	return bs.bookingRepo.CreateBooking(ctx, booking)
}

func (bs *BookingService) ListBookings(ctx context.Context, userID string) ([]*models.Booking, error) {
	return bs.bookingRepo.ListBookings(ctx, userID)
}

// UpdateBooking patches status and/or special requests; nothing else on a
// booking is mutable after creation.
func (bs *BookingService) UpdateBooking(ctx context.Context, id primitive.ObjectID, status, specialRequests string) (*models.Booking, error) {
	fields := map[string]interface{}{}
	if status != "" {
		if err := models.Validate.Var(status, "oneof=pending confirmed cancelled completed"); err != nil {
			return nil, fmt.Errorf("invalid status %q", status)
		}
		fields["status"] = status
	}
	if specialRequests != "" {
		fields["specialRequests"] = specialRequests
	}
	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	return bs.bookingRepo.UpdateBooking(ctx, id, fields)
}

// CancelBooking flips the status; bookings are never hard-deleted.
func (bs *BookingService) CancelBooking(ctx context.Context, id primitive.ObjectID) error {
	_, err := bs.bookingRepo.UpdateBooking(ctx, id, map[string]interface{}{
		"status": models.BookingCancelled,
	})
	return err
}
