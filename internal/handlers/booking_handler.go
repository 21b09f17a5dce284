package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/luxstay/internal/models"
	"github.com/joshua-takyi/luxstay/internal/services"
)

// ListBookings returns all bookings newest-first, optionally filtered with
// the userId query parameter.
func ListBookings(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := b.ListBookings(c.Request.Context(), c.Query("userId"))
		if err != nil {
			c.Error(err)
			return
		}

		if bookings == nil {
			bookings = []*models.Booking{}
		}
		c.JSON(http.StatusOK, bookings)
	}
}

func CreateBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Service         string     `json:"service" binding:"required"`
			Date            string     `json:"date" binding:"required"`
			Time            string     `json:"time" binding:"required"`
			UserID          string     `json:"userId" binding:"required"`
			SpecialRequests string     `json:"specialRequests"`
			TotalAmount     float64    `json:"totalAmount"`
			CheckInDate     *time.Time `json:"checkInDate"`
			CheckOutDate    *time.Time `json:"checkOutDate"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		date, err := parseDay(req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		booking := &models.Booking{
			Service:         req.Service,
			Date:            date,
			Time:            req.Time,
			UserID:          req.UserID,
			SpecialRequests: req.SpecialRequests,
			TotalAmount:     req.TotalAmount,
			CheckInDate:     req.CheckInDate,
			CheckOutDate:    req.CheckOutDate,
		}

		created, err := b.CreateBooking(c.Request.Context(), booking)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

// UpdateBooking patches status and/or special requests only.
func UpdateBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := objectIDParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking ID format"})
			return
		}

		var req struct {
			Status          string `json:"status"`
			SpecialRequests string `json:"specialRequests"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updated, err := b.UpdateBooking(c.Request.Context(), id, req.Status, req.SpecialRequests)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			case errors.Is(err, services.ErrNoFields):
				c.JSON(http.StatusBadRequest, gin.H{"error": "no updatable fields provided"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

// CancelBooking marks the booking cancelled; nothing is removed.
func CancelBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := objectIDParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking ID format"})
			return
		}

		if err := b.CancelBooking(c.Request.Context(), id); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
				return
			}
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
	}
}
