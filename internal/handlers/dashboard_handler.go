package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/luxstay/internal/services"
)

// GetDashboardStats returns the four summary counts.
func GetDashboardStats(d *services.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := d.Stats(c.Request.Context())
		if err != nil {
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}

// GetBookingTrends returns the gap-filled booking/revenue series for the
// period path parameter.
func GetBookingTrends(d *services.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		period := services.Period(c.Param("period"))

		series, err := d.BookingTrends(c.Request.Context(), period)
		if err != nil {
			if errors.Is(err, services.ErrInvalidPeriod) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period"})
				return
			}
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, series)
	}
}

// GetRevenue returns the gap-filled revenue series restricted to confirmed
// and completed bookings.
func GetRevenue(d *services.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		period := services.Period(c.Param("period"))

		series, err := d.Revenue(c.Request.Context(), period)
		if err != nil {
			if errors.Is(err, services.ErrInvalidPeriod) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period"})
				return
			}
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, series)
	}
}

// GetRecentActivities returns the merged booking/event feed, newest first.
func GetRecentActivities(d *services.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		activities, err := d.RecentActivities(c.Request.Context())
		if err != nil {
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, activities)
	}
}
