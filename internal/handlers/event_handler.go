package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/luxstay/internal/models"
	"github.com/joshua-takyi/luxstay/internal/services"
)

func ListEvents(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := e.ListEvents(c.Request.Context(), c.Param("category"))
		if err != nil {
			c.Error(err)
			return
		}

		if events == nil {
			events = []*models.Event{}
		}
		c.JSON(http.StatusOK, events)
	}
}

func CreateEvent(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Title       string `json:"title" binding:"required"`
			Date        string `json:"date" binding:"required"`
			Time        string `json:"time" binding:"required"`
			Location    string `json:"location"`
			Description string `json:"description"`
			Category    string `json:"category" binding:"required"`
			ImageURL    string `json:"imageUrl"`
			Spots       int    `json:"spots" binding:"gte=0"`
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

		event := &models.Event{
			Title:       req.Title,
			Date:        date,
			Time:        req.Time,
			Location:    req.Location,
			Description: req.Description,
			Category:    req.Category,
			ImageURL:    req.ImageURL,
			Spots:       req.Spots,
		}

		created, err := e.CreateEvent(c.Request.Context(), event)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

// UpdateEvent applies an arbitrary field patch; null values are skipped.
func UpdateEvent(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := objectIDParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID format"})
			return
		}

		var payload map[string]interface{}
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		stripUnpatchable(payload)

		if raw, ok := payload["date"].(string); ok {
			date, err := parseDay(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			payload["date"] = date
		}

		updated, err := e.UpdateEvent(c.Request.Context(), id, payload)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			case errors.Is(err, services.ErrNoFields):
				c.JSON(http.StatusBadRequest, gin.H{"error": "no updatable fields provided"})
			default:
				c.Error(err)
			}
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

func DeleteEvent(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := objectIDParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID format"})
			return
		}

		if err := e.DeleteEvent(c.Request.Context(), id); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
				return
			}
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
	}
}
