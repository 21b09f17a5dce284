package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/luxstay/internal/models"
	"github.com/joshua-takyi/luxstay/internal/services"
)

func ListTVShows(t *services.TVShowService) gin.HandlerFunc {
	return func(c *gin.Context) {
		shows, err := t.ListTVShows(c.Request.Context(), c.Param("category"))
		if err != nil {
			c.Error(err)
			return
		}

		if shows == nil {
			shows = []*models.TVShow{}
		}
		c.JSON(http.StatusOK, shows)
	}
}

func CreateTVShow(t *services.TVShowService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var show models.TVShow
		if err := c.ShouldBindJSON(&show); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		created, err := t.CreateTVShow(c.Request.Context(), &show)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

func UpdateTVShow(t *services.TVShowService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := objectIDParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tv show ID format"})
			return
		}

		var payload map[string]interface{}
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		stripUnpatchable(payload)

		updated, err := t.UpdateTVShow(c.Request.Context(), id, payload)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "TV show not found"})
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

func DeleteTVShow(t *services.TVShowService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := objectIDParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tv show ID format"})
			return
		}

		if err := t.DeleteTVShow(c.Request.Context(), id); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "TV show not found"})
				return
			}
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "TV show deleted"})
	}
}
