package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/luxstay/internal/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// claimsFromContext pulls the claims the auth middleware stored.
func claimsFromContext(c *gin.Context) (*helpers.AuthClaims, bool) {
	raw, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	claims, ok := raw.(*helpers.AuthClaims)
	return claims, ok
}

func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Param(name))
}

// parseDay accepts both plain calendar days ("2024-12-27") and full RFC3339
// timestamps, which is what the booking and event clients actually send.
func parseDay(raw string) (time.Time, error) {
	if d, err := time.Parse("2006-01-02", raw); err == nil {
		return d, nil
	}
	if d, err := time.Parse(time.RFC3339, raw); err == nil {
		return d, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", raw)
}

// stripUnpatchable drops nulls and immutable keys from a raw patch payload.
func stripUnpatchable(payload map[string]interface{}) {
	for key, value := range payload {
		if value == nil {
			delete(payload, key)
		}
	}
	delete(payload, "_id")
	delete(payload, "id")
	delete(payload, "createdAt")
}
