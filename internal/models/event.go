package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Date        time.Time          `bson:"date" json:"date" validate:"required"`
	Time        string             `bson:"time" json:"time" validate:"required"`
	Location    string             `bson:"location" json:"location"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category" validate:"required"`
	ImageURL    string             `bson:"imageUrl" json:"imageUrl"`
	Spots       int                `bson:"spots" json:"spots" validate:"gte=0"`
	// SpotsRemaining is intended to stay <= Spots but nothing enforces it:
	// there is no atomic decrement and the patch endpoint overwrites fields
	// wholesale, so concurrent bookings can race past zero.
	SpotsRemaining int       `bson:"spotsRemaining" json:"spotsRemaining"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}
