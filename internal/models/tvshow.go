package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TVShow struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Category    string             `bson:"category" json:"category" validate:"required"`
	URL         string             `bson:"url" json:"url" validate:"required,url"`
	Description string             `bson:"description" json:"description"`
	Thumbnail   string             `bson:"thumbnail" json:"thumbnail"`
	IsLive      bool               `bson:"isLive" json:"isLive"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
