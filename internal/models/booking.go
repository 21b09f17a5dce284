package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking statuses. Transitions are unconstrained: any status may overwrite
// any other, and cancellation is a status change rather than a delete.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

type Booking struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Service string             `bson:"service" json:"service" validate:"required"`
	Date    time.Time          `bson:"date" json:"date" validate:"required"`
	Time    string             `bson:"time" json:"time" validate:"required"`
	// UserID is not checked against the users collection on creation.
	UserID          string     `bson:"userId" json:"userId" validate:"required"`
	Status          string     `bson:"status" json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
	SpecialRequests string     `bson:"specialRequests,omitempty" json:"specialRequests,omitempty"`
	TotalAmount     float64    `bson:"totalAmount" json:"totalAmount"`
	CheckInDate     *time.Time `bson:"checkInDate,omitempty" json:"checkInDate,omitempty"`
	CheckOutDate    *time.Time `bson:"checkOutDate,omitempty" json:"checkOutDate,omitempty"`
	CreatedAt       time.Time  `bson:"createdAt" json:"createdAt"`
}
