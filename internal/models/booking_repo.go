package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *Booking) (*Booking, error)
	ListBookings(ctx context.Context, userID string) ([]*Booking, error)
	FindBookingByID(ctx context.Context, id primitive.ObjectID) (*Booking, error)
	UpdateBooking(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*Booking, error)
}

func (mdb *MongoRepo) CreateBooking(ctx context.Context, booking *Booking) (*Booking, error) {
	res, err := mdb.Collection(BookingsCollection).InsertOne(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("error inserting booking: %v", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		booking.ID = oid
	}
	return booking, nil
}

// ListBookings returns bookings newest-first, optionally filtered to one user.
func (mdb *MongoRepo) ListBookings(ctx context.Context, userID string) ([]*Booking, error) {
	filter := bson.M{}
	if userID != "" {
		filter["userId"] = userID
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := mdb.Collection(BookingsCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %v", err)
	}
	defer cursor.Close(ctx)

	var bookings []*Booking
	for cursor.Next(ctx) {
		var booking Booking
		if err := cursor.Decode(&booking); err != nil {
			return nil, fmt.Errorf("error decoding booking: %v", err)
		}
		bookings = append(bookings, &booking)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return bookings, nil
}

func (mdb *MongoRepo) FindBookingByID(ctx context.Context, id primitive.ObjectID) (*Booking, error) {
	var booking Booking
	err := mdb.Collection(BookingsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("error finding booking: %v", err)
	}
	return &booking, nil
}

func (mdb *MongoRepo) UpdateBooking(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*Booking, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Booking
	err := mdb.Collection(BookingsCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).
		Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("error updating booking: %v", err)
	}
	return &updated, nil
}
