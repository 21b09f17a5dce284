package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DashboardRepo covers the read-only queries behind the admin dashboard.
type DashboardRepo interface {
	CountBookings(ctx context.Context) (int64, error)
	CountUpcomingEvents(ctx context.Context, from time.Time) (int64, error)
	CountLiveShows(ctx context.Context) (int64, error)
	CountOccupiedBookings(ctx context.Context, at time.Time) (int64, error)
	BookingBucketsSince(ctx context.Context, since time.Time, dateFormat string, statuses []string) ([]TrendBucket, error)
	RecentBookings(ctx context.Context, limit int64) ([]*Booking, error)
	RecentEvents(ctx context.Context, limit int64) ([]*Event, error)
}

func (mdb *MongoRepo) CountBookings(ctx context.Context) (int64, error) {
	count, err := mdb.Collection(BookingsCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error counting bookings: %v", err)
	}
	return count, nil
}

func (mdb *MongoRepo) CountUpcomingEvents(ctx context.Context, from time.Time) (int64, error) {
	count, err := mdb.Collection(EventsCollection).CountDocuments(ctx, bson.M{
		"date": bson.M{"$gte": from},
	})
	if err != nil {
		return 0, fmt.Errorf("error counting upcoming events: %v", err)
	}
	return count, nil
}

func (mdb *MongoRepo) CountLiveShows(ctx context.Context) (int64, error) {
	count, err := mdb.Collection(TVShowsCollection).CountDocuments(ctx, bson.M{"isLive": true})
	if err != nil {
		return 0, fmt.Errorf("error counting live shows: %v", err)
	}
	return count, nil
}

// CountOccupiedBookings counts confirmed bookings whose check-in/check-out
// window contains the given instant.
func (mdb *MongoRepo) CountOccupiedBookings(ctx context.Context, at time.Time) (int64, error) {
	count, err := mdb.Collection(BookingsCollection).CountDocuments(ctx, bson.M{
		"status":       BookingConfirmed,
		"checkInDate":  bson.M{"$lte": at},
		"checkOutDate": bson.M{"$gt": at},
	})
	if err != nil {
		return 0, fmt.Errorf("error counting occupied bookings: %v", err)
	}
	return count, nil
}

// BookingBucketsSince groups bookings created at or after since by the
// $dateToString rendering of their creation time and sums count and revenue
// per bucket. statuses narrows the match when non-empty.
func (mdb *MongoRepo) BookingBucketsSince(ctx context.Context, since time.Time, dateFormat string, statuses []string) ([]TrendBucket, error) {
	match := bson.M{"createdAt": bson.M{"$gte": since}}
	if len(statuses) > 0 {
		match["status"] = bson.M{"$in": statuses}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": dateFormat,
				"date":   "$createdAt",
			}},
			"count":   bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$totalAmount"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := mdb.Collection(BookingsCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating booking buckets: %v", err)
	}
	defer cursor.Close(ctx)

	var buckets []TrendBucket
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, fmt.Errorf("error decoding booking buckets: %v", err)
	}

	return buckets, nil
}

func (mdb *MongoRepo) RecentBookings(ctx context.Context, limit int64) ([]*Booking, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(limit)

	cursor, err := mdb.Collection(BookingsCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding recent bookings: %v", err)
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

func (mdb *MongoRepo) RecentEvents(ctx context.Context, limit int64) ([]*Event, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(limit)

	cursor, err := mdb.Collection(EventsCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding recent events: %v", err)
	}
	defer cursor.Close(ctx)

	var events []*Event
	for cursor.Next(ctx) {
		var event Event
		if err := cursor.Decode(&event); err != nil {
			return nil, fmt.Errorf("error decoding event: %v", err)
		}
		events = append(events, &event)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return events, nil
}
