package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EventRepo interface {
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	ListEvents(ctx context.Context, category string) ([]*Event, error)
	FindEventByID(ctx context.Context, id primitive.ObjectID) (*Event, error)
	UpdateEvent(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*Event, error)
	DeleteEvent(ctx context.Context, id primitive.ObjectID) error
}

func (mdb *MongoRepo) CreateEvent(ctx context.Context, event *Event) (*Event, error) {
	res, err := mdb.Collection(EventsCollection).InsertOne(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("error inserting event: %v", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		event.ID = oid
	}
	return event, nil
}

func (mdb *MongoRepo) ListEvents(ctx context.Context, category string) ([]*Event, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := mdb.Collection(EventsCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %v", err)
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

func (mdb *MongoRepo) FindEventByID(ctx context.Context, id primitive.ObjectID) (*Event, error) {
	var event Event
	err := mdb.Collection(EventsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("event: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("error finding event: %v", err)
	}
	return &event, nil
}

func (mdb *MongoRepo) UpdateEvent(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*Event, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Event
	err := mdb.Collection(EventsCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).
		Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("event: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("error updating event: %v", err)
	}
	return &updated, nil
}

func (mdb *MongoRepo) DeleteEvent(ctx context.Context, id primitive.ObjectID) error {
	res, err := mdb.Collection(EventsCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting event: %v", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("event: %w", ErrNotFound)
	}
	return nil
}
