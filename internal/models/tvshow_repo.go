package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TVShowRepo interface {
	CreateTVShow(ctx context.Context, show *TVShow) (*TVShow, error)
	ListTVShows(ctx context.Context, category string) ([]*TVShow, error)
	FindTVShowByID(ctx context.Context, id primitive.ObjectID) (*TVShow, error)
	UpdateTVShow(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*TVShow, error)
	DeleteTVShow(ctx context.Context, id primitive.ObjectID) error
}

func (mdb *MongoRepo) CreateTVShow(ctx context.Context, show *TVShow) (*TVShow, error) {
	res, err := mdb.Collection(TVShowsCollection).InsertOne(ctx, show)
	if err != nil {
		return nil, fmt.Errorf("error inserting tv show: %v", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		show.ID = oid
	}
	return show, nil
}

func (mdb *MongoRepo) ListTVShows(ctx context.Context, category string) ([]*TVShow, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := mdb.Collection(TVShowsCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing tv shows: %v", err)
	}
	defer cursor.Close(ctx)

	var shows []*TVShow
	for cursor.Next(ctx) {
		var show TVShow
		if err := cursor.Decode(&show); err != nil {
			return nil, fmt.Errorf("error decoding tv show: %v", err)
		}
		shows = append(shows, &show)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return shows, nil
}

func (mdb *MongoRepo) FindTVShowByID(ctx context.Context, id primitive.ObjectID) (*TVShow, error) {
	var show TVShow
	err := mdb.Collection(TVShowsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&show)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("tv show: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("error finding tv show: %v", err)
	}
	return &show, nil
}

func (mdb *MongoRepo) UpdateTVShow(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*TVShow, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated TVShow
	err := mdb.Collection(TVShowsCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).
		Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("tv show: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("error updating tv show: %v", err)
	}
	return &updated, nil
}

func (mdb *MongoRepo) DeleteTVShow(ctx context.Context, id primitive.ObjectID) error {
	res, err := mdb.Collection(TVShowsCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting tv show: %v", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("tv show: %w", ErrNotFound)
	}
	return nil
}
