package models

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

var Validate = validator.New()

// ErrNotFound marks lookups for documents that do not exist so handlers can
// map them to a 404 instead of a generic failure.
var ErrNotFound = errors.New("not found")

const (
	UsersCollection    = "users"
	BookingsCollection = "bookings"
	EventsCollection   = "events"
	TVShowsCollection  = "tvshows"
)

type MongoRepo struct {
	client *mongo.Client
	dbName string
}

func MongodbNewRepo(client *mongo.Client, dbName string) *MongoRepo {
	return &MongoRepo{
		client: client,
		dbName: dbName,
	}
}

func (mdb *MongoRepo) Collection(name string) *mongo.Collection {
	return mdb.client.Database(mdb.dbName).Collection(name)
}
