package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *User) (*User, error)
	FindUserByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	FindUserByUsername(ctx context.Context, username string) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*User, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
	CountAdmins(ctx context.Context) (int64, error)
	AppendToken(ctx context.Context, id primitive.ObjectID, token string) error
	RemoveToken(ctx context.Context, id primitive.ObjectID, token string) error
	SetLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error
}

func (mdb *MongoRepo) CreateUser(ctx context.Context, user *User) (*User, error) {
	col := mdb.Collection(UsersCollection)

	res, err := col.InsertOne(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error inserting user: %v", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return user, nil
}

func (mdb *MongoRepo) findUser(ctx context.Context, filter bson.M) (*User, error) {
	var user User
	err := mdb.Collection(UsersCollection).FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("error finding user: %v", err)
	}
	return &user, nil
}

func (mdb *MongoRepo) FindUserByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	return mdb.findUser(ctx, bson.M{"_id": id})
}

func (mdb *MongoRepo) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	return mdb.findUser(ctx, bson.M{"email": email})
}

func (mdb *MongoRepo) FindUserByUsername(ctx context.Context, username string) (*User, error) {
	return mdb.findUser(ctx, bson.M{"username": username})
}

func (mdb *MongoRepo) ListUsers(ctx context.Context) ([]*User, error) {
	col := mdb.Collection(UsersCollection)

	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetProjection(bson.M{"password": 0, "tokens": 0})

	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %v", err)
	}
	defer cursor.Close(ctx)

	var users []*User
	for cursor.Next(ctx) {
		var user User
		if err := cursor.Decode(&user); err != nil {
			return nil, fmt.Errorf("error decoding user: %v", err)
		}
		users = append(users, &user)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return users, nil
}

func (mdb *MongoRepo) UpdateUser(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*User, error) {
	col := mdb.Collection(UsersCollection)

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated User
	err := col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("error updating user: %v", err)
	}
	return &updated, nil
}

func (mdb *MongoRepo) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	res, err := mdb.Collection(UsersCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting user: %v", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("user: %w", ErrNotFound)
	}
	return nil
}

func (mdb *MongoRepo) CountAdmins(ctx context.Context) (int64, error) {
	count, err := mdb.Collection(UsersCollection).CountDocuments(ctx, bson.M{"role": RoleAdmin})
	if err != nil {
		return 0, fmt.Errorf("error counting admins: %v", err)
	}
	return count, nil
}

func (mdb *MongoRepo) AppendToken(ctx context.Context, id primitive.ObjectID, token string) error {
	_, err := mdb.Collection(UsersCollection).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"tokens": AuthToken{Token: token}}},
	)
	if err != nil {
		return fmt.Errorf("error appending token: %v", err)
	}
	return nil
}

func (mdb *MongoRepo) RemoveToken(ctx context.Context, id primitive.ObjectID, token string) error {
	_, err := mdb.Collection(UsersCollection).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$pull": bson.M{"tokens": bson.M{"token": token}}},
	)
	if err != nil {
		return fmt.Errorf("error removing token: %v", err)
	}
	return nil
}

func (mdb *MongoRepo) SetLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	_, err := mdb.Collection(UsersCollection).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"lastLogin": at}},
	)
	if err != nil {
		return fmt.Errorf("error setting last login: %v", err)
	}
	return nil
}
