package enquiry

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoRepo struct {
	collection *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{
		collection: db.Collection("enquiries"),
	}
}

func (r *MongoRepo) Create(e *Enquiry) error {
	ctx := context.TODO()

	result, err := r.collection.InsertOne(ctx, e)
	if err != nil {
		return fmt.Errorf("insert enquiry: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("failed to convert inserted ID to ObjectID")
	}
	e.MongoID = oid

	return nil
}
