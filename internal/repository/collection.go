package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harentsoaR/doctors-portal/internal/models"
)

// findOne decodes the first document matching filter. A miss is (nil, nil).
func findOne[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOneOptions) (*T, error) {
	var doc T
	err := coll.FindOne(ctx, filter, opts...).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// findMany materialises every document matching filter. The result is never nil.
func findMany[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func insertOne(ctx context.Context, coll *mongo.Collection, doc interface{}) (*models.InsertResult, error) {
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func updateOne(ctx context.Context, coll *mongo.Collection, filter, update interface{}, upsert bool) (*models.UpdateResult, error) {
	res, err := coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(upsert))
	if err != nil {
		return nil, err
	}
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

func deleteOne(ctx context.Context, coll *mongo.Collection, filter interface{}) (*models.DeleteResult, error) {
	res, err := coll.DeleteOne(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
