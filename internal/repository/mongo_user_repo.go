package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harentsoaR/doctors-portal/internal/models"
)

const usersCollection = "users"

type MongoUserRepo struct {
	coll *mongo.Collection
}

func NewMongoUserRepo(db *mongo.Database) *MongoUserRepo {
	return &MongoUserRepo{coll: db.Collection(usersCollection)}
}

func (r *MongoUserRepo) List(ctx context.Context) ([]models.User, error) {
	users, err := findMany[models.User](ctx, r.coll, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *MongoUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := findOne[models.User](ctx, r.coll, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", email, err)
	}
	return user, nil
}

func (r *MongoUserRepo) Upsert(ctx context.Context, email string, fields map[string]interface{}) (*models.UpdateResult, error) {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	set["email"] = email

	res, err := updateOne(ctx, r.coll, bson.M{"email": email}, bson.M{"$set": set}, true)
	if err != nil {
		return nil, fmt.Errorf("upsert user %s: %w", email, err)
	}
	return res, nil
}

func (r *MongoUserRepo) SetRole(ctx context.Context, email, role string) (*models.UpdateResult, error) {
	res, err := updateOne(ctx, r.coll, bson.M{"email": email}, bson.M{"$set": bson.M{"role": role}}, false)
	if err != nil {
		return nil, fmt.Errorf("set role of %s: %w", email, err)
	}
	return res, nil
}
