package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harentsoaR/doctors-portal/internal/models"
)

const servicesCollection = "services"

type MongoServiceRepo struct {
	coll *mongo.Collection
}

func NewMongoServiceRepo(db *mongo.Database) *MongoServiceRepo {
	return &MongoServiceRepo{coll: db.Collection(servicesCollection)}
}

func (r *MongoServiceRepo) List(ctx context.Context) ([]models.Service, error) {
	services, err := findMany[models.Service](ctx, r.coll, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

func (r *MongoServiceRepo) ListNames(ctx context.Context) ([]models.ServiceName, error) {
	opts := options.Find().SetProjection(bson.D{{Key: "name", Value: 1}})
	names, err := findMany[models.ServiceName](ctx, r.coll, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list service names: %w", err)
	}
	return names, nil
}

func (r *MongoServiceRepo) UpsertByName(ctx context.Context, svc *models.Service) (*models.UpdateResult, error) {
	slots := svc.Slots
	if slots == nil {
		slots = []string{}
	}
	update := bson.M{"$set": bson.M{"price": svc.Price, "slots": slots}}
	res, err := updateOne(ctx, r.coll, bson.M{"name": svc.Name}, update, true)
	if err != nil {
		return nil, fmt.Errorf("upsert service %s: %w", svc.Name, err)
	}
	return res, nil
}
