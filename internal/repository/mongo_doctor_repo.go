package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harentsoaR/doctors-portal/internal/models"
)

const doctorsCollection = "doctors"

type MongoDoctorRepo struct {
	coll *mongo.Collection
}

func NewMongoDoctorRepo(db *mongo.Database) *MongoDoctorRepo {
	return &MongoDoctorRepo{coll: db.Collection(doctorsCollection)}
}

func (r *MongoDoctorRepo) List(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := findMany[models.Doctor](ctx, r.coll, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return doctors, nil
}

func (r *MongoDoctorRepo) Create(ctx context.Context, d *models.Doctor) (*models.InsertResult, error) {
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	res, err := insertOne(ctx, r.coll, d)
	if err != nil {
		return nil, fmt.Errorf("insert doctor: %w", err)
	}
	return res, nil
}

func (r *MongoDoctorRepo) DeleteByEmail(ctx context.Context, email string) (*models.DeleteResult, error) {
	res, err := deleteOne(ctx, r.coll, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("delete doctor %s: %w", email, err)
	}
	return res, nil
}
