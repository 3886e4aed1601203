package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Store groups the repositories handed to the HTTP layer.
type Store struct {
	Users    UserRepository
	Services ServiceRepository
	Bookings BookingRepository
	Doctors  DoctorRepository
	Pinger   Pinger
}

// NewMongoStore builds a Store whose repositories share db.
func NewMongoStore(db *mongo.Database) *Store {
	return &Store{
		Users:    NewMongoUserRepo(db),
		Services: NewMongoServiceRepo(db),
		Bookings: NewMongoBookingRepo(db),
		Doctors:  NewMongoDoctorRepo(db),
		Pinger:   clientPinger{client: db.Client()},
	}
}

type clientPinger struct {
	client *mongo.Client
}

func (p clientPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}

// EnsureIndexes creates the indexes the repositories depend on. The bookings
// key index is what makes BookingRepository.Create atomic.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("email_unique")},
		},
		bookingsCollection: {
			{
				Keys: bson.D{
					{Key: "treatment", Value: 1},
					{Key: "date", Value: 1},
					{Key: "patient", Value: 1},
				},
				Options: options.Index().SetUnique(true).SetName("treatment_date_patient_unique"),
			},
			{Keys: bson.D{{Key: "patient", Value: 1}}, Options: options.Index().SetName("patient")},
		},
		servicesCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetName("name")},
		},
	}

	for coll, idx := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("create %s indexes: %w", coll, err)
		}
	}
	return nil
}
