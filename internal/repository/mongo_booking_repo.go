package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harentsoaR/doctors-portal/internal/models"
)

const bookingsCollection = "bookings"

type MongoBookingRepo struct {
	coll *mongo.Collection
}

func NewMongoBookingRepo(db *mongo.Database) *MongoBookingRepo {
	return &MongoBookingRepo{coll: db.Collection(bookingsCollection)}
}

func (r *MongoBookingRepo) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	bookings, err := findMany[models.Booking](ctx, r.coll, bson.M{"date": date})
	if err != nil {
		return nil, fmt.Errorf("list bookings on %s: %w", date, err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) ListByPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	bookings, err := findMany[models.Booking](ctx, r.coll, bson.M{"patient": patient})
	if err != nil {
		return nil, fmt.Errorf("list bookings of %s: %w", patient, err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) FindByKey(ctx context.Context, treatment, date, patient string) (*models.Booking, error) {
	filter := bson.M{"treatment": treatment, "date": date, "patient": patient}
	booking, err := findOne[models.Booking](ctx, r.coll, filter)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return booking, nil
}

// Create relies on the unique bookings index so that concurrent requests for
// the same key cannot both succeed.
func (r *MongoBookingRepo) Create(ctx context.Context, b *models.Booking) (*models.InsertResult, error) {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	res, err := insertOne(ctx, r.coll, b)
	if mongo.IsDuplicateKeyError(err) {
		b.ID = primitive.NilObjectID
		return nil, ErrDuplicateBooking
	}
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}
	return res, nil
}
