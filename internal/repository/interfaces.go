// Package repository holds the data access layer over MongoDB.
package repository

import (
	"context"
	"errors"

	"github.com/harentsoaR/doctors-portal/internal/models"
)

// ErrDuplicateBooking is returned when a booking for the same treatment,
// date and patient already exists.
var ErrDuplicateBooking = errors.New("booking already exists")

// UserRepository persists users keyed by email.
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	// FindByEmail returns nil when no user has that email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// Upsert merges fields into the user with that email, creating it if absent.
	Upsert(ctx context.Context, email string, fields map[string]interface{}) (*models.UpdateResult, error)
	// SetRole updates an existing user's role. It never creates a user.
	SetRole(ctx context.Context, email, role string) (*models.UpdateResult, error)
}

// ServiceRepository reads the service catalog.
type ServiceRepository interface {
	List(ctx context.Context) ([]models.Service, error)
	ListNames(ctx context.Context) ([]models.ServiceName, error)
	// UpsertByName replaces price and slots of the service with svc.Name.
	UpsertByName(ctx context.Context, svc *models.Service) (*models.UpdateResult, error)
}

// BookingRepository persists bookings.
type BookingRepository interface {
	ListByDate(ctx context.Context, date string) ([]models.Booking, error)
	ListByPatient(ctx context.Context, patient string) ([]models.Booking, error)
	// FindByKey returns nil when no booking matches.
	FindByKey(ctx context.Context, treatment, date, patient string) (*models.Booking, error)
	// Create inserts b and sets its ID. It returns ErrDuplicateBooking when
	// the (treatment, date, patient) key is taken.
	Create(ctx context.Context, b *models.Booking) (*models.InsertResult, error)
}

// DoctorRepository persists doctors.
type DoctorRepository interface {
	List(ctx context.Context) ([]models.Doctor, error)
	Create(ctx context.Context, d *models.Doctor) (*models.InsertResult, error)
	DeleteByEmail(ctx context.Context, email string) (*models.DeleteResult, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
