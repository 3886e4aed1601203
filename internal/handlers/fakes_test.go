package handlers

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harentsoaR/doctors-portal/internal/models"
	"github.com/harentsoaR/doctors-portal/internal/repository"
)

var errStore = errors.New("store unavailable")

type memUsers struct {
	mu    sync.Mutex
	users []models.User
	err   error
	reads int
}

func (m *memUsers) List(context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	if m.err != nil {
		return nil, m.err
	}
	return append([]models.User{}, m.users...), nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.users {
		if m.users[i].Email == email {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) Upsert(_ context.Context, email string, fields map[string]interface{}) (*models.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.users {
		if m.users[i].Email == email {
			if m.users[i].Extra == nil {
				m.users[i].Extra = map[string]interface{}{}
			}
			for k, v := range fields {
				m.users[i].Extra[k] = v
			}
			return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	id := primitive.NewObjectID()
	m.users = append(m.users, models.User{ID: id, Email: email, Extra: fields})
	return &models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: id}, nil
}

func (m *memUsers) SetRole(_ context.Context, email, role string) (*models.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].Email == email {
			modified := int64(0)
			if m.users[i].Role != role {
				modified = 1
			}
			m.users[i].Role = role
			return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	return &models.UpdateResult{Acknowledged: true}, nil
}

func (m *memUsers) role(email string) string {
	u, _ := m.FindByEmail(context.Background(), email)
	if u == nil {
		return ""
	}
	return u.Role
}

type memServices struct {
	services []models.Service
	err      error
}

func (m *memServices) List(context.Context) ([]models.Service, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.Service, len(m.services))
	copy(out, m.services)
	return out, nil
}

func (m *memServices) ListNames(context.Context) ([]models.ServiceName, error) {
	if m.err != nil {
		return nil, m.err
	}
	names := make([]models.ServiceName, 0, len(m.services))
	for _, s := range m.services {
		names = append(names, models.ServiceName{ID: s.ID, Name: s.Name})
	}
	return names, nil
}

func (m *memServices) UpsertByName(_ context.Context, svc *models.Service) (*models.UpdateResult, error) {
	m.services = append(m.services, *svc)
	return &models.UpdateResult{Acknowledged: true, UpsertedCount: 1}, nil
}

type memBookings struct {
	mu       sync.Mutex
	bookings []models.Booking
	err      error
	reads    int
}

func (m *memBookings) filter(match func(models.Booking) bool) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.Booking, 0)
	for _, b := range m.bookings {
		if match(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookings) ListByDate(_ context.Context, date string) ([]models.Booking, error) {
	return m.filter(func(b models.Booking) bool { return b.Date == date })
}

func (m *memBookings) ListByPatient(_ context.Context, patient string) ([]models.Booking, error) {
	return m.filter(func(b models.Booking) bool { return b.Patient == patient })
}

func (m *memBookings) FindByKey(_ context.Context, treatment, date, patient string) (*models.Booking, error) {
	found, err := m.filter(func(b models.Booking) bool {
		return b.Treatment == treatment && b.Date == date && b.Patient == patient
	})
	if err != nil || len(found) == 0 {
		return nil, err
	}
	return &found[0], nil
}

func (m *memBookings) Create(_ context.Context, b *models.Booking) (*models.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, existing := range m.bookings {
		if existing.Treatment == b.Treatment && existing.Date == b.Date && existing.Patient == b.Patient {
			return nil, repository.ErrDuplicateBooking
		}
	}
	b.ID = primitive.NewObjectID()
	m.bookings = append(m.bookings, *b)
	return &models.InsertResult{Acknowledged: true, InsertedID: b.ID}, nil
}

type memDoctors struct {
	doctors []models.Doctor
	err     error
}

func (m *memDoctors) List(context.Context) ([]models.Doctor, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]models.Doctor{}, m.doctors...), nil
}

func (m *memDoctors) Create(_ context.Context, d *models.Doctor) (*models.InsertResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	d.ID = primitive.NewObjectID()
	m.doctors = append(m.doctors, *d)
	return &models.InsertResult{Acknowledged: true, InsertedID: d.ID}, nil
}

func (m *memDoctors) DeleteByEmail(_ context.Context, email string) (*models.DeleteResult, error) {
	for i, d := range m.doctors {
		if d.Email == email {
			m.doctors = append(m.doctors[:i], m.doctors[i+1:]...)
			return &models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &models.DeleteResult{Acknowledged: true}, nil
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type recordingNotifier struct {
	mu   sync.Mutex
	sent []models.Booking
}

func (n *recordingNotifier) SendBookingConfirmation(b *models.Booking) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, *b)
}
