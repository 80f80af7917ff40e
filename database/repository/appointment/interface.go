// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"time"

	"ziaclinic/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const CollectionName = "appointments"

// AppointmentRepository defines methods for appointment data access. Lookups
// that match nothing return an error wrapping mongo.ErrNoDocuments.
type AppointmentRepository interface {
	// Create assigns an ID and timestamps, then inserts the appointment.
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// GetAll returns every appointment, newest first.
	GetAll(ctx context.Context) ([]models.Appointment, error)
	// GetByDate returns the appointments booked on date in slot order.
	GetByDate(ctx context.Context, date string) ([]models.Appointment, error)
	// CountByDate counts the appointments booked on date.
	CountByDate(ctx context.Context, date string) (int64, error)
	// UpdateSetDocument applies fields with $set and returns the updated document.
	UpdateSetDocument(ctx context.Context, id string, fields bson.M) (*models.Appointment, error)
	// Delete removes the appointment and returns what was removed.
	Delete(ctx context.Context, id string) (*models.Appointment, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoAppointmentRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoAppointmentRepo constructs a MongoDB AppointmentRepository over db.
func NewMongoAppointmentRepo(db *mongo.Database, timeout time.Duration) AppointmentRepository {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &mongoAppointmentRepo{
		coll:    db.Collection(CollectionName),
		timeout: timeout,
	}
}
