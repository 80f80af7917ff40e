// File: database/repository/payment/interface.go
package paymentRepo

import (
	"context"
	"time"

	appointmentRepo "ziaclinic/database/repository/appointment"
	"ziaclinic/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const CollectionName = "payments"

// PaymentRepository defines methods for payment data access. Reads come back
// enriched with the referenced appointment's summary when it still exists.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, id string) (*models.Payment, error)
	// GetAll returns every payment, newest first.
	GetAll(ctx context.Context) ([]models.Payment, error)
	// UpdateSetDocument applies fields with $set. A missing id yields
	// mongo.ErrNoDocuments.
	UpdateSetDocument(ctx context.Context, id string, fields bson.M) error
	// Delete removes the payment and returns the stored (unenriched) record.
	Delete(ctx context.Context, id string) (*models.Payment, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoPaymentRepo struct {
	coll            *mongo.Collection
	appointmentColl string
	timeout         time.Duration
}

// NewMongoPaymentRepo constructs a MongoDB PaymentRepository over db.
func NewMongoPaymentRepo(db *mongo.Database, timeout time.Duration) PaymentRepository {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &mongoPaymentRepo{
		coll:            db.Collection(CollectionName),
		appointmentColl: appointmentRepo.CollectionName,
		timeout:         timeout,
	}
}
