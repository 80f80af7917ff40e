// File: database/repository/payment/crud.go
package paymentRepo

import (
	"context"
	"time"

	"ziaclinic/database"
	"ziaclinic/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoPaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	now := time.Now().UTC().Truncate(time.Millisecond)
	payment.CreatedAt = now
	payment.UpdatedAt = now

	// The summary is derived on read and never stored.
	doc := *payment
	doc.Appointment = nil
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return database.Classify("create payment", err)
	}
	return nil
}

func (r *mongoPaymentRepo) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	payments, err := r.aggregate(ctx, "fetch payment", bson.M{"id": id}, nil)
	if err != nil {
		return nil, err
	}
	if len(payments) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return &payments[0], nil
}

func (r *mongoPaymentRepo) UpdateSetDocument(ctx context.Context, id string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC().Truncate(time.Millisecond)}
	for k, v := range fields {
		set[k] = v
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return database.Classify("update payment", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoPaymentRepo) Delete(ctx context.Context, id string) (*models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var payment models.Payment
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"id": id}).Decode(&payment); err != nil {
		return nil, database.Classify("delete payment", err)
	}
	return &payment, nil
}
