// File: database/repository/appointment/crud.go
package appointmentRepo

import (
	"context"
	"time"

	"ziaclinic/database"
	"ziaclinic/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	// Mongo keeps millisecond precision; truncate so the returned record
	// matches later reads.
	now := time.Now().UTC().Truncate(time.Millisecond)
	appt.CreatedAt = now
	appt.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		return database.Classify("create appointment", err)
	}
	return nil
}

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		return nil, database.Classify("fetch appointment", err)
	}
	return &appt, nil
}

func (r *mongoAppointmentRepo) UpdateSetDocument(ctx context.Context, id string, fields bson.M) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC().Truncate(time.Millisecond)}
	for k, v := range fields {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var appt models.Appointment
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&appt)
	if err != nil {
		return nil, database.Classify("update appointment", err)
	}
	return &appt, nil
}

func (r *mongoAppointmentRepo) Delete(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		return nil, database.Classify("delete appointment", err)
	}
	return &appt, nil
}
