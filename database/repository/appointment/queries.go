// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"

	"ziaclinic/database"
	"ziaclinic/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoAppointmentRepo) GetAll(ctx context.Context) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(ctx, "list appointments", bson.M{}, opts)
}

func (r *mongoAppointmentRepo) GetByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "slotStart", Value: 1}})
	return r.find(ctx, "list appointments by date", bson.M{"preferredDate": date}, opts)
}

func (r *mongoAppointmentRepo) CountByDate(ctx context.Context, date string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"preferredDate": date})
	if err != nil {
		return 0, database.Classify("count appointments", err)
	}
	return n, nil
}

func (r *mongoAppointmentRepo) find(ctx context.Context, op string, filter bson.M, opts *options.FindOptions) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, database.Classify(op, err)
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, database.Classify(op, err)
	}
	return appointments, nil
}
