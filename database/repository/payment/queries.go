// File: database/repository/payment/queries.go
package paymentRepo

import (
	"context"

	"ziaclinic/database"
	"ziaclinic/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (r *mongoPaymentRepo) GetAll(ctx context.Context) ([]models.Payment, error) {
	return r.aggregate(ctx, "list payments", bson.M{}, bson.D{{Key: "createdAt", Value: -1}})
}

// enrichmentStages joins each payment to the appointment it names. A
// dangling or empty appointmentId leaves the appointment field absent.
func (r *mongoPaymentRepo) enrichmentStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: r.appointmentColl},
			{Key: "localField", Value: "appointmentId"},
			{Key: "foreignField", Value: "id"},
			{Key: "as", Value: "appointmentMatches"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "appointment", Value: bson.D{
				{Key: "$arrayElemAt", Value: bson.A{"$appointmentMatches", 0}},
			}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "appointmentMatches", Value: 0},
		}}},
	}
}

func (r *mongoPaymentRepo) aggregate(ctx context.Context, op string, match bson.M, sort bson.D) ([]models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	pipeline := []bson.D{{{Key: "$match", Value: match}}}
	if len(sort) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: sort}})
	}
	pipeline = append(pipeline, r.enrichmentStages()...)

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, database.Classify(op, err)
	}
	defer cursor.Close(ctx)

	payments := make([]models.Payment, 0)
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, database.Classify(op, err)
	}
	return payments, nil
}
