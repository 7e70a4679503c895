package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"fleetbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SumSucceededByBooking aggregates the total of succeeded payments recorded
// against a booking. Settlement always recomputes from this sum rather than
// incrementing, so retries converge.
func (repo *MongoPaymentRepo) SumSucceededByBooking(ctx context.Context, bookingID string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"booking_id": bookingID,
			"status":     models.PaymentStatusSucceeded,
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}}},
	}
	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("error decoding aggregation result: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

// TotalRevenue sums all succeeded payments.
func (repo *MongoPaymentRepo) TotalRevenue(ctx context.Context) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": models.PaymentStatusSucceeded}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}}},
	}
	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("error decoding aggregation result: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

// RevenueByDay buckets succeeded payments by calendar day.
func (repo *MongoPaymentRepo) RevenueByDay(ctx context.Context, since time.Time) ([]RevenueBucket, error) {
	return repo.revenueByPeriod(ctx, since, "%Y-%m-%d")
}

// RevenueByMonth buckets succeeded payments by calendar month.
func (repo *MongoPaymentRepo) RevenueByMonth(ctx context.Context, since time.Time) ([]RevenueBucket, error) {
	return repo.revenueByPeriod(ctx, since, "%Y-%m")
}

func (repo *MongoPaymentRepo) revenueByPeriod(ctx context.Context, since time.Time, format string) ([]RevenueBucket, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"status":     models.PaymentStatusSucceeded,
			"created_at": bson.M{"$gte": since},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": format,
				"date":   "$created_at",
			}},
			"total": bson.M{"$sum": "$amount"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var buckets []RevenueBucket
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, fmt.Errorf("error decoding aggregation result: %w", err)
	}
	return buckets, nil
}
