package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"fleetbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// FindConflictsInclusive returns active bookings on the vehicle whose date
// range touches [start, end] with inclusive bounds: an existing booking
// ending exactly at the new start (or starting exactly at the new end)
// counts as a conflict. This is the rule on the public create path.
func (repo *MongoBookingRepo) FindConflictsInclusive(ctx context.Context, vehicleID string, start, end time.Time, excludeID string) ([]models.Booking, error) {
	filter := bson.M{
		"vehicle_id": vehicleID,
		"status":     bson.M{"$in": models.ActiveBookingStatuses},
		"start_date": bson.M{"$lte": end},
		"end_date":   bson.M{"$gte": start},
	}
	return repo.findConflicts(ctx, filter, excludeID)
}

// FindConflictsHalfOpen returns active bookings overlapping [start, end)
// with strict bounds, so back-to-back bookings sharing an endpoint are
// allowed. This is the rule on the admin paths.
func (repo *MongoBookingRepo) FindConflictsHalfOpen(ctx context.Context, vehicleID string, start, end time.Time, excludeID string) ([]models.Booking, error) {
	filter := bson.M{
		"vehicle_id": vehicleID,
		"status":     bson.M{"$in": models.ActiveBookingStatuses},
		"start_date": bson.M{"$lt": end},
		"end_date":   bson.M{"$gt": start},
	}
	return repo.findConflicts(ctx, filter, excludeID)
}

func (repo *MongoBookingRepo) findConflicts(ctx context.Context, filter bson.M, excludeID string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding conflicting bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var conflicts []models.Booking
	if err := cursor.All(ctx, &conflicts); err != nil {
		return nil, fmt.Errorf("error decoding conflicting bookings: %w", err)
	}
	return conflicts, nil
}

// CountActiveAt counts active bookings on the vehicle whose range covers the
// given instant. Used to recompute vehicle availability.
func (repo *MongoBookingRepo) CountActiveAt(ctx context.Context, vehicleID string, at time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"vehicle_id": vehicleID,
		"status":     bson.M{"$in": models.ActiveBookingStatuses},
		"start_date": bson.M{"$lte": at},
		"end_date":   bson.M{"$gt": at},
	}
	count, err := repo.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error counting active bookings: %w", err)
	}
	return count, nil
}

// CountByStatus groups bookings by status for the dashboard.
func (repo *MongoBookingRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
	}
	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error decoding aggregation result: %w", err)
	}

	counts := make(map[string]int64, len(results))
	for _, r := range results {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
