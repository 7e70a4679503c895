package vehicleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleetbook/models"
	"fleetbook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoVehicleRepo implements VehicleRepository using MongoDB.
type MongoVehicleRepo struct {
	coll *mongo.Collection
}

// NewMongoVehicleRepo constructs a new instance of MongoVehicleRepo.
func NewMongoVehicleRepo(db *mongo.Database) *MongoVehicleRepo {
	repo := &MongoVehicleRepo{coll: db.Collection("vehicles")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("vehicle indexes: %v", err)
	}
	return repo
}

// Create inserts a new vehicle document.
func (repo *MongoVehicleRepo) Create(ctx context.Context, vehicle *models.Vehicle) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, vehicle); err != nil {
		return fmt.Errorf("error creating vehicle: %w", err)
	}
	return nil
}

// GetByID retrieves a vehicle by its ID.
func (repo *MongoVehicleRepo) GetByID(ctx context.Context, id string) (*models.Vehicle, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var vehicle models.Vehicle
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&vehicle)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("vehicle %s: %w", id, utils.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching vehicle %s: %w", id, err)
	}
	return &vehicle, nil
}

// Update replaces the mutable fields of an existing vehicle document.
func (repo *MongoVehicleRepo) Update(ctx context.Context, vehicle *models.Vehicle) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	vehicle.UpdatedAt = time.Now()
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": vehicle.ID}, bson.M{"$set": vehicle})
	if err != nil {
		return fmt.Errorf("error updating vehicle %s: %w", vehicle.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("vehicle %s: %w", vehicle.ID, utils.ErrNotFound)
	}
	return nil
}

// Delete removes a vehicle document.
func (repo *MongoVehicleRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting vehicle %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("vehicle %s: %w", id, utils.ErrNotFound)
	}
	return nil
}

// List returns all vehicles, optionally restricted to available ones.
func (repo *MongoVehicleRepo) List(ctx context.Context, onlyAvailable bool) ([]models.Vehicle, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if onlyAvailable {
		filter["is_available"] = true
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	var vehicles []models.Vehicle
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, fmt.Errorf("error decoding vehicles: %w", err)
	}
	return vehicles, nil
}

// SetAvailability flips the availability flag on a vehicle.
func (repo *MongoVehicleRepo) SetAvailability(ctx context.Context, id string, available bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"is_available": available, "updated_at": time.Now()}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error setting availability for vehicle %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("vehicle %s: %w", id, utils.ErrNotFound)
	}
	return nil
}

// AddImage appends an image URL to a vehicle document.
func (repo *MongoVehicleRepo) AddImage(ctx context.Context, id, url string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"images": url},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error adding image to vehicle %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("vehicle %s: %w", id, utils.ErrNotFound)
	}
	return nil
}
