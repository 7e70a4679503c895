package vehicleRepo

import (
	"context"

	"fleetbook/models"
)

// VehicleRepository defines persistence operations for vehicles.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *models.Vehicle) error
	GetByID(ctx context.Context, id string) (*models.Vehicle, error)
	Update(ctx context.Context, vehicle *models.Vehicle) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, onlyAvailable bool) ([]models.Vehicle, error)
	SetAvailability(ctx context.Context, id string, available bool) error
	AddImage(ctx context.Context, id, url string) error
}
