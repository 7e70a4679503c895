package invoiceRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleetbook/models"
	"fleetbook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoInvoiceRepo implements InvoiceRepository using MongoDB.
type MongoInvoiceRepo struct {
	coll *mongo.Collection
}

// NewMongoInvoiceRepo constructs a new instance of MongoInvoiceRepo.
func NewMongoInvoiceRepo(db *mongo.Database) *MongoInvoiceRepo {
	repo := &MongoInvoiceRepo{coll: db.Collection("invoices")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("invoice indexes: %v", err)
	}
	return repo
}

func (repo *MongoInvoiceRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "invoice_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new invoice document.
func (repo *MongoInvoiceRepo) Create(ctx context.Context, invoice *models.Invoice) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, invoice); err != nil {
		return fmt.Errorf("error creating invoice: %w", err)
	}
	return nil
}

// GetByID retrieves an invoice by its ID.
func (repo *MongoInvoiceRepo) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	return repo.getOne(ctx, bson.M{"id": id}, id)
}

// GetByBookingID retrieves the invoice linked to a booking.
func (repo *MongoInvoiceRepo) GetByBookingID(ctx context.Context, bookingID string) (*models.Invoice, error) {
	return repo.getOne(ctx, bson.M{"booking_id": bookingID}, bookingID)
}

func (repo *MongoInvoiceRepo) getOne(ctx context.Context, filter bson.M, key string) (*models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var invoice models.Invoice
	err := repo.coll.FindOne(ctx, filter).Decode(&invoice)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("invoice %s: %w", key, utils.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching invoice %s: %w", key, err)
	}
	return &invoice, nil
}

// Update replaces an existing invoice document.
func (repo *MongoInvoiceRepo) Update(ctx context.Context, invoice *models.Invoice) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	invoice.UpdatedAt = time.Now()
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": invoice.ID}, bson.M{"$set": invoice})
	if err != nil {
		return fmt.Errorf("error updating invoice %s: %w", invoice.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("invoice %s: %w", invoice.ID, utils.ErrNotFound)
	}
	return nil
}
