package packageRepo

import (
	"context"
	"fmt"
	"time"

	"hostly/database"
	"hostly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const opTimeout = 5 * time.Second

// MongoPackageRepo implements PackageRepository backed by the packages
// collection.
type MongoPackageRepo struct {
	coll *mongo.Collection
}

func NewMongoPackageRepo() *MongoPackageRepo {
	return &MongoPackageRepo{coll: database.DB().Collection("packages")}
}

func (r *MongoPackageRepo) Create(ctx context.Context, pkg *models.ServicePackage) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, pkg); err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}
	return nil
}

func (r *MongoPackageRepo) ListByHost(ctx context.Context, hostID string) ([]models.ServicePackage, error) {
	return r.list(ctx, bson.M{"host_id": hostID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

func (r *MongoPackageRepo) ListActiveByHost(ctx context.Context, hostID string) ([]models.ServicePackage, error) {
	return r.list(ctx, bson.M{"host_id": hostID, "is_active": true},
		options.Find().SetSort(bson.D{{Key: "is_free_intro", Value: -1}, {Key: "created_at", Value: 1}}))
}

func (r *MongoPackageRepo) list(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.ServicePackage, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	defer cur.Close(ctx)

	var pkgs []models.ServicePackage
	if err := cur.All(ctx, &pkgs); err != nil {
		return nil, fmt.Errorf("failed to decode packages: %w", err)
	}
	return pkgs, nil
}

func (r *MongoPackageRepo) FindByID(ctx context.Context, id, hostID string) (*models.ServicePackage, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var pkg models.ServicePackage
	err := r.coll.FindOne(ctx, bson.M{"id": id, "host_id": hostID}).Decode(&pkg)
	if err == mongo.ErrNoDocuments {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch package %s: %w", id, err)
	}
	return &pkg, nil
}

func (r *MongoPackageRepo) Update(ctx context.Context, id, hostID string, name string, sessionCount, priceInCents int) error {
	return r.updateFields(ctx, id, hostID, bson.M{
		"name":           name,
		"session_count":  sessionCount,
		"price_in_cents": priceInCents,
		"is_free_intro":  priceInCents == 0 && sessionCount == 1,
	})
}

func (r *MongoPackageRepo) Deactivate(ctx context.Context, id, hostID string) error {
	return r.updateFields(ctx, id, hostID, bson.M{"is_active": false})
}

func (r *MongoPackageRepo) updateFields(ctx context.Context, id, hostID string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id, "host_id": hostID}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update package %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrPackageNotFound
	}
	return nil
}
