package hostRepo

import (
	"context"
	"fmt"
	"time"

	"hostly/database"
	"hostly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const opTimeout = 5 * time.Second

// MongoHostRepo implements HostRepository backed by the hosts collection.
type MongoHostRepo struct {
	coll *mongo.Collection
}

func NewMongoHostRepo() *MongoHostRepo {
	return &MongoHostRepo{coll: database.DB().Collection("hosts")}
}

func (r *MongoHostRepo) GetByID(ctx context.Context, id string) (*models.Host, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var host models.Host
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&host)
	if err == mongo.ErrNoDocuments {
		return nil, ErrHostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch host %s: %w", id, err)
	}
	return &host, nil
}

func (r *MongoHostRepo) GetBySlug(ctx context.Context, slug string) (*models.Host, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// Hosts are only publicly reachable once onboarding finished.
	var host models.Host
	err := r.coll.FindOne(ctx, bson.M{"slug": slug, "onboarding_completed": true}).Decode(&host)
	if err == mongo.ErrNoDocuments {
		return nil, ErrHostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch host by slug %s: %w", slug, err)
	}
	return &host, nil
}

func (r *MongoHostRepo) GetAvailabilityContext(ctx context.Context, id string) (*models.HostAvailabilityContext, error) {
	host, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tz := host.Timezone
	if tz == "" {
		tz = "UTC"
	}
	return &models.HostAvailabilityContext{
		BookableHours:      host.BookableHours,
		Timezone:           tz,
		GoogleRefreshToken: host.GoogleRefreshToken,
	}, nil
}

func (r *MongoHostRepo) Create(ctx context.Context, host *models.Host) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, host); err != nil {
		return fmt.Errorf("failed to create host: %w", err)
	}
	return nil
}

func (r *MongoHostRepo) UpdateProfile(ctx context.Context, id string, name, description, slug string) error {
	return r.updateFields(ctx, id, bson.M{
		"name":        name,
		"description": description,
		"slug":        slug,
	})
}

func (r *MongoHostRepo) UpdateBookableHours(ctx context.Context, id string, hours models.WeeklyTemplate) error {
	return r.updateFields(ctx, id, bson.M{"bookable_hours": hours})
}

func (r *MongoHostRepo) UpdateGoogleRefreshToken(ctx context.Context, id string, token string) error {
	return r.updateFields(ctx, id, bson.M{"google_refresh_token": token})
}

func (r *MongoHostRepo) IsSlugTaken(ctx context.Context, slug string, excludeHostID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{"slug": slug}
	if excludeHostID != "" {
		filter["id"] = bson.M{"$ne": excludeHostID}
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check slug %s: %w", slug, err)
	}
	return count > 0, nil
}

func (r *MongoHostRepo) updateFields(ctx context.Context, id string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update host %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrHostNotFound
	}
	return nil
}
