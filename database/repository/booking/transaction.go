package bookingRepo

import (
	"context"
	"fmt"

	"hostly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateConfirmed inserts a confirmed booking inside a session transaction.
// The transaction reads first: if any confirmed booking already holds the
// same (host_id, start_time), nothing is written and ErrSlotTaken is
// returned. The partial unique index created in EnsureIndexes backs this up
// under weaker isolation; a duplicate-key error reports the same condition.
func (r *MongoBookingRepo) CreateConfirmed(ctx context.Context, booking *models.Booking) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{
			"host_id":    booking.HostID,
			"start_time": booking.StartTime,
			"status":     models.BookingStatusConfirmed,
		}
		err := r.coll.FindOne(sc, filter).Err()
		if err == nil {
			return ErrSlotTaken
		}
		if err != mongo.ErrNoDocuments {
			return fmt.Errorf("conflict check failed: %w", err)
		}

		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrSlotTaken
			}
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrSlotTaken {
			return ErrSlotTaken
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}
