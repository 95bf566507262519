package bookingRepo

import (
	"context"
	"fmt"

	"roomly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// conflictFilter matches active bookings on roomID/date whose half-open
// [start, end) interval intersects [start, end). Touching endpoints do not
// match. excludeID skips the booking being rescheduled.
func conflictFilter(roomID, date string, start, end int, excludeID string) bson.M {
	filter := bson.M{
		"room_id": roomID,
		"date":    date,
		"status":  bson.M{"$ne": models.StatusCancelled},
		"start":   bson.M{"$lt": end},
		"end":     bson.M{"$gt": start},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	return filter
}

// promoUsageFilter matches the promo only while it still has usage headroom.
func promoUsageFilter(code string) bson.M {
	return bson.M{
		"code": code,
		"$or": bson.A{
			bson.M{"usage_limit": bson.M{"$exists": false}},
			bson.M{"usage_limit": nil},
			bson.M{"$expr": bson.M{"$lt": bson.A{"$used_count", "$usage_limit"}}},
		},
	}
}

// touchRoomDay bumps the guard document for (roomID, date) inside the
// transaction. Mongo transactions are snapshot-isolated, so two concurrent
// creates inserting distinct bookings would otherwise both commit; writing
// the shared guard first makes them collide on the same document, the loser
// aborts with a transient write conflict, and its retry re-runs the conflict
// check against the winner's committed booking.
func (repo *MongoBookingRepo) touchRoomDay(sc mongo.SessionContext, roomID, date string) error {
	_, err := repo.roomDayColl.UpdateOne(sc,
		bson.M{"room_id": roomID, "date": date},
		bson.M{"$inc": bson.M{"writes": 1}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("room-day guard write failed: %w", err)
	}
	return nil
}

// withTransaction runs fn in a mongo transaction via the session's
// WithTransaction, which retries on transient errors (the write-conflict
// path of the room-day guard). Sentinel errors from fn carry no error labels
// and surface immediately.
func (repo *MongoBookingRepo) withTransaction(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	client := repo.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

// CreateWithPromo inserts the booking and, when a promo code is applied,
// consumes one usage — all inside one transaction. The room-day guard
// serializes concurrent writers on the same room and date, so the conflict
// recheck is authoritative: of two racing creates for overlapping intervals
// exactly one commits and the other gets ErrSlotTaken.
func (repo *MongoBookingRepo) CreateWithPromo(ctx context.Context, booking *models.Booking, promoCode string) error {
	return repo.withTransaction(ctx, func(sc mongo.SessionContext) error {
		if err := repo.touchRoomDay(sc, booking.RoomID, booking.Date); err != nil {
			return err
		}

		n, err := repo.bookingColl.CountDocuments(sc,
			conflictFilter(booking.RoomID, booking.Date, booking.Start, booking.End, booking.ID))
		if err != nil {
			return fmt.Errorf("conflict recheck failed: %w", err)
		}
		if n > 0 {
			return ErrSlotTaken
		}

		if _, err := repo.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}

		if promoCode != "" {
			res, err := repo.promoColl.UpdateOne(sc,
				promoUsageFilter(promoCode),
				bson.M{"$inc": bson.M{"used_count": 1}},
			)
			if err != nil {
				return fmt.Errorf("promo usage increment failed: %w", err)
			}
			if res.MatchedCount == 0 {
				return ErrPromoExhausted
			}
		}
		return nil
	})
}

// Reschedule moves the booking to the new slot and consumes its change token
// in one transaction, guarded on the target room-day like create.
func (repo *MongoBookingRepo) Reschedule(ctx context.Context, id, token, roomID, date string, start, end int) error {
	return repo.withTransaction(ctx, func(sc mongo.SessionContext) error {
		if err := repo.touchRoomDay(sc, roomID, date); err != nil {
			return err
		}

		n, err := repo.bookingColl.CountDocuments(sc,
			conflictFilter(roomID, date, start, end, id))
		if err != nil {
			return fmt.Errorf("conflict recheck failed: %w", err)
		}
		if n > 0 {
			return ErrSlotTaken
		}

		res, err := repo.bookingColl.UpdateOne(sc,
			bson.M{
				"id":           id,
				"change_token": token,
				"status":       bson.M{"$ne": models.StatusCancelled},
			},
			bson.M{
				"$set": bson.M{
					"room_id": roomID,
					"date":    date,
					"start":   start,
					"end":     end,
				},
				"$unset": bson.M{"change_token": ""},
			},
		)
		if err != nil {
			return fmt.Errorf("reschedule update failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrTokenNotFound
		}
		return nil
	})
}

// CancelByToken consumes the token and marks the booking cancelled. The
// filter-and-update is a single document operation, so a second cancel with
// the same token can never match: cancel is at-most-once.
func (repo *MongoBookingRepo) CancelByToken(ctx context.Context, token string) (*models.Booking, error) {
	var b models.Booking
	err := repo.bookingColl.FindOneAndUpdate(ctx,
		bson.M{"change_token": token},
		bson.M{
			"$set":   bson.M{"status": models.StatusCancelled},
			"$unset": bson.M{"change_token": ""},
		},
	).Decode(&b)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("cancel update failed: %w", err)
	}
	b.Status = models.StatusCancelled
	b.ChangeToken = ""
	return &b, nil
}
