package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"roomly/database"
	"roomly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
	promoColl   *mongo.Collection
	// roomDayColl holds one guard document per (room, date); transactional
	// writes bump it to force write conflicts between concurrent bookings
	// of the same room-day.
	roomDayColl *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() *MongoBookingRepo {
	db := database.DB()
	return &MongoBookingRepo{
		bookingColl: db.Collection("bookings"),
		promoColl:   db.Collection("promo_codes"),
		roomDayColl: db.Collection("room_days"),
	}
}

func (repo *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	if err := repo.bookingColl.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching booking %s: %w", id, err)
	}
	return &b, nil
}

func (repo *MongoBookingRepo) GetByToken(ctx context.Context, token string) (*models.Booking, error) {
	var b models.Booking
	if err := repo.bookingColl.FindOne(ctx, bson.M{"change_token": token}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching booking by token: %w", err)
	}
	return &b, nil
}

func (repo *MongoBookingRepo) GetByPaymentRef(ctx context.Context, ref string) (*models.Booking, error) {
	var b models.Booking
	if err := repo.bookingColl.FindOne(ctx, bson.M{"payment_ref": ref}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching booking by payment ref: %w", err)
	}
	return &b, nil
}

// activeOnDate matches non-cancelled bookings on a date.
func activeOnDate(date string) bson.M {
	return bson.M{
		"date":   date,
		"status": bson.M{"$ne": models.StatusCancelled},
	}
}

func (repo *MongoBookingRepo) ListActiveByRoomDate(ctx context.Context, roomID, date string) ([]models.Booking, error) {
	filter := activeOnDate(date)
	filter["room_id"] = roomID
	return repo.listBookings(ctx, filter)
}

func (repo *MongoBookingRepo) ListActiveByRoomsDate(ctx context.Context, roomIDs []string, date string) ([]models.Booking, error) {
	filter := activeOnDate(date)
	filter["room_id"] = bson.M{"$in": roomIDs}
	return repo.listBookings(ctx, filter)
}

func (repo *MongoBookingRepo) listBookings(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cursor, err := repo.bookingColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

func (repo *MongoBookingRepo) SetStatusByPaymentRef(ctx context.Context, ref, status string) error {
	res, err := repo.bookingColl.UpdateOne(ctx,
		bson.M{"payment_ref": ref},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return fmt.Errorf("error updating booking status: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrPaymentRefNotFound
	}
	return nil
}

func (repo *MongoBookingRepo) ListStalePending(ctx context.Context, before time.Time) ([]models.Booking, error) {
	filter := bson.M{
		"status":     models.StatusPending,
		"created_at": bson.M{"$lt": before},
	}
	return repo.listBookings(ctx, filter)
}

func (repo *MongoBookingRepo) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := repo.bookingColl.DeleteMany(ctx, bson.M{"id": bson.M{"$in": ids}}); err != nil {
		return fmt.Errorf("error deleting stale bookings: %w", err)
	}
	return nil
}
