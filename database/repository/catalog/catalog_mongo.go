package catalogRepo

import (
	"context"
	"fmt"

	"roomly/database"
	"roomly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	packageColl *mongo.Collection
	roomColl    *mongo.Collection
	holidayColl *mongo.Collection
	extraColl   *mongo.Collection
	promoColl   *mongo.Collection
}

// NewMongoCatalogRepo constructs a new instance of MongoCatalogRepo.
func NewMongoCatalogRepo() *MongoCatalogRepo {
	db := database.DB()
	return &MongoCatalogRepo{
		packageColl: db.Collection("packages"),
		roomColl:    db.Collection("rooms"),
		holidayColl: db.Collection("holidays"),
		extraColl:   db.Collection("extra_items"),
		promoColl:   db.Collection("promo_codes"),
	}
}

func (repo *MongoCatalogRepo) GetPackage(ctx context.Context, id string) (*models.Package, error) {
	var pkg models.Package
	if err := repo.packageColl.FindOne(ctx, bson.M{"id": id}).Decode(&pkg); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching package %s: %w", id, err)
	}
	return &pkg, nil
}

func (repo *MongoCatalogRepo) ListPackages(ctx context.Context) ([]models.Package, error) {
	cursor, err := repo.packageColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing packages: %w", err)
	}
	defer cursor.Close(ctx)

	var packages []models.Package
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, fmt.Errorf("error decoding packages: %w", err)
	}
	return packages, nil
}

func (repo *MongoCatalogRepo) ListRooms(ctx context.Context) ([]models.Room, error) {
	cursor, err := repo.roomColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("error decoding rooms: %w", err)
	}
	return rooms, nil
}

func (repo *MongoCatalogRepo) ListHolidays(ctx context.Context, from, to string) ([]models.Holiday, error) {
	filter := bson.M{"date": bson.M{"$gte": from, "$lte": to}}
	cursor, err := repo.holidayColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing holidays: %w", err)
	}
	defer cursor.Close(ctx)

	var holidays []models.Holiday
	if err := cursor.All(ctx, &holidays); err != nil {
		return nil, fmt.Errorf("error decoding holidays: %w", err)
	}
	return holidays, nil
}

func (repo *MongoCatalogRepo) ListExtraItems(ctx context.Context) ([]models.ExtraItem, error) {
	cursor, err := repo.extraColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing extra items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.ExtraItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("error decoding extra items: %w", err)
	}
	return items, nil
}

func (repo *MongoCatalogRepo) GetExtraItems(ctx context.Context, ids []string) ([]models.ExtraItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := repo.extraColl.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("error fetching extra items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.ExtraItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("error decoding extra items: %w", err)
	}
	return items, nil
}

func (repo *MongoCatalogRepo) GetPromoByCode(ctx context.Context, code string) (*models.PromoCode, error) {
	var promo models.PromoCode
	if err := repo.promoColl.FindOne(ctx, bson.M{"code": code}).Decode(&promo); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching promo code %s: %w", code, err)
	}
	return &promo, nil
}
