package catalogRepo

import (
	"context"

	"roomly/models"
)

// CatalogRepository reads the booking-site configuration: packages, rooms,
// holidays, extra items and promo codes. The engine never writes this
// configuration; the one mutation, promo usage, happens inside the booking
// create transaction (see bookingRepo).
type CatalogRepository interface {
	GetPackage(ctx context.Context, id string) (*models.Package, error)
	ListPackages(ctx context.Context) ([]models.Package, error)
	ListRooms(ctx context.Context) ([]models.Room, error)
	// ListHolidays returns holidays with from <= date <= to.
	ListHolidays(ctx context.Context, from, to string) ([]models.Holiday, error)
	ListExtraItems(ctx context.Context) ([]models.ExtraItem, error)
	GetExtraItems(ctx context.Context, ids []string) ([]models.ExtraItem, error)
	// GetPromoByCode returns (nil, nil) when the code does not exist.
	GetPromoByCode(ctx context.Context, code string) (*models.PromoCode, error)
}
