package catalogRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"roomly/models"
	"roomly/utils"

	"go.uber.org/zap"
)

// catalogCacheTTL keeps config lookups cheap without letting admin edits go
// unnoticed for long.
const catalogCacheTTL = 60 * time.Second

// CachedCatalogRepo wraps a CatalogRepository with a Redis read-through cache
// for the hot read-only lookups. Promo codes are never cached: their usage
// counter moves under the engine's feet.
type CachedCatalogRepo struct {
	inner CatalogRepository
}

// NewCachedCatalogRepo constructs a read-through cache over inner.
func NewCachedCatalogRepo(inner CatalogRepository) *CachedCatalogRepo {
	return &CachedCatalogRepo{inner: inner}
}

func cacheGet(ctx context.Context, key string, out any) bool {
	data, err := utils.GetCacheClient().Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		utils.GetLogger().Warn("corrupt catalog cache entry", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func cacheSet(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := utils.GetCacheClient().Set(ctx, key, data, catalogCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache catalog entry", zap.String("key", key), zap.Error(err))
	}
}

func (r *CachedCatalogRepo) GetPackage(ctx context.Context, id string) (*models.Package, error) {
	key := "catalog:package:" + id
	var pkg models.Package
	if cacheGet(ctx, key, &pkg) {
		return &pkg, nil
	}
	got, err := r.inner.GetPackage(ctx, id)
	if err != nil || got == nil {
		return got, err
	}
	cacheSet(ctx, key, got)
	return got, nil
}

func (r *CachedCatalogRepo) ListPackages(ctx context.Context) ([]models.Package, error) {
	key := "catalog:packages"
	var packages []models.Package
	if cacheGet(ctx, key, &packages) {
		return packages, nil
	}
	packages, err := r.inner.ListPackages(ctx)
	if err != nil {
		return nil, err
	}
	cacheSet(ctx, key, packages)
	return packages, nil
}

func (r *CachedCatalogRepo) ListRooms(ctx context.Context) ([]models.Room, error) {
	key := "catalog:rooms"
	var rooms []models.Room
	if cacheGet(ctx, key, &rooms) {
		return rooms, nil
	}
	rooms, err := r.inner.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	cacheSet(ctx, key, rooms)
	return rooms, nil
}

func (r *CachedCatalogRepo) ListHolidays(ctx context.Context, from, to string) ([]models.Holiday, error) {
	key := fmt.Sprintf("catalog:holidays:%s:%s", from, to)
	var holidays []models.Holiday
	if cacheGet(ctx, key, &holidays) {
		return holidays, nil
	}
	holidays, err := r.inner.ListHolidays(ctx, from, to)
	if err != nil {
		return nil, err
	}
	cacheSet(ctx, key, holidays)
	return holidays, nil
}

func (r *CachedCatalogRepo) ListExtraItems(ctx context.Context) ([]models.ExtraItem, error) {
	key := "catalog:extras"
	var items []models.ExtraItem
	if cacheGet(ctx, key, &items) {
		return items, nil
	}
	items, err := r.inner.ListExtraItems(ctx)
	if err != nil {
		return nil, err
	}
	cacheSet(ctx, key, items)
	return items, nil
}

func (r *CachedCatalogRepo) GetExtraItems(ctx context.Context, ids []string) ([]models.ExtraItem, error) {
	return r.inner.GetExtraItems(ctx, ids)
}

func (r *CachedCatalogRepo) GetPromoByCode(ctx context.Context, code string) (*models.PromoCode, error) {
	return r.inner.GetPromoByCode(ctx, code)
}
