package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HealthStatus is the latest snapshot of the store and cache dependencies.
type HealthStatus struct {
	Healthy   bool      `json:"healthy"`
	Mongo     bool      `json:"mongo"`
	Cache     bool      `json:"cache"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor probes mongo and the catalog cache once at startup and
// then every minute, keeping an in-memory snapshot for the healthz endpoint.
// A degraded cache is logged but does not mark the service unhealthy; the
// catalog falls through to the store without it.
func StartHealthMonitor(cache *redis.Client, mongoClient *mongo.Client) {
	probe := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		mongoOK := mongoClient.Ping(ctx, nil) == nil
		cacheOK := cache.Ping(ctx).Err() == nil

		if !mongoOK {
			GetLogger().Warn("health: mongo ping failed")
		}
		if !cacheOK {
			GetLogger().Warn("health: cache ping failed",
				zap.String("note", "catalog reads fall through to mongo"))
		}

		healthMu.Lock()
		currentHealth = HealthStatus{
			Healthy:   mongoOK,
			Mongo:     mongoOK,
			Cache:     cacheOK,
			CheckedAt: time.Now(),
		}
		healthMu.Unlock()
	}

	probe()
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			probe()
		}
	}()
}
