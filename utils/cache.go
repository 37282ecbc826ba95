package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"barberpro/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the generic cache client, used for availability responses.
var CacheClient *redis.Client

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// AvailabilityCacheKey builds the cache key for one provider/service/date
// availability response.
func AvailabilityCacheKey(providerID, serviceID, date string) string {
	return fmt.Sprintf("avail:%s:%s:%s", providerID, serviceID, date)
}

// InvalidateAvailability drops every cached availability entry for a provider
// on a given date (all services), after a booking or schedule write.
func InvalidateAvailability(ctx context.Context, client *redis.Client, providerID, date string) {
	invalidateByPattern(ctx, client, fmt.Sprintf("avail:%s:*:%s", providerID, date))
}

// InvalidateProviderAvailability drops every cached availability entry for a
// provider across all dates, after a working-hours or exception change.
func InvalidateProviderAvailability(ctx context.Context, client *redis.Client, providerID string) {
	invalidateByPattern(ctx, client, fmt.Sprintf("avail:%s:*", providerID))
}

func invalidateByPattern(ctx context.Context, client *redis.Client, pattern string) {
	iter := client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}
