package cache

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// PropertyListKey caches the unfiltered property listing
	PropertyListKey = "properties:all"
	propertyListTTL = 2 * time.Minute
)

var client *redis.Client

// Init initializes the Redis connection. The cache degrades gracefully:
// when Redis is unavailable every lookup is a miss.
func Init() error {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// Ping reports whether the cache connection is alive. Returns false when
// the cache was never initialized.
func Ping(ctx context.Context) bool {
	if client == nil {
		return false
	}
	return client.Ping(ctx).Err() == nil
}

// GetPropertyList returns the cached unfiltered listing if available.
func GetPropertyList(ctx context.Context) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, PropertyListKey).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetPropertyList caches the unfiltered listing.
func SetPropertyList(ctx context.Context, data []byte) {
	if client == nil {
		return
	}
	client.Set(ctx, PropertyListKey, data, propertyListTTL)
}

// InvalidatePropertyList drops the cached listing after any property write.
func InvalidatePropertyList(ctx context.Context) {
	if client == nil {
		return
	}
	client.Del(ctx, PropertyListKey)
}
