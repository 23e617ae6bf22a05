package config

import (
	"log"
	"os"
	"time"

	"banner-service/cache"
)

// BannerCacheTTL bounds how stale a non-forced banner read may be.
const BannerCacheTTL = 300 * time.Second

// InitCache returns a Redis-backed cache when REDIS_URL is set, otherwise
// an in-process one.
func InitCache() cache.Cache {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Println("REDIS_URL not set, using in-memory cache")
		return cache.NewMemoryCache(BannerCacheTTL)
	}

	c, err := cache.NewRedisCache(redisURL, "banner:", BannerCacheTTL)
	if err != nil {
		log.Fatal("Failed to connect to redis: ", err)
	}
	return c
}
