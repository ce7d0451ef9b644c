package catalog

import (
	"context"
	"time"

	"infibot/models"

	"github.com/go-redis/redis/v8"
)

// CatalogService lists the reference data the conversation offers to the
// user: cities, event categories, and the events for a (city, category) pair.
type CatalogService interface {
	ListCities(ctx context.Context) ([]models.City, error)
	ListCategories(ctx context.Context) ([]models.EventCategory, error)
	ListEvents(ctx context.Context, city, category string) ([]models.Event, error)
}

// DefaultCatalogService serves the static city/category sets and generates
// event listings per (city, category) pair. Listings are cached in Redis so
// a pair always resolves to the same events (and the same event IDs) for the
// lifetime of the cache entry.
type DefaultCatalogService struct {
	Cache *redis.Client // optional; nil disables caching
	TTL   time.Duration
}

// NewDefaultCatalogService returns a catalog backed by the given cache client.
func NewDefaultCatalogService(cache *redis.Client, ttl time.Duration) *DefaultCatalogService {
	return &DefaultCatalogService{Cache: cache, TTL: ttl}
}
