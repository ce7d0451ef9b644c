package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"infibot/models"
	"infibot/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const eventsCachePrefix = "catalog:events:"

var cities = []models.City{
	{ID: "1", Name: "Mumbai", State: "Maharashtra"},
	{ID: "2", Name: "Delhi", State: "Delhi"},
	{ID: "3", Name: "Bangalore", State: "Karnataka"},
	{ID: "4", Name: "Chennai", State: "Tamil Nadu"},
	{ID: "5", Name: "Kolkata", State: "West Bengal"},
	{ID: "6", Name: "Hyderabad", State: "Telangana"},
	{ID: "7", Name: "Pune", State: "Maharashtra"},
	{ID: "8", Name: "Ahmedabad", State: "Gujarat"},
	{ID: "9", Name: "Jaipur", State: "Rajasthan"},
}

var categories = []models.EventCategory{
	{ID: "1", Name: "Music Concerts", Description: "Live music performances"},
	{ID: "2", Name: "Cultural Events", Description: "Traditional and cultural showcases"},
	{ID: "3", Name: "Comedy Shows", Description: "Stand-up comedy and humor shows"},
	{ID: "4", Name: "Sports Events", Description: "Various sporting competitions"},
	{ID: "5", Name: "Art Exhibitions", Description: "Showcases of visual art"},
	{ID: "6", Name: "Workshops", Description: "Learning and skill-building sessions"},
}

// ListCities returns the static city set.
func (svc *DefaultCatalogService) ListCities(ctx context.Context) ([]models.City, error) {
	out := make([]models.City, len(cities))
	copy(out, cities)
	return out, nil
}

// ListCategories returns the static category set.
func (svc *DefaultCatalogService) ListCategories(ctx context.Context) ([]models.EventCategory, error) {
	out := make([]models.EventCategory, len(categories))
	copy(out, categories)
	return out, nil
}

// ListEvents returns the event listing for a (city, category) pair. The
// listing is generated deterministically from the pair and cached, so event
// IDs handed to the user stay resolvable on later lookups.
func (svc *DefaultCatalogService) ListEvents(ctx context.Context, city, category string) ([]models.Event, error) {
	key := eventsCacheKey(city, category)

	if svc.Cache != nil {
		data, err := svc.Cache.Get(ctx, key).Result()
		if err == nil {
			var events []models.Event
			if err := json.Unmarshal([]byte(data), &events); err == nil {
				return events, nil
			}
			utils.GetLogger().Warn("catalog: dropping corrupt cache entry", zap.String("key", key))
		} else if err != redis.Nil {
			return nil, fmt.Errorf("catalog: cache lookup failed: %w", err)
		}
	}

	events := generateEvents(city, category)

	if svc.Cache != nil {
		if b, err := json.Marshal(events); err == nil {
			if err := svc.Cache.Set(ctx, key, b, svc.TTL).Err(); err != nil {
				utils.GetLogger().Warn("catalog: failed to cache event listing",
					zap.String("key", key), zap.Error(err))
			}
		}
	}

	return events, nil
}

func eventsCacheKey(city, category string) string {
	return eventsCachePrefix + strings.ToLower(city) + ":" + strings.ToLower(strings.ReplaceAll(category, " ", "-"))
}

// generateEvents builds the five-event listing for a pair. IDs derive only
// from the pair and the index, never from wall-clock time.
func generateEvents(city, category string) []models.Event {
	events := make([]models.Event, 0, 5)
	today := time.Now()

	for i := 1; i <= 5; i++ {
		date := today.AddDate(0, 0, i*3)
		slug := strings.ToLower(strings.ReplaceAll(category, " ", "-"))
		events = append(events, models.Event{
			ID:       fmt.Sprintf("%s-%s-%d", city, category, i),
			Name:     fmt.Sprintf("%s %d in %s", category, i, city),
			Description: fmt.Sprintf(
				"This is a great %s event happening in %s. Don't miss this amazing experience with talented performers and an incredible atmosphere!",
				strings.ToLower(category), city),
			Category: category,
			Date:     date.Format("January 2, 2006"),
			Time:     fmt.Sprintf("%d:00 PM", 6+i),
			Venue:    fmt.Sprintf("%s %s Arena", city, category),
			City:     city,
			Price:    fmt.Sprintf("₹%d", 500*i),
			Image:    fmt.Sprintf("https://source.unsplash.com/random/300x200?%s,%d", slug, i),
		})
	}

	return events
}
