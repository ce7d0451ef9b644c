package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCities(t *testing.T) {
	svc := &DefaultCatalogService{}

	got, err := svc.ListCities(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "Mumbai", got[0].Name)
	assert.Equal(t, "Maharashtra", got[0].State)

	// Callers get a copy, not the package-level slice.
	got[0].Name = "mutated"
	again, err := svc.ListCities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", again[0].Name)
}

func TestListCategories(t *testing.T) {
	svc := &DefaultCatalogService{}

	got, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, got)

	names := make([]string, len(got))
	for i, c := range got {
		names[i] = c.Name
	}
	assert.Contains(t, names, "Music Concerts")
	assert.Contains(t, names, "Comedy Shows")
}

func TestListEvents_Deterministic(t *testing.T) {
	svc := &DefaultCatalogService{}
	ctx := context.Background()

	first, err := svc.ListEvents(ctx, "Mumbai", "Music Concerts")
	require.NoError(t, err)
	second, err := svc.ListEvents(ctx, "Mumbai", "Music Concerts")
	require.NoError(t, err)

	require.Len(t, first, 5)
	for i, ev := range first {
		assert.Equal(t, fmt.Sprintf("Mumbai-Music Concerts-%d", i+1), ev.ID)
		assert.Equal(t, "Mumbai", ev.City)
		assert.Equal(t, "Music Concerts", ev.Category)
		assert.Equal(t, fmt.Sprintf("₹%d", 500*(i+1)), ev.Price)
		assert.NotEmpty(t, ev.Date)
		assert.NotEmpty(t, ev.Venue)

		// IDs stay resolvable across calls within a session.
		assert.Equal(t, ev.ID, second[i].ID)
	}
}

func TestEventsCacheKey(t *testing.T) {
	assert.Equal(t, "catalog:events:mumbai:music-concerts", eventsCacheKey("Mumbai", "Music Concerts"))
	assert.Equal(t, "catalog:events:delhi:workshops", eventsCacheKey("Delhi", "Workshops"))
}
