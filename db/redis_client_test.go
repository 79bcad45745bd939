package db_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"crowd-server/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clients() []struct {
	name   string
	client db.RedisClient
} {
	return []struct {
		name   string
		client db.RedisClient
	}{
		{"MockRedisClient", db.NewMockRedisClient(context.Background())},
		// A GeoRedisClient backed by a live server can be added here for integration runs.
	}
}

func TestRedisClient_SetAndGet(t *testing.T) {
	for _, test := range clients() {
		t.Run(test.name, func(t *testing.T) {
			require.NoError(t, test.client.Set("test-key", "test-value"))

			retrieved, err := test.client.Get("test-key")
			require.NoError(t, err)
			assert.Equal(t, "test-value", retrieved)
		})
	}
}

func TestRedisClient_GetMissingKey(t *testing.T) {
	for _, test := range clients() {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.client.Get("missing")
			assert.True(t, errors.Is(err, db.ErrKeyNotFound))
		})
	}
}

func TestRedisClient_AddLocationWithJSONAndGetLocationsWithinRadius(t *testing.T) {
	for _, test := range clients() {
		t.Run(test.name, func(t *testing.T) {
			ctx := context.Background()
			// Bengaluru Palace, Lalbagh (about 5 km south) and Mysore Palace (about 125 km away).
			require.NoError(t, test.client.AddLocationWithJSON(ctx, "hotspots", "lalbagh", 12.9507, 77.5848, map[string]string{"name": "Lalbagh"}))
			require.NoError(t, test.client.AddLocationWithJSON(ctx, "hotspots", "palace", 12.9980, 77.5920, map[string]string{"name": "Bangalore Palace"}))
			require.NoError(t, test.client.AddLocationWithJSON(ctx, "hotspots", "mysore", 12.3052, 76.6552, map[string]string{"name": "Mysore Palace"}))

			results, err := test.client.GetLocationsWithinRadius("hotspots", 12.9980, 77.5920, 10)
			require.NoError(t, err)
			require.Len(t, results, 2)

			var nearest map[string]string
			require.NoError(t, json.Unmarshal([]byte(results[0]), &nearest))
			assert.Equal(t, "Bangalore Palace", nearest["name"])
		})
	}
}

func TestRedisClient_GetLocationsWithinRadiusUnknownKey(t *testing.T) {
	for _, test := range clients() {
		t.Run(test.name, func(t *testing.T) {
			results, err := test.client.GetLocationsWithinRadius("nothing-here", 0, 0, 100)
			require.NoError(t, err)
			assert.Empty(t, results)
		})
	}
}

func TestRedisClient_KeysAndDel(t *testing.T) {
	for _, test := range clients() {
		t.Run(test.name, func(t *testing.T) {
			require.NoError(t, test.client.Set("snap:2026-01-01", "a"))
			require.NoError(t, test.client.Set("snap:2026-01-02", "b"))
			require.NoError(t, test.client.Set("other:1", "c"))

			keys, err := test.client.Keys("snap:*")
			require.NoError(t, err)
			assert.ElementsMatch(t, []string{"snap:2026-01-01", "snap:2026-01-02"}, keys)

			require.NoError(t, test.client.Del("snap:2026-01-01"))
			keys, err = test.client.Keys("snap:*")
			require.NoError(t, err)
			assert.Equal(t, []string{"snap:2026-01-02"}, keys)
		})
	}
}

func TestRedisClient_Ping(t *testing.T) {
	for _, test := range clients() {
		t.Run(test.name, func(t *testing.T) {
			assert.NoError(t, test.client.Ping())
		})
	}
}
