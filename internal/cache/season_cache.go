package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/XavierBriggs/fortuna/services/pitch-stats-service/pkg/models"
	"github.com/redis/go-redis/v9"
)

// SeasonTTL bounds how stale cached season data may get. Statcast rows for
// in-progress seasons keep arriving, so an hour is the ceiling.
const SeasonTTL = 1 * time.Hour

// SeasonCache stores parsed season pitch data in Redis, keyed by year.
type SeasonCache struct {
	client *redis.Client
}

// NewSeasonCache creates a new season cache
func NewSeasonCache(client *redis.Client) *SeasonCache {
	return &SeasonCache{
		client: client,
	}
}

// ReadSeason retrieves cached pitch records for a season. A missing key
// returns redis.Nil.
func (c *SeasonCache) ReadSeason(ctx context.Context, year int) ([]models.PitchRecord, error) {
	data, err := c.client.Get(ctx, seasonKey(year)).Result()
	if err != nil {
		return nil, err
	}

	var records []models.PitchRecord
	if err := json.Unmarshal([]byte(data), &records); err != nil {
		return nil, fmt.Errorf("unmarshaling season %d: %w", year, err)
	}

	return records, nil
}

// WriteSeason stores pitch records for a season with the standard TTL.
func (c *SeasonCache) WriteSeason(ctx context.Context, year int, records []models.PitchRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling season %d: %w", year, err)
	}

	return c.client.Set(ctx, seasonKey(year), data, SeasonTTL).Err()
}

// InvalidateSeason drops a season's cached data so the next request
// refetches from the provider.
func (c *SeasonCache) InvalidateSeason(ctx context.Context, year int) error {
	return c.client.Del(ctx, seasonKey(year)).Err()
}

func seasonKey(year int) string {
	return fmt.Sprintf("statcast:season:%d:pitches", year)
}
