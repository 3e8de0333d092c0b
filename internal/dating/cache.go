package dating

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/imadgeboyega/kiekky-matcher/internal/matching"
)

// MatchCache memoizes engine results. Lookups never fail: any problem is a miss.
type MatchCache interface {
	GetSummary(ctx context.Context, key SummaryKey) (*matching.MatchSummary, bool)
	SetSummary(ctx context.Context, key SummaryKey, summary *matching.MatchSummary)
	GetDetails(ctx context.Context, userID, candidateID string) (*matching.CompatibilityResult, bool)
	SetDetails(ctx context.Context, userID, candidateID string, result *matching.CompatibilityResult)
}

// SummaryKey identifies one find-matches result
type SummaryKey struct {
	UserID    string
	Threshold int
	Details   bool
	Limit     int
}

func (k SummaryKey) String() string {
	return fmt.Sprintf("matches:summary:%s:t%d:d%t:l%d", k.UserID, k.Threshold, k.Details, k.Limit)
}

func detailsKey(userID, candidateID string) string {
	return fmt.Sprintf("matches:details:%s:%s", userID, candidateID)
}

const (
	kindSummary = "summary"
	kindDetails = "details"
)

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache returns a redis-backed cache, or a no-op cache when client is
// nil or ttl is not positive.
func NewRedisCache(client *redis.Client, ttl time.Duration) MatchCache {
	if client == nil || ttl <= 0 {
		return NoopCache{}
	}
	return &redisCache{client: client, ttl: ttl}
}

func (c *redisCache) GetSummary(ctx context.Context, key SummaryKey) (*matching.MatchSummary, bool) {
	var summary matching.MatchSummary
	if !c.get(ctx, kindSummary, key.String(), &summary) {
		return nil, false
	}
	return &summary, true
}

func (c *redisCache) SetSummary(ctx context.Context, key SummaryKey, summary *matching.MatchSummary) {
	c.set(ctx, key.String(), summary)
}

func (c *redisCache) GetDetails(ctx context.Context, userID, candidateID string) (*matching.CompatibilityResult, bool) {
	var result matching.CompatibilityResult
	if !c.get(ctx, kindDetails, detailsKey(userID, candidateID), &result) {
		return nil, false
	}
	return &result, true
}

func (c *redisCache) SetDetails(ctx context.Context, userID, candidateID string, result *matching.CompatibilityResult) {
	c.set(ctx, detailsKey(userID, candidateID), result)
}

func (c *redisCache) get(ctx context.Context, kind, key string, dst interface{}) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		RecordCacheLookup(kind, "miss")
		return false
	case err != nil:
		log.Printf("match cache: get %s: %v", key, err)
		RecordCacheLookup(kind, "error")
		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		log.Printf("match cache: decode %s: %v", key, err)
		RecordCacheLookup(kind, "error")
		return false
	}
	RecordCacheLookup(kind, "hit")
	return true
}

func (c *redisCache) set(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("match cache: encode %s: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Printf("match cache: set %s: %v", key, err)
	}
}

// NoopCache never stores anything
type NoopCache struct{}

func (NoopCache) GetSummary(context.Context, SummaryKey) (*matching.MatchSummary, bool) {
	return nil, false
}

func (NoopCache) SetSummary(context.Context, SummaryKey, *matching.MatchSummary) {}

func (NoopCache) GetDetails(context.Context, string, string) (*matching.CompatibilityResult, bool) {
	return nil, false
}

func (NoopCache) SetDetails(context.Context, string, string, *matching.CompatibilityResult) {}
