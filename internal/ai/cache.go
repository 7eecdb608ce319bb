package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	analysisKeyPrefix  = "ai-analysis::"
	DefaultAnalysisTTL = 24 * time.Hour
)

// RedisAnalysisCache keeps provider extractions by transcript and the sports list the
// provider was shown, so repeating the same sentence does not cost another provider call.
// Redis failures only disable caching.
type RedisAnalysisCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisAnalysisCache(redisClient *redis.Client, ttl time.Duration) *RedisAnalysisCache {
	if ttl <= 0 {
		ttl = DefaultAnalysisTTL
	}
	return &RedisAnalysisCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// AnalysisCacheKey hashes the normalized text together with the sorted, deduplicated
// sports list. Sport names stay case sensitive, they are matched exactly.
func AnalysisCacheKey(text string, existingSports []string) string {
	sportNames := make([]string, 0, len(existingSports))
	for _, name := range existingSports {
		if name = strings.TrimSpace(name); name != "" {
			sportNames = append(sportNames, name)
		}
	}
	slices.Sort(sportNames)
	sportNames = slices.Compact(sportNames)

	h := sha256.New()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(text))))
	for _, name := range sportNames {
		h.Write([]byte{0})
		h.Write([]byte(name))
	}
	return analysisKeyPrefix + hex.EncodeToString(h.Sum(nil))
}

func (c *RedisAnalysisCache) Get(ctx context.Context, text string, existingSports []string) (*Extraction, bool) {
	key := AnalysisCacheKey(text, existingSports)
	val, err := c.redisClient.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		log.Errorf("get cached analysis [%s]: %s", key, err)
		return nil, false
	}

	extraction := &Extraction{}
	if err := json.Unmarshal([]byte(val), extraction); err != nil {
		log.Errorf("unmarshal cached analysis [%s]: %s", key, err)
		return nil, false
	}

	log.Tracef("analysis cache hit [%s]", key)
	return extraction, true
}

func (c *RedisAnalysisCache) Set(ctx context.Context, text string, existingSports []string, extraction Extraction) {
	key := AnalysisCacheKey(text, existingSports)
	extractionJson, err := json.Marshal(extraction)
	if err != nil {
		log.Errorf("marshal analysis for cache: %s", err)
		return
	}

	if err := c.redisClient.Set(ctx, key, string(extractionJson), c.ttl).Err(); err != nil {
		log.Errorf("cache analysis [%s]: %s", key, err)
	}
}
