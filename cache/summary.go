// Package cache keeps already-generated article summaries in Redis so
// repeated summarize triggers on the same body skip the LLM.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config configures the Redis connection and key behaviour.
type Config struct {
	Addr     string // e.g. localhost:6379
	Password string
	DB       int
	Prefix   string // key prefix, e.g. "summaries:"
	TTL      time.Duration
}

// SummaryCache is a content-hash keyed summary store.
type SummaryCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewFromEnv creates a cache from REDIS_ADDR, REDIS_PASS,
// SUMMARY_CACHE_PREFIX and SUMMARY_CACHE_TTL_SECONDS.
func NewFromEnv() (*SummaryCache, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	prefix := os.Getenv("SUMMARY_CACHE_PREFIX")
	if prefix == "" {
		prefix = "summaries:"
	}
	ttl := 24 * time.Hour
	if t := os.Getenv("SUMMARY_CACHE_TTL_SECONDS"); t != "" {
		if secs, err := strconv.Atoi(t); err == nil && secs > 0 {
			ttl = time.Duration(secs) * time.Second
		}
	}

	return New(Config{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
		Prefix:   prefix,
		TTL:      ttl,
	})
}

// New creates a cache and verifies connectivity.
func New(cfg Config) (*SummaryCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	return &SummaryCache{client: client, prefix: cfg.Prefix, ttl: cfg.TTL}, nil
}

// Close closes the underlying Redis client.
func (c *SummaryCache) Close() error {
	return c.client.Close()
}

// Get returns the cached summary for the content, if any.
func (c *SummaryCache) Get(ctx context.Context, content string) (string, bool, error) {
	val, err := c.client.Get(ctx, c.prefix+ContentKey(content)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set stores a summary under the content's hash with the cache TTL.
func (c *SummaryCache) Set(ctx context.Context, content, summary string) error {
	return c.client.Set(ctx, c.prefix+ContentKey(content), summary, c.ttl).Err()
}

// ContentKey returns a stable SHA-256 hex key for an article body.
// Whitespace runs are collapsed first so trivially reformatted copies
// of the same article share one cache entry.
func ContentKey(content string) string {
	normalized := strings.Join(strings.Fields(content), " ")
	h := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(h[:])
}
