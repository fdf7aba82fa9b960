// Package cache stores computed history views in Redis.
//
// Every user has a generation counter. View keys embed the generation, so a
// single INCR on write makes all of the user's cached views unreachable; the
// orphaned keys expire by TTL.
package cache

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	errorvalues "github.com/limbo/kakune/internal/error_values"
	"github.com/limbo/kakune/pkg/cleanup"
)

const (
	defaultPrefix = "kakune"
	historyPrefix = "history"

	generationPart = "gen"
	viewPart       = "view"
)

//go:generate mockgen -destination=mocks/cache_mocks.go -package=mocks github.com/limbo/kakune/internal/cache HistoryCacheI

type HistoryCacheI interface {
	// Decodes the cached view into dst or returns ErrCacheMiss. The returned
	// generation is the one the lookup used, empty when it could not be read.
	Get(ctx context.Context, uid uuid.UUID, view string, dst any) (string, error)
	// Stores value under view for generation gen
	Set(ctx context.Context, uid uuid.UUID, gen, view string, value any) error
	// Drops every cached view of the user
	Invalidate(ctx context.Context, uid uuid.UUID) error
}

type RedisCfg struct {
	Address  string
	Password string
	DB       int
	Prefix   string
}

type HistoryCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewHistoryCache(cfg *RedisCfg, ttl time.Duration) *HistoryCache {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		MinIdleConns: 2,
		MaxRetries:   3,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("error while pinging redis for history cache: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	return NewHistoryCacheWithClient(client, cfg.Prefix, ttl)
}

func NewHistoryCacheWithClient(client redis.UniversalClient, prefix string, ttl time.Duration) *HistoryCache {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &HistoryCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Key joins non-empty parts under the cache prefix with ":".
func (hc *HistoryCache) Key(parts ...string) string {
	var sb strings.Builder
	sb.WriteString(hc.prefix)
	sb.WriteString(":")
	sb.WriteString(historyPrefix)
	for _, part := range parts {
		if part != "" {
			sb.WriteString(":")
			sb.WriteString(part)
		}
	}
	return sb.String()
}

func (hc *HistoryCache) generation(ctx context.Context, uid uuid.UUID) (string, error) {
	gen, err := hc.client.Get(ctx, hc.Key(generationPart, uid.String())).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "0", nil
		}
		return "", errors.New("reading cache generation error: " + err.Error())
	}
	return gen, nil
}

func (hc *HistoryCache) Get(ctx context.Context, uid uuid.UUID, view string, dst any) (string, error) {
	gen, err := hc.generation(ctx, uid)
	if err != nil {
		return "", err
	}
	data, err := hc.client.Get(ctx, hc.Key(viewPart, uid.String(), gen, view)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return gen, errorvalues.ErrCacheMiss
		}
		return gen, errors.New("reading cached view error: " + err.Error())
	}
	if err = sonic.Unmarshal(data, dst); err != nil {
		return gen, errors.New("decoding cached view error: " + err.Error())
	}
	return gen, nil
}

// Set writes under gen, not under the current generation, so a view computed
// before an Invalidate lands on an unreachable key.
func (hc *HistoryCache) Set(ctx context.Context, uid uuid.UUID, gen, view string, value any) error {
	if gen == "" {
		return errors.New("writing cached view error: empty generation")
	}
	data, err := sonic.Marshal(value)
	if err != nil {
		return errors.New("encoding view error: " + err.Error())
	}
	if err = hc.client.Set(ctx, hc.Key(viewPart, uid.String(), gen, view), data, hc.ttl).Err(); err != nil {
		return errors.New("writing cached view error: " + err.Error())
	}
	return nil
}

func (hc *HistoryCache) Invalidate(ctx context.Context, uid uuid.UUID) error {
	if err := hc.client.Incr(ctx, hc.Key(generationPart, uid.String())).Err(); err != nil {
		return errors.New("bumping cache generation error: " + err.Error())
	}
	return nil
}

// NopHistoryCache is used when Redis is not configured. Every read misses.
type NopHistoryCache struct{}

func (NopHistoryCache) Get(context.Context, uuid.UUID, string, any) (string, error) {
	return "", errorvalues.ErrCacheMiss
}

func (NopHistoryCache) Set(context.Context, uuid.UUID, string, string, any) error { return nil }

func (NopHistoryCache) Invalidate(context.Context, uuid.UUID) error { return nil }
