package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limbo/kakune/internal/cache"
	errorvalues "github.com/limbo/kakune/internal/error_values"
	"github.com/limbo/kakune/pkg/entity"
)

func newTestCache(t *testing.T, ttl time.Duration) (*cache.HistoryCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return cache.NewHistoryCacheWithClient(client, "test", ttl), mr
}

func TestHistoryCacheRoundTrip(t *testing.T) {
	hc, _ := newTestCache(t, time.Minute)
	ctx := context.Background()
	uid := uuid.New()

	var got entity.WeekSummary
	gen, err := hc.Get(ctx, uid, "summary", &got)
	assert.ErrorIs(t, err, errorvalues.ErrCacheMiss)
	assert.Equal(t, "0", gen)

	want := entity.WeekSummary{ThisWeek: 4, LastWeek: 6, Diff: -2}
	require.NoError(t, hc.Set(ctx, uid, gen, "summary", want))
	_, err = hc.Get(ctx, uid, "summary", &got)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = hc.Get(ctx, uuid.New(), "summary", &got)
	assert.ErrorIs(t, err, errorvalues.ErrCacheMiss)
}

func TestHistoryCacheInvalidate(t *testing.T) {
	hc, mr := newTestCache(t, time.Minute)
	ctx := context.Background()
	uid, other := uuid.New(), uuid.New()
	summary := entity.WeekSummary{ThisWeek: 1}

	require.NoError(t, hc.Set(ctx, uid, "0", "summary", summary))
	require.NoError(t, hc.Set(ctx, other, "0", "summary", summary))
	require.NoError(t, hc.Invalidate(ctx, uid))

	var got entity.WeekSummary
	gen, err := hc.Get(ctx, uid, "summary", &got)
	assert.ErrorIs(t, err, errorvalues.ErrCacheMiss)
	assert.Equal(t, "1", gen)
	_, err = hc.Get(ctx, other, "summary", &got)
	assert.NoError(t, err)

	stored, err := mr.Get(hc.Key("gen", uid.String()))
	require.NoError(t, err)
	assert.Equal(t, "1", stored)

	require.NoError(t, hc.Set(ctx, uid, gen, "summary", summary))
	assert.True(t, mr.Exists(hc.Key("view", uid.String(), "1", "summary")))
}

func TestHistoryCacheWriteAfterInvalidate(t *testing.T) {
	hc, _ := newTestCache(t, time.Minute)
	ctx := context.Background()
	uid := uuid.New()

	var got entity.WeekSummary
	gen, err := hc.Get(ctx, uid, "summary", &got)
	require.ErrorIs(t, err, errorvalues.ErrCacheMiss)

	require.NoError(t, hc.Invalidate(ctx, uid))
	require.NoError(t, hc.Set(ctx, uid, gen, "summary", entity.WeekSummary{ThisWeek: 0}))

	_, err = hc.Get(ctx, uid, "summary", &got)
	assert.ErrorIs(t, err, errorvalues.ErrCacheMiss)
}

func TestHistoryCacheSetWithoutGeneration(t *testing.T) {
	hc, mr := newTestCache(t, time.Minute)
	uid := uuid.New()

	assert.Error(t, hc.Set(context.Background(), uid, "", "summary", entity.WeekSummary{}))
	assert.Empty(t, mr.Keys())
}

func TestHistoryCacheExpiry(t *testing.T) {
	hc, mr := newTestCache(t, time.Minute)
	ctx := context.Background()
	uid := uuid.New()

	require.NoError(t, hc.Set(ctx, uid, "0", "calendar:2024-06", entity.WeekSummary{}))
	mr.FastForward(time.Minute + time.Second)

	var got entity.WeekSummary
	_, err := hc.Get(ctx, uid, "calendar:2024-06", &got)
	assert.ErrorIs(t, err, errorvalues.ErrCacheMiss)
}

func TestHistoryCacheCorruptValue(t *testing.T) {
	hc, mr := newTestCache(t, time.Minute)
	uid := uuid.New()
	require.NoError(t, mr.Set(hc.Key("view", uid.String(), "0", "summary"), "{not json"))

	var got entity.WeekSummary
	gen, err := hc.Get(context.Background(), uid, "summary", &got)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, errorvalues.ErrCacheMiss)
	assert.Equal(t, "0", gen)
}

func TestHistoryCacheUnavailable(t *testing.T) {
	hc, mr := newTestCache(t, time.Minute)
	mr.Close()

	var got entity.WeekSummary
	gen, err := hc.Get(context.Background(), uuid.New(), "summary", &got)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, errorvalues.ErrCacheMiss)
	assert.Empty(t, gen)
}

func TestKey(t *testing.T) {
	hc := cache.NewHistoryCacheWithClient(nil, "", time.Minute)
	assert.Equal(t, "kakune:history:view:u:0:summary", hc.Key("view", "u", "", "0", "summary"))
}

func TestNopHistoryCache(t *testing.T) {
	var hc cache.HistoryCacheI = cache.NopHistoryCache{}
	ctx := context.Background()
	uid := uuid.New()

	assert.NoError(t, hc.Set(ctx, uid, "0", "summary", 1))
	assert.NoError(t, hc.Invalidate(ctx, uid))
	var got int
	gen, err := hc.Get(ctx, uid, "summary", &got)
	assert.ErrorIs(t, err, errorvalues.ErrCacheMiss)
	assert.Empty(t, gen)
}
