package cmd

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyflow/internal/domain"
	"studyflow/internal/ports"
	"studyflow/internal/services"
)

func newMemoryCache(t *testing.T, now func() time.Time) *services.LocalCache {
	t.Helper()
	cache := services.NewLocalCache(context.Background(), func() (ports.RecordStore, error) {
		return nil, errors.New("no store in tests")
	}, services.CacheConfig{Now: now})
	t.Cleanup(func() { cache.Close() })
	require.True(t, cache.Degraded())
	return cache
}

func TestFindSession(t *testing.T) {
	cache := newMemoryCache(t, time.Now)
	first := cache.CreateSession(nil)
	second := cache.CreateSession(nil)

	t.Run("exact id", func(t *testing.T) {
		got, err := findSession(cache, second.ID)
		require.NoError(t, err)
		assert.Equal(t, second.ID, got.ID)
	})

	t.Run("unique prefix", func(t *testing.T) {
		got, err := findSession(cache, first.ID[:12])
		require.NoError(t, err)
		assert.Equal(t, first.ID, got.ID)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := findSession(cache, "zzzz")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("ambiguous", func(t *testing.T) {
		_, err := findSession(cache, "")
		assert.ErrorContains(t, err, "ambiguous")
	})
}

func TestLatestSession(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tick := 0
	cache := newMemoryCache(t, func() time.Time {
		tick++
		return start.Add(time.Duration(tick) * time.Minute)
	})

	_, err := latestSession(cache)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	cache.CreateSession(nil)
	newest := cache.CreateSession(nil)

	got, err := latestSession(cache)
	require.NoError(t, err)
	assert.Equal(t, newest.ID, got.ID)
}
