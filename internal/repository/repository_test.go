package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateRepositoryMemory(t *testing.T) {
	ctx := context.Background()
	repo := NewRateRepositoryMemory(DefaultCategories)

	all, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	all[0].Unrestricted = 99
	c, err := repo.FindCategory(ctx, "Funcionários de condomínios")
	require.NoError(t, err)
	assert.Equal(t, 6.68, c.Unrestricted)
	assert.Equal(t, 7.68, c.Restricted)

	_, err = repo.FindCategory(ctx, "Pessoa física")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cache := NewMemoryCache()
	cache.now = func() time.Time { return now }

	_, err := cache.Get(ctx, "selic")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, cache.Set(ctx, "selic", "15.00", time.Hour))
	val, err := cache.Get(ctx, "selic")
	require.NoError(t, err)
	assert.Equal(t, "15.00", val)

	now = now.Add(time.Hour)
	_, err = cache.Get(ctx, "selic")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, cache.Set(ctx, "forever", "x", 0))
	now = now.Add(24 * time.Hour)
	val, err = cache.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, "x", val)
}
