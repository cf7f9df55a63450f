package services

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placehub/internal/domain"
	r "placehub/internal/redis"
)

func TestAreaService_Create(t *testing.T) {
	f := newFixture()
	service := NewAreaService(f.areas, f.resolver)
	ctx := context.Background()

	t.Run("slug derived from name", func(t *testing.T) {
		area, err := service.Create(ctx, CreateAreaInput{Name: "  Sukolilo  ", Description: "east"})
		require.NoError(t, err)
		assert.Equal(t, "Sukolilo", area.Name)
		assert.Equal(t, "sukolilo", area.Slug)
		assert.Equal(t, "east", area.Description)
	})

	t.Run("supplied slug is canonicalized", func(t *testing.T) {
		area, err := service.Create(ctx, CreateAreaInput{Name: "Kenjeran", Slug: "Kenjeran Beach!"})
		require.NoError(t, err)
		assert.Equal(t, "kenjeran-beach", area.Slug)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		_, err := service.Create(ctx, CreateAreaInput{Name: "SUKOLILO"})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "slug")
	})

	t.Run("name required", func(t *testing.T) {
		_, err := service.Create(ctx, CreateAreaInput{Name: "   "})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "name")
	})

	t.Run("slug without content", func(t *testing.T) {
		_, err := service.Create(ctx, CreateAreaInput{Name: "???"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	assert.Equal(t, []string{EventAreaCreated, EventAreaCreated}, f.notifier.Events())
}

func TestAreaService_ListUsesCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	f := newFixture()
	resolver := NewAreaResolver(f.areas, r.AreasCache(rdb), nil)
	service := NewAreaService(f.areas, resolver)
	ctx := context.Background()

	require.NoError(t, f.areas.Create(ctx, &domain.Area{Name: "Keputih", Slug: "keputih"}))

	areas, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, areas, 1)
	assert.True(t, mr.Exists("areas:"+r.AreasCacheKey))

	// Written behind the resolver's back, so only visible once the cache drops.
	require.NoError(t, f.areas.Create(ctx, &domain.Area{Name: "Gebang", Slug: "gebang"}))
	areas, err = service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, areas, 1)

	_, _, err = resolver.FindOrCreate(ctx, "Manyar")
	require.NoError(t, err)
	assert.False(t, mr.Exists("areas:"+r.AreasCacheKey))

	areas, err = service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, areas, 3)
}

func TestAreaService_ListSkipsCacheFillAfterConcurrentCreate(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	f := newFixture()
	resolver := NewAreaResolver(f.areas, r.AreasCache(rdb), nil)
	service := NewAreaService(f.areas, resolver)
	ctx := context.Background()

	require.NoError(t, f.areas.Create(ctx, &domain.Area{Name: "Keputih", Slug: "keputih"}))

	var once sync.Once
	f.areas.AfterFindAll = func() {
		once.Do(func() {
			_, _, err := resolver.FindOrCreate(ctx, "Gebang")
			require.NoError(t, err)
		})
	}

	areas, err := service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, areas, 1)
	assert.False(t, mr.Exists("areas:"+r.AreasCacheKey))

	areas, err = service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, areas, 2)
	assert.True(t, mr.Exists("areas:"+r.AreasCacheKey))
}
