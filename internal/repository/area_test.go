package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placehub/internal/domain"
)

func TestAreaRepository_Create(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	repo := NewAreaRepository(testDB.DB())
	ctx := context.Background()
	ts := time.Now().UnixNano()

	area := &domain.Area{
		Name: fmt.Sprintf("Test Area %d", ts),
		Slug: fmt.Sprintf("test-area-%d", ts),
	}
	err := repo.Create(ctx, area)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, area.ID)
	assert.False(t, area.CreatedAt.IsZero())

	t.Run("duplicate slug", func(t *testing.T) {
		dup := &domain.Area{Name: "Other name", Slug: area.Slug}
		err := repo.Create(ctx, dup)
		assert.ErrorIs(t, err, ErrAreaExists)
	})
}

func TestAreaRepository_FindBySlugOrName(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	repo := NewAreaRepository(testDB.DB())
	ctx := context.Background()
	ts := time.Now().UnixNano()

	area := &domain.Area{
		Name: fmt.Sprintf("Gebang %d", ts),
		Slug: fmt.Sprintf("gebang-%d", ts),
	}
	require.NoError(t, repo.Create(ctx, area))

	t.Run("by slug", func(t *testing.T) {
		found, err := repo.FindBySlugOrName(ctx, area.Slug, "unrelated")
		require.NoError(t, err)
		assert.Equal(t, area.ID, found.ID)
	})

	t.Run("by name ignoring case", func(t *testing.T) {
		found, err := repo.FindBySlugOrName(ctx, "no-such-slug", strings.ToUpper(area.Name))
		require.NoError(t, err)
		assert.Equal(t, area.ID, found.ID)
	})

	t.Run("name must match exactly", func(t *testing.T) {
		_, err := repo.FindBySlugOrName(ctx, "no-such-slug", "Gebang")
		assert.ErrorIs(t, err, ErrAreaNotFound)
	})
}

func TestAreaRepository_FindByID_NotFound(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	repo := NewAreaRepository(testDB.DB())

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrAreaNotFound)
}

func TestAreaRepository_EmptySlugRejected(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	repo := NewAreaRepository(testDB.DB())

	err := repo.Create(context.Background(), &domain.Area{Name: "!!!", Slug: ""})
	assert.Error(t, err)
}
