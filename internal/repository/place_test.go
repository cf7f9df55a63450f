package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placehub/internal/domain"
)

func createTestArea(t *testing.T, ctx context.Context) *domain.Area {
	t.Helper()
	ts := time.Now().UnixNano()
	area := &domain.Area{
		Name: fmt.Sprintf("Place Area %d", ts),
		Slug: fmt.Sprintf("place-area-%d", ts),
	}
	require.NoError(t, NewAreaRepository(testDB.DB()).Create(ctx, area))
	return area
}

func TestPlaceRepository_CreateAndFindByID(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	ctx := context.Background()
	repo := NewPlaceRepository(testDB.DB())
	area := createTestArea(t, ctx)
	rating := 4.5
	lat := -7.2819

	place := &domain.Place{
		Name:      "Warung Bu Sri",
		Address:   "Jl. Keputih 3",
		OpenHours: "08:00-21:00",
		AreaID:    &area.ID,
		Rating:    &rating,
		Menu:      []string{"Nasi Pecel", "Es Teh"},
		Lat:       &lat,
	}
	require.NoError(t, repo.Create(ctx, place))
	assert.NotEqual(t, uuid.Nil, place.ID)

	found, err := repo.FindByID(ctx, place.ID)
	require.NoError(t, err)
	assert.Equal(t, place.Name, found.Name)
	assert.Equal(t, []string{"Nasi Pecel", "Es Teh"}, found.Menu)
	require.NotNil(t, found.Area)
	assert.Equal(t, area.Slug, found.Area.Slug)
	require.NotNil(t, found.Rating)
	assert.InDelta(t, 4.5, *found.Rating, 0.0001)
	assert.Nil(t, found.Lng)
}

func TestPlaceRepository_Update(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	ctx := context.Background()
	repo := NewPlaceRepository(testDB.DB())
	area := createTestArea(t, ctx)

	place := &domain.Place{Name: "Depot Lama", AreaID: &area.ID}
	require.NoError(t, repo.Create(ctx, place))

	name := "Depot Baru"
	err := repo.Update(ctx, place.ID, domain.PlaceChanges{Name: &name, Menu: []string{"Soto"}, SetMenu: true})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, place.ID)
	require.NoError(t, err)
	assert.Equal(t, "Depot Baru", found.Name)
	assert.Equal(t, []string{"Soto"}, found.Menu)
	assert.Equal(t, place.CreatedAt.Unix(), found.CreatedAt.Unix())
	require.NotNil(t, found.Area)

	t.Run("clear area", func(t *testing.T) {
		require.NoError(t, repo.Update(ctx, place.ID, domain.PlaceChanges{ClearArea: true}))
		found, err := repo.FindByID(ctx, place.ID)
		require.NoError(t, err)
		assert.Nil(t, found.AreaID)
		assert.Nil(t, found.Area)
	})

	t.Run("unknown id", func(t *testing.T) {
		err := repo.Update(ctx, uuid.New(), domain.PlaceChanges{Name: &name})
		assert.ErrorIs(t, err, ErrPlaceNotFound)
	})

	t.Run("empty changes on unknown id", func(t *testing.T) {
		err := repo.Update(ctx, uuid.New(), domain.PlaceChanges{})
		assert.ErrorIs(t, err, ErrPlaceNotFound)
	})
}

func TestPlaceRepository_FindAllByArea(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	ctx := context.Background()
	repo := NewPlaceRepository(testDB.DB())
	area := createTestArea(t, ctx)

	require.NoError(t, repo.Create(ctx, &domain.Place{Name: "First", AreaID: &area.ID}))
	require.NoError(t, repo.Create(ctx, &domain.Place{Name: "Second", AreaID: &area.ID}))
	require.NoError(t, repo.Create(ctx, &domain.Place{Name: "Elsewhere"}))

	places, err := repo.FindAll(ctx, &area.ID)
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "Second", places[0].Name)
	for _, p := range places {
		require.NotNil(t, p.Area)
		assert.Equal(t, area.ID, p.Area.ID)
	}
}

func TestPlaceRepository_FindByID_NotFound(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	_, err := NewPlaceRepository(testDB.DB()).FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrPlaceNotFound)
}

func TestCommentRepository_CreateAndList(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	ctx := context.Background()
	place := &domain.Place{Name: "Commented"}
	require.NoError(t, NewPlaceRepository(testDB.DB()).Create(ctx, place))

	repo := NewCommentRepository(testDB.DB())
	require.NoError(t, repo.Create(ctx, &domain.Comment{PlaceID: place.ID, Username: "Anonymous", Text: "enak"}))
	require.NoError(t, repo.Create(ctx, &domain.Comment{PlaceID: place.ID, Username: "budi", Text: "murah"}))

	comments, err := repo.FindByPlaceID(ctx, place.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "murah", comments[0].Text)
}
