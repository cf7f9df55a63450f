package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"placehub/internal/domain"
)

var (
	ErrPlaceNotFound = errors.New("place not found")
)

type PlaceRepository struct {
	db ExtHandle
}

func NewPlaceRepository(db ExtHandle) *PlaceRepository {
	return &PlaceRepository{db: db}
}

type placeRow struct {
	ID              uuid.UUID      `db:"id"`
	CreatedAt       time.Time      `db:"created_at"`
	Name            string         `db:"name"`
	Description     string         `db:"description"`
	Address         string         `db:"address"`
	OpenHours       string         `db:"open_hours"`
	AreaID          *uuid.UUID     `db:"area_id"`
	Rating          *float64       `db:"rating"`
	Menu            pq.StringArray `db:"menu"`
	Image           string         `db:"image"`
	Lat             *float64       `db:"lat"`
	Lng             *float64       `db:"lng"`
	AreaName        sql.NullString `db:"area_name"`
	AreaSlug        sql.NullString `db:"area_slug"`
	AreaDescription sql.NullString `db:"area_description"`
	AreaCreatedAt   sql.NullTime   `db:"area_created_at"`
}

func (row *placeRow) toDomain() *domain.Place {
	place := &domain.Place{
		Model:       domain.Model{ID: row.ID, CreatedAt: row.CreatedAt},
		Name:        row.Name,
		Description: row.Description,
		Address:     row.Address,
		OpenHours:   row.OpenHours,
		AreaID:      row.AreaID,
		Rating:      row.Rating,
		Menu:        []string(row.Menu),
		Image:       row.Image,
		Lat:         row.Lat,
		Lng:         row.Lng,
	}
	if place.Menu == nil {
		place.Menu = []string{}
	}
	if row.AreaID != nil && row.AreaSlug.Valid {
		place.Area = &domain.Area{
			Model:       domain.Model{ID: *row.AreaID, CreatedAt: row.AreaCreatedAt.Time},
			Name:        row.AreaName.String,
			Slug:        row.AreaSlug.String,
			Description: row.AreaDescription.String,
		}
	}
	return place
}

const placeSelect = `
	SELECT p.id, p.created_at, p.name, p.description, p.address, p.open_hours, p.area_id,
		p.rating, p.menu, p.image, p.lat, p.lng,
		a.name AS area_name, a.slug AS area_slug, a.description AS area_description,
		a.created_at AS area_created_at
	FROM places p
	LEFT JOIN areas a ON a.id = p.area_id
`

func (r *PlaceRepository) Create(ctx context.Context, place *domain.Place) error {
	query := `
		INSERT INTO places (name, description, address, open_hours, area_id, rating, menu, image, lat, lng)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	menu := place.Menu
	if menu == nil {
		menu = []string{}
	}

	return r.db.QueryRowxContext(ctx, query,
		place.Name, place.Description, place.Address, place.OpenHours, place.AreaID,
		place.Rating, pq.Array(menu), place.Image, place.Lat, place.Lng,
	).Scan(&place.ID, &place.CreatedAt)
}

// Update applies the non-nil changes to the place. created_at is never touched.
func (r *PlaceRepository) Update(ctx context.Context, id uuid.UUID, changes domain.PlaceChanges) error {
	if changes.Empty() {
		var exists bool
		if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM places WHERE id = $1)`, id); err != nil {
			return err
		}
		if !exists {
			return ErrPlaceNotFound
		}
		return nil
	}

	var (
		sets []string
		args []interface{}
	)
	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if changes.Name != nil {
		set("name", *changes.Name)
	}
	if changes.Description != nil {
		set("description", *changes.Description)
	}
	if changes.Address != nil {
		set("address", *changes.Address)
	}
	if changes.OpenHours != nil {
		set("open_hours", *changes.OpenHours)
	}
	if changes.ClearArea {
		set("area_id", nil)
	} else if changes.AreaID != nil {
		set("area_id", *changes.AreaID)
	}
	if changes.Rating != nil {
		set("rating", *changes.Rating)
	}
	if changes.SetMenu {
		menu := changes.Menu
		if menu == nil {
			menu = []string{}
		}
		set("menu", pq.Array(menu))
	}
	if changes.Image != nil {
		set("image", *changes.Image)
	}
	if changes.Lat != nil {
		set("lat", *changes.Lat)
	}
	if changes.Lng != nil {
		set("lng", *changes.Lng)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE places SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPlaceNotFound
	}
	return nil
}

// FindByID returns the place with its area joined in.
func (r *PlaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	row := placeRow{}
	if err := r.db.GetContext(ctx, &row, placeSelect+` WHERE p.id = $1`, id); err != nil {
		if isNoRows(err) {
			return nil, ErrPlaceNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

// FindAll lists places newest first, restricted to one area when areaID is set.
func (r *PlaceRepository) FindAll(ctx context.Context, areaID *uuid.UUID) ([]*domain.Place, error) {
	var (
		rows []placeRow
		err  error
	)
	if areaID != nil {
		err = r.db.SelectContext(ctx, &rows, placeSelect+` WHERE p.area_id = $1 ORDER BY p.created_at DESC`, *areaID)
	} else {
		err = r.db.SelectContext(ctx, &rows, placeSelect+` ORDER BY p.created_at DESC`)
	}
	if err != nil {
		return nil, err
	}

	places := make([]*domain.Place, len(rows))
	for i := range rows {
		places[i] = rows[i].toDomain()
	}
	return places, nil
}
