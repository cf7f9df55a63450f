package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"placehub/internal/domain"
)

var (
	ErrAreaNotFound = errors.New("area not found")
	ErrAreaExists   = errors.New("area already exists")
)

const areaColumns = `id, created_at, name, slug, description`

type AreaRepository struct {
	db ExtHandle
}

func NewAreaRepository(db ExtHandle) *AreaRepository {
	return &AreaRepository{db: db}
}

// Create inserts the area and fills in its id and created_at. A slug that is
// already taken yields ErrAreaExists.
func (r *AreaRepository) Create(ctx context.Context, area *domain.Area) error {
	query := `
		INSERT INTO areas (name, slug, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query, area.Name, area.Slug, area.Description).
		Scan(&area.ID, &area.CreatedAt)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrAreaExists
		}
		return err
	}
	return nil
}

func (r *AreaRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Area, error) {
	query := `SELECT ` + areaColumns + ` FROM areas WHERE id = $1`

	area := &domain.Area{}
	if err := r.db.GetContext(ctx, area, query, id); err != nil {
		if isNoRows(err) {
			return nil, ErrAreaNotFound
		}
		return nil, err
	}
	return area, nil
}

// FindBySlugOrName returns the area whose slug equals slug or whose name equals
// name ignoring case. A slug match wins over a name match, then the oldest row.
func (r *AreaRepository) FindBySlugOrName(ctx context.Context, slug, name string) (*domain.Area, error) {
	query := `
		SELECT ` + areaColumns + `
		FROM areas
		WHERE slug = $1 OR lower(name) = lower($2)
		ORDER BY (slug = $1) DESC, created_at ASC
		LIMIT 1
	`

	area := &domain.Area{}
	if err := r.db.GetContext(ctx, area, query, slug, name); err != nil {
		if isNoRows(err) {
			return nil, ErrAreaNotFound
		}
		return nil, err
	}
	return area, nil
}

func (r *AreaRepository) FindAll(ctx context.Context) ([]*domain.Area, error) {
	query := `SELECT ` + areaColumns + ` FROM areas ORDER BY created_at ASC, name ASC`

	areas := []*domain.Area{}
	if err := r.db.SelectContext(ctx, &areas, query); err != nil {
		return nil, err
	}
	return areas, nil
}
