package repository

import (
	"context"

	"github.com/google/uuid"

	"placehub/internal/domain"
)

type CommentRepository struct {
	db ExtHandle
}

func NewCommentRepository(db ExtHandle) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (place_id, username, text, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	return r.db.QueryRowxContext(ctx, query,
		comment.PlaceID, comment.Username, comment.Text, comment.Image,
	).Scan(&comment.ID, &comment.CreatedAt)
}

func (r *CommentRepository) FindByPlaceID(ctx context.Context, placeID uuid.UUID) ([]*domain.Comment, error) {
	query := `
		SELECT id, created_at, place_id, username, text, image
		FROM comments
		WHERE place_id = $1
		ORDER BY created_at DESC
	`

	comments := []*domain.Comment{}
	if err := r.db.SelectContext(ctx, &comments, query, placeID); err != nil {
		return nil, err
	}
	return comments, nil
}
