package services

import (
	"context"

	"github.com/google/uuid"

	"placehub/internal/domain"
	"placehub/internal/repository"
)

var (
	_ AreaStore    = (*repository.AreaRepository)(nil)
	_ PlaceStore   = (*repository.PlaceRepository)(nil)
	_ CommentStore = (*repository.CommentRepository)(nil)
)

type AreaStore interface {
	Create(ctx context.Context, area *domain.Area) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Area, error)
	FindBySlugOrName(ctx context.Context, slug, name string) (*domain.Area, error)
	FindAll(ctx context.Context) ([]*domain.Area, error)
}

type PlaceStore interface {
	Create(ctx context.Context, place *domain.Place) error
	Update(ctx context.Context, id uuid.UUID, changes domain.PlaceChanges) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Place, error)
	FindAll(ctx context.Context, areaID *uuid.UUID) ([]*domain.Place, error)
}

type CommentStore interface {
	Create(ctx context.Context, comment *domain.Comment) error
	FindByPlaceID(ctx context.Context, placeID uuid.UUID) ([]*domain.Comment, error)
}

// Notifier fans out change events to live subscribers.
type Notifier interface {
	Broadcast(event string, data interface{})
}

const (
	EventAreaCreated    = "area.created"
	EventPlaceCreated   = "place.created"
	EventPlaceUpdated   = "place.updated"
	EventCommentCreated = "comment.created"
)

type noopNotifier struct{}

func (noopNotifier) Broadcast(string, interface{}) {}
