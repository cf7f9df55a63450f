package services

import (
	"context"
	"strings"

	"github.com/asaskevich/govalidator"

	"placehub/internal/domain"
)

type CreateCommentInput struct {
	PlaceID  string `valid:"required"`
	Username string `valid:"length(0|50)"`
	Text     string `valid:"required,length(1|2000)"`
	Image    string
}

type CommentService struct {
	comments CommentStore
	places   PlaceStore
	notifier Notifier
}

func NewCommentService(comments CommentStore, places PlaceStore, notifier Notifier) *CommentService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &CommentService{
		comments: comments,
		places:   places,
		notifier: notifier,
	}
}

// Create stores a comment on an existing place. Comments without a username
// are posted as domain.AnonymousUsername.
func (s *CommentService) Create(ctx context.Context, input CreateCommentInput) (*domain.Comment, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Text = strings.TrimSpace(input.Text)

	if err := validateCreateCommentInput(input); err != nil {
		return nil, err
	}

	placeID, ok := ParseIdentifier(input.PlaceID)
	if !ok {
		return nil, ErrInvalidIdentifier
	}
	if _, err := s.places.FindByID(ctx, placeID); err != nil {
		return nil, err
	}

	username := input.Username
	if username == "" {
		username = domain.AnonymousUsername
	}

	comment := &domain.Comment{
		PlaceID:  placeID,
		Username: username,
		Text:     input.Text,
		Image:    input.Image,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.notifier.Broadcast(EventCommentCreated, comment)
	return comment, nil
}

func (s *CommentService) ListByPlace(ctx context.Context, placeIDText string) ([]*domain.Comment, error) {
	placeID, ok := ParseIdentifier(placeIDText)
	if !ok {
		return nil, ErrInvalidIdentifier
	}

	comments, err := s.comments.FindByPlaceID(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []*domain.Comment{}
	}
	return comments, nil
}

func validateCreateCommentInput(input CreateCommentInput) error {
	type createCommentValidator CreateCommentInput

	if _, err := govalidator.ValidateStruct(createCommentValidator(input)); err != nil {
		return fieldErrors(err, "comment")
	}
	return nil
}
