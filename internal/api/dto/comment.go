package dto

import (
	"time"

	"placehub/internal/domain"
)

type Comment struct {
	ID        string    `json:"_id"`
	Place     string    `json:"place"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func CommentFromDomain(comment *domain.Comment) *Comment {
	if comment == nil {
		return nil
	}
	return &Comment{
		ID:        comment.ID.String(),
		Place:     comment.PlaceID.String(),
		Username:  comment.Username,
		Text:      comment.Text,
		Image:     comment.Image,
		CreatedAt: comment.CreatedAt,
	}
}

func CommentsFromDomain(comments []*domain.Comment) []*Comment {
	result := make([]*Comment, 0, len(comments))
	for _, comment := range comments {
		result = append(result, CommentFromDomain(comment))
	}
	return result
}
