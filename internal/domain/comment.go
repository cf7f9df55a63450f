package domain

import (
	"github.com/google/uuid"
)

const AnonymousUsername = "Anonymous"

type Comment struct {
	Model
	PlaceID  uuid.UUID `json:"place" db:"place_id"`
	Username string    `json:"username" db:"username"`
	Text     string    `json:"text" db:"text"`
	Image    string    `json:"image,omitempty" db:"image"`
}
