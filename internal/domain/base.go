package domain

import (
	"time"

	"github.com/google/uuid"
)

type Model struct {
	ID        uuid.UUID `json:"_id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
