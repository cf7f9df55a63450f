package services

import (
	"github.com/google/uuid"
)

// ParseIdentifier reports whether token is a record identifier in its
// canonical 36 character form. Anything else is treated as a name or slug.
func ParseIdentifier(token string) (uuid.UUID, bool) {
	if len(token) != 36 {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(token)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
