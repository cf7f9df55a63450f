package dto

import (
	"time"

	"placehub/internal/domain"
)

type Area struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateAreaRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Slug        string `json:"slug" validate:"max=100"`
	Description string `json:"description" validate:"max=1000"`
}

// SeedAreasRequest omits Areas to seed the default list.
type SeedAreasRequest struct {
	Areas []string `json:"areas" validate:"omitempty,max=100,dive,required,max=100"`
}

type SeedAreasResponse struct {
	Created []*Area `json:"created"`
	All     []*Area `json:"all"`
}

func AreaFromDomain(area *domain.Area) *Area {
	if area == nil {
		return nil
	}
	return &Area{
		ID:          area.ID.String(),
		Name:        area.Name,
		Slug:        area.Slug,
		Description: area.Description,
		CreatedAt:   area.CreatedAt,
	}
}

func AreasFromDomain(areas []*domain.Area) []*Area {
	result := make([]*Area, 0, len(areas))
	for _, area := range areas {
		result = append(result, AreaFromDomain(area))
	}
	return result
}
