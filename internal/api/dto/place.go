package dto

import (
	"time"

	"placehub/internal/domain"
)

// Place embeds its area in full; Area is null when the place has none.
type Place struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	OpenHours   string    `json:"openHours"`
	Area        *Area     `json:"area"`
	Rating      *float64  `json:"rating"`
	Menu        []string  `json:"menu"`
	Image       string    `json:"image,omitempty"`
	Lat         *float64  `json:"lat"`
	Lng         *float64  `json:"lng"`
	CreatedAt   time.Time `json:"createdAt"`
}

func PlaceFromDomain(place *domain.Place) *Place {
	if place == nil {
		return nil
	}

	menu := place.Menu
	if menu == nil {
		menu = []string{}
	}

	return &Place{
		ID:          place.ID.String(),
		Name:        place.Name,
		Description: place.Description,
		Address:     place.Address,
		OpenHours:   place.OpenHours,
		Area:        AreaFromDomain(place.Area),
		Rating:      place.Rating,
		Menu:        menu,
		Image:       place.Image,
		Lat:         place.Lat,
		Lng:         place.Lng,
		CreatedAt:   place.CreatedAt,
	}
}

func PlacesFromDomain(places []*domain.Place) []*Place {
	result := make([]*Place, 0, len(places))
	for _, place := range places {
		result = append(result, PlaceFromDomain(place))
	}
	return result
}
