package domain

import (
	"github.com/google/uuid"
)

type Place struct {
	Model
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Address     string     `json:"address"`
	OpenHours   string     `json:"openHours"`
	AreaID      *uuid.UUID `json:"areaId,omitempty"`
	Area        *Area      `json:"area,omitempty"`
	Rating      *float64   `json:"rating,omitempty"`
	Menu        []string   `json:"menu"`
	Image       string     `json:"image,omitempty"`
	Lat         *float64   `json:"lat,omitempty"`
	Lng         *float64   `json:"lng,omitempty"`
}

// PlaceChanges holds the columns of a partial place update. Nil fields are left untouched.
type PlaceChanges struct {
	Name        *string
	Description *string
	Address     *string
	OpenHours   *string
	AreaID      *uuid.UUID
	ClearArea   bool
	Rating      *float64
	Menu        []string
	SetMenu     bool
	Image       *string
	Lat         *float64
	Lng         *float64
}

func (c PlaceChanges) Empty() bool {
	return c.Name == nil && c.Description == nil && c.Address == nil && c.OpenHours == nil &&
		c.AreaID == nil && !c.ClearArea && c.Rating == nil && !c.SetMenu && c.Image == nil &&
		c.Lat == nil && c.Lng == nil
}
