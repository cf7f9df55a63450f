package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"placehub/internal/domain"
	"placehub/internal/repository"
)

// PlaceInput is a create or update request as it arrives from a form. A nil
// field was not submitted. Menu holds every submitted menu value.
type PlaceInput struct {
	Name        *string
	Description *string
	Address     *string
	OpenHours   *string
	Area        *string
	Rating      *string
	Lat         *string
	Lng         *string
	Menu        []string
	// Image is the public URL of an already stored upload.
	Image *string
}

type PlaceFilter struct {
	Area string
}

type PlaceService struct {
	places   PlaceStore
	resolver *AreaResolver
	notifier Notifier
}

func NewPlaceService(places PlaceStore, resolver *AreaResolver, notifier Notifier) *PlaceService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &PlaceService{
		places:   places,
		resolver: resolver,
		notifier: notifier,
	}
}

func (s *PlaceService) Create(ctx context.Context, input PlaceInput) (*domain.Place, error) {
	changes, err := s.prepare(ctx, input, true)
	if err != nil {
		return nil, err
	}

	place := &domain.Place{
		Name:   *changes.Name,
		AreaID: changes.AreaID,
		Rating: changes.Rating,
		Menu:   changes.Menu,
		Lat:    changes.Lat,
		Lng:    changes.Lng,
	}
	if changes.Description != nil {
		place.Description = *changes.Description
	}
	if changes.Address != nil {
		place.Address = *changes.Address
	}
	if changes.OpenHours != nil {
		place.OpenHours = *changes.OpenHours
	}
	if changes.Image != nil {
		place.Image = *changes.Image
	}
	if place.Menu == nil {
		place.Menu = []string{}
	}

	if err := s.places.Create(ctx, place); err != nil {
		return nil, err
	}

	created, err := s.places.FindByID(ctx, place.ID)
	if err != nil {
		return nil, err
	}
	s.notifier.Broadcast(EventPlaceCreated, created)
	return created, nil
}

// Update applies only the submitted fields. An empty area clears the place's
// area.
func (s *PlaceService) Update(ctx context.Context, idText string, input PlaceInput) (*domain.Place, error) {
	id, ok := ParseIdentifier(idText)
	if !ok {
		return nil, ErrInvalidIdentifier
	}

	if _, err := s.places.FindByID(ctx, id); err != nil {
		return nil, err
	}

	changes, err := s.prepare(ctx, input, false)
	if err != nil {
		return nil, err
	}

	if err := s.places.Update(ctx, id, changes); err != nil {
		return nil, err
	}

	updated, err := s.places.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.notifier.Broadcast(EventPlaceUpdated, updated)
	return updated, nil
}

// List returns places newest first. An area filter that does not resolve
// yields an empty list rather than an error.
func (s *PlaceService) List(ctx context.Context, filter PlaceFilter) ([]*domain.Place, error) {
	var areaID *uuid.UUID

	if filter.Area != "" {
		token := strings.TrimSpace(filter.Area)
		if token == "" {
			return []*domain.Place{}, nil
		}
		area, err := s.resolver.Resolve(ctx, token, LookupOnly)
		if err != nil {
			if errors.Is(err, repository.ErrAreaNotFound) {
				return []*domain.Place{}, nil
			}
			return nil, err
		}
		if area == nil {
			return []*domain.Place{}, nil
		}
		areaID = &area.ID
	}

	places, err := s.places.FindAll(ctx, areaID)
	if err != nil {
		return nil, err
	}
	if places == nil {
		places = []*domain.Place{}
	}
	return places, nil
}

func (s *PlaceService) Get(ctx context.Context, idText string) (*domain.Place, error) {
	id, ok := ParseIdentifier(idText)
	if !ok {
		return nil, ErrInvalidIdentifier
	}
	return s.places.FindByID(ctx, id)
}

// prepare validates and coerces input, then resolves the area token. Areas
// are only created once every other field is valid.
func (s *PlaceService) prepare(ctx context.Context, input PlaceInput, creating bool) (domain.PlaceChanges, error) {
	var changes domain.PlaceChanges
	verr := &ValidationError{}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			verr.Add("name", "name is required")
		}
		changes.Name = &name
	} else if creating {
		verr.Add("name", "name is required")
	}

	changes.Description = trimmed(input.Description)
	changes.Address = trimmed(input.Address)
	changes.OpenHours = trimmed(input.OpenHours)

	changes.Rating = parseNumber(verr, "rating", input.Rating)
	changes.Lat = parseNumber(verr, "lat", input.Lat)
	changes.Lng = parseNumber(verr, "lng", input.Lng)

	if menu, ok := parseMenu(input.Menu); ok {
		changes.Menu = menu
		changes.SetMenu = true
	}

	if input.Image != nil && *input.Image != "" {
		image := *input.Image
		changes.Image = &image
	}

	if verr.HasErrors() {
		return domain.PlaceChanges{}, verr
	}

	if input.Area != nil {
		token := strings.TrimSpace(*input.Area)
		if token == "" {
			changes.ClearArea = !creating
		} else {
			area, err := s.resolver.Resolve(ctx, token, LookupOrCreate)
			if err != nil {
				if errors.Is(err, repository.ErrAreaNotFound) {
					return domain.PlaceChanges{}, NewValidationError("area", "area not found")
				}
				if errors.Is(err, ErrAreaUnresolvable) {
					log.Printf("[PlaceService] area %q unresolvable", token)
				}
				return domain.PlaceChanges{}, err
			}
			changes.AreaID = &area.ID
		}
	}

	return changes, nil
}

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	v := strings.TrimSpace(*value)
	return &v
}

// parseNumber treats a missing or blank value as absent. Anything else must
// parse as a finite number.
func parseNumber(verr *ValidationError, field string, raw *string) *float64 {
	if raw == nil {
		return nil
	}
	text := strings.TrimSpace(*raw)
	if text == "" {
		return nil
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		verr.Add(field, field+" must be a number")
		return nil
	}
	return &value
}

// parseMenu normalizes submitted menu values. Several values are taken as
// items verbatim. A single value is decoded as a JSON array of strings and
// falls back to a one-item list when it is not one.
func parseMenu(values []string) ([]string, bool) {
	switch len(values) {
	case 0:
		return nil, false
	case 1:
	default:
		return append([]string{}, values...), true
	}

	raw := values[0]
	if strings.TrimSpace(raw) == "" {
		return nil, false
	}

	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []string{raw}, true
	}
	if items == nil {
		items = []string{}
	}
	return items, true
}
