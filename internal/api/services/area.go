package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/asaskevich/govalidator"

	"placehub/internal/domain"
	r "placehub/internal/redis"
	"placehub/internal/repository"
)

type CreateAreaInput struct {
	Name        string `valid:"required,length(1|100)"`
	Slug        string `valid:"length(0|100)"`
	Description string `valid:"length(0|1000)"`
}

type AreaService struct {
	areas     AreaStore
	resolver  *AreaResolver
	areaCache r.Cache[[]domain.Area]
}

func NewAreaService(areas AreaStore, resolver *AreaResolver) *AreaService {
	return &AreaService{
		areas:     areas,
		resolver:  resolver,
		areaCache: resolver.areaCache,
	}
}

// List returns every area, served from the areas cache when it is warm.
func (s *AreaService) List(ctx context.Context) ([]*domain.Area, error) {
	cached, err := s.areaCache.Get(ctx, r.AreasCacheKey)
	if err != nil {
		log.Printf("[AreaService] areas cache read failed: %v", err)
	}
	if cached != nil {
		areas := make([]*domain.Area, len(*cached))
		for i := range *cached {
			areas[i] = &(*cached)[i]
		}
		return areas, nil
	}

	generation := s.resolver.areasGeneration()
	areas, err := s.areas.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// An area created during the read may already be missing from areas.
	if s.resolver.areasGeneration() != generation {
		return areas, nil
	}

	snapshot := make([]domain.Area, len(areas))
	for i, area := range areas {
		snapshot[i] = *area
	}
	if err := s.areaCache.Set(ctx, r.AreasCacheKey, &snapshot); err != nil {
		log.Printf("[AreaService] areas cache write failed: %v", err)
	}
	return areas, nil
}

// Create inserts an area directly. The slug is derived from the name unless
// supplied, and is canonicalized either way.
func (s *AreaService) Create(ctx context.Context, input CreateAreaInput) (*domain.Area, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Slug = strings.TrimSpace(input.Slug)
	input.Description = strings.TrimSpace(input.Description)

	if err := validateCreateAreaInput(input); err != nil {
		return nil, err
	}

	source := input.Slug
	if source == "" {
		source = input.Name
	}
	slug := domain.Slugify(source)
	if slug == "" {
		return nil, NewValidationError("slug", "slug must contain letters or digits")
	}

	area := &domain.Area{
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
	}
	if err := s.areas.Create(ctx, area); err != nil {
		if errors.Is(err, repository.ErrAreaExists) {
			return nil, NewValidationError("slug", "an area with this slug already exists")
		}
		return nil, err
	}

	s.resolver.AreaCreated(ctx, area)
	return area, nil
}

func validateCreateAreaInput(input CreateAreaInput) error {
	type createAreaValidator CreateAreaInput

	if _, err := govalidator.ValidateStruct(createAreaValidator(input)); err != nil {
		return fieldErrors(err, "area")
	}
	return nil
}
