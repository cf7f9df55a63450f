package services

import (
	"context"
	"fmt"

	"placehub/internal/domain"
)

type SeedResult struct {
	Created []*domain.Area
	Areas   []*domain.Area
}

// SeedCoordinator ensures a list of areas exists. Running it again with the
// same names creates nothing.
type SeedCoordinator struct {
	areas    AreaStore
	resolver *AreaResolver
}

func NewSeedCoordinator(areas AreaStore, resolver *AreaResolver) *SeedCoordinator {
	return &SeedCoordinator{
		areas:    areas,
		resolver: resolver,
	}
}

// Seed resolves every name in order, creating missing areas. A nil names
// slice seeds domain.DefaultAreaNames; an empty one seeds nothing.
func (s *SeedCoordinator) Seed(ctx context.Context, names []string) (*SeedResult, error) {
	if names == nil {
		names = domain.DefaultAreaNames
	}

	created := []*domain.Area{}
	for _, name := range names {
		area, wasCreated, err := s.resolver.FindOrCreate(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("seed area %q: %w", name, err)
		}
		if wasCreated {
			created = append(created, area)
		}
	}

	areas, err := s.areas.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if areas == nil {
		areas = []*domain.Area{}
	}

	return &SeedResult{Created: created, Areas: areas}, nil
}
