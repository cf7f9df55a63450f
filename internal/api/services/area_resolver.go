package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"placehub/internal/domain"
	"placehub/internal/metrics"
	r "placehub/internal/redis"
	"placehub/internal/repository"
)

type ResolveMode int

const (
	// LookupOnly never creates an area; an unmatched name yields (nil, nil).
	LookupOnly ResolveMode = iota
	// LookupOrCreate creates the area when no name or slug matches.
	LookupOrCreate
)

// AreaResolver maps a free-form area token (identifier, name or slug) to a
// stored area, creating it on demand.
type AreaResolver struct {
	areas     AreaStore
	areaCache r.Cache[[]domain.Area]
	notifier  Notifier

	// generation counts areas created through this resolver.
	generation atomic.Uint64
}

func NewAreaResolver(areas AreaStore, areaCache r.Cache[[]domain.Area], notifier Notifier) *AreaResolver {
	if areaCache == nil {
		areaCache = r.NewJSONCache[[]domain.Area](nil, "areas", 0)
	}
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &AreaResolver{
		areas:     areas,
		areaCache: areaCache,
		notifier:  notifier,
	}
}

func (s *AreaResolver) Resolve(ctx context.Context, token string, mode ResolveMode) (*domain.Area, error) {
	area, _, err := s.resolve(ctx, token, mode)
	return area, err
}

// FindOrCreate resolves token in LookupOrCreate mode and reports whether this
// call inserted the area.
func (s *AreaResolver) FindOrCreate(ctx context.Context, token string) (*domain.Area, bool, error) {
	return s.resolve(ctx, token, LookupOrCreate)
}

func (s *AreaResolver) resolve(ctx context.Context, token string, mode ResolveMode) (*domain.Area, bool, error) {
	token = strings.TrimSpace(token)

	if id, ok := ParseIdentifier(token); ok {
		area, err := s.areas.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrAreaNotFound) {
				metrics.ObserveAreaResolution(metrics.ResolutionNotFound)
				return nil, false, repository.ErrAreaNotFound
			}
			return nil, false, err
		}
		metrics.ObserveAreaResolution(metrics.ResolutionFound)
		return area, false, nil
	}

	slug := domain.Slugify(token)

	area, err := s.lookup(ctx, slug, token)
	if err != nil {
		return nil, false, err
	}
	if area != nil {
		metrics.ObserveAreaResolution(metrics.ResolutionFound)
		return area, false, nil
	}

	if mode == LookupOnly {
		metrics.ObserveAreaResolution(metrics.ResolutionNoMatch)
		return nil, false, nil
	}

	if slug == "" {
		return nil, false, NewValidationError("area", "area name must contain letters or digits")
	}

	area = &domain.Area{Name: token, Slug: slug}
	err = s.areas.Create(ctx, area)
	if err == nil {
		metrics.ObserveAreaResolution(metrics.ResolutionCreated)
		s.AreaCreated(ctx, area)
		return area, true, nil
	}
	if !errors.Is(err, repository.ErrAreaExists) {
		return nil, false, err
	}

	// Another writer inserted the same slug between lookup and insert.
	winner, err := s.lookup(ctx, slug, token)
	if err != nil {
		return nil, false, err
	}
	if winner == nil {
		log.Printf("[AreaResolver] slug %q conflicted but no area matches %q", slug, token)
		metrics.ObserveAreaResolution(metrics.ResolutionUnresolvable)
		return nil, false, ErrAreaUnresolvable
	}
	metrics.ObserveAreaResolution(metrics.ResolutionRaceRecovered)
	return winner, false, nil
}

func (s *AreaResolver) lookup(ctx context.Context, slug, name string) (*domain.Area, error) {
	area, err := s.areas.FindBySlugOrName(ctx, slug, name)
	if err != nil {
		if errors.Is(err, repository.ErrAreaNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return area, nil
}

// AreaCreated drops the cached area list and announces the new area.
func (s *AreaResolver) AreaCreated(ctx context.Context, area *domain.Area) {
	s.generation.Add(1)
	if err := s.areaCache.Delete(ctx, r.AreasCacheKey); err != nil {
		log.Printf("[AreaResolver] failed to invalidate areas cache: %v", err)
	}
	s.notifier.Broadcast(EventAreaCreated, area)
}

func (s *AreaResolver) areasGeneration() uint64 {
	return s.generation.Load()
}
