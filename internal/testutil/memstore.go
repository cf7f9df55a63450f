package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"placehub/internal/domain"
	"placehub/internal/repository"
)

// clock hands out strictly increasing timestamps so ordering by created_at is stable.
type clock struct {
	mu   sync.Mutex
	last time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := time.Now().UTC()
	if !t.After(c.last) {
		t = c.last.Add(time.Microsecond)
	}
	c.last = t
	return t
}

// AreaStore keeps areas in memory and enforces slug uniqueness the way the
// areas_slug_key index does.
type AreaStore struct {
	// BeforeCreate runs before every insert, outside the store lock. A non-nil
	// error is returned from Create without inserting.
	BeforeCreate func(area *domain.Area) error
	// AfterFindAll runs once FindAll has taken its snapshot, outside the store lock.
	AfterFindAll func()

	mu      sync.Mutex
	clock   clock
	areas   []domain.Area
	creates int
}

func NewAreaStore() *AreaStore {
	return &AreaStore{}
}

func (s *AreaStore) Create(ctx context.Context, area *domain.Area) error {
	if s.BeforeCreate != nil {
		if err := s.BeforeCreate(area); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.areas {
		if a.Slug == area.Slug {
			return repository.ErrAreaExists
		}
	}
	area.ID = uuid.New()
	area.CreatedAt = s.clock.now()
	s.areas = append(s.areas, *area)
	s.creates++
	return nil
}

func (s *AreaStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Area, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.areas {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, repository.ErrAreaNotFound
}

func (s *AreaStore) FindBySlugOrName(ctx context.Context, slug, name string) (*domain.Area, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var byName *domain.Area
	for i := range s.areas {
		a := s.areas[i]
		if a.Slug == slug {
			return &a, nil
		}
		if byName == nil && strings.EqualFold(a.Name, name) {
			byName = &a
		}
	}
	if byName != nil {
		return byName, nil
	}
	return nil, repository.ErrAreaNotFound
}

func (s *AreaStore) FindAll(ctx context.Context) ([]*domain.Area, error) {
	s.mu.Lock()
	areas := make([]*domain.Area, len(s.areas))
	for i := range s.areas {
		a := s.areas[i]
		areas[i] = &a
	}
	s.mu.Unlock()

	if s.AfterFindAll != nil {
		s.AfterFindAll()
	}
	return areas, nil
}

// Creates reports how many inserts succeeded.
func (s *AreaStore) Creates() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creates
}

type PlaceStore struct {
	mu     sync.Mutex
	clock  clock
	areas  *AreaStore
	places []domain.Place
}

// NewPlaceStore joins places against areas on read, like the LEFT JOIN in
// repository.PlaceRepository.
func NewPlaceStore(areas *AreaStore) *PlaceStore {
	return &PlaceStore{areas: areas}
}

func (s *PlaceStore) Create(ctx context.Context, place *domain.Place) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	place.ID = uuid.New()
	place.CreatedAt = s.clock.now()
	stored := *place
	stored.Area = nil
	stored.Menu = append([]string{}, place.Menu...)
	s.places = append(s.places, stored)
	return nil
}

func (s *PlaceStore) Update(ctx context.Context, id uuid.UUID, changes domain.PlaceChanges) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.places {
		p := &s.places[i]
		if p.ID != id {
			continue
		}
		if changes.Name != nil {
			p.Name = *changes.Name
		}
		if changes.Description != nil {
			p.Description = *changes.Description
		}
		if changes.Address != nil {
			p.Address = *changes.Address
		}
		if changes.OpenHours != nil {
			p.OpenHours = *changes.OpenHours
		}
		if changes.ClearArea {
			p.AreaID = nil
		} else if changes.AreaID != nil {
			areaID := *changes.AreaID
			p.AreaID = &areaID
		}
		if changes.Rating != nil {
			p.Rating = changes.Rating
		}
		if changes.SetMenu {
			p.Menu = append([]string{}, changes.Menu...)
		}
		if changes.Image != nil {
			p.Image = *changes.Image
		}
		if changes.Lat != nil {
			p.Lat = changes.Lat
		}
		if changes.Lng != nil {
			p.Lng = changes.Lng
		}
		return nil
	}
	return repository.ErrPlaceNotFound
}

func (s *PlaceStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	s.mu.Lock()
	var found *domain.Place
	for i := range s.places {
		if s.places[i].ID == id {
			p := s.places[i]
			found = &p
			break
		}
	}
	s.mu.Unlock()

	if found == nil {
		return nil, repository.ErrPlaceNotFound
	}
	return s.populate(ctx, found), nil
}

func (s *PlaceStore) FindAll(ctx context.Context, areaID *uuid.UUID) ([]*domain.Place, error) {
	s.mu.Lock()
	var matched []domain.Place
	for _, p := range s.places {
		if areaID != nil && (p.AreaID == nil || *p.AreaID != *areaID) {
			continue
		}
		matched = append(matched, p)
	}
	s.mu.Unlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	places := make([]*domain.Place, len(matched))
	for i := range matched {
		places[i] = s.populate(ctx, &matched[i])
	}
	return places, nil
}

func (s *PlaceStore) populate(ctx context.Context, place *domain.Place) *domain.Place {
	place.Menu = append([]string{}, place.Menu...)
	if place.AreaID != nil && s.areas != nil {
		if area, err := s.areas.FindByID(ctx, *place.AreaID); err == nil {
			place.Area = area
		}
	}
	return place
}

type CommentStore struct {
	mu       sync.Mutex
	clock    clock
	comments []domain.Comment
}

func NewCommentStore() *CommentStore {
	return &CommentStore{}
}

func (s *CommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment.ID = uuid.New()
	comment.CreatedAt = s.clock.now()
	s.comments = append(s.comments, *comment)
	return nil
}

func (s *CommentStore) FindByPlaceID(ctx context.Context, placeID uuid.UUID) ([]*domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comments := []*domain.Comment{}
	for i := len(s.comments) - 1; i >= 0; i-- {
		if s.comments[i].PlaceID == placeID {
			c := s.comments[i]
			comments = append(comments, &c)
		}
	}
	return comments, nil
}
