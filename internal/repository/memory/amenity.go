package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/hbnb-project/hbnb-api/internal/apperr"
	"github.com/hbnb-project/hbnb-api/internal/model"
)

// AmenityStore keeps amenities in a map keyed by id. Name lookup is a linear
// scan; amenity catalogs are tiny.
type AmenityStore struct {
	mu    sync.RWMutex
	byID  map[string]*model.Amenity
	order map[string]uint64
	seq   seq
}

func NewAmenityStore() *AmenityStore {
	return &AmenityStore{
		byID:  make(map[string]*model.Amenity),
		order: make(map[string]uint64),
	}
}

func (s *AmenityStore) Create(ctx context.Context, a *model.Amenity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[a.ID] = cloneAmenity(a)
	s.order[a.ID] = s.seq.next()
	return nil
}

func (s *AmenityStore) Get(ctx context.Context, id string) (*model.Amenity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.byID[id]
	if !ok {
		return nil, apperr.NotFound("amenity")
	}
	return cloneAmenity(a), nil
}

func (s *AmenityStore) GetByName(ctx context.Context, name string) (*model.Amenity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.byID {
		if strings.EqualFold(a.Name, name) {
			return cloneAmenity(a), nil
		}
	}
	return nil, apperr.NotFound("amenity")
}

func (s *AmenityStore) List(ctx context.Context) ([]*model.Amenity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.byID))
	for id := range s.byID {
		ids = append(ids, id)
	}
	sortByInsertion(ids, s.order)
	out := make([]*model.Amenity, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneAmenity(s.byID[id]))
	}
	return out, nil
}

func (s *AmenityStore) Update(ctx context.Context, a *model.Amenity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[a.ID]; !ok {
		return apperr.NotFound("amenity")
	}
	s.byID[a.ID] = cloneAmenity(a)
	return nil
}

func (s *AmenityStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return apperr.NotFound("amenity")
	}
	delete(s.byID, id)
	delete(s.order, id)
	return nil
}
