package memory

import (
	"context"
	"sync"

	"github.com/hbnb-project/hbnb-api/internal/apperr"
	"github.com/hbnb-project/hbnb-api/internal/model"
)

// PlaceStore keeps places in a map keyed by id. The amenity set and review
// id list are stored inline on the place record.
type PlaceStore struct {
	mu    sync.RWMutex
	byID  map[string]*model.Place
	order map[string]uint64
	seq   seq
}

func NewPlaceStore() *PlaceStore {
	return &PlaceStore{
		byID:  make(map[string]*model.Place),
		order: make(map[string]uint64),
	}
}

func (s *PlaceStore) Create(ctx context.Context, p *model.Place) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[p.ID] = clonePlace(p)
	s.order[p.ID] = s.seq.next()
	return nil
}

func (s *PlaceStore) Get(ctx context.Context, id string) (*model.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[id]
	if !ok {
		return nil, apperr.NotFound("place")
	}
	return clonePlace(p), nil
}

func (s *PlaceStore) List(ctx context.Context) ([]*model.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.byID))
	for id := range s.byID {
		ids = append(ids, id)
	}
	sortByInsertion(ids, s.order)
	out := make([]*model.Place, 0, len(ids))
	for _, id := range ids {
		out = append(out, clonePlace(s.byID[id]))
	}
	return out, nil
}

func (s *PlaceStore) ListByOwner(ctx context.Context, ownerID string) ([]*model.Place, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Place, 0)
	for _, p := range all {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *PlaceStore) Update(ctx context.Context, p *model.Place) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[p.ID]; !ok {
		return apperr.NotFound("place")
	}
	s.byID[p.ID] = clonePlace(p)
	return nil
}

func (s *PlaceStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return apperr.NotFound("place")
	}
	delete(s.byID, id)
	delete(s.order, id)
	return nil
}

func (s *PlaceStore) DetachReview(ctx context.Context, placeID, reviewID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.byID[placeID]
	if !ok {
		return apperr.NotFound("place")
	}
	p.RemoveReview(reviewID)
	return nil
}
