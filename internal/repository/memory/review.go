package memory

import (
	"context"
	"sync"

	"github.com/hbnb-project/hbnb-api/internal/apperr"
	"github.com/hbnb-project/hbnb-api/internal/model"
)

// ReviewStore keeps reviews in a map keyed by id with a composite index on
// (user_id, place_id) mirroring the unique pair index in the SQL schema.
type ReviewStore struct {
	mu     sync.RWMutex
	byID   map[string]*model.Review
	byPair map[[2]string]string // {userID, placeID} -> review id
	order  map[string]uint64
	seq    seq
}

func NewReviewStore() *ReviewStore {
	return &ReviewStore{
		byID:   make(map[string]*model.Review),
		byPair: make(map[[2]string]string),
		order:  make(map[string]uint64),
	}
}

func pairKey(r *model.Review) [2]string { return [2]string{r.UserID, r.PlaceID} }

func (s *ReviewStore) Create(ctx context.Context, r *model.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.byPair[pairKey(r)]; taken {
		return apperr.Conflict("you have already reviewed this place")
	}
	s.byID[r.ID] = cloneReview(r)
	s.byPair[pairKey(r)] = r.ID
	s.order[r.ID] = s.seq.next()
	return nil
}

func (s *ReviewStore) Get(ctx context.Context, id string) (*model.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byID[id]
	if !ok {
		return nil, apperr.NotFound("review")
	}
	return cloneReview(r), nil
}

func (s *ReviewStore) List(ctx context.Context) ([]*model.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.byID))
	for id := range s.byID {
		ids = append(ids, id)
	}
	sortByInsertion(ids, s.order)
	out := make([]*model.Review, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneReview(s.byID[id]))
	}
	return out, nil
}

func (s *ReviewStore) ListByPlace(ctx context.Context, placeID string) ([]*model.Review, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Review, 0)
	for _, r := range all {
		if r.PlaceID == placeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *ReviewStore) ListByAuthor(ctx context.Context, userID string) ([]*model.Review, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Review, 0)
	for _, r := range all {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *ReviewStore) Update(ctx context.Context, r *model.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[r.ID]; !ok {
		return apperr.NotFound("review")
	}
	// user_id and place_id are immutable, so the pair index never moves.
	s.byID[r.ID] = cloneReview(r)
	return nil
}

func (s *ReviewStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.byID[id]
	if !ok {
		return apperr.NotFound("review")
	}
	delete(s.byPair, pairKey(r))
	delete(s.byID, id)
	delete(s.order, id)
	return nil
}
