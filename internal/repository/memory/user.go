package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/hbnb-project/hbnb-api/internal/apperr"
	"github.com/hbnb-project/hbnb-api/internal/model"
)

// UserStore keeps users in a map keyed by id with a secondary index on the
// lowercased email. The index is the in-memory equivalent of the unique
// index on users.email.
type UserStore struct {
	mu      sync.RWMutex
	byID    map[string]*model.User
	byEmail map[string]string // lowercased email -> id
	order   map[string]uint64
	seq     seq
}

func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[string]*model.User),
		byEmail: make(map[string]string),
		order:   make(map[string]uint64),
	}
}

func emailKey(email string) string { return strings.ToLower(email) }

func (s *UserStore) Create(ctx context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.byEmail[emailKey(u.Email)]; taken {
		return apperr.Conflict("email already registered")
	}
	s.byID[u.ID] = cloneUser(u)
	s.byEmail[emailKey(u.Email)] = u.ID
	s.order[u.ID] = s.seq.next()
	return nil
}

func (s *UserStore) Get(ctx context.Context, id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, apperr.NotFound("user")
	}
	return cloneUser(u), nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[emailKey(email)]
	if !ok {
		return nil, apperr.NotFound("user")
	}
	return cloneUser(s.byID[id]), nil
}

func (s *UserStore) List(ctx context.Context) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.byID))
	for id := range s.byID {
		ids = append(ids, id)
	}
	sortByInsertion(ids, s.order)
	out := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneUser(s.byID[id]))
	}
	return out, nil
}

func (s *UserStore) Update(ctx context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.byID[u.ID]
	if !ok {
		return apperr.NotFound("user")
	}
	// Re-check the email index when the address changed; the store is the
	// final arbiter even though the facade checks first.
	if emailKey(prev.Email) != emailKey(u.Email) {
		if owner, taken := s.byEmail[emailKey(u.Email)]; taken && owner != u.ID {
			return apperr.Conflict("email already registered")
		}
		delete(s.byEmail, emailKey(prev.Email))
		s.byEmail[emailKey(u.Email)] = u.ID
	}
	s.byID[u.ID] = cloneUser(u)
	return nil
}

func (s *UserStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return apperr.NotFound("user")
	}
	delete(s.byEmail, emailKey(u.Email))
	delete(s.byID, id)
	delete(s.order, id)
	return nil
}
