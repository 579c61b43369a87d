// Package memory implements the repository contracts with mutex-guarded
// maps. It backs the "memory" storage driver and the test suites: the domain
// core never notices the difference between this and the MySQL stores. The
// mutexes stand in for the write serialization an external database would
// provide.
package memory

import (
	"sort"
	"sync"

	"github.com/hbnb-project/hbnb-api/internal/model"
	"github.com/hbnb-project/hbnb-api/internal/repository"
)

// New returns a fully wired in-memory Stores bundle.
func New() repository.Stores {
	return repository.Stores{
		Users:     NewUserStore(),
		Places:    NewPlaceStore(),
		Amenities: NewAmenityStore(),
		Reviews:   NewReviewStore(),
	}
}

// seq hands out insertion sequence numbers so List results come back in
// creation order, like a SQL ORDER BY created_at with a monotonic clock.
type seq struct {
	mu sync.Mutex
	n  uint64
}

func (s *seq) next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return s.n
}

// sortByInsertion orders ids by their recorded insertion sequence.
func sortByInsertion(ids []string, order map[string]uint64) {
	sort.Slice(ids, func(i, j int) bool { return order[ids[i]] < order[ids[j]] })
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneUser(u *model.User) *model.User {
	c := *u
	c.Places = cloneStrings(u.Places)
	return &c
}

func clonePlace(p *model.Place) *model.Place {
	c := *p
	c.Amenities = cloneStrings(p.Amenities)
	c.Reviews = cloneStrings(p.Reviews)
	return &c
}

func cloneAmenity(a *model.Amenity) *model.Amenity {
	c := *a
	return &c
}

func cloneReview(r *model.Review) *model.Review {
	c := *r
	return &c
}
