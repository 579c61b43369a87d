// Package repository declares the persistence contracts for the HBnB
// entities. Each entity type gets its own store with identifier-keyed access
// plus the attribute lookups the facade needs (by email, by owner, by place,
// by author, by name). Two implementations exist: repository/memory for
// tests and the in-memory storage driver, and repository/mysql backed by
// MySQL with unique indexes acting as the authoritative arbiter of
// uniqueness.
//
// Error conventions: Get on a missing id returns *apperr.NotFoundError;
// Create returns *apperr.ConflictError when a unique constraint (users.email,
// reviews user+place pair) rejects the write. Implementations do no
// validation beyond that; field rules live in the model package.
package repository

import (
	"context"

	"github.com/hbnb-project/hbnb-api/internal/model"
)

// UserStore persists users. Email lookups use the normalized (trimmed,
// syntax-checked) address produced by the model validators.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	Get(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id string) error
}

// PlaceStore persists places, including their amenity set and the ordered
// review id list.
type PlaceStore interface {
	Create(ctx context.Context, p *model.Place) error
	Get(ctx context.Context, id string) (*model.Place, error)
	List(ctx context.Context) ([]*model.Place, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*model.Place, error)
	Update(ctx context.Context, p *model.Place) error
	Delete(ctx context.Context, id string) error
	// DetachReview removes a review id from the place's review list and
	// refreshes the place's updated_at. It is the mandatory second step of
	// the review deletion cascade.
	DetachReview(ctx context.Context, placeID, reviewID string) error
}

// AmenityStore persists amenities.
type AmenityStore interface {
	Create(ctx context.Context, a *model.Amenity) error
	Get(ctx context.Context, id string) (*model.Amenity, error)
	GetByName(ctx context.Context, name string) (*model.Amenity, error)
	List(ctx context.Context) ([]*model.Amenity, error)
	Update(ctx context.Context, a *model.Amenity) error
	Delete(ctx context.Context, id string) error
}

// ReviewStore persists reviews. ListByPlace returns reviews in posting
// order, which is also the order of the owning place's review id list.
type ReviewStore interface {
	Create(ctx context.Context, r *model.Review) error
	Get(ctx context.Context, id string) (*model.Review, error)
	List(ctx context.Context) ([]*model.Review, error)
	ListByPlace(ctx context.Context, placeID string) ([]*model.Review, error)
	ListByAuthor(ctx context.Context, userID string) ([]*model.Review, error)
	Update(ctx context.Context, r *model.Review) error
	Delete(ctx context.Context, id string) error
}

// Stores bundles one store per entity type for injection into the facade.
type Stores struct {
	Users     UserStore
	Places    PlaceStore
	Amenities AmenityStore
	Reviews   ReviewStore
}
