package facade

import (
	"context"

	"github.com/hbnb-project/hbnb-api/internal/apperr"
	"github.com/hbnb-project/hbnb-api/internal/model"
)

// CreatePlaceInput carries the fields accepted when listing a place. OwnerID
// comes from the authenticated token, never from the payload.
type CreatePlaceInput struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     string
	Amenities   []string
}

// CreatePlace validates the fields, resolves the owner and amenity
// references, persists the place and appends it to the owner's place list.
// A dangling reference is a validation failure (400), not a 404: the target
// of the request is the new place, not the referenced entity.
func (f *Facade) CreatePlace(ctx context.Context, in CreatePlaceInput) (*model.Place, error) {
	owner, err := f.stores.Users.Get(ctx, in.OwnerID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.Invalid("owner_id", "no such user")
		}
		return nil, err
	}
	p, err := model.NewPlace(in.Title, in.Description, in.Price, in.Latitude, in.Longitude, owner.ID)
	if err != nil {
		return nil, err
	}
	for _, amenityID := range in.Amenities {
		if _, err := f.stores.Amenities.Get(ctx, amenityID); err != nil {
			if isNotFound(err) {
				return nil, apperr.Invalid("amenities", "no such amenity")
			}
			return nil, err
		}
		p.AddAmenity(amenityID)
	}
	if err := f.stores.Places.Create(ctx, p); err != nil {
		return nil, err
	}
	owner.AddPlace(p.ID)
	if err := f.stores.Users.Update(ctx, owner); err != nil {
		return nil, err
	}
	return p, nil
}

// GetPlace returns the place with the given id, amenity set and review list
// included.
func (f *Facade) GetPlace(ctx context.Context, id string) (*model.Place, error) {
	return f.stores.Places.Get(ctx, id)
}

// ListPlaces returns all places in creation order.
func (f *Facade) ListPlaces(ctx context.Context) ([]*model.Place, error) {
	return f.stores.Places.List(ctx)
}

// ListPlacesByOwner returns the places owned by the given user.
func (f *Facade) ListPlacesByOwner(ctx context.Context, ownerID string) ([]*model.Place, error) {
	return f.stores.Places.ListByOwner(ctx, ownerID)
}

// UpdatePlace merges the patch into the stored place, re-validating changed
// fields. Amenity ids in the patch must resolve. The owner reference is
// immutable and not part of the patch type.
func (f *Facade) UpdatePlace(ctx context.Context, id string, patch model.PlacePatch) (*model.Place, error) {
	p, err := f.stores.Places.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Amenities != nil {
		for _, amenityID := range *patch.Amenities {
			if _, err := f.stores.Amenities.Get(ctx, amenityID); err != nil {
				if isNotFound(err) {
					return nil, apperr.Invalid("amenities", "no such amenity")
				}
				return nil, err
			}
		}
	}
	if err := p.Apply(patch); err != nil {
		return nil, err
	}
	if err := f.stores.Places.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeletePlace removes the place, its reviews and the owner's back-reference.
func (f *Facade) DeletePlace(ctx context.Context, id string) error {
	p, err := f.stores.Places.Get(ctx, id)
	if err != nil {
		return err
	}
	reviews, err := f.stores.Reviews.ListByPlace(ctx, id)
	if err != nil {
		return err
	}
	for _, r := range reviews {
		if err := f.stores.Reviews.Delete(ctx, r.ID); err != nil {
			return err
		}
	}
	if owner, err := f.stores.Users.Get(ctx, p.OwnerID); err == nil {
		owner.RemovePlace(id)
		if err := f.stores.Users.Update(ctx, owner); err != nil {
			return err
		}
	} else if !isNotFound(err) {
		return err
	}
	return f.stores.Places.Delete(ctx, id)
}

// AverageRating computes the arithmetic mean of a place's review ratings.
// The second return value is false when the place has no reviews yet.
func (f *Facade) AverageRating(ctx context.Context, placeID string) (float64, bool, error) {
	if _, err := f.stores.Places.Get(ctx, placeID); err != nil {
		return 0, false, err
	}
	reviews, err := f.stores.Reviews.ListByPlace(ctx, placeID)
	if err != nil {
		return 0, false, err
	}
	if len(reviews) == 0 {
		return 0, false, nil
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews)), true, nil
}
