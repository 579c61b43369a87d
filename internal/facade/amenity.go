package facade

import (
	"context"

	"github.com/hbnb-project/hbnb-api/internal/model"
)

// CreateAmenity validates the name and persists a new amenity.
func (f *Facade) CreateAmenity(ctx context.Context, name string) (*model.Amenity, error) {
	a, err := model.NewAmenity(name)
	if err != nil {
		return nil, err
	}
	if err := f.stores.Amenities.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// GetAmenity returns the amenity with the given id.
func (f *Facade) GetAmenity(ctx context.Context, id string) (*model.Amenity, error) {
	return f.stores.Amenities.Get(ctx, id)
}

// GetAmenityByName returns the amenity with the given name (case-insensitive).
func (f *Facade) GetAmenityByName(ctx context.Context, name string) (*model.Amenity, error) {
	return f.stores.Amenities.GetByName(ctx, name)
}

// ListAmenities returns all amenities in creation order.
func (f *Facade) ListAmenities(ctx context.Context) ([]*model.Amenity, error) {
	return f.stores.Amenities.List(ctx)
}

// UpdateAmenity merges the patch into the stored amenity and returns the
// refreshed record.
func (f *Facade) UpdateAmenity(ctx context.Context, id string, patch model.AmenityPatch) (*model.Amenity, error) {
	a, err := f.stores.Amenities.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := a.Apply(patch); err != nil {
		return nil, err
	}
	if err := f.stores.Amenities.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// DeleteAmenity removes the amenity and detaches it from every place that
// referenced it, so no place carries a dangling amenity id.
func (f *Facade) DeleteAmenity(ctx context.Context, id string) error {
	if _, err := f.stores.Amenities.Get(ctx, id); err != nil {
		return err
	}
	places, err := f.stores.Places.List(ctx)
	if err != nil {
		return err
	}
	for _, p := range places {
		for i, amenityID := range p.Amenities {
			if amenityID == id {
				p.Amenities = append(p.Amenities[:i], p.Amenities[i+1:]...)
				p.Touch()
				if err := f.stores.Places.Update(ctx, p); err != nil {
					return err
				}
				break
			}
		}
	}
	return f.stores.Amenities.Delete(ctx, id)
}
