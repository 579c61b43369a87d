package facade

import (
	"context"

	"github.com/hbnb-project/hbnb-api/internal/apperr"
	"github.com/hbnb-project/hbnb-api/internal/model"
)

// CreateReviewInput carries the fields accepted when posting a review.
// UserID comes from the authenticated token, never from the payload.
type CreateReviewInput struct {
	Text    string
	Rating  int
	PlaceID string
	UserID  string
}

// CreateReview validates the fields and both relationship rules before
// persisting: a user may not review a place they own, and may review a given
// place at most once. The own-place rule is checked first so its message
// wins when both would apply; the store's unique (user, place) index remains
// the final arbiter under concurrency.
func (f *Facade) CreateReview(ctx context.Context, in CreateReviewInput) (*model.Review, error) {
	place, err := f.stores.Places.Get(ctx, in.PlaceID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.Invalid("place_id", "no such place")
		}
		return nil, err
	}
	if _, err := f.stores.Users.Get(ctx, in.UserID); err != nil {
		if isNotFound(err) {
			return nil, apperr.Invalid("user_id", "no such user")
		}
		return nil, err
	}
	r, err := model.NewReview(in.Text, in.Rating, place.ID, in.UserID)
	if err != nil {
		return nil, err
	}
	if place.OwnerID == in.UserID {
		return nil, apperr.Conflict("you cannot review your own place")
	}
	existing, err := f.stores.Reviews.ListByPlace(ctx, place.ID)
	if err != nil {
		return nil, err
	}
	for _, prev := range existing {
		if prev.UserID == in.UserID {
			return nil, apperr.Conflict("you have already reviewed this place")
		}
	}
	if err := f.stores.Reviews.Create(ctx, r); err != nil {
		return nil, err
	}
	place.AddReview(r.ID)
	if err := f.stores.Places.Update(ctx, place); err != nil {
		return nil, err
	}
	return r, nil
}

// GetReview returns the review with the given id.
func (f *Facade) GetReview(ctx context.Context, id string) (*model.Review, error) {
	return f.stores.Reviews.Get(ctx, id)
}

// ListReviews returns all reviews in posting order.
func (f *Facade) ListReviews(ctx context.Context) ([]*model.Review, error) {
	return f.stores.Reviews.List(ctx)
}

// ListReviewsByPlace returns a place's reviews in posting order. The place
// must exist; a missing place is a NotFoundError.
func (f *Facade) ListReviewsByPlace(ctx context.Context, placeID string) ([]*model.Review, error) {
	if _, err := f.stores.Places.Get(ctx, placeID); err != nil {
		return nil, err
	}
	return f.stores.Reviews.ListByPlace(ctx, placeID)
}

// ListReviewsByAuthor returns the reviews written by the given user.
func (f *Facade) ListReviewsByAuthor(ctx context.Context, userID string) ([]*model.Review, error) {
	return f.stores.Reviews.ListByAuthor(ctx, userID)
}

// UpdateReview merges the patch (text and rating only) into the stored
// review and returns the refreshed record.
func (f *Facade) UpdateReview(ctx context.Context, id string, patch model.ReviewPatch) (*model.Review, error) {
	r, err := f.stores.Reviews.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.Apply(patch); err != nil {
		return nil, err
	}
	if err := f.stores.Reviews.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// DeleteReview removes the review and then detaches its id from the owning
// place's review list. The detach step is mandatory: its failure is
// propagated, never swallowed, so a half-applied cascade is always visible
// to the caller.
func (f *Facade) DeleteReview(ctx context.Context, id string) error {
	r, err := f.stores.Reviews.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := f.stores.Reviews.Delete(ctx, id); err != nil {
		return err
	}
	return f.stores.Places.DetachReview(ctx, r.PlaceID, r.ID)
}
