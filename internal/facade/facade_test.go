package facade

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hbnb-project/hbnb-api/internal/apperr"
	"github.com/hbnb-project/hbnb-api/internal/model"
	"github.com/hbnb-project/hbnb-api/internal/repository/memory"
	"github.com/hbnb-project/hbnb-api/internal/utils"
)

func newTestFacade() *Facade {
	return New(memory.New(), bcrypt.MinCost)
}

func createUser(t *testing.T, f *Facade, email string) *model.User {
	t.Helper()
	u, err := f.CreateUser(context.Background(), CreateUserInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     email,
		Password:  "s3cret",
	})
	require.NoError(t, err)
	return u
}

func createPlace(t *testing.T, f *Facade, ownerID string, amenities ...string) *model.Place {
	t.Helper()
	p, err := f.CreatePlace(context.Background(), CreatePlaceInput{
		Title:       "Cozy Cabin",
		Description: "A cabin in the woods.",
		Price:       120,
		Latitude:    45,
		Longitude:   -120,
		OwnerID:     ownerID,
		Amenities:   amenities,
	})
	require.NoError(t, err)
	return p
}

func TestCreateUserHashesPassword(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	u := createUser(t, f, "jane@example.com")
	assert.NotEqual(t, "s3cret", u.PasswordHash)
	assert.True(t, utils.VerifyPassword(u.PasswordHash, "s3cret"))

	_, err := f.CreateUser(ctx, CreateUserInput{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
	})
	assert.EqualError(t, err, "password: cannot be empty")
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	createUser(t, f, "jane@example.com")

	_, err := f.CreateUser(ctx, CreateUserInput{
		FirstName: "Other", LastName: "Jane", Email: "jane@example.com", Password: "pw",
	})
	var ce *apperr.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.EqualError(t, err, "email already registered")
}

func TestAuthenticateUser(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	u := createUser(t, f, "jane@example.com")

	got, err := f.AuthenticateUser(ctx, "jane@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, badPw := f.AuthenticateUser(ctx, "jane@example.com", "wrong")
	_, badEmail := f.AuthenticateUser(ctx, "nobody@example.com", "s3cret")
	assert.EqualError(t, badPw, "invalid credentials")
	assert.EqualError(t, badEmail, "invalid credentials",
		"unknown email and bad password must be indistinguishable")
}

func TestUpdateUserEmailConflict(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	u := createUser(t, f, "jane@example.com")
	createUser(t, f, "taken@example.com")

	taken := "taken@example.com"
	_, err := f.UpdateUser(ctx, u.ID, model.UserPatch{Email: &taken})
	assert.EqualError(t, err, "email is already in use")

	// Re-submitting the current address is not a conflict.
	same := "jane@example.com"
	_, err = f.UpdateUser(ctx, u.ID, model.UserPatch{Email: &same})
	assert.NoError(t, err)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	u := createUser(t, f, "jane@example.com")
	pw := "newpass"
	updated, err := f.UpdateUser(ctx, u.ID, model.UserPatch{Password: &pw})
	require.NoError(t, err)
	assert.True(t, utils.VerifyPassword(updated.PasswordHash, "newpass"))
	assert.False(t, utils.VerifyPassword(updated.PasswordHash, "s3cret"))
}

func TestCreatePlaceResolvesReferences(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	owner := createUser(t, f, "owner@example.com")
	wifi, err := f.CreateAmenity(ctx, "Wi-Fi")
	require.NoError(t, err)

	p := createPlace(t, f, owner.ID, wifi.ID)
	assert.Equal(t, []string{wifi.ID}, p.Amenities)

	got, err := f.GetUser(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{p.ID}, got.Places, "owner gains a back-reference")

	_, err = f.CreatePlace(ctx, CreatePlaceInput{
		Title: "t", Description: "d", Price: 1, OwnerID: "missing",
	})
	assert.EqualError(t, err, "owner_id: no such user")

	_, err = f.CreatePlace(ctx, CreatePlaceInput{
		Title: "t", Description: "d", Price: 1, OwnerID: owner.ID,
		Amenities: []string{"missing"},
	})
	assert.EqualError(t, err, "amenities: no such amenity")
}

func TestUpdatePlaceValidatesAmenities(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	owner := createUser(t, f, "owner@example.com")
	p := createPlace(t, f, owner.ID)

	bad := []string{"missing"}
	_, err := f.UpdatePlace(ctx, p.ID, model.PlacePatch{Amenities: &bad})
	assert.EqualError(t, err, "amenities: no such amenity")

	pool, err := f.CreateAmenity(ctx, "Pool")
	require.NoError(t, err)
	good := []string{pool.ID, pool.ID}
	updated, err := f.UpdatePlace(ctx, p.ID, model.PlacePatch{Amenities: &good})
	require.NoError(t, err)
	assert.Equal(t, []string{pool.ID}, updated.Amenities, "duplicates collapse")
}

func TestCreateReviewRelationshipRules(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	owner := createUser(t, f, "owner@example.com")
	guest := createUser(t, f, "guest@example.com")
	p := createPlace(t, f, owner.ID)

	// The owner cannot review their own place, even before any duplicate check
	// could apply.
	_, err := f.CreateReview(ctx, CreateReviewInput{
		Text: "mine is great", Rating: 5, PlaceID: p.ID, UserID: owner.ID,
	})
	assert.EqualError(t, err, "you cannot review your own place")

	r, err := f.CreateReview(ctx, CreateReviewInput{
		Text: "lovely", Rating: 4, PlaceID: p.ID, UserID: guest.ID,
	})
	require.NoError(t, err)

	_, err = f.CreateReview(ctx, CreateReviewInput{
		Text: "again", Rating: 2, PlaceID: p.ID, UserID: guest.ID,
	})
	assert.EqualError(t, err, "you have already reviewed this place")

	got, err := f.GetPlace(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{r.ID}, got.Reviews)
}

func TestCreateReviewDanglingReferences(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	owner := createUser(t, f, "owner@example.com")
	p := createPlace(t, f, owner.ID)

	_, err := f.CreateReview(ctx, CreateReviewInput{
		Text: "t", Rating: 3, PlaceID: "missing", UserID: owner.ID,
	})
	assert.EqualError(t, err, "place_id: no such place")

	_, err = f.CreateReview(ctx, CreateReviewInput{
		Text: "t", Rating: 3, PlaceID: p.ID, UserID: "missing",
	})
	assert.EqualError(t, err, "user_id: no such user")
}

func TestDeleteReviewCascade(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	owner := createUser(t, f, "owner@example.com")
	guest := createUser(t, f, "guest@example.com")
	p := createPlace(t, f, owner.ID)

	r, err := f.CreateReview(ctx, CreateReviewInput{
		Text: "lovely", Rating: 4, PlaceID: p.ID, UserID: guest.ID,
	})
	require.NoError(t, err)

	require.NoError(t, f.DeleteReview(ctx, r.ID))

	var nf *apperr.NotFoundError
	_, err = f.GetReview(ctx, r.ID)
	assert.ErrorAs(t, err, &nf)

	got, err := f.GetPlace(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Reviews, "the place no longer references the review")

	// The pair is freed: the guest may review the place again.
	_, err = f.CreateReview(ctx, CreateReviewInput{
		Text: "second visit", Rating: 5, PlaceID: p.ID, UserID: guest.ID,
	})
	assert.NoError(t, err)
}

func TestDeletePlaceCascade(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	owner := createUser(t, f, "owner@example.com")
	guest := createUser(t, f, "guest@example.com")
	p := createPlace(t, f, owner.ID)

	r, err := f.CreateReview(ctx, CreateReviewInput{
		Text: "lovely", Rating: 4, PlaceID: p.ID, UserID: guest.ID,
	})
	require.NoError(t, err)

	require.NoError(t, f.DeletePlace(ctx, p.ID))

	var nf *apperr.NotFoundError
	_, err = f.GetPlace(ctx, p.ID)
	assert.ErrorAs(t, err, &nf)
	_, err = f.GetReview(ctx, r.ID)
	assert.ErrorAs(t, err, &nf, "the place's reviews go with it")

	u, err := f.GetUser(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, u.Places)
}

func TestAverageRating(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	owner := createUser(t, f, "owner@example.com")
	p := createPlace(t, f, owner.ID)

	_, ok, err := f.AverageRating(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, ok, "no reviews yet")

	for i, rating := range []int{2, 5} {
		guest := createUser(t, f, []string{"a@example.com", "b@example.com"}[i])
		_, err := f.CreateReview(ctx, CreateReviewInput{
			Text: "stay", Rating: rating, PlaceID: p.ID, UserID: guest.ID,
		})
		require.NoError(t, err)
	}

	avg, ok, err := f.AverageRating(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 3.5, avg, 1e-9)

	_, _, err = f.AverageRating(ctx, "missing")
	var nf *apperr.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestDeleteAmenityDetachesFromPlaces(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	owner := createUser(t, f, "owner@example.com")
	wifi, err := f.CreateAmenity(ctx, "Wi-Fi")
	require.NoError(t, err)
	pool, err := f.CreateAmenity(ctx, "Pool")
	require.NoError(t, err)
	p := createPlace(t, f, owner.ID, wifi.ID, pool.ID)

	require.NoError(t, f.DeleteAmenity(ctx, wifi.ID))

	got, err := f.GetPlace(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{pool.ID}, got.Amenities)
}
