package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbnb-project/hbnb-api/internal/apperr"
	"github.com/hbnb-project/hbnb-api/internal/model"
)

func mustUser(t *testing.T, email string) *model.User {
	t.Helper()
	u, err := model.NewUser("Jane", "Doe", email, false)
	require.NoError(t, err)
	return u
}

func mustPlace(t *testing.T, title, ownerID string) *model.Place {
	t.Helper()
	p, err := model.NewPlace(title, "desc", 100, 10, 20, ownerID)
	require.NoError(t, err)
	return p
}

func mustReview(t *testing.T, placeID, userID string) *model.Review {
	t.Helper()
	r, err := model.NewReview("nice stay", 4, placeID, userID)
	require.NoError(t, err)
	return r
}

func TestUserStoreEmailUniqueness(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()

	require.NoError(t, s.Create(ctx, mustUser(t, "jane@example.com")))

	err := s.Create(ctx, mustUser(t, "JANE@example.com"))
	var ce *apperr.ConflictError
	require.ErrorAs(t, err, &ce, "email uniqueness is case-insensitive")

	got, err := s.GetByEmail(ctx, "Jane@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", got.Email)
}

func TestUserStoreUpdateMovesEmailIndex(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()

	u := mustUser(t, "old@example.com")
	other := mustUser(t, "taken@example.com")
	require.NoError(t, s.Create(ctx, u))
	require.NoError(t, s.Create(ctx, other))

	u.Email = "taken@example.com"
	var ce *apperr.ConflictError
	require.ErrorAs(t, s.Update(ctx, u), &ce)

	u.Email = "new@example.com"
	require.NoError(t, s.Update(ctx, u))

	_, err := s.GetByEmail(ctx, "old@example.com")
	var nf *apperr.NotFoundError
	assert.ErrorAs(t, err, &nf, "old address must be released")

	got, err := s.GetByEmail(ctx, "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestUserStoreNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()

	var nf *apperr.NotFoundError
	_, err := s.Get(ctx, "missing")
	assert.ErrorAs(t, err, &nf)
	assert.ErrorAs(t, s.Delete(ctx, "missing"), &nf)
	assert.ErrorAs(t, s.Update(ctx, mustUser(t, "x@y.com")), &nf)
}

func TestUserStoreListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()

	want := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		u := mustUser(t, fmt.Sprintf("user%d@example.com", i))
		require.NoError(t, s.Create(ctx, u))
		want = append(want, u.ID)
	}

	users, err := s.List(ctx)
	require.NoError(t, err)
	got := make([]string, 0, len(users))
	for _, u := range users {
		got = append(got, u.ID)
	}
	assert.Equal(t, want, got)
}

func TestStoresReturnClones(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()

	u := mustUser(t, "jane@example.com")
	require.NoError(t, s.Create(ctx, u))

	got, err := s.Get(ctx, u.ID)
	require.NoError(t, err)
	got.FirstName = "Mutated"
	got.Places = append(got.Places, "p1")

	again, err := s.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", again.FirstName)
	assert.Empty(t, again.Places)
}

func TestReviewStorePairUniqueness(t *testing.T) {
	ctx := context.Background()
	s := NewReviewStore()

	require.NoError(t, s.Create(ctx, mustReview(t, "p1", "u1")))

	var ce *apperr.ConflictError
	err := s.Create(ctx, mustReview(t, "p1", "u1"))
	require.ErrorAs(t, err, &ce)
	assert.EqualError(t, err, "you have already reviewed this place")

	// Same user on another place, and another user on the same place, are fine.
	assert.NoError(t, s.Create(ctx, mustReview(t, "p2", "u1")))
	assert.NoError(t, s.Create(ctx, mustReview(t, "p1", "u2")))
}

func TestReviewStoreDeleteReleasesPair(t *testing.T) {
	ctx := context.Background()
	s := NewReviewStore()

	r := mustReview(t, "p1", "u1")
	require.NoError(t, s.Create(ctx, r))
	require.NoError(t, s.Delete(ctx, r.ID))

	assert.NoError(t, s.Create(ctx, mustReview(t, "p1", "u1")),
		"deleting the review frees the (user, place) pair")
}

func TestReviewStoreListByPlaceAndAuthor(t *testing.T) {
	ctx := context.Background()
	s := NewReviewStore()

	r1 := mustReview(t, "p1", "u1")
	r2 := mustReview(t, "p1", "u2")
	r3 := mustReview(t, "p2", "u1")
	for _, r := range []*model.Review{r1, r2, r3} {
		require.NoError(t, s.Create(ctx, r))
	}

	byPlace, err := s.ListByPlace(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, byPlace, 2)
	assert.Equal(t, r1.ID, byPlace[0].ID, "posting order")
	assert.Equal(t, r2.ID, byPlace[1].ID)

	byAuthor, err := s.ListByAuthor(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, byAuthor, 2)
	assert.Equal(t, r1.ID, byAuthor[0].ID)
	assert.Equal(t, r3.ID, byAuthor[1].ID)
}

func TestPlaceStoreDetachReview(t *testing.T) {
	ctx := context.Background()
	s := NewPlaceStore()

	p := mustPlace(t, "Cabin", "owner")
	p.AddReview("r1")
	p.AddReview("r2")
	require.NoError(t, s.Create(ctx, p))

	require.NoError(t, s.DetachReview(ctx, p.ID, "r1"))

	got, err := s.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"r2"}, got.Reviews)

	var nf *apperr.NotFoundError
	assert.ErrorAs(t, s.DetachReview(ctx, "missing", "r1"), &nf)
}

func TestAmenityStoreGetByName(t *testing.T) {
	ctx := context.Background()
	s := NewAmenityStore()

	a, err := model.NewAmenity("Wi-Fi")
	require.NoError(t, err)
	require.NoError(t, s.Create(ctx, a))

	got, err := s.GetByName(ctx, "wi-fi")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID, "name lookup is case-insensitive")

	var nf *apperr.NotFoundError
	_, err = s.GetByName(ctx, "sauna")
	assert.ErrorAs(t, err, &nf)
}
