package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbnb-project/hbnb-api/internal/apperr"
)

func TestNewUserValid(t *testing.T) {
	u, err := NewUser("  Jane ", "Doe", "jane.doe@example.com", false)
	require.NoError(t, err)
	assert.Equal(t, "Jane", u.FirstName, "names are trimmed")
	assert.Equal(t, "Doe", u.LastName)
	assert.Equal(t, "jane.doe@example.com", u.Email)
	assert.False(t, u.IsAdmin)
	assert.NotEmpty(t, u.ID)
	assert.NotNil(t, u.Places)
	assert.Equal(t, u.CreatedAt, u.UpdatedAt)
}

func TestNewUserNameBounds(t *testing.T) {
	longest := strings.Repeat("a", 50)
	_, err := NewUser(longest, "Doe", "a@b.com", false)
	assert.NoError(t, err, "50 characters is allowed")

	_, err = NewUser(longest+"a", "Doe", "a@b.com", false)
	assert.EqualError(t, err, "first_name: too long")

	_, err = NewUser("Jane", "   ", "a@b.com", false)
	assert.EqualError(t, err, "last_name: cannot be empty")
}

func TestNewUserEmail(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"jane@example.com", true},
		{"jane+tag@sub.example.com", true},
		{"", false},
		{"not-an-email", false},
		{"jane@", false},
		{"Jane Doe <jane@example.com>", false},
	}
	for _, tc := range cases {
		_, err := NewUser("Jane", "Doe", tc.email, false)
		if tc.ok {
			assert.NoError(t, err, "email %q", tc.email)
		} else {
			var ve *apperr.ValidationError
			assert.ErrorAs(t, err, &ve, "email %q", tc.email)
		}
	}
}

func TestUserApply(t *testing.T) {
	u, err := NewUser("Jane", "Doe", "jane@example.com", false)
	require.NoError(t, err)
	before := u.UpdatedAt

	first := "Janet"
	require.NoError(t, u.Apply(UserPatch{FirstName: &first}))
	assert.Equal(t, "Janet", u.FirstName)
	assert.Equal(t, "Doe", u.LastName, "unset fields are untouched")
	assert.False(t, u.UpdatedAt.Before(before))

	bad := ""
	err = u.Apply(UserPatch{Email: &bad})
	assert.EqualError(t, err, "email: cannot be empty")
	assert.Equal(t, "jane@example.com", u.Email, "failed patch leaves the record unchanged")
}

func TestUserPlacesList(t *testing.T) {
	u, err := NewUser("Jane", "Doe", "jane@example.com", false)
	require.NoError(t, err)

	u.AddPlace("p1")
	u.AddPlace("p2")
	assert.Equal(t, []string{"p1", "p2"}, u.Places)

	u.RemovePlace("p1")
	assert.Equal(t, []string{"p2"}, u.Places)

	u.RemovePlace("missing")
	assert.Equal(t, []string{"p2"}, u.Places)
}

func TestNewPlaceValid(t *testing.T) {
	p, err := NewPlace("Cozy Cabin", "A cabin in the woods.", 120.5, 45.0, -120.0, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "Cozy Cabin", p.Title)
	assert.Equal(t, "owner-1", p.OwnerID)
	assert.Empty(t, p.Amenities)
	assert.Empty(t, p.Reviews)
}

func TestNewPlaceBounds(t *testing.T) {
	mk := func(title string, price, lat, lon float64) error {
		_, err := NewPlace(title, "desc", price, lat, lon, "o")
		return err
	}

	assert.NoError(t, mk(strings.Repeat("t", 100), 0, 90.0, 180.0))
	assert.NoError(t, mk("t", 0, -90.0, -180.0))

	assert.EqualError(t, mk(strings.Repeat("t", 101), 10, 0, 0), "title: too long")
	assert.EqualError(t, mk(" ", 10, 0, 0), "title: cannot be empty")
	assert.EqualError(t, mk("t", -0.01, 0, 0), "price: must not be negative")
	assert.EqualError(t, mk("t", 10, 90.0001, 0), "latitude: must be in range -90.0 to 90.0")
	assert.EqualError(t, mk("t", 10, 0, -180.0001), "longitude: must be in range -180.0 to 180.0")
}

func TestPlaceAmenitySetSemantics(t *testing.T) {
	p, err := NewPlace("t", "d", 1, 0, 0, "o")
	require.NoError(t, err)

	p.AddAmenity("wifi")
	p.AddAmenity("pool")
	p.AddAmenity("wifi")
	assert.Equal(t, []string{"wifi", "pool"}, p.Amenities)

	ids := []string{"a", "b", "a", "c", "b"}
	require.NoError(t, p.Apply(PlacePatch{Amenities: &ids}))
	assert.Equal(t, []string{"a", "b", "c"}, p.Amenities)
}

func TestPlaceReviewList(t *testing.T) {
	p, err := NewPlace("t", "d", 1, 0, 0, "o")
	require.NoError(t, err)

	p.AddReview("r1")
	p.AddReview("r2")
	p.AddReview("r3")
	p.RemoveReview("r2")
	assert.Equal(t, []string{"r1", "r3"}, p.Reviews)
}

func TestNewReviewRating(t *testing.T) {
	for r := 1; r <= 5; r++ {
		_, err := NewReview("nice", r, "p", "u")
		assert.NoError(t, err, "rating %d", r)
	}
	for _, r := range []int{0, 6, -1, 100} {
		_, err := NewReview("nice", r, "p", "u")
		assert.EqualError(t, err, "rating: must be between 1 and 5", "rating %d", r)
	}
	_, err := NewReview("   ", 3, "p", "u")
	assert.EqualError(t, err, "text: cannot be empty")
}

func TestReviewApply(t *testing.T) {
	r, err := NewReview("ok", 3, "p", "u")
	require.NoError(t, err)

	five := 5
	text := "great"
	require.NoError(t, r.Apply(ReviewPatch{Text: &text, Rating: &five}))
	assert.Equal(t, "great", r.Text)
	assert.Equal(t, 5, r.Rating)

	zero := 0
	err = r.Apply(ReviewPatch{Rating: &zero})
	assert.EqualError(t, err, "rating: must be between 1 and 5")
	assert.Equal(t, 5, r.Rating)
}

func TestNewAmenity(t *testing.T) {
	a, err := NewAmenity("  Wi-Fi ")
	require.NoError(t, err)
	assert.Equal(t, "Wi-Fi", a.Name)

	_, err = NewAmenity("")
	assert.EqualError(t, err, "name: cannot be empty")

	_, err = NewAmenity(strings.Repeat("x", 51))
	assert.EqualError(t, err, "name: too long")
}
