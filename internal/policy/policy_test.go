package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hbnb-project/hbnb-api/internal/apperr"
	"github.com/hbnb-project/hbnb-api/internal/model"
)

func TestRequireAdmin(t *testing.T) {
	assert.NoError(t, Actor{ID: "u1", IsAdmin: true}.RequireAdmin())

	err := Actor{ID: "u1"}.RequireAdmin()
	var az *apperr.AuthorizationError
	assert.ErrorAs(t, err, &az)
	assert.EqualError(t, err, "admin privileges required")
}

func TestCanModifyPlace(t *testing.T) {
	p := &model.Place{OwnerID: "owner"}

	assert.NoError(t, Actor{ID: "owner"}.CanModifyPlace(p))
	assert.NoError(t, Actor{ID: "someone", IsAdmin: true}.CanModifyPlace(p))
	assert.EqualError(t, Actor{ID: "someone"}.CanModifyPlace(p), "unauthorized action")
}

func TestCanMutateReviewHasNoAdminOverride(t *testing.T) {
	r := &model.Review{UserID: "author"}

	assert.NoError(t, Actor{ID: "author"}.CanMutateReview(r))
	assert.Error(t, Actor{ID: "other"}.CanMutateReview(r))
	assert.Error(t, Actor{ID: "other", IsAdmin: true}.CanMutateReview(r),
		"admins may not edit another user's review")
}

func TestCanUpdateUser(t *testing.T) {
	assert.NoError(t, Actor{ID: "u1"}.CanUpdateUser("u1"))
	assert.NoError(t, Actor{ID: "u2", IsAdmin: true}.CanUpdateUser("u1"))
	assert.Error(t, Actor{ID: "u2"}.CanUpdateUser("u1"))
}
