// Package policy implements the role/ownership checks gating mutation
// endpoints. An Actor is the authenticated principal extracted from a
// verified token; the checks are pure functions over (actor, target) and
// return *apperr.AuthorizationError on refusal.
package policy

import (
	"github.com/hbnb-project/hbnb-api/internal/apperr"
	"github.com/hbnb-project/hbnb-api/internal/model"
)

// Actor is the authenticated principal: the token subject plus the is_admin
// claim. Both are trusted input from the token verifier.
type Actor struct {
	ID      string
	IsAdmin bool
}

// RequireAdmin refuses non-admin actors.
func (a Actor) RequireAdmin() error {
	if !a.IsAdmin {
		return apperr.Unauthorized("admin privileges required")
	}
	return nil
}

// CanModifyPlace allows the place owner and admins.
func (a Actor) CanModifyPlace(p *model.Place) error {
	if a.IsAdmin || a.ID == p.OwnerID {
		return nil
	}
	return apperr.Unauthorized("")
}

// CanMutateReview allows only the review's author. There is deliberately no
// admin override: review mutation is authorship-bound on the authenticated
// surface.
func (a Actor) CanMutateReview(r *model.Review) error {
	if a.ID == r.UserID {
		return nil
	}
	return apperr.Unauthorized("")
}

// CanUpdateUser allows admins and the user themselves. Which fields the
// self-service path may touch is enforced separately at the handler.
func (a Actor) CanUpdateUser(targetID string) error {
	if a.IsAdmin || a.ID == targetID {
		return nil
	}
	return apperr.Unauthorized("")
}
