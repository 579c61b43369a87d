package facade

import (
	"context"
	"errors"
	"strings"

	"github.com/hbnb-project/hbnb-api/internal/apperr"
	"github.com/hbnb-project/hbnb-api/internal/model"
	"github.com/hbnb-project/hbnb-api/internal/utils"
)

// CreateUserInput carries the fields accepted when registering a user. The
// admin flag is only honored on the admin surface; the public registration
// handler always passes false.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	IsAdmin   bool
}

// CreateUser validates the fields, checks email uniqueness and persists the
// new user. The store's unique index remains the final arbiter: a concurrent
// registration losing the race still comes back as a ConflictError.
func (f *Facade) CreateUser(ctx context.Context, in CreateUserInput) (*model.User, error) {
	u, err := model.NewUser(in.FirstName, in.LastName, in.Email, in.IsAdmin)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Password) == "" {
		return nil, apperr.Invalid("password", "cannot be empty")
	}
	if _, err := f.stores.Users.GetByEmail(ctx, u.Email); err == nil {
		return nil, apperr.Conflict("email already registered")
	} else if !isNotFound(err) {
		return nil, err
	}
	hash, err := utils.HashPassword(in.Password, f.bcryptCost)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = hash
	if err := f.stores.Users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// GetUser returns the user with the given id.
func (f *Facade) GetUser(ctx context.Context, id string) (*model.User, error) {
	return f.stores.Users.Get(ctx, id)
}

// GetUserByEmail returns the user registered under the given email.
func (f *Facade) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return f.stores.Users.GetByEmail(ctx, email)
}

// ListUsers returns all users in creation order.
func (f *Facade) ListUsers(ctx context.Context) ([]*model.User, error) {
	return f.stores.Users.List(ctx)
}

// UpdateUser merges the patch into the stored user, re-validating each
// provided field. An email change re-checks uniqueness before applying; a
// password change is re-hashed. Returns the refreshed user.
func (f *Facade) UpdateUser(ctx context.Context, id string, patch model.UserPatch) (*model.User, error) {
	u, err := f.stores.Users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Email != nil && !strings.EqualFold(*patch.Email, u.Email) {
		if other, err := f.stores.Users.GetByEmail(ctx, *patch.Email); err == nil && other.ID != id {
			return nil, apperr.Conflict("email is already in use")
		} else if err != nil && !isNotFound(err) {
			return nil, err
		}
	}
	if err := u.Apply(patch); err != nil {
		return nil, err
	}
	if patch.Password != nil {
		if strings.TrimSpace(*patch.Password) == "" {
			return nil, apperr.Invalid("password", "cannot be empty")
		}
		hash, err := utils.HashPassword(*patch.Password, f.bcryptCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
		u.Touch()
	}
	if err := f.stores.Users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteUser removes the user record.
func (f *Facade) DeleteUser(ctx context.Context, id string) error {
	return f.stores.Users.Delete(ctx, id)
}

// AuthenticateUser verifies email/password credentials and returns the user
// on success. Both an unknown email and a bad password produce the same
// AuthenticationError so callers cannot probe for registered addresses.
func (f *Facade) AuthenticateUser(ctx context.Context, email, password string) (*model.User, error) {
	u, err := f.stores.Users.GetByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.Unauthenticated("")
		}
		return nil, err
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return nil, apperr.Unauthenticated("")
	}
	return u, nil
}

// isNotFound reports whether err is the taxonomy's NotFoundError.
func isNotFound(err error) bool {
	var nf *apperr.NotFoundError
	return errors.As(err, &nf)
}
