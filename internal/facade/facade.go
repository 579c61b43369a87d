// Package facade composes the entity stores, field validators and
// relationship rules into the operations the HTTP handlers call. It is the
// single entry point to the domain: handlers never touch a store directly.
// The facade raises typed errors from the apperr taxonomy and catches none
// of them; mapping to HTTP status codes happens at the boundary.
package facade

import (
	"github.com/hbnb-project/hbnb-api/internal/repository"
)

// Facade bundles the four entity stores plus the bcrypt cost used when
// hashing user passwords. Construct one at startup and inject it into the
// handlers; there is no package-level instance.
type Facade struct {
	stores     repository.Stores
	bcryptCost int
}

// New returns a Facade over the given stores.
func New(stores repository.Stores, bcryptCost int) *Facade {
	return &Facade{stores: stores, bcryptCost: bcryptCost}
}
