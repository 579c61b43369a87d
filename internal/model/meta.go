// Package model defines the HBnB entities (User, Place, Amenity, Review)
// together with their field validators and patch types. Validators are pure
// functions: they take a candidate value and either return the normalized
// value or a *apperr.ValidationError naming the field and the reason. All
// cross-entity rules (ownership, duplicate reviews) live in the facade, not
// here.
package model

import (
	"time"

	"github.com/google/uuid"
)

// EntityMeta carries the identity and timestamps shared by every entity.
// Entities embed it by composition; the ID is assigned once at creation and
// never changes.
type EntityMeta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewMeta returns a fresh EntityMeta with a random UUID and both timestamps
// set to the current UTC time.
func NewMeta() EntityMeta {
	now := time.Now().UTC()
	return EntityMeta{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
}

// Touch refreshes UpdatedAt. Every mutation path must call it before the
// entity is persisted.
func (m *EntityMeta) Touch() {
	m.UpdatedAt = time.Now().UTC()
}
